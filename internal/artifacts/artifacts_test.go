package artifacts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestScanFiltersGGUF(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"b.gguf",
		"a.GGUF", // case-insensitive
		"not-model.txt",
		"model.bin",
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte(""), 0o644); err != nil {
			t.Fatalf("write temp file: %v", err)
		}
	}
	names, err := Scan(dir)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 artifacts, got %d: %v", len(names), names)
	}
	if names[0] != "a.GGUF" || names[1] != "b.gguf" {
		t.Fatalf("not sorted: %v", names)
	}
}

func TestScanMissingDir(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestMissingPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.gguf")
	if err := os.WriteFile(present, []byte(""), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m1 := filepath.Join(dir, "m1.gguf")
	m2 := filepath.Join(dir, "m2.gguf")
	missing := Missing([]string{m1, present, m2})
	if len(missing) != 2 || missing[0] != m1 || missing[1] != m2 {
		t.Fatalf("unexpected missing set: %v", missing)
	}
}

func TestWaitReturnsWhenFilesAppear(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "late.gguf")

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(target, []byte(""), 0o644)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var notified bool
	err := Wait(ctx, []string{target}, 20*time.Millisecond, func(missing []string) {
		notified = true
		if len(missing) != 1 || missing[0] != target {
			t.Errorf("unexpected missing set: %v", missing)
		}
	})
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if !notified {
		t.Fatalf("expected missing-set notification")
	}
}

func TestWaitAllPresentReturnsImmediately(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "here.gguf")
	if err := os.WriteFile(p, []byte(""), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := Wait(ctx, []string{p}, time.Hour, nil); err != nil {
		t.Fatalf("wait: %v", err)
	}
}

func TestWaitRescansOnWatcherError(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "m.gguf")
	errs := make(chan error)
	done := make(chan error, 1)
	go func() {
		// interval is effectively infinite so only the error branch can
		// trigger the rescan that observes the file.
		done <- waitLoop(context.Background(), []string{target}, time.Hour, nil, errs, nil)
	}()

	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(target, []byte(""), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	errs <- errors.New("event overflow")

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("wait: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("watcher error stalled the wait loop")
	}
}

func TestWaitTimesOut(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	err := Wait(ctx, []string{filepath.Join(dir, "never.gguf")}, 10*time.Millisecond, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

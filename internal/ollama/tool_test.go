//go:build !windows

package ollama

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "fake-ollama")
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return p
}

func TestToolCreateSuccess(t *testing.T) {
	tool := Tool{Bin: writeScript(t, `[ "$1" = "create" ] && [ "$3" = "-f" ] && exit 0; exit 2`)}
	if err := tool.Create(context.Background(), "local/m", "/tmp/modelfile"); err != nil {
		t.Fatalf("create: %v", err)
	}
}

func TestToolCreateCapturesStderr(t *testing.T) {
	tool := Tool{Bin: writeScript(t, `echo "manifest blob missing" >&2; exit 1`)}
	err := tool.Create(context.Background(), "local/m", "/tmp/modelfile")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "manifest blob missing") {
		t.Fatalf("stderr detail lost: %v", err)
	}
}

func TestToolMissingBinary(t *testing.T) {
	tool := Tool{Bin: filepath.Join(t.TempDir(), "nope")}
	if err := tool.Create(context.Background(), "m", "f"); err == nil {
		t.Fatalf("expected exec error")
	}
}

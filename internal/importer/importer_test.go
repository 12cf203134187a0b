package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeCreator records create calls and fails the names listed in failOn.
type fakeCreator struct {
	calls  []string
	failOn map[string]string
}

func (f *fakeCreator) Create(ctx context.Context, name, definitionPath string) error {
	f.calls = append(f.calls, name)
	if msg, ok := f.failOn[name]; ok {
		return errors.New(msg)
	}
	return nil
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	return p
}

func decl(t *testing.T, dir, name string) Declaration {
	t.Helper()
	return Declaration{
		Name:           name,
		ArtifactPath:   touch(t, dir, name+".gguf"),
		DefinitionPath: touch(t, dir, name+".modelfile"),
	}
}

func TestReconcileCreatesMissing(t *testing.T) {
	dir := t.TempDir()
	fc := &fakeCreator{}
	r := New(fc)

	decls := []Declaration{decl(t, dir, "a"), decl(t, dir, "b")}
	outcomes := r.Reconcile(context.Background(), decls, map[string]struct{}{})

	require.Len(t, outcomes, 2)
	require.Equal(t, Created, outcomes[0].Status)
	require.Equal(t, Created, outcomes[1].Status)
	require.Equal(t, []string{"a", "b"}, fc.calls)
}

func TestReconcileIdempotent(t *testing.T) {
	dir := t.TempDir()
	fc := &fakeCreator{}
	r := New(fc)
	decls := []Declaration{decl(t, dir, "a"), decl(t, dir, "b")}

	first := r.Reconcile(context.Background(), decls, map[string]struct{}{})
	require.Equal(t, Created, first[0].Status)
	require.Equal(t, Created, first[1].Status)

	// Second pass against the now-updated runtime set: all skips, zero creates.
	existing := map[string]struct{}{"a": {}, "b": {}}
	fc2 := &fakeCreator{}
	second := New(fc2).Reconcile(context.Background(), decls, existing)
	for _, o := range second {
		require.Equal(t, SkippedExists, o.Status)
	}
	require.Empty(t, fc2.calls)
}

func TestReconcilePreservesOrder(t *testing.T) {
	dir := t.TempDir()
	fc := &fakeCreator{failOn: map[string]string{"b": "boom"}}
	r := New(fc)

	decls := []Declaration{decl(t, dir, "a"), decl(t, dir, "b"), decl(t, dir, "c")}
	outcomes := r.Reconcile(context.Background(), decls, map[string]struct{}{})

	require.Len(t, outcomes, 3)
	for i, d := range decls {
		require.Equal(t, d.Name, outcomes[i].Declaration.Name)
	}
}

func TestReconcilePartialFailureIsolation(t *testing.T) {
	dir := t.TempDir()
	fc := &fakeCreator{failOn: map[string]string{"b": "create exploded"}}
	r := New(fc)

	decls := []Declaration{decl(t, dir, "a"), decl(t, dir, "b"), decl(t, dir, "c")}
	outcomes := r.Reconcile(context.Background(), decls, map[string]struct{}{})

	require.Equal(t, Created, outcomes[0].Status)
	require.Equal(t, Failed, outcomes[1].Status)
	require.Equal(t, "create exploded", outcomes[1].Detail)
	require.Equal(t, Created, outcomes[2].Status)
	require.Equal(t, []string{"a", "b", "c"}, fc.calls)
}

func TestReconcileMissingFiles(t *testing.T) {
	dir := t.TempDir()
	fc := &fakeCreator{}
	r := New(fc)

	noArtifact := Declaration{
		Name:           "no-artifact",
		ArtifactPath:   filepath.Join(dir, "missing.gguf"),
		DefinitionPath: touch(t, dir, "present.modelfile"),
	}
	noDefinition := Declaration{
		Name:           "no-definition",
		ArtifactPath:   touch(t, dir, "present.gguf"),
		DefinitionPath: filepath.Join(dir, "missing.modelfile"),
	}
	outcomes := r.Reconcile(context.Background(), []Declaration{noArtifact, noDefinition}, map[string]struct{}{})

	require.Equal(t, SkippedArtifactMissing, outcomes[0].Status)
	require.Equal(t, SkippedDefinitionMissing, outcomes[1].Status)
	require.Empty(t, fc.calls, "file checks must precede any create")
}

func TestReconcileSkipBeatsFileChecks(t *testing.T) {
	// An already-imported model is skipped even when its files are gone.
	dir := t.TempDir()
	fc := &fakeCreator{}
	r := New(fc)
	d := Declaration{
		Name:           "gone",
		ArtifactPath:   filepath.Join(dir, "missing.gguf"),
		DefinitionPath: filepath.Join(dir, "missing.modelfile"),
	}
	outcomes := r.Reconcile(context.Background(), []Declaration{d}, map[string]struct{}{"gone": {}})
	require.Equal(t, SkippedExists, outcomes[0].Status)
}

func TestReconcileProgressHook(t *testing.T) {
	dir := t.TempDir()
	fc := &fakeCreator{}
	r := New(fc)
	var started []string
	r.Progress = func(d Declaration) { started = append(started, d.Name) }

	decls := []Declaration{decl(t, dir, "a")}
	existing := map[string]struct{}{}
	r.Reconcile(context.Background(), decls, existing)
	require.Equal(t, []string{"a"}, started)

	// Skipped items never trigger progress.
	started = nil
	r.Reconcile(context.Background(), decls, map[string]struct{}{"a": {}})
	require.Empty(t, started)
}

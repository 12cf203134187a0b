// Package importer reconciles declared local models against the set the
// runtime already knows about, creating only what is missing. Creation is
// expensive and destructive to re-run, so the diff is what makes the operation
// idempotent.
package importer

import (
	"context"

	"llmctl/internal/common/fsutil"
)

// Declaration is one desired model: a name, the weights artifact on the models
// volume, and the definition file the runtime tool builds the entry from.
type Declaration struct {
	Name           string
	ArtifactPath   string
	DefinitionPath string
}

// Status enumerates per-declaration reconciliation results.
type Status int

const (
	Created Status = iota
	SkippedExists
	SkippedArtifactMissing
	SkippedDefinitionMissing
	Failed
)

func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case SkippedExists:
		return "already exists"
	case SkippedArtifactMissing:
		return "artifact missing"
	case SkippedDefinitionMissing:
		return "definition missing"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the report for a single declaration. It is produced once per
// pass and never persisted.
type Outcome struct {
	Declaration Declaration
	Status      Status
	// Detail carries the external tool's diagnostic text when Status is Failed.
	Detail string
}

// Creator runs the external create command for one declaration.
type Creator interface {
	Create(ctx context.Context, name, definitionPath string) error
}

// Reconciler diffs declarations against a runtime model set taken once at the
// start of the pass, not per item. A concurrent actor can therefore race a
// long pass into a duplicate create; that create's failure is reported on its
// own item, never treated as fatal to the pass.
type Reconciler struct {
	creator Creator
	exists  func(path string) bool
	// Progress, when set, is called just before an item's create command runs.
	Progress func(Declaration)
}

// New builds a reconciler around the given create-command runner.
func New(creator Creator) *Reconciler {
	return &Reconciler{creator: creator, exists: fsutil.PathExists}
}

// Reconcile processes every declaration in input order and returns one outcome
// per declaration in the same order. A failed item never aborts the rest.
func (r *Reconciler) Reconcile(ctx context.Context, decls []Declaration, existing map[string]struct{}) []Outcome {
	outcomes := make([]Outcome, 0, len(decls))
	for _, d := range decls {
		outcomes = append(outcomes, r.reconcileOne(ctx, d, existing))
	}
	return outcomes
}

func (r *Reconciler) reconcileOne(ctx context.Context, d Declaration, existing map[string]struct{}) Outcome {
	if _, ok := existing[d.Name]; ok {
		return Outcome{Declaration: d, Status: SkippedExists}
	}
	if !r.exists(d.ArtifactPath) {
		return Outcome{Declaration: d, Status: SkippedArtifactMissing}
	}
	if !r.exists(d.DefinitionPath) {
		return Outcome{Declaration: d, Status: SkippedDefinitionMissing}
	}
	if r.Progress != nil {
		r.Progress(d)
	}
	if err := r.creator.Create(ctx, d.Name, d.DefinitionPath); err != nil {
		return Outcome{Declaration: d, Status: Failed, Detail: err.Error()}
	}
	return Outcome{Declaration: d, Status: Created}
}

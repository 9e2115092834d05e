package rules

import (
	"fmt"

	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/config"
	"github.com/konvert-labs/retouch/internal/syntax"
)

// Transform is a reusable structural rewrite keyed to one node kind.
type Transform interface {
	// Kind is the node kind the transform understands.
	Kind() syntax.Kind

	// ApplicabilityRange returns the span the transform would rewrite, or
	// ok=false when it does not apply to the node.
	ApplicabilityRange(n *syntax.Node) (syntax.Span, bool)

	// Apply performs the rewrite. Only called when ApplicabilityRange
	// reported ok.
	Apply(n *syntax.Node)
}

type transformRule struct {
	name      string
	transform Transform
	extra     func(*syntax.Node) bool
}

// FromTransform lifts a structural transform into a Rule. The optional extra
// predicate further restricts applicability.
func FromTransform(name string, t Transform, extra func(*syntax.Node) bool) Rule {
	return &transformRule{name: name, transform: t, extra: extra}
}

func (r *transformRule) Name() string                    { return r.name }
func (r *transformRule) RequiresExclusiveMutation() bool { return true }

func (r *transformRule) CreateAction(el *syntax.Node, _ *analysis.Snapshot, _ *config.Settings) *Action {
	if el.Kind() != r.transform.Kind() {
		return nil
	}
	if r.extra != nil && !r.extra(el) {
		return nil
	}
	if _, ok := r.transform.ApplicabilityRange(el); !ok {
		return nil
	}
	return NewAction(el,
		func(n *syntax.Node) bool {
			_, ok := r.transform.ApplicabilityRange(n)
			return ok
		},
		r.transform.Apply)
}

// Inspection is a reusable semantic check keyed to one node kind, with a
// severity classification and an associated rewrite.
type Inspection interface {
	Kind() syntax.Kind
	Severity() analysis.Severity

	// IsApplicable reports whether the inspection flags the node, possibly
	// consulting the resolution capability.
	IsApplicable(n *syntax.Node, sema analysis.Checker) bool

	// Apply performs the associated rewrite.
	Apply(n *syntax.Node)
}

type inspectionRule struct {
	name                 string
	inspection           Inspection
	includeInformational bool
}

// FromInspection lifts an inspection into a Rule. Unless
// includeInformational is set, an inspection whose severity is purely
// informational never fires.
func FromInspection(name string, insp Inspection, includeInformational bool) Rule {
	return &inspectionRule{name: name, inspection: insp, includeInformational: includeInformational}
}

func (r *inspectionRule) Name() string                    { return r.name }
func (r *inspectionRule) RequiresExclusiveMutation() bool { return true }

func (r *inspectionRule) CreateAction(el *syntax.Node, snap *analysis.Snapshot, _ *config.Settings) *Action {
	if el.Kind() != r.inspection.Kind() {
		return nil
	}
	if !r.includeInformational && r.inspection.Severity() == analysis.SeverityInfo {
		return nil
	}
	if !r.inspection.IsApplicable(el, snap.Sema) {
		return nil
	}
	sema := snap.Sema
	return NewAction(el,
		func(n *syntax.Node) bool { return r.inspection.IsApplicable(n, sema) },
		r.inspection.Apply)
}

type diagnosticRule struct {
	name    string
	kinds   []analysis.DiagnosticKind
	fix     func(*syntax.Node, analysis.Diagnostic)
	factory func(*syntax.Node, analysis.Diagnostic, *analysis.Snapshot) func()
}

// ForDiagnostics builds a rule that fires on the first diagnostic attached
// to the element whose kind is in kinds and applies an unconditional fix.
func ForDiagnostics(name string, fix func(*syntax.Node, analysis.Diagnostic), kinds ...analysis.DiagnosticKind) Rule {
	if len(kinds) == 0 {
		panic(fmt.Sprintf("retouch: diagnostic rule %q registered without diagnostic kinds", name))
	}
	return &diagnosticRule{name: name, kinds: kinds, fix: fix}
}

// ForDiagnosticsFactory is the declining form of ForDiagnostics: the fix is
// computed from the element and the diagnostic and may itself return nil,
// e.g. when a needed symbol fails to resolve.
func ForDiagnosticsFactory(name string, factory func(*syntax.Node, analysis.Diagnostic, *analysis.Snapshot) func(), kinds ...analysis.DiagnosticKind) Rule {
	if len(kinds) == 0 {
		panic(fmt.Sprintf("retouch: diagnostic rule %q registered without diagnostic kinds", name))
	}
	return &diagnosticRule{name: name, kinds: kinds, factory: factory}
}

func (r *diagnosticRule) Name() string                    { return r.name }
func (r *diagnosticRule) RequiresExclusiveMutation() bool { return true }

// DiagnosticKinds exposes the kind set so the registry can enforce that
// each diagnostic kind has exactly one fix-producer.
func (r *diagnosticRule) DiagnosticKinds() []analysis.DiagnosticKind { return r.kinds }

func (r *diagnosticRule) CreateAction(el *syntax.Node, snap *analysis.Snapshot, _ *config.Settings) *Action {
	diag, ok := r.firstMatch(el, snap)
	if !ok {
		return nil
	}
	if r.factory != nil {
		commit := r.factory(el, diag, snap)
		if commit == nil {
			return nil
		}
		return NewAction(el, nil, func(*syntax.Node) { commit() })
	}
	return NewAction(el, nil, func(n *syntax.Node) { r.fix(n, diag) })
}

func (r *diagnosticRule) firstMatch(el *syntax.Node, snap *analysis.Snapshot) (analysis.Diagnostic, bool) {
	for _, d := range snap.ForElement(el) {
		for _, k := range r.kinds {
			if d.Kind == k {
				return d, true
			}
		}
	}
	return analysis.Diagnostic{}, false
}

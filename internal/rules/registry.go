package rules

import (
	"fmt"

	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/transforms"
)

// Registry is the ordered rule set of one process. The registration order
// is fixed at construction and encodes precedence: a rule's priority is its
// zero-based registration index. Registries are built once and reused
// across arbitrarily many translation units.
type Registry struct {
	processings []Rule
	priority    map[Rule]int
	claimed     map[analysis.DiagnosticKind]Rule
}

// NewRegistry builds a registry from the given rules in order. Registering
// the same rule instance twice, or two diagnostic-triggered rules claiming
// the same diagnostic kind, is a programmer error and panics.
func NewRegistry(processings ...Rule) *Registry {
	r := &Registry{
		priority: make(map[Rule]int, len(processings)),
		claimed:  make(map[analysis.DiagnosticKind]Rule),
	}
	for _, p := range processings {
		r.register(p)
	}
	return r
}

func (r *Registry) register(rule Rule) {
	if _, dup := r.priority[rule]; dup {
		panic(fmt.Sprintf("retouch: rule %q registered twice", rule.Name()))
	}
	if dt, ok := rule.(interface{ DiagnosticKinds() []analysis.DiagnosticKind }); ok {
		for _, k := range dt.DiagnosticKinds() {
			if prev, taken := r.claimed[k]; taken {
				panic(fmt.Sprintf("retouch: diagnostic %s claimed by both %q and %q",
					k, prev.Name(), rule.Name()))
			}
			r.claimed[k] = rule
		}
	}
	r.priority[rule] = len(r.processings)
	r.processings = append(r.processings, rule)
}

// Processings returns the rules in registration order. The returned slice
// must not be modified.
func (r *Registry) Processings() []Rule { return r.processings }

// Priority returns the registration index of the rule, or -1 for a rule
// this registry does not know.
func (r *Registry) Priority(rule Rule) int {
	p, ok := r.priority[rule]
	if !ok {
		return -1
	}
	return p
}

// DefaultRegistry builds the standard post-processing rule set. The order
// is deliberate: structural simplifications run before semantic
// inspections, which run before diagnostic-driven fixes, so that cheap
// cleanups do not act on text a later fix would rewrite anyway.
func DefaultRegistry() *Registry {
	return NewRegistry(
		FromTransform("remove-empty-class-body", transforms.EmptyClassBody{}, nil),
		FromInspection("redundant-semicolon", transforms.RedundantSemicolon{}, true),
		FromInspection("explicit-unit-return-type", transforms.ExplicitUnitReturnType{}, false),
		RemoveRedundantTypeArguments{},
		RemoveRedundantOverrideVisibility{},
		RemoveRedundantNullableCast{},
		FixTextConcatenation{},
		NewUninitializedSelfReference(),
		NewUnresolvedSelfReference(),
		ForDiagnostics("unnecessary-not-null-assertion",
			transforms.RemoveNotNullAssertion, analysis.UnnecessaryNotNullAssertion),
		NewMakeDeclarationMutable(),
	)
}

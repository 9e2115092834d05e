package analysis

import "github.com/konvert-labs/retouch/internal/syntax"

// Checker is the resolution capability a snapshot offers the rules. Every
// method degrades to ok=false when the element is unknown to the snapshot,
// which is also what happens naturally once a mutation has replaced the
// element: facts are keyed by node identity and go stale with it.
type Checker interface {
	// TypeOf returns the statically inferred type of an expression.
	TypeOf(expr *syntax.Node) (Type, bool)

	// Resolve returns the declaration a reference binds to.
	Resolve(ref *syntax.Node) (*syntax.Node, bool)

	// InheritedVisibility returns the visibility a member declaration
	// inherits from the member it overrides.
	InheritedVisibility(member *syntax.Node) (string, bool)

	// InferredTypeArguments returns the type arguments the checker would
	// infer for a call if none were written.
	InferredTypeArguments(call *syntax.Node) ([]Type, bool)
}

// Facts is the recorded-fact Checker the converter fills in while checking
// the translated tree.
type Facts struct {
	types       map[*syntax.Node]Type
	resolutions map[*syntax.Node]*syntax.Node
	inherited   map[*syntax.Node]string
	inferred    map[*syntax.Node][]Type
}

func NewFacts() *Facts {
	return &Facts{
		types:       make(map[*syntax.Node]Type),
		resolutions: make(map[*syntax.Node]*syntax.Node),
		inherited:   make(map[*syntax.Node]string),
		inferred:    make(map[*syntax.Node][]Type),
	}
}

func (f *Facts) RecordType(expr *syntax.Node, t Type)               { f.types[expr] = t }
func (f *Facts) RecordResolution(ref, decl *syntax.Node)            { f.resolutions[ref] = decl }
func (f *Facts) RecordInheritedVisibility(m *syntax.Node, v string) { f.inherited[m] = v }
func (f *Facts) RecordInferredTypeArguments(call *syntax.Node, ts []Type) {
	f.inferred[call] = ts
}

func (f *Facts) TypeOf(expr *syntax.Node) (Type, bool) {
	t, ok := f.types[expr]
	return t, ok
}

func (f *Facts) Resolve(ref *syntax.Node) (*syntax.Node, bool) {
	d, ok := f.resolutions[ref]
	return d, ok
}

func (f *Facts) InheritedVisibility(member *syntax.Node) (string, bool) {
	v, ok := f.inherited[member]
	return v, ok
}

func (f *Facts) InferredTypeArguments(call *syntax.Node) ([]Type, bool) {
	ts, ok := f.inferred[call]
	return ts, ok
}

// Snapshot bundles the diagnostics and the resolution capability of one
// analysis pass over the current tree. Rules receive it as their single
// window onto semantic state.
type Snapshot struct {
	Diags *Diagnostics
	Sema  Checker
}

func NewSnapshot(diags *Diagnostics, sema Checker) *Snapshot {
	if diags == nil {
		diags = NewDiagnostics()
	}
	if sema == nil {
		sema = NewFacts()
	}
	return &Snapshot{Diags: diags, Sema: sema}
}

// ForElement returns the diagnostics attached to the element.
func (s *Snapshot) ForElement(element *syntax.Node) []Diagnostic {
	return s.Diags.ForElement(element)
}

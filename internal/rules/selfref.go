package rules

import (
	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/config"
	"github.com/konvert-labs/retouch/internal/syntax"
)

// RebindSelfReference rewrites a name reference inside an anonymous object
// body that textually names the enclosing declaration currently being
// initialized by that very object expression. At evaluation time the object
// is its own initializer's receiver, so the reference becomes "this".
//
// Naive translation produces this artifact in two flavors, distinguished by
// the diagnostic the checker attaches to the reference.
type RebindSelfReference struct {
	name string
	kind analysis.DiagnosticKind
}

// NewUninitializedSelfReference handles the flavor where the checker flags
// the forward reference as reading an uninitialized variable.
func NewUninitializedSelfReference() *RebindSelfReference {
	return &RebindSelfReference{
		name: "uninitialized-self-reference",
		kind: analysis.UninitializedVariable,
	}
}

// NewUnresolvedSelfReference handles the flavor where the reference does
// not resolve at all inside the anonymous body.
func NewUnresolvedSelfReference() *RebindSelfReference {
	return &RebindSelfReference{
		name: "unresolved-self-reference",
		kind: analysis.UnresolvedReference,
	}
}

func (r *RebindSelfReference) Name() string                    { return r.name }
func (r *RebindSelfReference) RequiresExclusiveMutation() bool { return true }

func (r *RebindSelfReference) CreateAction(el *syntax.Node, snap *analysis.Snapshot, _ *config.Settings) *Action {
	if !r.applicable(el, snap) {
		return nil
	}
	return NewAction(el,
		func(n *syntax.Node) bool { return r.applicable(n, snap) },
		func(n *syntax.Node) { n.ReplaceWith(syntax.NewThis()) })
}

func (r *RebindSelfReference) applicable(n *syntax.Node, snap *analysis.Snapshot) bool {
	if n.Kind() != syntax.KindNameRef {
		return false
	}
	if !hasDiagnostic(snap, n, r.kind) {
		return false
	}
	obj := n.EnclosingOfKind(syntax.KindObjectLiteral)
	if obj == nil {
		return false
	}
	body := obj.Body()
	if body == nil || !body.Contains(n) {
		return false
	}
	decl := obj.EnclosingOfKind(syntax.KindVarDecl)
	return decl != nil && decl.Initializer() == obj && decl.Name() == n.Name()
}

package rules

import (
	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/config"
	"github.com/konvert-labs/retouch/internal/syntax"
)

// RemoveRedundantTypeArguments deletes an explicit type-argument list at a
// call site when every written argument is inferable. Platform types from
// the source language count as matching both nullable and non-nullable
// positions.
type RemoveRedundantTypeArguments struct{}

func (RemoveRedundantTypeArguments) Name() string                    { return "redundant-type-arguments" }
func (RemoveRedundantTypeArguments) RequiresExclusiveMutation() bool { return true }

func (r RemoveRedundantTypeArguments) CreateAction(el *syntax.Node, snap *analysis.Snapshot, settings *config.Settings) *Action {
	if settings != nil && settings.ExplicitTypeArguments {
		return nil
	}
	if !r.applicable(el, snap.Sema) {
		return nil
	}
	sema := snap.Sema
	return NewAction(el,
		func(n *syntax.Node) bool { return r.applicable(n, sema) },
		func(n *syntax.Node) { n.Detach() })
}

func (RemoveRedundantTypeArguments) applicable(n *syntax.Node, sema analysis.Checker) bool {
	if n.Kind() != syntax.KindTypeArgList {
		return false
	}
	call := n.Parent()
	if call == nil || call.Kind() != syntax.KindCall {
		return false
	}
	inferred, ok := sema.InferredTypeArguments(call)
	if !ok {
		return false
	}
	written := n.TypeArguments()
	if len(written) != len(inferred) {
		return false
	}
	for i, ref := range written {
		if !inferred[i].ConformsTo(writtenType(ref)) {
			return false
		}
	}
	return true
}

func writtenType(ref *syntax.Node) analysis.Type {
	nullability := analysis.NonNull
	if ref.Nullable() {
		nullability = analysis.Nullable
	}
	return analysis.Type{Name: ref.Name(), Nullability: nullability}
}

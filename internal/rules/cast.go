package rules

import (
	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/config"
	"github.com/konvert-labs/retouch/internal/syntax"
)

// RemoveRedundantNullableCast narrows the written target type of a cast
// when the operand's inferred type is already non-nullable: "e as Foo?"
// becomes "e as Foo".
type RemoveRedundantNullableCast struct{}

func (RemoveRedundantNullableCast) Name() string                    { return "redundant-nullable-cast" }
func (RemoveRedundantNullableCast) RequiresExclusiveMutation() bool { return true }

func (r RemoveRedundantNullableCast) CreateAction(el *syntax.Node, snap *analysis.Snapshot, _ *config.Settings) *Action {
	if !r.applicable(el, snap.Sema) {
		return nil
	}
	sema := snap.Sema
	return NewAction(el,
		func(n *syntax.Node) bool { return r.applicable(n, sema) },
		func(n *syntax.Node) { n.TargetType().SetNullable(false) })
}

func (RemoveRedundantNullableCast) applicable(n *syntax.Node, sema analysis.Checker) bool {
	if n.Kind() != syntax.KindCastExpr {
		return false
	}
	target := n.TargetType()
	if target == nil || !target.Nullable() {
		return false
	}
	operand := n.Operand()
	if operand == nil {
		return false
	}
	t, ok := sema.TypeOf(operand)
	return ok && t.Nullability == analysis.NonNull
}

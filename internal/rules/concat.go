package rules

import (
	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/config"
	"github.com/konvert-labs/retouch/internal/syntax"
)

// FixTextConcatenation repairs a "+" expression whose operator failed
// overload resolution because the left operand is not textual while the
// right one is, a frequent artifact of naive translation of string
// concatenation. The left operand gets an explicit toString() call.
type FixTextConcatenation struct{}

func (FixTextConcatenation) Name() string                    { return "string-concatenation-receiver" }
func (FixTextConcatenation) RequiresExclusiveMutation() bool { return true }

func (r FixTextConcatenation) CreateAction(el *syntax.Node, snap *analysis.Snapshot, _ *config.Settings) *Action {
	if !r.applicable(el, snap) {
		return nil
	}
	return NewAction(el,
		func(n *syntax.Node) bool { return r.applicable(n, snap) },
		func(n *syntax.Node) {
			left := n.Left()
			marker := syntax.NewToken("")
			left.ReplaceWith(marker)
			marker.ReplaceWith(syntax.NewMethodCall(left, "toString"))
		})
}

func (FixTextConcatenation) applicable(n *syntax.Node, snap *analysis.Snapshot) bool {
	if n.Kind() != syntax.KindBinaryExpr || n.Operator() != "+" {
		return false
	}
	if !hasDiagnostic(snap, n, analysis.UnresolvedReferenceWrongReceiver, analysis.NoApplicableOverload) {
		return false
	}
	right := n.Right()
	if right == nil {
		return false
	}
	t, ok := snap.Sema.TypeOf(right)
	return ok && t.IsText()
}

func hasDiagnostic(snap *analysis.Snapshot, el *syntax.Node, kinds ...analysis.DiagnosticKind) bool {
	for _, d := range snap.ForElement(el) {
		for _, k := range kinds {
			if d.Kind == k {
				return true
			}
		}
	}
	return false
}

// Package transforms holds the reusable tree capabilities shared with the
// converter: structural transforms, inspections, and diagnostic quick
// fixes. The rules package lifts them into post-processing rules.
package transforms

import (
	"strings"

	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/syntax"
)

// EmptyClassBody removes a class body containing nothing but whitespace,
// collapsing "object : Runnable { }" to "object : Runnable".
type EmptyClassBody struct{}

func (EmptyClassBody) Kind() syntax.Kind { return syntax.KindClassBody }

func (EmptyClassBody) ApplicabilityRange(n *syntax.Node) (syntax.Span, bool) {
	for _, c := range n.Children() {
		switch c.Kind() {
		case syntax.KindSpace:
		case syntax.KindToken:
			if t := c.Text(); t != "{" && t != "}" {
				return syntax.Span{}, false
			}
		default:
			return syntax.Span{}, false
		}
	}
	return n.Span(), true
}

func (EmptyClassBody) Apply(n *syntax.Node) {
	if prev := n.PrevSibling(); prev != nil && prev.Kind() == syntax.KindSpace {
		prev.Detach()
	}
	n.Detach()
}

// RedundantSemicolon flags a semicolon with nothing after it on its line.
// The target language does not need it; the converter emits one per source
// statement.
type RedundantSemicolon struct{}

func (RedundantSemicolon) Kind() syntax.Kind           { return syntax.KindSemicolon }
func (RedundantSemicolon) Severity() analysis.Severity { return analysis.SeverityInfo }

func (RedundantSemicolon) IsApplicable(n *syntax.Node, _ analysis.Checker) bool {
	next := n.NextSibling()
	if next == nil {
		return true
	}
	return next.Kind() == syntax.KindSpace && strings.Contains(next.Text(), "\n")
}

func (RedundantSemicolon) Apply(n *syntax.Node) { n.Detach() }

// ExplicitUnitReturnType removes a written ": Unit" return annotation from
// a member declaration.
type ExplicitUnitReturnType struct{}

func (ExplicitUnitReturnType) Kind() syntax.Kind           { return syntax.KindMemberDecl }
func (ExplicitUnitReturnType) Severity() analysis.Severity { return analysis.SeverityWarning }

func (ExplicitUnitReturnType) IsApplicable(n *syntax.Node, _ analysis.Checker) bool {
	ret := n.FirstChildOfKind(syntax.KindTypeRef)
	return ret != nil && ret.Name() == "Unit" && !ret.Nullable()
}

func (ExplicitUnitReturnType) Apply(n *syntax.Node) {
	ret := n.FirstChildOfKind(syntax.KindTypeRef)
	if ret == nil {
		return
	}
	for {
		prev := ret.PrevSibling()
		if prev == nil {
			break
		}
		if prev.Kind() == syntax.KindSpace {
			prev.Detach()
			continue
		}
		if prev.Kind() == syntax.KindToken && prev.Text() == ":" {
			prev.Detach()
		}
		break
	}
	ret.Detach()
}

// RemoveNotNullAssertion is the quick fix for an unnecessary-not-null
// assertion diagnostic: "x!!" becomes "x".
func RemoveNotNullAssertion(n *syntax.Node, _ analysis.Diagnostic) {
	if n.Kind() != syntax.KindPostfixExpr || n.Operator() != "!!" {
		return
	}
	operand := n.Operand()
	if operand == nil {
		return
	}
	n.ReplaceWith(operand)
}

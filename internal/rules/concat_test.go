package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/syntax"
)

func TestFixTextConcatenation(t *testing.T) {
	t.Parallel()

	rule := FixTextConcatenation{}

	build := func(diagKind analysis.DiagnosticKind, rightType analysis.Type) (*syntax.Node, *syntax.Node, *analysis.Snapshot) {
		expr := syntax.NewBinaryExpr(syntax.NewNameRef("obj"), "+", syntax.NewNameRef("suffix"))
		file := syntax.NewFile(expr)

		diags := analysis.NewDiagnostics()
		if diagKind != "" {
			diags.Add(diagKind, expr)
		}
		facts := analysis.NewFacts()
		facts.RecordType(expr.Right(), rightType)
		return file, expr, analysis.NewSnapshot(diags, facts)
	}

	textual := analysis.Type{Name: "String", Nullability: analysis.NonNull}

	t.Run("wrong receiver diagnostic wraps the left operand", func(t *testing.T) {
		t.Parallel()
		file, expr, snap := build(analysis.UnresolvedReferenceWrongReceiver, textual)

		action := rule.CreateAction(expr, snap, nil)
		require.NotNil(t, action)
		require.True(t, action.Invoke())
		assert.Equal(t, "obj.toString() + suffix", file.Text())
	})

	t.Run("overload diagnostic wraps the left operand", func(t *testing.T) {
		t.Parallel()
		file, expr, snap := build(analysis.NoApplicableOverload, textual)

		require.True(t, rule.CreateAction(expr, snap, nil).Invoke())
		assert.Equal(t, "obj.toString() + suffix", file.Text())
	})

	t.Run("no diagnostic means a resolvable operator", func(t *testing.T) {
		t.Parallel()
		_, expr, snap := build("", textual)
		assert.Nil(t, rule.CreateAction(expr, snap, nil))
	})

	t.Run("non-textual right operand", func(t *testing.T) {
		t.Parallel()
		_, expr, snap := build(analysis.NoApplicableOverload,
			analysis.Type{Name: "Int", Nullability: analysis.NonNull})
		assert.Nil(t, rule.CreateAction(expr, snap, nil))
	})

	t.Run("other operators are ignored", func(t *testing.T) {
		t.Parallel()
		expr := syntax.NewBinaryExpr(syntax.NewNameRef("a"), "-", syntax.NewNameRef("b"))
		syntax.NewFile(expr)
		diags := analysis.NewDiagnostics()
		diags.Add(analysis.NoApplicableOverload, expr)

		assert.Nil(t, rule.CreateAction(expr, analysis.NewSnapshot(diags, nil), nil))
	})
}

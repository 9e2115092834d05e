package transforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/syntax"
)

func TestEmptyClassBody(t *testing.T) {
	t.Parallel()

	tr := EmptyClassBody{}
	require.Equal(t, syntax.KindClassBody, tr.Kind())

	t.Run("whitespace-only body collapses", func(t *testing.T) {
		t.Parallel()
		body := syntax.NewClassBody(syntax.NewSpace(" "))
		obj := syntax.NewObjectLiteral("Runnable", body)
		file := syntax.NewFile(obj)
		require.Equal(t, "object : Runnable { }", file.Text())

		_, ok := tr.ApplicabilityRange(body)
		require.True(t, ok)
		tr.Apply(body)
		assert.Equal(t, "object : Runnable", file.Text())
	})

	t.Run("body with a member is kept", func(t *testing.T) {
		t.Parallel()
		body := syntax.NewClassBody(syntax.NewSpace(" "),
			syntax.NewMemberDecl(syntax.NewToken("fun"), syntax.NewSpace(" "),
				syntax.NewToken("run"), syntax.NewArgList()),
			syntax.NewSpace(" "))
		syntax.NewFile(syntax.NewObjectLiteral("Runnable", body))

		_, ok := tr.ApplicabilityRange(body)
		assert.False(t, ok)
	})
}

func TestRedundantSemicolon(t *testing.T) {
	t.Parallel()

	insp := RedundantSemicolon{}
	require.Equal(t, syntax.KindSemicolon, insp.Kind())
	require.Equal(t, analysis.SeverityInfo, insp.Severity())

	sema := analysis.NewFacts()

	t.Run("line-final semicolon is redundant", func(t *testing.T) {
		t.Parallel()
		semi := syntax.NewSemicolon()
		file := syntax.NewFile(
			syntax.NewVarDecl(false, "x", syntax.NewLiteral("1")),
			semi, syntax.NewSpace("\n"),
			syntax.NewVarDecl(false, "y", syntax.NewLiteral("2")))
		require.Equal(t, "val x = 1;\nval y = 2", file.Text())

		require.True(t, insp.IsApplicable(semi, sema))
		insp.Apply(semi)
		assert.Equal(t, "val x = 1\nval y = 2", file.Text())
	})

	t.Run("trailing semicolon at end of file", func(t *testing.T) {
		t.Parallel()
		semi := syntax.NewSemicolon()
		syntax.NewFile(syntax.NewVarDecl(false, "x", syntax.NewLiteral("1")), semi)
		assert.True(t, insp.IsApplicable(semi, sema))
	})

	t.Run("statement separator on one line stays", func(t *testing.T) {
		t.Parallel()
		semi := syntax.NewSemicolon()
		syntax.NewFile(
			syntax.NewVarDecl(false, "x", syntax.NewLiteral("1")),
			semi, syntax.NewSpace(" "),
			syntax.NewVarDecl(false, "y", syntax.NewLiteral("2")))
		assert.False(t, insp.IsApplicable(semi, sema))
	})
}

func TestExplicitUnitReturnType(t *testing.T) {
	t.Parallel()

	insp := ExplicitUnitReturnType{}
	require.Equal(t, syntax.KindMemberDecl, insp.Kind())
	require.Equal(t, analysis.SeverityWarning, insp.Severity())

	sema := analysis.NewFacts()

	build := func(typeName string, nullable bool) (*syntax.Node, *syntax.Node) {
		member := syntax.NewMemberDecl(
			syntax.NewToken("fun"), syntax.NewSpace(" "), syntax.NewToken("run"),
			syntax.NewArgList(),
			syntax.NewToken(":"), syntax.NewSpace(" "), syntax.NewTypeRef(typeName, nullable),
			syntax.NewSpace(" "),
			syntax.NewBlock(syntax.NewToken("{"), syntax.NewToken("}")))
		return syntax.NewFile(member), member
	}

	t.Run("unit annotation is removed", func(t *testing.T) {
		t.Parallel()
		file, member := build("Unit", false)
		require.Equal(t, "fun run(): Unit {}", file.Text())

		require.True(t, insp.IsApplicable(member, sema))
		insp.Apply(member)
		assert.Equal(t, "fun run() {}", file.Text())
	})

	t.Run("other return types are kept", func(t *testing.T) {
		t.Parallel()
		_, member := build("Int", false)
		assert.False(t, insp.IsApplicable(member, sema))
	})

	t.Run("nullable unit is kept", func(t *testing.T) {
		t.Parallel()
		_, member := build("Unit", true)
		assert.False(t, insp.IsApplicable(member, sema))
	})
}

func TestRemoveNotNullAssertion(t *testing.T) {
	t.Parallel()

	t.Run("assertion is unwrapped", func(t *testing.T) {
		t.Parallel()
		expr := syntax.NewPostfixExpr(syntax.NewNameRef("x"), "!!")
		call := syntax.NewCall(syntax.NewNameRef("print"), nil, syntax.NewArgList(expr))
		file := syntax.NewFile(call)
		require.Equal(t, "print(x!!)", file.Text())

		RemoveNotNullAssertion(expr, analysis.Diagnostic{})
		assert.Equal(t, "print(x)", file.Text())
	})

	t.Run("other nodes are untouched", func(t *testing.T) {
		t.Parallel()
		ref := syntax.NewNameRef("x")
		file := syntax.NewFile(ref)
		RemoveNotNullAssertion(ref, analysis.Diagnostic{})
		assert.Equal(t, "x", file.Text())
	})
}

package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listOfCall(withTypeArgs bool) *Node {
	var targs *Node
	if withTypeArgs {
		targs = NewTypeArgList(NewTypeRef("String", false))
	}
	return NewCall(NewNameRef("listOf"), targs, NewArgList(NewLiteral(`"a"`)))
}

func TestRenderRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "call with explicit type arguments",
			node: listOfCall(true),
			want: `listOf<String>("a")`,
		},
		{
			name: "call without type arguments",
			node: listOfCall(false),
			want: `listOf("a")`,
		},
		{
			name: "immutable declaration",
			node: NewVarDecl(false, "x", NewLiteral("1")),
			want: "val x = 1",
		},
		{
			name: "mutable declaration",
			node: NewVarDecl(true, "x", NewLiteral("1")),
			want: "var x = 1",
		},
		{
			name: "nullable cast",
			node: NewCastExpr(NewNameRef("e"), NewTypeRef("Foo", true)),
			want: "e as Foo?",
		},
		{
			name: "object literal with body",
			node: NewObjectLiteral("Runnable", NewClassBody(NewSpace(" "))),
			want: "object : Runnable { }",
		},
		{
			name: "binary concatenation",
			node: NewBinaryExpr(NewNameRef("a"), "+", NewNameRef("b")),
			want: "a + b",
		},
		{
			name: "not-null assertion",
			node: NewPostfixExpr(NewNameRef("x"), "!!"),
			want: "x!!",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.node.Text())
		})
	}
}

func TestFlagMutationsAffectOnlyTheirBytes(t *testing.T) {
	t.Parallel()

	decl := NewVarDecl(false, "count", NewLiteral("0"))
	require.Equal(t, "val count = 0", decl.Text())
	decl.SetMutable(true)
	require.Equal(t, "var count = 0", decl.Text())

	cast := NewCastExpr(NewNameRef("e"), NewTypeRef("Foo", true))
	require.Equal(t, "e as Foo?", cast.Text())
	cast.TargetType().SetNullable(false)
	require.Equal(t, "e as Foo", cast.Text())
}

func TestStructuralMutations(t *testing.T) {
	t.Parallel()

	t.Run("detach type argument list", func(t *testing.T) {
		t.Parallel()
		call := listOfCall(true)
		call.TypeArgs().Detach()
		require.Equal(t, `listOf("a")`, call.Text())
		require.Nil(t, call.TypeArgs())
	})

	t.Run("replace reference with this", func(t *testing.T) {
		t.Parallel()
		ref := NewNameRef("x")
		call := NewCall(ref, nil, NewArgList())
		ref.ReplaceWith(NewThis())
		require.Equal(t, "this()", call.Text())
		assert.Nil(t, ref.Parent())
	})

	t.Run("replace left operand with wrapped call", func(t *testing.T) {
		t.Parallel()
		left := NewNameRef("obj")
		expr := NewBinaryExpr(left, "+", NewNameRef("s"))
		wrapped := NewMethodCall(NewNameRef("obj"), "toString")
		left.ReplaceWith(wrapped)
		require.Equal(t, "obj.toString() + s", expr.Text())
		require.Same(t, wrapped, expr.Left())
	})

	t.Run("detached node mutations are no-ops", func(t *testing.T) {
		t.Parallel()
		lone := NewNameRef("x")
		lone.Detach()
		lone.ReplaceWith(NewThis())
		require.Nil(t, lone.Parent())
	})
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	ref := NewNameRef("x")
	body := NewClassBody(NewSpace(" "), ref, NewSpace(" "))
	obj := NewObjectLiteral("Runnable", body)
	decl := NewVarDecl(false, "x", obj)
	file := NewFile(decl)

	require.Same(t, file, ref.Root())
	require.Same(t, obj, ref.EnclosingOfKind(KindObjectLiteral))
	require.Same(t, decl, ref.EnclosingOfKind(KindVarDecl))
	assert.True(t, obj.Contains(ref))
	assert.False(t, ref.Contains(obj))
	require.Same(t, body, obj.Body())
	require.Same(t, obj, decl.Initializer())
}

func TestPrecedes(t *testing.T) {
	t.Parallel()

	first := NewVarDecl(false, "a", NewLiteral("1"))
	second := NewVarDecl(false, "b", NewLiteral("2"))
	file := NewFile(first, NewSpace("\n"), second)

	assert.True(t, first.Precedes(second))
	assert.False(t, second.Precedes(first))
	assert.False(t, first.Precedes(first))
	assert.True(t, file.Precedes(second), "ancestors precede descendants")

	other := NewFile(NewNameRef("x"))
	assert.False(t, first.Precedes(other.Children()[0]), "different trees are unordered")
}

func TestSpan(t *testing.T) {
	t.Parallel()

	call := listOfCall(true)
	file := NewFile(NewVarDecl(false, "xs", call))

	span := call.TypeArgs().Span()
	text := file.Text()
	require.Equal(t, "<String>", text[span.Start:span.End])
}

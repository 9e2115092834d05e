package syntax

import "strings"

// Kind discriminates every node variant the converter emits. The set is
// closed: the dump loader rejects anything else, and rules dispatch on the
// tag instead of probing node shapes.
type Kind uint8

const (
	KindFile Kind = iota
	KindBlock
	KindClassBody
	KindObjectLiteral
	KindVarDecl
	KindMemberDecl
	KindModifier
	KindCall
	KindTypeArgList
	KindArgList
	KindTypeRef
	KindNameRef
	KindThisExpr
	KindBinaryExpr
	KindCastExpr
	KindPostfixExpr
	KindLiteral
	KindToken
	KindSemicolon
	KindSpace
)

var kindNames = [...]string{
	KindFile:          "file",
	KindBlock:         "block",
	KindClassBody:     "class-body",
	KindObjectLiteral: "object-literal",
	KindVarDecl:       "var-decl",
	KindMemberDecl:    "member-decl",
	KindModifier:      "modifier",
	KindCall:          "call",
	KindTypeArgList:   "type-arg-list",
	KindArgList:       "arg-list",
	KindTypeRef:       "type-ref",
	KindNameRef:       "name-ref",
	KindThisExpr:      "this-expr",
	KindBinaryExpr:    "binary-expr",
	KindCastExpr:      "cast-expr",
	KindPostfixExpr:   "postfix-expr",
	KindLiteral:       "literal",
	KindToken:         "token",
	KindSemicolon:     "semicolon",
	KindSpace:         "space",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Span is a half-open byte range over the rendered text of a tree.
type Span struct {
	Start int
	End   int
}

// Node is one element of a translated syntax tree. Nodes are
// identity-addressed: two nodes are the same element iff they are the same
// pointer. Leaf nodes carry their text verbatim, so rendering a tree whose
// nodes were never touched reproduces the converter's output byte for byte.
type Node struct {
	kind     Kind
	parent   *Node
	children []*Node

	text     string // verbatim text of token/space/literal leaves
	name     string // identifier, operator, modifier or type name
	nullable bool   // type-ref only
	mutable  bool   // var-decl only
}

func (n *Node) Kind() Kind         { return n.kind }
func (n *Node) Parent() *Node      { return n.parent }
func (n *Node) Children() []*Node  { return n.children }
func (n *Node) Name() string       { return n.name }

// Nullable reports whether a type-ref is written with a nullable marker.
func (n *Node) Nullable() bool { return n.kind == KindTypeRef && n.nullable }

// SetNullable rewrites the nullable marker of a type-ref in place.
func (n *Node) SetNullable(nullable bool) {
	if n.kind == KindTypeRef {
		n.nullable = nullable
	}
}

// Mutable reports whether a var-decl is declared with the mutable keyword.
func (n *Node) Mutable() bool { return n.kind == KindVarDecl && n.mutable }

// SetMutable rewrites the mutability keyword of a var-decl in place.
func (n *Node) SetMutable(mutable bool) {
	if n.kind == KindVarDecl {
		n.mutable = mutable
	}
}

// Valid reports whether the node is still part of a file tree. A mutation
// that detaches or replaces an element leaves previously obtained
// references to it stale; Valid is how holders of such references find out.
func (n *Node) Valid() bool { return n.Root().kind == KindFile }

// Root walks to the top of the tree the node is currently attached to.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// EnclosingOfKind returns the nearest strict ancestor with the given kind.
func (n *Node) EnclosingOfKind(k Kind) *Node {
	for cur := n.parent; cur != nil; cur = cur.parent {
		if cur.kind == k {
			return cur
		}
	}
	return nil
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// FirstChildOfKind returns the first direct child with the given kind.
func (n *Node) FirstChildOfKind(k Kind) *Node {
	for _, c := range n.children {
		if c.kind == k {
			return c
		}
	}
	return nil
}

// ChildrenOfKind returns all direct children with the given kind.
func (n *Node) ChildrenOfKind(k Kind) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.kind == k {
			out = append(out, c)
		}
	}
	return out
}

// PrevSibling returns the node immediately before n in its parent, or nil.
func (n *Node) PrevSibling() *Node {
	if n.parent == nil {
		return nil
	}
	i := n.indexInParent()
	if i <= 0 {
		return nil
	}
	return n.parent.children[i-1]
}

// NextSibling returns the node immediately after n in its parent, or nil.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	i := n.indexInParent()
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

func (n *Node) indexInParent() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Precedes reports whether n starts before other in document order. Nodes in
// different trees are unordered and report false.
func (n *Node) Precedes(other *Node) bool {
	if n == other {
		return false
	}
	if n.Contains(other) {
		return true
	}
	if other.Contains(n) {
		return false
	}
	a, b := n.pathFromRoot(), other.pathFromRoot()
	if len(a) == 0 || len(b) == 0 || a[0] != b[0] {
		return false
	}
	for i := 1; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i].indexInParent() < b[i].indexInParent()
		}
	}
	return false
}

func (n *Node) pathFromRoot() []*Node {
	var path []*Node
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	// children are copied so fn may mutate the tree under the cursor
	kids := make([]*Node, len(n.children))
	copy(kids, n.children)
	for _, c := range kids {
		c.Walk(fn)
	}
}

// Text renders the node's subtree. Leaves render verbatim; the var-decl
// keyword and the type-ref nullable marker render from node state, so flag
// mutations change exactly the affected bytes.
func (n *Node) Text() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder) {
	switch n.kind {
	case KindToken, KindSpace, KindLiteral:
		sb.WriteString(n.text)
	case KindSemicolon:
		sb.WriteString(";")
	case KindNameRef, KindModifier:
		sb.WriteString(n.name)
	case KindThisExpr:
		sb.WriteString("this")
	case KindTypeRef:
		sb.WriteString(n.name)
		if n.nullable {
			sb.WriteString("?")
		}
	case KindVarDecl:
		if n.mutable {
			sb.WriteString("var")
		} else {
			sb.WriteString("val")
		}
		for _, c := range n.children {
			c.render(sb)
		}
	default:
		for _, c := range n.children {
			c.render(sb)
		}
	}
}

// Span locates the node's rendered text inside its root's rendering.
func (n *Node) Span() Span {
	root := n.Root()
	start, ok := offsetWithin(root, n, 0)
	if !ok {
		return Span{}
	}
	return Span{Start: start, End: start + len(n.Text())}
}

func offsetWithin(cur, target *Node, base int) (int, bool) {
	if cur == target {
		return base, true
	}
	if cur.kind == KindVarDecl {
		base += 3 // keyword
	}
	for _, c := range cur.children {
		if off, ok := offsetWithin(c, target, base); ok {
			return off, true
		}
		base += len(c.Text())
	}
	return 0, false
}

// ReplaceWith swaps n for repl in n's parent. Replacing a detached or root
// node is a no-op.
func (n *Node) ReplaceWith(repl *Node) {
	i := n.indexInParent()
	if i < 0 {
		return
	}
	repl.Detach()
	repl.parent = n.parent
	n.parent.children[i] = repl
	n.parent = nil
}

// Detach removes n from its parent, leaving it the root of its own subtree.
func (n *Node) Detach() {
	i := n.indexInParent()
	if i < 0 {
		return
	}
	p := n.parent
	p.children = append(p.children[:i], p.children[i+1:]...)
	n.parent = nil
}

// InsertAfter places sibling immediately after n in n's parent.
func (n *Node) InsertAfter(sibling *Node) {
	i := n.indexInParent()
	if i < 0 {
		return
	}
	sibling.Detach()
	sibling.parent = n.parent
	p := n.parent
	p.children = append(p.children[:i+1], append([]*Node{sibling}, p.children[i+1:]...)...)
}

// InsertBefore places sibling immediately before n in n's parent.
func (n *Node) InsertBefore(sibling *Node) {
	i := n.indexInParent()
	if i < 0 {
		return
	}
	sibling.Detach()
	sibling.parent = n.parent
	p := n.parent
	p.children = append(p.children[:i], append([]*Node{sibling}, p.children[i:]...)...)
}

// Append adds child as the last child of n.
func (n *Node) Append(child *Node) {
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
}

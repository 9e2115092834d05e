package syntax

// Constructors for every node variant. The converter's dump loader and the
// tests build trees through these so that punctuation and whitespace always
// exist as real leaves and rendering stays byte-faithful.

func newNode(kind Kind, children ...*Node) *Node {
	n := &Node{kind: kind}
	for _, c := range children {
		n.Append(c)
	}
	return n
}

// NodeData carries the payload of a node being rebuilt from a dump.
type NodeData struct {
	Name     string
	Text     string
	Nullable bool
	Mutable  bool
}

// NewNode builds a node of any kind from dump data. The shape constructors
// below are preferred for hand-built trees; dump loaders carry every leaf
// explicitly and go through this instead.
func NewNode(kind Kind, data NodeData, children ...*Node) *Node {
	n := &Node{
		kind:     kind,
		name:     data.Name,
		text:     data.Text,
		nullable: data.Nullable,
		mutable:  data.Mutable,
	}
	for _, c := range children {
		n.Append(c)
	}
	return n
}

// KindFromName maps a dump kind string back to its Kind. ok is false for
// anything outside the closed set.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

func NewFile(children ...*Node) *Node  { return newNode(KindFile, children...) }
func NewBlock(children ...*Node) *Node { return newNode(KindBlock, children...) }

// NewClassBody renders as "{" + members + "}". Whitespace inside the braces
// is supplied by the caller as Space nodes.
func NewClassBody(members ...*Node) *Node {
	n := newNode(KindClassBody, NewToken("{"))
	for _, m := range members {
		n.Append(m)
	}
	n.Append(NewToken("}"))
	return n
}

// NewObjectLiteral renders as "object : Super body".
func NewObjectLiteral(superName string, body *Node) *Node {
	return newNode(KindObjectLiteral,
		NewToken("object"), NewSpace(" "), NewToken(":"), NewSpace(" "),
		NewNameRef(superName), NewSpace(" "), body)
}

// NewVarDecl renders as "val name = init" or "var name = init"; the keyword
// comes from the mutable flag. A nil init yields a bare declaration.
func NewVarDecl(mutable bool, name string, init *Node) *Node {
	n := &Node{kind: KindVarDecl, name: name, mutable: mutable}
	n.Append(NewSpace(" "))
	n.Append(NewToken(name))
	if init != nil {
		n.Append(NewSpace(" "))
		n.Append(NewToken("="))
		n.Append(NewSpace(" "))
		n.Append(init)
	}
	return n
}

func NewMemberDecl(children ...*Node) *Node { return newNode(KindMemberDecl, children...) }

func NewModifier(keyword string) *Node { return &Node{kind: KindModifier, name: keyword} }

// NewCall renders as "callee<T, ...>(args)"; typeArgs may be nil.
func NewCall(callee, typeArgs, args *Node) *Node {
	n := newNode(KindCall, callee)
	if typeArgs != nil {
		n.Append(typeArgs)
	}
	if args != nil {
		n.Append(args)
	}
	return n
}

// NewMethodCall renders as "receiver.method()".
func NewMethodCall(receiver *Node, method string) *Node {
	return newNode(KindCall, receiver, NewToken("."), NewNameRef(method), NewArgList())
}

func NewTypeArgList(refs ...*Node) *Node {
	n := newNode(KindTypeArgList, NewToken("<"))
	for i, r := range refs {
		if i > 0 {
			n.Append(NewToken(","))
			n.Append(NewSpace(" "))
		}
		n.Append(r)
	}
	n.Append(NewToken(">"))
	return n
}

func NewArgList(exprs ...*Node) *Node {
	n := newNode(KindArgList, NewToken("("))
	for i, e := range exprs {
		if i > 0 {
			n.Append(NewToken(","))
			n.Append(NewSpace(" "))
		}
		n.Append(e)
	}
	n.Append(NewToken(")"))
	return n
}

func NewTypeRef(name string, nullable bool) *Node {
	return &Node{kind: KindTypeRef, name: name, nullable: nullable}
}

func NewNameRef(name string) *Node { return &Node{kind: KindNameRef, name: name} }
func NewThis() *Node               { return &Node{kind: KindThisExpr} }

// NewBinaryExpr renders as "left op right" with single spaces.
func NewBinaryExpr(left *Node, op string, right *Node) *Node {
	n := newNode(KindBinaryExpr, left, NewSpace(" "), NewToken(op), NewSpace(" "), right)
	n.name = op
	return n
}

// NewCastExpr renders as "expr as Target".
func NewCastExpr(expr, target *Node) *Node {
	return newNode(KindCastExpr, expr, NewSpace(" "), NewToken("as"), NewSpace(" "), target)
}

// NewPostfixExpr renders as "operand" + op, e.g. "x!!".
func NewPostfixExpr(operand *Node, op string) *Node {
	n := newNode(KindPostfixExpr, operand, NewToken(op))
	n.name = op
	return n
}

func NewLiteral(text string) *Node   { return &Node{kind: KindLiteral, text: text} }
func NewToken(text string) *Node     { return &Node{kind: KindToken, text: text} }
func NewSpace(text string) *Node     { return &Node{kind: KindSpace, text: text} }
func NewSemicolon() *Node            { return &Node{kind: KindSemicolon} }

// Operator returns the operator of a binary or postfix expression.
func (n *Node) Operator() string {
	if n.kind == KindBinaryExpr || n.kind == KindPostfixExpr {
		return n.name
	}
	return ""
}

// Left returns the left operand of a binary expression.
func (n *Node) Left() *Node {
	if n.kind != KindBinaryExpr || len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// Right returns the right operand of a binary expression.
func (n *Node) Right() *Node {
	if n.kind != KindBinaryExpr || len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// Operand returns the operand of a cast or postfix expression.
func (n *Node) Operand() *Node {
	if (n.kind != KindCastExpr && n.kind != KindPostfixExpr) || len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// TargetType returns the written target type of a cast expression.
func (n *Node) TargetType() *Node {
	if n.kind != KindCastExpr {
		return nil
	}
	return n.FirstChildOfKind(KindTypeRef)
}

// Callee returns the callee expression of a call.
func (n *Node) Callee() *Node {
	if n.kind != KindCall || len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// TypeArgs returns the explicit type-argument list of a call, if written.
func (n *Node) TypeArgs() *Node {
	if n.kind != KindCall {
		return nil
	}
	return n.FirstChildOfKind(KindTypeArgList)
}

// Args returns the value-argument list of a call.
func (n *Node) Args() *Node {
	if n.kind != KindCall {
		return nil
	}
	return n.FirstChildOfKind(KindArgList)
}

// TypeArguments returns the written type refs of a type-argument list.
func (n *Node) TypeArguments() []*Node {
	if n.kind != KindTypeArgList {
		return nil
	}
	return n.ChildrenOfKind(KindTypeRef)
}

// Initializer returns the initializer expression of a var-decl, or nil for a
// bare declaration.
func (n *Node) Initializer() *Node {
	if n.kind != KindVarDecl || len(n.children) == 0 {
		return nil
	}
	last := n.children[len(n.children)-1]
	if last.IsExpression() {
		return last
	}
	return nil
}

// Body returns the class body of an object literal.
func (n *Node) Body() *Node {
	if n.kind != KindObjectLiteral {
		return nil
	}
	return n.FirstChildOfKind(KindClassBody)
}

// ModifierNamed returns the direct modifier child with the given keyword.
func (n *Node) ModifierNamed(keyword string) *Node {
	for _, m := range n.ChildrenOfKind(KindModifier) {
		if m.name == keyword {
			return m
		}
	}
	return nil
}

// IsExpression reports whether the node is an expression variant.
func (n *Node) IsExpression() bool {
	switch n.kind {
	case KindCall, KindNameRef, KindThisExpr, KindBinaryExpr,
		KindCastExpr, KindPostfixExpr, KindLiteral, KindObjectLiteral:
		return true
	}
	return false
}

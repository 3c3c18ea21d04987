package parser

import "lucent/internal/lexer"

// Node is one syntax-tree element. The set of implementations is closed;
// every node exclusively owns its children, so the tree carries no sharing
// and no cycles.
type Node interface {
	node()
}

// String literal: "hello"
type String struct {
	Value string
}

// Number literal: 42
type Number struct {
	Value int64
}

// Float literal. No surface syntax produces one yet; the node exists so the
// tree can represent non-integer numbers once the scanner grows them.
type Float struct {
	Value float64
}

// Boolean literal: true, false
type Boolean struct {
	Value bool
}

// Ident is a variable reference: x
type Ident struct {
	Name string
}

// VariableAssignment: let x = expr, let mut x = expr, pub let x = expr
type VariableAssignment struct {
	Name    string
	Value   Node
	Mutable bool
	Public  bool
}

// DestructureProperty is one bound name in a destructuring declaration,
// with its effective mutability.
type DestructureProperty struct {
	Name    string
	Mutable bool
}

// VariableDestructureAssignment: let { a, mut b } = source. The right-hand
// side can only be a single identifier.
type VariableDestructureAssignment struct {
	Properties []DestructureProperty
	Value      Node
	Mutable    bool
}

// Binary expression: a + b. Op is the exact operator token, not a normalized
// operator kind, so later stages can tell % from * from /.
type Binary struct {
	Left  Node
	Right Node
	Op    lexer.Token
}

// Unary expression: !x, -x. Op is '!' or '-'.
type Unary struct {
	Operand Node
	Op      byte
}

// FunctionCall: foo(a, b)
type FunctionCall struct {
	Name      string
	Arguments []Node
}

// ImportStatement: from module import a, b
type ImportStatement struct {
	Names  []string
	Source string
}

func (*String) node()                        {}
func (*Number) node()                        {}
func (*Float) node()                         {}
func (*Boolean) node()                       {}
func (*Ident) node()                         {}
func (*VariableAssignment) node()            {}
func (*VariableDestructureAssignment) node() {}
func (*Binary) node()                        {}
func (*Unary) node()                         {}
func (*FunctionCall) node()                  {}
func (*ImportStatement) node()               {}

package ast

import (
	"bytes"

	"github.com/arnavsurve/intrus/internal/compiler/token"
)

// --- Interfaces ---
type Node interface {
	TokenLiteral() string
	String() string
	Accept(v Visitor) any
}

// Statement is a top-level program entry. A statement that fails to parse is
// a nil Statement and never reaches a Program.
type Statement interface {
	Node
	statementNode()
}

// Expression is closed: the unexported marker keeps every variant in this
// package, so a Visitor covers all of them.
type Expression interface {
	Node
	expressionNode()
}

// --- Program ---

// Program is the root of every parse: statements in source order.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// String for Program concatenates the string representations of its statements
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Accept(v Visitor) any { return v.VisitProgram(p) }

// --- Statements ---

// LetStatement -> let x = <expr>;
// Token is the `let` keyword, not the bound identifier, so TokenLiteral
// reports "let" and Token.Pos is the statement start. The name lives in Name.
// Value stays nil until expression parsing exists.
type LetStatement struct {
	Token token.Token // let
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal() }
func (ls *LetStatement) HasValue() bool       { return ls.Value != nil }
func (ls *LetStatement) Accept(v Visitor) any { return v.VisitLetStatement(ls) }
func (ls *LetStatement) String() string {
	var out bytes.Buffer
	out.WriteString(ls.TokenLiteral() + " ")
	if ls.Name != nil {
		out.WriteString(ls.Name.String())
	}
	if ls.Value != nil {
		out.WriteString(" = ")
		out.WriteString(ls.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ReturnStatement -> return <expr>;
// ReturnValue stays nil until expression parsing exists.
type ReturnStatement struct {
	Token       token.Token // return
	ReturnValue Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal() }
func (rs *ReturnStatement) HasValue() bool       { return rs.ReturnValue != nil }
func (rs *ReturnStatement) Accept(v Visitor) any { return v.VisitReturnStatement(rs) }
func (rs *ReturnStatement) String() string {
	var out bytes.Buffer
	out.WriteString(rs.TokenLiteral()) // "return"
	if rs.ReturnValue != nil {
		out.WriteString(" ")
		out.WriteString(rs.ReturnValue.String())
	}
	out.WriteString(";")
	return out.String()
}

// --- Expressions ---

type Identifier struct {
	Token token.Token // IDENT
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal() }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) Accept(v Visitor) any { return v.VisitIdentifier(i) }

// IntegerLiteral -> 21
type IntegerLiteral struct {
	Token token.Token
	Value uint64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal() }
func (il *IntegerLiteral) String() string       { return il.Token.Literal() }
func (il *IntegerLiteral) Accept(v Visitor) any { return v.VisitIntegerLiteral(il) }

// FloatLiteral -> 2.5
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Literal() }
func (fl *FloatLiteral) String() string       { return fl.Token.Literal() }
func (fl *FloatLiteral) Accept(v Visitor) any { return v.VisitFloatLiteral(fl) }

// BooleanLiteral -> true
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal() }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal() }
func (bl *BooleanLiteral) Accept(v Visitor) any { return v.VisitBooleanLiteral(bl) }

// BinaryExpression -> left <op> right
type BinaryExpression struct {
	Token    token.Token // operator token
	Left     Expression
	Operator Operator
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal() }
func (be *BinaryExpression) Accept(v Visitor) any { return v.VisitBinaryExpression(be) }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	if be.Left != nil {
		out.WriteString(be.Left.String())
	}
	out.WriteString(" " + be.Operator.String() + " ")
	if be.Right != nil {
		out.WriteString(be.Right.String())
	}
	out.WriteString(")")
	return out.String()
}

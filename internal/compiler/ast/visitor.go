package ast

// Visitor has one method per node type. Adding a node type adds a method
// here, so every visitor in the tree must handle it before it compiles.
type Visitor interface {
	VisitProgram(p *Program) any
	VisitLetStatement(s *LetStatement) any
	VisitReturnStatement(s *ReturnStatement) any

	VisitIdentifier(e *Identifier) any
	VisitIntegerLiteral(e *IntegerLiteral) any
	VisitFloatLiteral(e *FloatLiteral) any
	VisitBooleanLiteral(e *BooleanLiteral) any
	VisitBinaryExpression(e *BinaryExpression) any
}

// BaseVisitor returns nil for every node. Embed it in visitors that only
// care about a few node types.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(*Program) any                   { return nil }
func (BaseVisitor) VisitLetStatement(*LetStatement) any         { return nil }
func (BaseVisitor) VisitReturnStatement(*ReturnStatement) any   { return nil }
func (BaseVisitor) VisitIdentifier(*Identifier) any             { return nil }
func (BaseVisitor) VisitIntegerLiteral(*IntegerLiteral) any     { return nil }
func (BaseVisitor) VisitFloatLiteral(*FloatLiteral) any         { return nil }
func (BaseVisitor) VisitBooleanLiteral(*BooleanLiteral) any     { return nil }
func (BaseVisitor) VisitBinaryExpression(*BinaryExpression) any { return nil }

// Inspect traverses the tree rooted at node in source order, calling fn for
// each node. Children are skipped when fn returns false. Absent values
// (nil expressions) are not visited.
func Inspect(node Node, fn func(Node) bool) {
	if isNil(node) || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Inspect(s, fn)
		}
	case *LetStatement:
		if n.Name != nil {
			Inspect(n.Name, fn)
		}
		if n.Value != nil {
			Inspect(n.Value, fn)
		}
	case *ReturnStatement:
		if n.ReturnValue != nil {
			Inspect(n.ReturnValue, fn)
		}
	case *BinaryExpression:
		if n.Left != nil {
			Inspect(n.Left, fn)
		}
		if n.Right != nil {
			Inspect(n.Right, fn)
		}
	case *Identifier, *IntegerLiteral, *FloatLiteral, *BooleanLiteral:
		// leaves
	}
}

func isNil(node Node) bool {
	if node == nil {
		return true
	}
	switch n := node.(type) {
	case *Program:
		return n == nil
	case *LetStatement:
		return n == nil
	case *ReturnStatement:
		return n == nil
	case *Identifier:
		return n == nil
	case *IntegerLiteral:
		return n == nil
	case *FloatLiteral:
		return n == nil
	case *BooleanLiteral:
		return n == nil
	case *BinaryExpression:
		return n == nil
	}
	return false
}

package ast

import "github.com/arnavsurve/intrus/internal/compiler/token"

// Operator is a binary operator the lexer can produce.
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpRaise
	OpEqual
	OpUnequal
	OpLess
	OpGreater
)

var operators = [...]struct {
	kind     token.Kind
	spelling string
}{
	OpAdd:      {token.ADD, "+"},
	OpSubtract: {token.SUBTRACT, "-"},
	OpMultiply: {token.MULTIPLY, "*"},
	OpDivide:   {token.DIVIDE, "/"},
	OpModulo:   {token.MODULO, "%"},
	OpRaise:    {token.RAISE, "^"},
	OpEqual:    {token.EQUAL, "=="},
	OpUnequal:  {token.UNEQUAL, "!="},
	OpLess:     {token.LTHAN, "<"},
	OpGreater:  {token.GTHAN, ">"},
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operators) {
		return "?"
	}
	return operators[o].spelling
}

// OperatorFor maps an operator token kind to its binary operator.
func OperatorFor(kind token.Kind) (Operator, bool) {
	for op, info := range operators {
		if info.kind == kind {
			return Operator(op), true
		}
	}
	return 0, false
}

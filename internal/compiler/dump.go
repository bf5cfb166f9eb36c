package compiler

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/arnavsurve/intrus/internal/compiler/ast"
)

// Format selects how Dump renders a program.
type Format string

const (
	FormatText Format = "text" // canonical source
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatSpew Format = "spew" // raw Go structures
)

var formats = []Format{FormatText, FormatYAML, FormatJSON, FormatSpew}

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %v)", s, formats)
}

// NodeView is the serializable shape of an AST node.
type NodeView struct {
	Kind       string      `yaml:"kind" json:"kind"`
	Token      string      `yaml:"token,omitempty" json:"token,omitempty"`
	Pos        string      `yaml:"pos,omitempty" json:"pos,omitempty"`
	Name       string      `yaml:"name,omitempty" json:"name,omitempty"`
	Literal    string      `yaml:"literal,omitempty" json:"literal,omitempty"`
	Operator   string      `yaml:"operator,omitempty" json:"operator,omitempty"`
	Left       *NodeView   `yaml:"left,omitempty" json:"left,omitempty"`
	Right      *NodeView   `yaml:"right,omitempty" json:"right,omitempty"`
	Value      *NodeView   `yaml:"value,omitempty" json:"value,omitempty"`
	Statements []*NodeView `yaml:"statements,omitempty" json:"statements,omitempty"`
}

// View converts a node and its children into NodeViews.
func View(node ast.Node) *NodeView {
	if node == nil {
		return nil
	}
	v, _ := node.Accept(viewBuilder{}).(*NodeView)
	return v
}

type viewBuilder struct{}

func (b viewBuilder) expr(e ast.Expression) *NodeView {
	if e == nil {
		return nil
	}
	return View(e)
}

func (b viewBuilder) VisitProgram(p *ast.Program) any {
	v := &NodeView{Kind: "Program"}
	for _, s := range p.Statements {
		v.Statements = append(v.Statements, View(s))
	}
	return v
}

func (b viewBuilder) VisitLetStatement(s *ast.LetStatement) any {
	v := &NodeView{Kind: "Let", Token: s.TokenLiteral(), Pos: s.Token.Pos.String(), Value: b.expr(s.Value)}
	if s.Name != nil {
		v.Name = s.Name.Value
	}
	return v
}

func (b viewBuilder) VisitReturnStatement(s *ast.ReturnStatement) any {
	return &NodeView{Kind: "Return", Token: s.TokenLiteral(), Pos: s.Token.Pos.String(), Value: b.expr(s.ReturnValue)}
}

func (b viewBuilder) VisitIdentifier(e *ast.Identifier) any {
	return &NodeView{Kind: "Identifier", Pos: e.Token.Pos.String(), Name: e.Value}
}

func (b viewBuilder) VisitIntegerLiteral(e *ast.IntegerLiteral) any {
	return &NodeView{Kind: "Integer", Pos: e.Token.Pos.String(), Literal: e.TokenLiteral()}
}

func (b viewBuilder) VisitFloatLiteral(e *ast.FloatLiteral) any {
	return &NodeView{Kind: "Float", Pos: e.Token.Pos.String(), Literal: e.TokenLiteral()}
}

func (b viewBuilder) VisitBooleanLiteral(e *ast.BooleanLiteral) any {
	return &NodeView{Kind: "Boolean", Pos: e.Token.Pos.String(), Literal: e.TokenLiteral()}
}

func (b viewBuilder) VisitBinaryExpression(e *ast.BinaryExpression) any {
	return &NodeView{
		Kind:     "Binary",
		Pos:      e.Token.Pos.String(),
		Operator: e.Operator.String(),
		Left:     b.expr(e.Left),
		Right:    b.expr(e.Right),
	}
}

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Dump writes prog to w in the given format.
func Dump(w io.Writer, prog *ast.Program, format Format) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(w, prog.String())
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(View(prog)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(View(prog)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatSpew:
		spewConfig.Fdump(w, prog)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

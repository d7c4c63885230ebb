// Package ast is the syntax tree of the language: a Program is an ordered
// list of statements, and statements and expressions are closed sets of
// value types built once and never mutated.
//
// Every node renders itself through String into a canonical form in which
// each prefix and infix application carries its own parentheses.
package ast

import "fmt"

//go:generate sh -c "cd ../tool && go run . ../ast/ast.adt ../ast/nodes.go ast"

type Node interface {
	String() string
}

type Identifier struct {
	Name string
}

func NewID(name string) Identifier {
	return Identifier{Name: name}
}

type Operator int

const (
	Bang Operator = iota
	Plus
	Minus
	Multiplication
	Division
	GreaterThan
	LessThan
	Equals
	NotEquals
)

var operatorGlyphs = map[Operator]string{
	Bang:           "!",
	Plus:           "+",
	Minus:          "-",
	Multiplication: "*",
	Division:       "/",
	GreaterThan:    ">",
	LessThan:       "<",
	Equals:         "==",
	NotEquals:      "!=",
}

func (o Operator) String() string {
	if glyph, ok := operatorGlyphs[o]; ok {
		return glyph
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// ParseOperator is the inverse of Operator.String.
func ParseOperator(glyph string) (Operator, bool) {
	for op, g := range operatorGlyphs {
		if g == glyph {
			return op, true
		}
	}
	return 0, false
}

// Program is a whole parsed source file. It owns its statements; callers
// only get copies or single elements back.
type Program struct {
	statements []Statement
}

func NewProgram(statements []Statement) Program {
	return Program{statements: append([]Statement(nil), statements...)}
}

func (p Program) Len() int {
	return len(p.statements)
}

func (p Program) At(i int) Statement {
	return p.statements[i]
}

func (p Program) Statements() []Statement {
	return append([]Statement(nil), p.statements...)
}

func (p Program) Equal(other Program) bool {
	return Equal(Block(p.statements), Block(other.statements))
}

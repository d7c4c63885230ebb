package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func infix(left Expression, op Operator, right Expression) Infix {
	return Infix{Left: left, Operator: op, Right: right}
}

func ident(name string) Ident {
	return Ident(NewID(name))
}

func TestString(t *testing.T) {
	alternative := Block{Return{Value: IntLiteral(2)}}
	empty := Block{}

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "let",
			node: Let{Name: NewID("x"), Value: IntLiteral(5)},
			want: "let x = 5;",
		},
		{
			name: "infix",
			node: infix(IntLiteral(1), Plus, IntLiteral(2)),
			want: "(1 + 2)",
		},
		{
			name: "prefix",
			node: Prefix{Operator: Bang, Right: BooleanLiteral(true)},
			want: "(!true)",
		},
		{
			name: "if else",
			node: If{
				Condition:   ident("x"),
				Consequence: Block{Return{Value: IntLiteral(1)}},
				Alternative: &alternative,
			},
			want: "if x return 1; else return 2;",
		},
		{
			name: "call",
			node: Call{Function: ident("add"), Arguments: Arguments{IntLiteral(1), IntLiteral(2)}},
			want: "add(1, 2)",
		},
		{
			name: "function literal",
			node: FuncLiteral{
				Parameters: Parameters{ident("x"), ident("y")},
				Body:       Block{ExpressionStatement{Expression: infix(ident("x"), Plus, ident("y"))}},
			},
			want: "fn(x, y) { (x + y) }",
		},
		{
			name: "return",
			node: Return{Value: ident("y")},
			want: "return y;",
		},
		{
			name: "expression statement adds nothing",
			node: ExpressionStatement{Expression: IntLiteral(3)},
			want: "3",
		},
		{
			name: "if without else",
			node: If{Condition: BooleanLiteral(false), Consequence: Block{ExpressionStatement{Expression: IntLiteral(1)}}},
			want: "if false 1",
		},
		{
			name: "if with empty else",
			node: If{Condition: ident("c"), Consequence: Block{}, Alternative: &empty},
			want: "if c  else ",
		},
		{
			name: "nested infix keeps every paren",
			node: infix(IntLiteral(1), Plus, infix(IntLiteral(2), Multiplication, IntLiteral(3))),
			want: "(1 + (2 * 3))",
		},
		{
			name: "left nested infix",
			node: infix(infix(ident("a"), Minus, ident("b")), Minus, ident("c")),
			want: "((a - b) - c)",
		},
		{
			name: "prefix of prefix",
			node: Prefix{Operator: Minus, Right: Prefix{Operator: Minus, Right: IntLiteral(5)}},
			want: "(-(-5))",
		},
		{
			name: "negative literal",
			node: IntLiteral(-7),
			want: "-7",
		},
		{
			name: "call of call",
			node: Call{Function: Call{Function: ident("f"), Arguments: Arguments{IntLiteral(1)}}, Arguments: Arguments{IntLiteral(2)}},
			want: "f(1)(2)",
		},
		{
			name: "call of function literal",
			node: Call{
				Function:  FuncLiteral{Parameters: Parameters{ident("x")}, Body: Block{Return{Value: ident("x")}}},
				Arguments: Arguments{BooleanLiteral(false)},
			},
			want: "fn(x) { return x; }(false)",
		},
		{
			name: "call without arguments",
			node: Call{Function: ident("now")},
			want: "now()",
		},
		{
			name: "empty function",
			node: FuncLiteral{},
			want: "fn() {  }",
		},
		{
			name: "block joins statements",
			node: Block{
				Let{Name: NewID("a"), Value: IntLiteral(1)},
				ExpressionStatement{Expression: ident("a")},
				Return{Value: ident("a")},
			},
			want: "let a = 1;; a; return a;",
		},
		{
			name: "comparison",
			node: infix(infix(ident("a"), LessThan, ident("b")), NotEquals, infix(ident("c"), GreaterThan, ident("d"))),
			want: "((a < b) != (c > d))",
		},
		{
			name: "missing operand renders empty",
			node: Prefix{Operator: Bang},
			want: "(!)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestOperatorString(t *testing.T) {
	tests := []struct {
		op   Operator
		want string
	}{
		{Bang, "!"},
		{Plus, "+"},
		{Minus, "-"},
		{Multiplication, "*"},
		{Division, "/"},
		{GreaterThan, ">"},
		{LessThan, "<"},
		{Equals, "=="},
		{NotEquals, "!="},
		{Operator(42), "Operator(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}

func TestParseOperator(t *testing.T) {
	for op := Bang; op <= NotEquals; op++ {
		got, ok := ParseOperator(op.String())
		assert.True(t, ok, op.String())
		assert.Equal(t, op, got)
	}

	_, ok := ParseOperator("=")
	assert.False(t, ok)
	_, ok = ParseOperator("")
	assert.False(t, ok)
}

func TestStringIsDeterministic(t *testing.T) {
	alternative := Block{ExpressionStatement{Expression: Call{Function: ident("g"), Arguments: Arguments{ident("x")}}}}
	expr := If{
		Condition:   infix(ident("x"), Equals, IntLiteral(0)),
		Consequence: Block{Let{Name: NewID("y"), Value: Prefix{Operator: Minus, Right: ident("x")}}},
		Alternative: &alternative,
	}

	first := expr.String()
	assert.Equal(t, first, expr.String())
	assert.Equal(t, "if (x == 0) let y = (-x); else g(x)", first)
}

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func str(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}

func (i Identifier) String() string {
	return i.Name
}

func (v Let) String() string {
	return fmt.Sprintf("let %s = %s;", v.Name, str(v.Value))
}

func (v Return) String() string {
	return fmt.Sprintf("return %s;", str(v.Value))
}

func (v ExpressionStatement) String() string {
	return str(v.Expression)
}

func (v Ident) String() string {
	return v.Name
}

func (v IntLiteral) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v BooleanLiteral) String() string {
	return strconv.FormatBool(bool(v))
}

func (v Prefix) String() string {
	return fmt.Sprintf("(%s%s)", v.Operator, str(v.Right))
}

func (v Infix) String() string {
	return fmt.Sprintf("(%s %s %s)", str(v.Left), v.Operator, str(v.Right))
}

func (v If) String() string {
	s := fmt.Sprintf("if %s %s", str(v.Condition), v.Consequence)
	if v.Alternative != nil {
		s += fmt.Sprintf(" else %s", *v.Alternative)
	}
	return s
}

func (v FuncLiteral) String() string {
	return fmt.Sprintf("fn(%s) { %s }", v.Parameters, v.Body)
}

func (v Call) String() string {
	return fmt.Sprintf("%s(%s)", str(v.Function), v.Arguments)
}

func (b Block) String() string {
	parts := make([]string, 0, len(b))
	for _, stmt := range b {
		parts = append(parts, str(stmt))
	}
	return strings.Join(parts, "; ")
}

func (p Parameters) String() string {
	return joinExpressions(p)
}

func (a Arguments) String() string {
	return joinExpressions(a)
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		parts = append(parts, str(expr))
	}
	return strings.Join(parts, ", ")
}

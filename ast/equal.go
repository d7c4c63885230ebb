package ast

// Equal reports whether a and b are the same tree: same variants, same
// literal values, same children in the same order. Nodes of unknown types
// are never equal.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case Identifier:
		y, ok := b.(Identifier)
		return ok && x == y
	case Operator:
		y, ok := b.(Operator)
		return ok && x == y

	case Let:
		y, ok := b.(Let)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value)
	case Return:
		y, ok := b.(Return)
		return ok && Equal(x.Value, y.Value)
	case ExpressionStatement:
		y, ok := b.(ExpressionStatement)
		return ok && Equal(x.Expression, y.Expression)

	case Ident:
		y, ok := b.(Ident)
		return ok && x == y
	case IntLiteral:
		y, ok := b.(IntLiteral)
		return ok && x == y
	case BooleanLiteral:
		y, ok := b.(BooleanLiteral)
		return ok && x == y
	case Prefix:
		y, ok := b.(Prefix)
		return ok && x.Operator == y.Operator && Equal(x.Right, y.Right)
	case Infix:
		y, ok := b.(Infix)
		return ok && x.Operator == y.Operator &&
			Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case If:
		y, ok := b.(If)
		if !ok || !Equal(x.Condition, y.Condition) || !Equal(x.Consequence, y.Consequence) {
			return false
		}
		if x.Alternative == nil || y.Alternative == nil {
			return x.Alternative == nil && y.Alternative == nil
		}
		return Equal(*x.Alternative, *y.Alternative)
	case FuncLiteral:
		y, ok := b.(FuncLiteral)
		return ok && Equal(x.Parameters, y.Parameters) && Equal(x.Body, y.Body)
	case Call:
		y, ok := b.(Call)
		return ok && Equal(x.Function, y.Function) && Equal(x.Arguments, y.Arguments)

	case Block:
		y, ok := b.(Block)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Parameters:
		y, ok := b.(Parameters)
		return ok && expressionsEqual(x, y)
	case Arguments:
		y, ok := b.(Arguments)
		return ok && expressionsEqual(x, y)
	}

	return false
}

func expressionsEqual(a, b []Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

package document

import (
	"fmt"

	"github.com/pontaoski/monkeyast/ast"
	"github.com/pontaoski/monkeyast/errors"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

// Encode writes p in the form Decode reads.
func Encode(p ast.Program) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	data, merr := yaml.Marshal(encodeStatements(p.Statements(), errors.Path{}))
	if merr != nil {
		return nil, tracerr.Wrap(merr)
	}
	return data, nil
}

func one(key string, value interface{}) yaml.MapSlice {
	return yaml.MapSlice{{Key: key, Value: value}}
}

func encodeStatements(statements []ast.Statement, at errors.Path) []interface{} {
	out := make([]interface{}, 0, len(statements))
	for i, stmt := range statements {
		out = append(out, encodeStatement(stmt, at.Index(i)))
	}
	return out
}

func encodeStatement(stmt ast.Statement, at errors.Path) interface{} {
	switch v := stmt.(type) {
	case ast.Let:
		return one("let", yaml.MapSlice{
			{Key: "name", Value: v.Name.Name},
			{Key: "value", Value: encodeExpression(v.Value, at.Key("let").Key("value"))},
		})
	case ast.Return:
		return one("return", encodeExpression(v.Value, at.Key("return")))
	case ast.ExpressionStatement:
		return one("expression", encodeExpression(v.Expression, at.Key("expression")))
	}

	panic(errors.UnknownNode{
		Category: "statement",
		Name:     fmt.Sprintf("%T", stmt),
		Location: at,
	})
}

func encodeExpression(expr ast.Expression, at errors.Path) interface{} {
	switch v := expr.(type) {
	case ast.Ident:
		return one("ident", v.Name)
	case ast.IntLiteral:
		return one("int", int64(v))
	case ast.BooleanLiteral:
		return one("bool", bool(v))
	case ast.Prefix:
		here := at.Key("prefix")
		return one("prefix", yaml.MapSlice{
			{Key: "operator", Value: v.Operator.String()},
			{Key: "right", Value: encodeExpression(v.Right, here.Key("right"))},
		})
	case ast.Infix:
		here := at.Key("infix")
		return one("infix", yaml.MapSlice{
			{Key: "left", Value: encodeExpression(v.Left, here.Key("left"))},
			{Key: "operator", Value: v.Operator.String()},
			{Key: "right", Value: encodeExpression(v.Right, here.Key("right"))},
		})
	case ast.If:
		here := at.Key("if")
		m := yaml.MapSlice{
			{Key: "condition", Value: encodeExpression(v.Condition, here.Key("condition"))},
			{Key: "consequence", Value: encodeStatements(v.Consequence, here.Key("consequence"))},
		}
		if v.Alternative != nil {
			m = append(m, yaml.MapItem{Key: "alternative", Value: encodeStatements(*v.Alternative, here.Key("alternative"))})
		}
		return one("if", m)
	case ast.FuncLiteral:
		here := at.Key("fn")
		return one("fn", yaml.MapSlice{
			{Key: "parameters", Value: encodeExpressions(v.Parameters, here.Key("parameters"))},
			{Key: "body", Value: encodeStatements(v.Body, here.Key("body"))},
		})
	case ast.Call:
		here := at.Key("call")
		return one("call", yaml.MapSlice{
			{Key: "function", Value: encodeExpression(v.Function, here.Key("function"))},
			{Key: "arguments", Value: encodeExpressions(v.Arguments, here.Key("arguments"))},
		})
	}

	panic(errors.UnknownNode{
		Category: "expression",
		Name:     fmt.Sprintf("%T", expr),
		Location: at,
	})
}

func encodeExpressions(exprs []ast.Expression, at errors.Path) []interface{} {
	out := make([]interface{}, 0, len(exprs))
	for i, expr := range exprs {
		out = append(out, encodeExpression(expr, at.Index(i)))
	}
	return out
}

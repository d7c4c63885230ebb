// Package document reads and writes ASTs as YAML documents.
//
// A document is a sequence of statements. Every statement and every
// non-scalar expression is a mapping with a single key naming its variant:
//
//	- let:
//	    name: add
//	    value:
//	      fn:
//	        parameters: [{ident: x}, {ident: "y"}]
//	        body:
//	          - expression: {infix: {left: {ident: x}, operator: "+", right: {ident: "y"}}}
//	- expression:
//	    call: {function: {ident: add}, arguments: [{int: 1}, {int: 2}]}
//
// An if expression without an alternative key has no else branch. Names
// that YAML reads as booleans (y, n, yes, no, on, off) have to be quoted.
package document

import (
	"math"

	"github.com/pontaoski/monkeyast/ast"
	"github.com/pontaoski/monkeyast/errors"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

func Decode(data []byte) (p ast.Program, err error) {
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

	var doc interface{}
	if uerr := yaml.Unmarshal(data, &doc); uerr != nil {
		return ast.Program{}, tracerr.Wrap(uerr)
	}

	return ast.NewProgram(decodeStatements(doc, errors.Path{})), nil
}

func decodeStatements(v interface{}, at errors.Path) []ast.Statement {
	var statements []ast.Statement
	for i, item := range sequence(v, at) {
		statements = append(statements, decodeStatement(item, at.Index(i)))
	}
	return statements
}

func decodeStatement(v interface{}, at errors.Path) ast.Statement {
	kind, body := single(v, at)
	here := at.Key(kind)

	switch kind {
	case "let":
		m := record(body, here)
		return ast.Let{
			Name:  ast.NewID(str(field(m, "name", here), here.Key("name"))),
			Value: decodeExpression(field(m, "value", here), here.Key("value")),
		}
	case "return":
		return ast.Return{Value: decodeExpression(body, here)}
	case "expression":
		return ast.ExpressionStatement{Expression: decodeExpression(body, here)}
	}

	panic(errors.UnknownNode{
		Category: "statement",
		Name:     kind,
		Location: at,
	})
}

func decodeExpression(v interface{}, at errors.Path) ast.Expression {
	kind, body := single(v, at)
	here := at.Key(kind)

	switch kind {
	case "ident":
		return ast.Ident(ast.NewID(str(body, here)))
	case "int":
		return ast.IntLiteral(integer(body, here))
	case "bool":
		b, ok := body.(bool)
		if !ok {
			panic(errors.UnexpectedValue{Expected: "a boolean", Got: body, Location: here})
		}
		return ast.BooleanLiteral(b)
	case "prefix":
		m := record(body, here)
		return ast.Prefix{
			Operator: operator(field(m, "operator", here), here.Key("operator")),
			Right:    decodeExpression(field(m, "right", here), here.Key("right")),
		}
	case "infix":
		m := record(body, here)
		return ast.Infix{
			Left:     decodeExpression(field(m, "left", here), here.Key("left")),
			Operator: operator(field(m, "operator", here), here.Key("operator")),
			Right:    decodeExpression(field(m, "right", here), here.Key("right")),
		}
	case "if":
		m := record(body, here)
		expr := ast.If{
			Condition:   decodeExpression(field(m, "condition", here), here.Key("condition")),
			Consequence: ast.Block(decodeStatements(m["consequence"], here.Key("consequence"))),
		}
		if alt, ok := m["alternative"]; ok {
			block := ast.Block(decodeStatements(alt, here.Key("alternative")))
			expr.Alternative = &block
		}
		return expr
	case "fn":
		m := record(body, here)
		return ast.FuncLiteral{
			Parameters: ast.Parameters(decodeExpressions(m["parameters"], here.Key("parameters"))),
			Body:       ast.Block(decodeStatements(m["body"], here.Key("body"))),
		}
	case "call":
		m := record(body, here)
		return ast.Call{
			Function:  decodeExpression(field(m, "function", here), here.Key("function")),
			Arguments: ast.Arguments(decodeExpressions(m["arguments"], here.Key("arguments"))),
		}
	}

	panic(errors.UnknownNode{
		Category: "expression",
		Name:     kind,
		Location: at,
	})
}

func decodeExpressions(v interface{}, at errors.Path) []ast.Expression {
	var exprs []ast.Expression
	for i, item := range sequence(v, at) {
		exprs = append(exprs, decodeExpression(item, at.Index(i)))
	}
	return exprs
}

// sequence treats a missing value as an empty sequence.
func sequence(v interface{}, at errors.Path) []interface{} {
	if v == nil {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		panic(errors.UnexpectedValue{Expected: "a sequence", Got: v, Location: at})
	}
	return items
}

func record(v interface{}, at errors.Path) map[string]interface{} {
	raw, ok := v.(map[interface{}]interface{})
	if !ok {
		panic(errors.UnexpectedValue{Expected: "a mapping", Got: v, Location: at})
	}

	m := make(map[string]interface{}, len(raw))
	for k, value := range raw {
		key, ok := k.(string)
		if !ok {
			panic(errors.UnexpectedValue{Expected: "a string key", Got: k, Location: at})
		}
		m[key] = value
	}
	return m
}

func single(v interface{}, at errors.Path) (string, interface{}) {
	m := record(v, at)
	if len(m) != 1 {
		panic(errors.UnexpectedValue{Expected: "a mapping with a single key", Got: v, Location: at})
	}
	for k, value := range m {
		return k, value
	}
	panic("unreachable")
}

func field(m map[string]interface{}, name string, at errors.Path) interface{} {
	v, ok := m[name]
	if !ok {
		panic(errors.MissingField{Field: name, Location: at})
	}
	return v
}

func str(v interface{}, at errors.Path) string {
	s, ok := v.(string)
	if _, isBool := v.(bool); isBool {
		panic(errors.UnexpectedValue{Expected: "a quoted string", Got: v, Location: at})
	}
	if !ok {
		panic(errors.UnexpectedValue{Expected: "a string", Got: v, Location: at})
	}
	return s
}

func integer(v interface{}, at errors.Path) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n)
		}
	}
	panic(errors.UnexpectedValue{Expected: "a 64-bit integer", Got: v, Location: at})
}

func operator(v interface{}, at errors.Path) ast.Operator {
	glyph := str(v, at)
	op, ok := ast.ParseOperator(glyph)
	if !ok {
		panic(errors.UnknownOperator{Glyph: glyph, Location: at})
	}
	return op
}

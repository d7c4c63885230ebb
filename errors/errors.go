package errors

import (
	"fmt"
	"strings"
)

// Path locates a node inside an AST document, e.g. $[0].let.value.
type Path []string

func (p Path) String() string {
	return "$" + strings.Join(p, "")
}

func (p Path) Index(i int) Path {
	return p.with(fmt.Sprintf("[%d]", i))
}

func (p Path) Key(k string) Path {
	return p.with("." + k)
}

func (p Path) with(elem string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, elem)
}

type UnknownNode struct {
	Category string
	Name     string
	Location Path
}

func (e UnknownNode) Error() string {
	return fmt.Sprintf("unknown %s %q. %s", e.Category, e.Name, e.Location)
}

type MissingField struct {
	Field    string
	Location Path
}

func (e MissingField) Error() string {
	return fmt.Sprintf("missing field %s. %s", e.Field, e.Location)
}

type UnexpectedValue struct {
	Expected string
	Got      interface{}
	Location Path
}

func (e UnexpectedValue) Error() string {
	return fmt.Sprintf("got %#v (%T), expected %s. %s", e.Got, e.Got, e.Expected, e.Location)
}

type UnknownOperator struct {
	Glyph    string
	Location Path
}

func (e UnknownOperator) Error() string {
	return fmt.Sprintf("unknown operator %q. %s", e.Glyph, e.Location)
}

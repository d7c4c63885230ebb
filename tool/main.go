package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type TypeDecls struct {
	Declarations []*Declaration `@@*`
}

type Field struct {
	Name    string `@Ident`
	Pointer bool   `@"*"?`
	Kind    string `@Ident ";"`
}

type TCase struct {
	Name   string   `"|" @Ident "of"`
	Record []*Field `( "{" @@* "}"`
	Kind   string   ` | @Ident | @String | @RawString)`
}

type Declaration struct {
	Name       string   `"type" @Ident`
	Implements string   `("implements" @Ident)? "="?`
	Plain      *string  `(  (@Ident | @String | @RawString)`
	Many       *[]TCase ` | (@@)+)`
	I          struct{} `";"`
}

func (t *TypeDecls) IsSumType(name string) bool {
	for _, decls := range t.Declarations {
		if decls.Name == name && decls.Many != nil {
			return true
		}
	}
	return false
}

func fieldType(f *Field) Code {
	if f.Pointer {
		return Op("*").Id(f.Kind)
	}
	return Id(f.Kind)
}

func GenerateDecls(pkgname, source string, t *TypeDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment(fmt.Sprintf("Code generated by adtgen from %s. DO NOT EDIT.", source))

	for _, decl := range t.Declarations {

		if decl.Plain != nil {
			f.Type().Id(decl.Name).Id(*decl.Plain)
		} else if decl.Many != nil {
			var methods []Code
			if decl.Implements != "" {
				methods = append(methods, Id(decl.Implements))
			}
			methods = append(methods, Id("is_"+decl.Name).Params())
			f.Type().Id(decl.Name).Interface(methods...)

			for _, it := range *decl.Many {
				switch {
				case it.Record != nil:
					var fields []Code
					for _, field := range it.Record {
						fields = append(fields, Id(field.Name).Add(fieldType(field)))
					}
					f.Type().Id(it.Name).Struct(fields...)
				case t.IsSumType(it.Kind):
					f.Type().Id(it.Name).Struct(Id(it.Kind))
				default:
					f.Type().Id(it.Name).Id(it.Kind)
				}

				f.Func().Params(Id("v").Id(it.Name)).Id("is_" + decl.Name).Params().Block()
			}
		}
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	parser := participle.MustBuild(&TypeDecls{})

	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: adtgen IN OUT PACKAGE")
		os.Exit(2)
	}

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	ast := TypeDecls{}
	err = parser.ParseBytes(inData, &ast)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateDecls(pkgname, filepath.Base(in), &ast)), 0o644)
	if err != nil {
		panic(err)
	}
}

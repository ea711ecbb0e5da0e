package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"strings"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type File struct {
	Package string    `"package" @Ident`
	Imports []*Import `@@*`
	Sums    []*Sum    `@@*`
}

type Import struct {
	Path string `"import" @String`
}

type Sum struct {
	Name     string     `"sum" @Ident "{"`
	Variants []*Variant `@@* "}"`
}

type Variant struct {
	Name   string   `@Ident "("`
	Fields []*Field `( @@ ( "," @@ )* )? ")"`
}

type Field struct {
	Name  string `@Ident`
	Slice bool   `@( "[" "]" )?`
	Ptr   bool   `@"*"?`
	Pkg   string `( @Ident "." )?`
	Kind  string `@Ident`
}

var parser = participle.MustBuild(&File{}, participle.UseLookahead(2))

func Parse(data []byte) (*File, error) {
	file := &File{}
	if err := parser.ParseBytes(data, file); err != nil {
		return nil, err
	}
	return file, nil
}

func fieldType(imports map[string]string, field *Field) *Statement {
	s := &Statement{}
	if field.Slice {
		s = s.Index()
	}
	if field.Ptr {
		s = s.Op("*")
	}
	if field.Pkg != "" {
		return s.Qual(imports[field.Pkg], field.Kind)
	}
	return s.Id(field.Kind)
}

// Generate renders every sum as an interface with an unexported marker
// method, and every variant as a struct whose pointer implements it.
func Generate(decls *File) string {
	f := NewFile(decls.Package)
	f.HeaderComment("Code generated by adtGen. DO NOT EDIT.")

	imports := map[string]string{}
	for _, imp := range decls.Imports {
		p := strings.Trim(imp.Path, "\"`")
		imports[path.Base(p)] = p
	}

	for _, sum := range decls.Sums {
		marker := "is" + sum.Name
		f.Type().Id(sum.Name).Interface(
			Id(marker).Params(),
		)

		for _, variant := range sum.Variants {
			fields := variant.Fields
			f.Type().Id(variant.Name).StructFunc(func(g *Group) {
				for _, field := range fields {
					g.Id(field.Name).Add(fieldType(imports, field))
				}
			})
			f.Func().Params(Op("*").Id(variant.Name)).Id(marker).Params().Block()
		}
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: adtGen <input.def> <output.go>")
		os.Exit(2)
	}
	in := os.Args[1]
	out := os.Args[2]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	decls, err := Parse(inData)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(Generate(decls)), 0644)
	if err != nil {
		panic(err)
	}
}

// Command mdffi-gen writes the exported option setters of libmdffi, one C
// function per option field:
//
//	mdffi_set_<category>_option_<field>
//
// It is run through go generate from cmd/libmdffi.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"github.com/yhilem-ai/mdffi"
)

const symbolPrefix = "mdffi_"

//go:embed setters.go.tmpl
var settersTemplate string

var tmpl = template.Must(template.New("setters").Parse(settersTemplate))

// setter is the template view of one field.
type setter struct {
	Symbol   string
	Var      string
	Category string
	Name     string
	Path     string
	Kind     string
}

type view struct {
	Setters []setter
	HasText bool
}

func main() {
	out := flag.String("out", "setters_gen.go", "output file")
	flag.Parse()

	src, err := generate(mdffi.Fields())
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdffi-gen: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "mdffi-gen: %v\n", err)
		os.Exit(1)
	}
}

// generate renders and gofmts the setters for fields.
func generate(fields []mdffi.Field) ([]byte, error) {
	v := view{Setters: make([]setter, 0, len(fields))}
	for _, f := range fields {
		v.Setters = append(v.Setters, setter{
			Symbol:   f.Symbol(symbolPrefix),
			Var:      "field" + camel(string(f.Category)) + camel(f.Name),
			Category: "Category" + camel(string(f.Category)),
			Name:     f.Name,
			Path:     f.String(),
			Kind:     f.Kind.String(),
		})
		if f.Kind == mdffi.KindText {
			v.HasText = true
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format output: %w", err)
	}
	return src, nil
}

// camel turns snake_case into CamelCase; "ids" becomes "IDs".
func camel(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		switch part {
		case "":
			continue
		case "ids":
			b.WriteString("IDs")
		default:
			b.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return b.String()
}

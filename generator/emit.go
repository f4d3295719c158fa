package generator

import (
	"bytes"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/erraggy/fievar/fieverrors"
)

// accessorData feeds the file template for one generated accessor.
type accessorData struct {
	Type     string
	FuncName string
	KindWord string
	Names    []string
}

// fileData feeds the file template.
type fileData struct {
	Package   string
	Accessors []accessorData
}

var fileTemplate = template.Must(template.New("accessors").Parse(
	`// Code generated by fievar. DO NOT EDIT.

package {{.Package}}
{{range .Accessors}}
// {{.FuncName}} returns the rendered {{.KindWord}} names of {{.Type}} in
// declaration order.
func ({{.Type}}) {{.FuncName}}() []string {
{{- if .Names}}
	return []string{
{{- range .Names}}
		{{printf "%q" .}},
{{- end}}
	}
{{- else}}
	return []string{}
{{- end}}
}
{{end}}`))

// emit renders the accessor file and formats it with goimports-equivalent
// processing so the output is immediately compilable.
func emit(pkgName, fileName string, accessors []accessorData) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, fileData{Package: pkgName, Accessors: accessors}); err != nil {
		return nil, &fieverrors.GenerateError{
			Message: "cannot render accessor template",
			Cause:   err,
		}
	}

	formatted, err := imports.Process(fileName, buf.Bytes(), nil)
	if err != nil {
		return nil, &fieverrors.GenerateError{
			Message: "generated code does not format",
			Cause:   err,
		}
	}
	return formatted, nil
}

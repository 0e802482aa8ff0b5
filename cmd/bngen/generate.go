// Copyright 2026 go-bottleneck Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

// dtypeSpec describes one element type to stamp wrappers for.
type dtypeSpec struct {
	Suffix string // function name suffix, e.g. "Int8"
	Type   string // Go element type, e.g. "int8"
	Const  string // bn.DType constant name, e.g. "Int8"
	Float  bool   // floating-point kind (no narrowing check)
}

// dtypes is the fast-path element type set. Order here is the order of
// the generated wrappers and table registrations.
var dtypes = []dtypeSpec{
	{Suffix: "Int8", Type: "int8", Const: "Int8"},
	{Suffix: "Int32", Type: "int32", Const: "Int32"},
	{Suffix: "Int64", Type: "int64", Const: "Int64"},
	{Suffix: "Float32", Type: "float32", Const: "Float32", Float: true},
	{Suffix: "Float64", Type: "float64", Const: "Float64", Float: true},
}

// maxAxis is the highest axis with a slow-path alias. Axis-restricted
// replacement on higher axes is unsupported; unrestricted replacement
// (AxisNone) has no rank limit.
const maxAxis = 7

type templateData struct {
	Output string
	Pkg    string
	DTypes []dtypeSpec
	Axes   []int
}

// Generate renders the replace_gen.go source for the given output file
// name (recorded in the generated-by header) and package, formatted with
// goimports.
func Generate(output, pkg string) ([]byte, error) {
	data := templateData{
		Output: output,
		Pkg:    pkg,
		DTypes: dtypes,
	}
	for ax := 0; ax <= maxAxis; ax++ {
		data.Axes = append(data.Axes, ax)
	}

	var buf bytes.Buffer
	if err := genTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	src, err := imports.Process(output, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

var genTemplate = template.Must(template.New("replace_gen").Parse(
	`// Code generated by "bngen -output {{.Output}} -pkg {{.Pkg}}"; DO NOT EDIT.

package {{.Pkg}}

// Specialized whole-array scan routines, one per supported (rank, dtype)
// pair, plus the slow-path axis aliases. The init at the bottom of this
// file populates the dispatch tables; nothing writes to them afterwards.
{{range .DTypes}}
func replace1D{{.Suffix}}(a *Array, old, new float64) error {
{{- if .Float}}
	BaseReplaceFloats(Data[{{.Type}}](a), old, new)
	return nil
{{- else}}
	return BaseReplaceInts(Data[{{.Type}}](a), old, new)
{{- end}}
}

{{if .Float -}}
func replace2D{{.Suffix}}(a *Array, old, new float64) error {
	s := Data[{{.Type}}](a)
	cols := a.shape[1]
	if old != old {
		for i := 0; i < a.shape[0]; i++ {
			scanNaN(s[i*cols : (i+1)*cols], {{.Type}}(new))
		}
		return nil
	}
	for i := 0; i < a.shape[0]; i++ {
		scanEqual(s[i*cols : (i+1)*cols], {{.Type}}(old), {{.Type}}(new))
	}
	return nil
}
{{else -}}
func replace2D{{.Suffix}}(a *Array, old, new float64) error {
	if old != old {
		return nil
	}
	oldT, ok := intFromFloat[{{.Type}}](old)
	if !ok {
		return &UnsafeCastError{Value: old, DType: {{.Const}}}
	}
	newT, ok := intFromFloat[{{.Type}}](new)
	if !ok {
		return &UnsafeCastError{Value: new, DType: {{.Const}}}
	}
	s := Data[{{.Type}}](a)
	cols := a.shape[1]
	for i := 0; i < a.shape[0]; i++ {
		scanEqual(s[i*cols : (i+1)*cols], oldT, newT)
	}
	return nil
}
{{end -}}
{{end}}
// Slow-path aliases, one per axis value. Each forwards to the general
// unaccelerated routine with its axis bound.

func replaceSlowAxisNone(a *Array, old, new float64) error {
	return replaceSlow(a, old, new, AxisNone)
}
{{range .Axes}}
func replaceSlowAxis{{.}}(a *Array, old, new float64) error {
	return replaceSlow(a, old, new, {{.}})
}
{{end}}
func init() {
{{- range .DTypes}}
	fastTable[fastKey{ndim: 1, dtype: {{.Const}}}] = replace1D{{.Suffix}}
	fastTable[fastKey{ndim: 2, dtype: {{.Const}}}] = replace2D{{.Suffix}}
{{- end}}

	slowTable[AxisNone] = replaceSlowAxisNone
{{- range .Axes}}
	slowTable[{{.}}] = replaceSlowAxis{{.}}
{{- end}}
}
`))

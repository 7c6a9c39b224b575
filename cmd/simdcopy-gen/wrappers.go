// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"go/format"
	"io"
	"text/template"

	"github.com/pkg/errors"
)

// sizedPkg holds the Func type that indexes generated functions.
const sizedPkg = "github.com/grailbio/simdcopy/simd/sized"

// wrapperData is the input to the Go templates.
type wrapperData struct {
	GeneratedBy string
	Pkg         string
	Plans       []plan
}

// FuncType is the element type of the generated Funcs table: package sized
// declares Func itself, and every other package refers to it.
func (d wrapperData) FuncType() string {
	if d.Pkg == "sized" {
		return "Func"
	}
	return "sized.Func"
}

// SizedImport is the import path of package sized, or "" when generating
// into package sized.
func (d wrapperData) SizedImport() string {
	if d.Pkg == "sized" {
		return ""
	}
	return sizedPkg
}

var wrappersTmpl = template.Must(template.New("wrappers").Parse(`// Code generated by {{.GeneratedBy}}. DO NOT EDIT.

package {{.Pkg}}

import (
	"github.com/grailbio/simdcopy/simd"
{{- with .SizedImport}}
	"{{.}}"
{{- end}}
)
{{range .Plans}}
// {{.Name}} copies {{.Size}} bytes from src to dst with {{.Tier}} vectors:
// {{.Blocks}} unrolled {{if eq .Blocks 1}}block{{else}}blocks{{end}}{{if .Tail}} and a {{.TailBytes}}-byte scalar tail{{end}}.  It returns
// simd.Unavailable without writing if the {{.Tier}} tier was not compiled in.
func {{.Name}}(dst, src *[{{.Size}}]byte) simd.Result {
	if !simd.Has{{.Width}} {
		return simd.Unavailable
	}
	{{.AsmName}}(&dst[0], &src[0])
	return simd.Copied({{.Size}})
}
{{end}}
// Funcs lists every function in this file.
var Funcs = []{{.FuncType}}{
{{- range .Plans}}
	{Tier: simd.Tier{{.Width}}, Size: {{.Size}}, Copy: func(dst, src []byte) simd.Result { return {{.Name}}((*[{{.Size}}]byte)(dst), (*[{{.Size}}]byte)(src)) }},
{{- end}}
}
`))

var fallbackTmpl = template.Must(template.New("fallback").Parse(`// Code generated by {{.GeneratedBy}}. DO NOT EDIT.

//go:build !amd64 || noasm

package {{.Pkg}}

import (
	"unsafe"

	"github.com/grailbio/simdcopy/simd"
)
{{range .Plans}}
func {{.AsmName}}(dst, src *byte) {
	simd.CopyRaw{{.Width}}(unsafe.Pointer(dst), unsafe.Pointer(src), {{.Size}})
}
{{end}}`))

// writeGo executes tmpl on data and writes the gofmt'ed result to w.
func writeGo(w io.Writer, tmpl *template.Template, data wrapperData) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return errors.Wrapf(err, "executing %s template", tmpl.Name())
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrapf(err, "formatting %s output", tmpl.Name())
	}
	_, err = w.Write(src)
	return err
}

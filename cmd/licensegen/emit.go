package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

const generatedHeader = "// Code generated by licensegen from the SPDX license list data; DO NOT EDIT."

type licenseTemplateEntry struct {
	Ident      string
	ID         string
	Name       string
	TextVar    string
	HeaderName string
	OSI        bool
	FSF        bool
	Deprecated bool
	Successors []string
	Comments   string
	SeeAlso    []string
}

type exceptionTemplateEntry struct {
	Ident      string
	ID         string
	Name       string
	TextVar    string
	Deprecated bool
	Comments   string
	SeeAlso    []string
}

type assetEntry struct {
	Name string
	Var  string
}

var templateFuncs = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	"rawlit": func(s string) string {
		if strings.Contains(s, "`") {
			return fmt.Sprintf("%q", s)
		}

		return "`" + s + "`"
	},
	"lower": strings.ToLower,
	"pad":   func(width int, s string) string { return fmt.Sprintf("%-*s", width, s) },
	"andlist": func(items []string) string {
		if len(items) <= 1 {
			return strings.Join(items, "")
		}

		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	},
}

var licenseCatalogTemplate = template.Must(template.New("catalog").Funcs(templateFuncs).Parse(generatedHeader + `

package licenses

import "github.com/LerianStudio/lib-license/license"
{{range .Entries}}
// {{.Ident}} is the {{.Name}} ({{.ID}}).
{{- if .Deprecated}}
//
{{- if .Successors}}
// Deprecated: superseded by {{andlist .Successors}}.
{{- else}}
// Deprecated: the SPDX workgroup retired this identifier.
{{- end}}
{{- end}}
type {{.Ident}} struct{}{{$w := 25}}{{if .Comments}}{{$w = 23}}{{end}}

func ({{.Ident}}) {{pad $w "ID() string"}} { return {{quote .ID}} }
func ({{.Ident}}) {{pad $w "Name() string"}} { return {{quote .Name}} }
func ({{.Ident}}) {{pad $w "Text() string"}} { return {{.TextVar}} }
{{- if .HeaderName}}
func ({{.Ident}}) {{pad $w "Header() (string, bool)"}} { return {{.HeaderName}}, true }
{{- else}}
func ({{.Ident}}) {{pad $w "Header() (string, bool)"}} { return "", false }
{{- end}}
func ({{.Ident}}) {{pad $w "IsOSIApproved() bool"}} { return {{.OSI}} }
func ({{.Ident}}) {{pad $w "IsFSFLibre() bool"}} { return {{.FSF}} }
func ({{.Ident}}) {{pad $w "IsDeprecated() bool"}} { return {{.Deprecated}} }
{{- if .Comments}}
func ({{.Ident}}) Comments() (string, bool) {
	return {{quote .Comments}}, true
}
{{- else}}
func ({{.Ident}}) Comments() (string, bool) { return "", false }
{{- end}}
func ({{.Ident}}) SeeAlso() []string {
{{- if .SeeAlso}}
	return []string{
{{- range .SeeAlso}}
		{{quote .}},
{{- end}}
	}
{{- else}}
	return nil
{{- end}}
}
{{end}}
var index = map[string]license.License{
{{- range .Entries}}
	{{quote (lower .ID)}}: {{.Ident}}{},
{{- end}}
}

var all = []license.License{
{{- range .Entries}}
	{{.Ident}}{},
{{- end}}
}
`))

var exceptionCatalogTemplate = template.Must(template.New("catalog").Funcs(templateFuncs).Parse(generatedHeader + `

package exceptions

import "github.com/LerianStudio/lib-license/license"
{{range .Entries}}
// {{.Ident}} is the {{.Name}} ({{.ID}}).
type {{.Ident}} struct{}{{$w := 25}}{{if .Comments}}{{$w = 19}}{{end}}

func ({{.Ident}}) {{pad $w "ID() string"}} { return {{quote .ID}} }
func ({{.Ident}}) {{pad $w "Name() string"}} { return {{quote .Name}} }
func ({{.Ident}}) {{pad $w "Text() string"}} { return {{.TextVar}} }
func ({{.Ident}}) {{pad $w "IsDeprecated() bool"}} { return {{.Deprecated}} }
{{- if .Comments}}
func ({{.Ident}}) Comments() (string, bool) {
	return {{quote .Comments}}, true
}
{{- else}}
func ({{.Ident}}) Comments() (string, bool) { return "", false }
{{- end}}
func ({{.Ident}}) SeeAlso() []string {
{{- if .SeeAlso}}
	return []string{
{{- range .SeeAlso}}
		{{quote .}},
{{- end}}
	}
{{- else}}
	return nil
{{- end}}
}
{{end}}
var index = map[string]license.Exception{
{{- range .Entries}}
	{{quote (lower .ID)}}: {{.Ident}}{},
{{- end}}
}

var all = []license.Exception{
{{- range .Entries}}
	{{.Ident}}{},
{{- end}}
}
`))

var textsTemplate = template.Must(template.New("texts").Funcs(templateFuncs).Parse(generatedHeader + `

package {{.Package}}

import _ "embed"
{{range .Assets}}
//go:embed texts/{{.Name}}.txt
var {{.Var}} string
{{end}}`))

var headersTemplate = template.Must(template.New("headers").Funcs(templateFuncs).Parse(generatedHeader + `

package licenses
{{range .Headers}}
const {{.Var}} = {{rawlit .Text}}
{{end}}`))

type headerEntry struct {
	Var  string
	Text string
}

func emitLicenses(dir string, entries []LicenseEntry) error {
	assets := map[string]string{}
	headers := map[string]string{}

	// Current ids per asset family, used to document what replaced a
	// deprecated identifier.
	successors := map[string][]string{}
	for _, entry := range entries {
		if !entry.Detail.IsDeprecated {
			successors[entry.Asset] = append(successors[entry.Asset], entry.Detail.LicenseID)
		}
	}

	tmplEntries := make([]licenseTemplateEntry, 0, len(entries))

	for _, entry := range entries {
		detail := entry.Detail
		assets[entry.Asset] = detail.LicenseText

		headerName := ""
		if strings.TrimSpace(detail.StandardLicenseHeader) != "" {
			headerName = headerVar(entry.Asset)
			headers[entry.Asset] = detail.StandardLicenseHeader
		}

		tmplEntries = append(tmplEntries, licenseTemplateEntry{
			Ident:      GoIdent(detail.LicenseID),
			ID:         detail.LicenseID,
			Name:       detail.Name,
			TextVar:    TextVar(entry.Asset),
			HeaderName: headerName,
			OSI:        detail.IsOsiApproved,
			FSF:        detail.IsFsfLibre,
			Deprecated: detail.IsDeprecated,
			Comments:   strings.TrimSpace(detail.LicenseComments),
			SeeAlso:    detail.SeeAlso,
		})

		if detail.IsDeprecated {
			tmplEntries[len(tmplEntries)-1].Successors = successors[entry.Asset]
		}
	}

	if err := writeTemplate(filepath.Join(dir, "catalog_gen.go"), licenseCatalogTemplate, map[string]any{
		"Entries": tmplEntries,
	}); err != nil {
		return err
	}

	if err := emitTextAssets(dir, "licenses", assets); err != nil {
		return err
	}

	return emitHeaders(dir, headers)
}

func emitExceptions(dir string, entries []ExceptionEntry) error {
	assets := map[string]string{}

	tmplEntries := make([]exceptionTemplateEntry, 0, len(entries))

	for _, entry := range entries {
		detail := entry.Detail
		assets[entry.Asset] = detail.LicenseExceptionText

		tmplEntries = append(tmplEntries, exceptionTemplateEntry{
			Ident:      GoIdent(detail.LicenseExceptionID),
			ID:         detail.LicenseExceptionID,
			Name:       detail.Name,
			TextVar:    TextVar(entry.Asset),
			Deprecated: detail.IsDeprecated,
			Comments:   strings.TrimSpace(detail.LicenseComments),
			SeeAlso:    detail.SeeAlso,
		})
	}

	if err := writeTemplate(filepath.Join(dir, "catalog_gen.go"), exceptionCatalogTemplate, map[string]any{
		"Entries": tmplEntries,
	}); err != nil {
		return err
	}

	return emitTextAssets(dir, "exceptions", assets)
}

func emitTextAssets(dir, pkg string, assets map[string]string) error {
	names := make([]string, 0, len(assets))
	for name := range assets {
		names = append(names, name)
	}

	sort.Strings(names)

	textsDir := filepath.Join(dir, "texts")
	if err := os.MkdirAll(textsDir, 0o755); err != nil {
		return err
	}

	tmplAssets := make([]assetEntry, 0, len(names))

	for _, name := range names {
		text := assets[name]
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}

		if err := os.WriteFile(filepath.Join(textsDir, name+".txt"), []byte(text), 0o644); err != nil {
			return err
		}

		tmplAssets = append(tmplAssets, assetEntry{Name: name, Var: TextVar(name)})
	}

	return writeTemplate(filepath.Join(dir, "texts_gen.go"), textsTemplate, map[string]any{
		"Package": pkg,
		"Assets":  tmplAssets,
	})
}

func emitHeaders(dir string, headers map[string]string) error {
	if len(headers) == 0 {
		return nil
	}

	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}

	sort.Strings(names)

	tmplHeaders := make([]headerEntry, 0, len(names))
	for _, name := range names {
		tmplHeaders = append(tmplHeaders, headerEntry{Var: headerVar(name), Text: headers[name]})
	}

	return writeTemplate(filepath.Join(dir, "headers_gen.go"), headersTemplate, map[string]any{
		"Headers": tmplHeaders,
	})
}

func headerVar(asset string) string {
	return "header" + strings.TrimPrefix(TextVar(asset), "text")
}

func writeTemplate(path string, tmpl *template.Template, data any) error {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

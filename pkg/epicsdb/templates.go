package epicsdb

import (
	"fmt"
	"io"
	"text/template"
)

// asynLink is the I/O link prefix shared by all feature records.
const asynLink = "@asyn($(PORT),$(ADDR=0),$(TIMEOUT=1))"

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"link": func(tag, feature string) string { return fmt.Sprintf("%sGC_%s_%s", asynLink, tag, feature) },
}

// templates holds all parsed record templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		integerTmpl +
		booleanTmpl +
		floatTmpl +
		stringTmpl +
		commandTmpl +
		enumTmpl,
))

// render executes a named template into w.
func render(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("template %s: %w", name, err)
	}
	return nil
}

// --- Template data types ---

// headerData holds the values of the file header and navigation records.
type headerData struct {
	Camera     string
	ScreenDir  string
	CameraType string
}

// recordData holds one feature's records.
type recordData struct {
	Feature     string
	Record      string
	InputType   string
	OutputType  string
	ReadOnly    bool
	Autosave    string
	AutosaveOut string
	States      []stateData
	Default     string
}

// stateData is one mbbi/mbbo state.
type stateData struct {
	Prefix string
	Name   string
	Value  string
}

// --- Template definitions ---

const headerTmpl = `{{define "header" -}}
# Macros:
#% macro, P, Device Prefix
#% macro, R, Device Suffix
#% macro, PORT, Asyn Port name
#% macro, TIMEOUT, Timeout, default=1
#% macro, ADDR, Asyn Port address, default=0
#% gui, $(PORT), edmtab, {{.Camera}}.edl, P=$(P),R=$(R)

record(stringin, "$(P)$(R)CamModel") {
  field(VAL,   "{{.Camera}}")
  field(PINI,  "YES")
}

record(stringin, "$(P)$(R)CamModelScreen") {
  field(VAL,   "{{.ScreenDir}}/{{.Camera}}")
  field(PINI,  "YES")
}

record(stringin, "$(P)$(R)CamType") {
  field(VAL,   "$(TYPE={{.CameraType}})")
  field(PINI,  "YES")
}

record(stringin, "$(P)$(R)CamTypeScreen") {
  field(VAL,   "{{.ScreenDir}}/$(TYPE={{.CameraType}})CamType.edl")
  field(PINI,  "YES")
}

{{end}}`

const integerTmpl = `{{define "integer" -}}
record({{.InputType}}, "$(P)$(R){{.Record}}_RBV") {
  field(DTYP, "asynInt64")
  field(INP,  "{{link "I" .Feature}}")
  field(SCAN, "I/O Intr")
  field(DISA, "0")
  info( autosaveFields, "{{.Autosave}}" )
}

{{if not .ReadOnly -}}
record({{.OutputType}}, "$(P)$(R){{.Record}}") {
  field(DTYP, "asynInt64")
  field(OUT,  "{{link "I" .Feature}}")
  field(DISA, "0")
  info( autosaveFields, "{{.AutosaveOut}}" )
}

{{end}}
{{- end}}`

const booleanTmpl = `{{define "boolean" -}}
record(bi, "$(P)$(R){{.Record}}_RBV") {
  field(DTYP, "asynInt32")
  field(INP,  "{{link "B" .Feature}}")
  field(SCAN, "I/O Intr")
  field(ZNAM, "No")
  field(ONAM, "Yes")
  field(DISA, "0")
  info( autosaveFields, "{{.Autosave}}" )
}

{{if not .ReadOnly -}}
record(bo, "$(P)$(R){{.Record}}") {
  field(DTYP, "asynInt32")
  field(OUT,  "{{link "B" .Feature}}")
  field(ZNAM, "No")
  field(ONAM, "Yes")
  field(DISA, "0")
  info( autosaveFields, "{{.AutosaveOut}}" )
}

{{end}}
{{- end}}`

const floatTmpl = `{{define "float" -}}
record(ai, "$(P)$(R){{.Record}}_RBV") {
  field(DTYP, "asynFloat64")
  field(INP,  "{{link "D" .Feature}}")
  field(PREC, "3")
  field(SCAN, "I/O Intr")
  field(DISA, "0")
  info( autosaveFields, "{{.Autosave}}" )
}

{{if not .ReadOnly -}}
record(ao, "$(P)$(R){{.Record}}") {
  field(DTYP, "asynFloat64")
  field(OUT,  "{{link "D" .Feature}}")
  field(PREC, "3")
  field(DISA, "0")
  info( autosaveFields, "{{.AutosaveOut}}" )
}

{{end}}
{{- end}}`

const stringTmpl = `{{define "string" -}}
record(stringin, "$(P)$(R){{.Record}}_RBV") {
  field(DTYP, "asynOctetRead")
  field(INP,  "{{link "S" .Feature}}")
  field(SCAN, "I/O Intr")
  field(DISA, "0")
  info( autosaveFields, "{{.Autosave}}" )
}

{{end}}`

const commandTmpl = `{{define "command" -}}
record(longout, "$(P)$(R){{.Record}}") {
  field(DTYP, "asynInt32")
  field(OUT,  "{{link "C" .Feature}}")
  field(DISA, "0")
  info( autosaveFields, "{{.Autosave}}" )
}

{{end}}`

const enumTmpl = `{{define "states"}}{{range .States}}  field({{.Prefix}}ST, "{{.Name}}")
  field({{.Prefix}}VL, "{{.Value}}")
{{end}}{{end}}

{{- define "enumeration" -}}
record(mbbi, "$(P)$(R){{.Record}}_RBV") {
  field(DTYP, "asynInt32")
  field(INP,  "{{link "E" .Feature}}")
{{template "states" .}}  field(SCAN, "I/O Intr")
  field(DISA, "0")
  info( autosaveFields, "{{.Autosave}}" )
}

{{if not .ReadOnly -}}
record(mbbo, "$(P)$(R){{.Record}}") {
  field(DTYP, "asynInt32")
  field(OUT,  "{{link "E" .Feature}}")
  field(DOL,  "{{.Default}}")
{{template "states" .}}  field(DISA, "0")
  info( autosaveFields, "{{.AutosaveOut}}" )
}

{{end}}
{{- end}}`

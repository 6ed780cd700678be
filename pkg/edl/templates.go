package edl

import (
	"fmt"
	"io"
	"text/template"
)

// Screen style shared by all widgets.
const (
	fontClass   = "helvetica"
	fgColorCtrl = 25
	bgColorCtrl = 5
	fgColorMon  = 15
	bgColorMon  = 12
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"font":   func() string { return fontClass },
	"fgCtrl": func() int { return fgColorCtrl },
	"bgCtrl": func() int { return bgColorCtrl },
	"fgMon":  func() int { return fgColorMon },
	"bgMon":  func() int { return bgColorMon },
}

// templates holds all parsed screen templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	screenTmpl +
		exitTmpl +
		boxTmpl +
		boxLabelTmpl +
		helpTmpl +
		labelTmpl +
		textUpdateTmpl +
		textControlTmpl +
		readbackTmpl +
		menuTmpl +
		messageTmpl +
		summaryTmpl,
))

// render executes a named template into w.
func render(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("template %s: %w", name, err)
	}
	return nil
}

// --- Template data types ---

// screenData holds the canvas size and title of the features screen.
type screenData struct {
	Camera string
	W, H   int
}

// exitData positions the exit button.
type exitData struct {
	X, Y int
}

// boxData positions the rectangle and title of a section.
type boxData struct {
	Title string
	X, Y  int
	LabY  int
	W, H  int
}

// rowData holds one feature row widget.
type rowData struct {
	X, Y    int
	LabelW  int
	Feature string
	Record  string
	HelpDsp string
	Desc    [helpLines]string
}

// summaryData holds the summary screen links.
type summaryData struct {
	BaseScreen     string
	CameraScreen   string
	FeaturesScreen string
}

// --- Template definitions ---

const screenTmpl = `{{define "screen" -}}
4 0 1
beginScreenProperties
major 4
minor 0
release 1
x 50
y 50
w {{.W}}
h {{.H}}
font "{{font}}-bold-r-12.0"
ctlFont "{{font}}-bold-r-12.0"
btnFont "{{font}}-bold-r-12.0"
fgColor index 14
bgColor index 3
textColor index 14
ctlFgColor1 index {{fgMon}}
ctlFgColor2 index {{fgCtrl}}
ctlBgColor1 index {{bgMon}}
ctlBgColor2 index {{bgCtrl}}
topShadowColor index 1
botShadowColor index 11
title "{{.Camera}} features - $(P)$(R)"
showGrid
snapToGrid
gridSize 4
endScreenProperties

# (Group)
object activeGroupClass
beginObjectProperties
major 4
minor 0
release 0
x 0
y 0
w {{.W}}
h 30

beginGroup

# (Rectangle)
object activeRectangleClass
beginObjectProperties
major 4
minor 0
release 0
x 0
y 0
w {{.W}}
h 30
lineColor index 3
fill
fillColor index 3
endObjectProperties

# (Lines)
object activeLineClass
beginObjectProperties
major 4
minor 0
release 1
x 0
y 2
w {{.W}}
h 24
lineColor index 11
fillColor index 0
numPoints 3
xPoints {
  0 0
  1 {{.W}}
  2 {{.W}}
}
yPoints {
  0 26
  1 26
  2 2
}
endObjectProperties

# (Static Text)
object activeXTextClass
beginObjectProperties
major 4
minor 1
release 1
x 0
y 2
w {{.W}}
h 24
font "{{font}}-bold-r-18.0"
fontAlign "center"
fgColor index 14
bgColor index 48
value {
  "{{.Camera}} features - $(P)$(R)"
}
endObjectProperties

# (Lines)
object activeLineClass
beginObjectProperties
major 4
minor 0
release 1
x 0
y 2
w {{.W}}
h 24
lineColor index 1
fillColor index 0
numPoints 3
xPoints {
  0 0
  1 0
  2 {{.W}}
}
yPoints {
  0 26
  1 2
  2 2
}
endObjectProperties

endGroup

endObjectProperties

{{end}}`

const exitTmpl = `{{define "exit" -}}
# (Exit Button)
object activeExitButtonClass
beginObjectProperties
major 4
minor 1
release 0
x {{.X}}
y {{.Y}}
w 95
h 25
fgColor index 46
bgColor index 3
topShadowColor index 1
botShadowColor index 11
label "EXIT"
font "{{font}}-bold-r-14.0"
3d
endObjectProperties
{{end}}`

const boxTmpl = `{{define "box" -}}
# (Rectangle)
object activeRectangleClass
beginObjectProperties
major 4
minor 0
release 0
x {{.X}}
y {{.Y}}
w {{.W}}
h {{.H}}
lineColor index 14
fill
fillColor index 5
endObjectProperties

{{end}}`

const boxLabelTmpl = `{{define "boxLabel" -}}
# (Static Text)
object activeXTextClass
beginObjectProperties
major 4
minor 1
release 1
x {{.X}}
y {{.LabY}}
w 150
h 14
font "{{font}}-medium-r-12.0"
fontAlign "center"
fgColor index 14
bgColor index 8
value {
  "  {{.Title}}  "
}
autoSize
border
endObjectProperties
{{end}}`

const helpTmpl = `{{define "help" -}}
# (Related Display)
object relatedDisplayClass
beginObjectProperties
major 4
minor 4
release 0
x {{.X}}
y {{.Y}}
w 16
h 20
fgColor index 14
bgColor index 3
topShadowColor index 1
botShadowColor index 11
font "{{font}}-bold-r-10.0"
xPosOffset -100
yPosOffset -148
useFocus
buttonLabel "?"
numPvs 4
numDsps 1
displayFileName {
  0 "{{.HelpDsp}}"
}
setPosition {
  0 "button"
}
symbols {
  0 "{{range $i, $d := .Desc}}{{if $i}},{{end}}desc{{$i}}={{$d}}{{end}}"
}
endObjectProperties

{{end}}`

// labelTmpl starts with an empty line.
const labelTmpl = `{{define "label"}}
# (Static Text)
object activeXTextClass
beginObjectProperties
major 4
minor 1
release 1
x {{.X}}
y {{.Y}}
w {{.LabelW}}
h 20
font "{{font}}-bold-r-10.0"
fgColor index 14
bgColor index 3
useDisplayBg
value {
  "{{.Feature}}"
}
endObjectProperties

{{end}}`

const textUpdateTmpl = `{{define "textUpdate" -}}
# (Text Update)
object TextupdateClass
beginObjectProperties
major 10
minor 0
release 0
x {{.X}}
y {{.Y}}
w 124
h 20
controlPv "$(P)$(R){{.Record}}_RBV"
fgColor index {{fgMon}}
fgAlarm
bgColor index {{bgMon}}
fill
font "{{font}}-bold-r-12.0"
fontAlign "center"
endObjectProperties

{{end}}`

const textControlTmpl = `{{define "textControl" -}}
# (Text Control)
object activeXTextDspClass
beginObjectProperties
major 4
minor 7
release 0
x {{.X}}
y {{.Y}}
w 60
h 20
controlPv "$(P)$(R){{.Record}}"
font "{{font}}-bold-r-12.0"
fgColor index {{fgCtrl}}
bgColor index {{bgCtrl}}
editable
motifWidget
limitsFromDb
nullColor index 40
smartRefresh
changeValOnLoseFocus
autoSelect
newPos
objType "controls"
endObjectProperties

{{end}}`

const readbackTmpl = `{{define "readback" -}}
# (Textupdate)
object TextupdateClass
beginObjectProperties
major 10
minor 0
release 0
x {{.X}}
y {{.Y}}
w 60
h 20
controlPv "$(P)$(R){{.Record}}_RBV"
fgColor index {{fgMon}}
fgAlarm
bgColor index {{bgMon}}
fill
font "{{font}}-bold-r-12.0"
fontAlign "center"
endObjectProperties

{{end}}`

const menuTmpl = `{{define "menu" -}}
# (Menu Button)
object activeMenuButtonClass
beginObjectProperties
major 4
minor 0
release 0
x {{.X}}
y {{.Y}}
w 124
h 20
fgColor index {{fgCtrl}}
bgColor index {{bgCtrl}}
inconsistentColor index 40
topShadowColor index 1
botShadowColor index 11
controlPv "$(P)$(R){{.Record}}"
indicatorPv "$(P)$(R){{.Record}}_RBV"
font "{{font}}-bold-r-12.0"
endObjectProperties

{{end}}`

const messageTmpl = `{{define "message" -}}
# (Message Button)
object activeMessageButtonClass
beginObjectProperties
major 4
minor 0
release 0
x {{.X}}
y {{.Y}}
w 124
h 20
fgColor index {{fgCtrl}}
onColor index 3
offColor index 3
topShadowColor index 1
botShadowColor index 11
controlPv "$(P)$(R){{.Record}}.PROC"
pressValue "1"
onLabel "{{.Feature}}"
offLabel "{{.Feature}}"
3d
font "{{font}}-bold-r-12.0"
endObjectProperties

{{end}}`

const summaryTmpl = `{{define "summary" -}}
4 0 1
beginScreenProperties
major 4
minor 0
release 1
x 713
y 157
w 420
h 820
font "{{font}}-bold-r-12.0"
ctlFont "{{font}}-bold-r-12.0"
btnFont "{{font}}-bold-r-12.0"
fgColor index 14
bgColor index 3
textColor index 14
ctlFgColor1 index {{fgMon}}
ctlFgColor2 index {{fgCtrl}}
ctlBgColor1 index {{bgMon}}
ctlBgColor2 index {{bgCtrl}}
topShadowColor index 1
botShadowColor index 11
showGrid
snapToGrid
gridSize 4
endScreenProperties

# (Embedded Window)
object activePipClass
beginObjectProperties
major 4
minor 1
release 0
x 4
y 4
w 408
h 476
fgColor index 14
bgColor index 3
topShadowColor index 1
botShadowColor index 11
displaySource "file"
file "{{.BaseScreen}}"
sizeOfs 0
numDsps 0
noScroll
endObjectProperties

# (Embedded Window)
object activePipClass
beginObjectProperties
major 4
minor 1
release 0
x 4
y 480
w 408
h 112
fgColor index 14
bgColor index 3
topShadowColor index 1
botShadowColor index 11
displaySource "file"
file "{{.CameraScreen}}"
sizeOfs 0
numDsps 0
noScroll
endObjectProperties

# (Related Display)
object relatedDisplayClass
beginObjectProperties
major 4
minor 4
release 0
x 4
y 792
w 408
h 24
fgColor index 43
bgColor index 3
topShadowColor index 1
botShadowColor index 11
font "{{font}}-bold-r-14.0"
buttonLabel "more features..."
numPvs 4
numDsps 1
displayFileName {
  0 "{{.FeaturesScreen}}"
}
setPosition {
  0 "parentWindow"
}
endObjectProperties
{{end}}`

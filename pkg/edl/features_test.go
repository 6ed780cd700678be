package edl

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenicam/gcgen/pkg/genicam"
	"github.com/adgenicam/gcgen/pkg/log"
	"github.com/adgenicam/gcgen/pkg/structure"
)

var testOptions = Options{
	Camera:     "AcmeCam",
	ScreenDir:  "vimbaScreens",
	CameraType: "vimba",
	Exclude:    []string{"PixelFormat"},
}

// screen indexes body, flattens it and returns the features screen.
func screen(t *testing.T, body string, logger log.Logger) string {
	t.Helper()
	doc, err := genicam.Parse([]byte("<RegisterDescription>"+body+"</RegisterDescription>"), nil)
	require.NoError(t, err)
	idx := genicam.NewIndex(doc, nil)

	var b strings.Builder
	require.NoError(t, NewFeatures(idx, testOptions, logger).Write(&b, structure.Flatten(idx, nil)))
	return b.String()
}

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output missing %q\n--- output ---\n%s", substr, output)
	}
}

func TestFeaturesSingleBox(t *testing.T) {
	out := screen(t, `<Category Name="Root"><pFeature>Width</pFeature><pFeature>ReverseX</pFeature></Category>
<Integer Name="Width"/><Boolean Name="ReverseX"/>`, nil)

	assert.True(t, strings.HasPrefix(out, "4 0 1\nbeginScreenProperties\nmajor 4\nminor 0\nrelease 1\nx 50\ny 50\nw 304\nh 148\n"))
	mustContain(t, out, `title "AcmeCam features - $(P)$(R)"`)

	// One group with two rows.
	assert.Equal(t, 1, strings.Count(out, "fillColor index 5\n"))
	assert.Equal(t, 2, strings.Count(out, `buttonLabel "?"`))
	mustContain(t, out, "x 4\ny 48\nw 288\nh 56\nlineColor index 14\n")
	mustContain(t, out, "x 4\ny 40\nw 150\nh 14\n")
	mustContain(t, out, "value {\n  \"  Root  \"\n}\nautoSize\nborder\n")

	// Width row: help, label, text control and readback.
	mustContain(t, out, "x 8\ny 56\nw 16\nh 20\n")
	mustContain(t, out, "\n\n# (Static Text)\nobject activeXTextClass\nbeginObjectProperties\nmajor 4\nminor 1\nrelease 1\nx 28\ny 56\nw 132\nh 20\n")
	mustContain(t, out, "x 164\ny 56\nw 60\nh 20\ncontrolPv \"$(P)$(R)GC_Width\"\n")
	mustContain(t, out, "x 232\ny 56\nw 60\nh 20\ncontrolPv \"$(P)$(R)GC_Width_RBV\"\n")

	// ReverseX row: menu button.
	mustContain(t, out, "# (Menu Button)\nobject activeMenuButtonClass\nbeginObjectProperties\nmajor 4\nminor 0\nrelease 0\nx 164\ny 80\n")
	mustContain(t, out, `indicatorPv "$(P)$(R)GC_ReverseX_RBV"`)

	assert.True(t, strings.HasSuffix(out, "# (Exit Button)\nobject activeExitButtonClass\nbeginObjectProperties\nmajor 4\nminor 1\nrelease 0\nx 204\ny 120\nw 95\nh 25\n"+
		"fgColor index 46\nbgColor index 3\ntopShadowColor index 1\nbotShadowColor index 11\nlabel \"EXIT\"\nfont \"helvetica-bold-r-14.0\"\n3d\nendObjectProperties\n"))
}

func TestFeaturesWidgetOrder(t *testing.T) {
	out := screen(t, `<Category Name="Root"><pFeature>Width</pFeature></Category><Integer Name="Width"/>`, nil)

	order := []string{
		"# (Group)",
		"# (Rectangle)\nobject activeRectangleClass\nbeginObjectProperties\nmajor 4\nminor 0\nrelease 0\nx 4",
		"# (Related Display)",
		"# (Static Text)\nobject activeXTextClass\nbeginObjectProperties\nmajor 4\nminor 1\nrelease 1\nx 28",
		"# (Text Control)",
		"# (Textupdate)",
		"  \"  Root  \"",
		"# (Exit Button)",
	}
	pos := 0
	for _, s := range order {
		i := strings.Index(out[pos:], s)
		require.GreaterOrEqual(t, i, 0, "%q missing or out of order", s)
		pos += i + len(s)
	}
}

func TestFeaturesControls(t *testing.T) {
	out := screen(t, `<Category Name="Root">
  <pFeature>DeviceID</pFeature><pFeature>Temp</pFeature><pFeature>Start</pFeature>
</Category>
<StringReg Name="DeviceID"/>
<Float Name="Temp"><AccessMode>RO</AccessMode></Float>
<Command Name="Start"/>`, nil)

	// String and read-only features get a text update only.
	assert.Equal(t, 2, strings.Count(out, "# (Text Update)"))
	mustContain(t, out, "x 164\ny 56\nw 124\nh 20\ncontrolPv \"$(P)$(R)GC_DeviceID_RBV\"\n")
	mustContain(t, out, "x 164\ny 80\nw 124\nh 20\ncontrolPv \"$(P)$(R)GC_Temp_RBV\"\n")
	assert.NotContains(t, out, "# (Text Control)")

	mustContain(t, out, "controlPv \"$(P)$(R)GC_Start.PROC\"\npressValue \"1\"\nonLabel \"Start\"\noffLabel \"Start\"\n")
}

func TestFeaturesHelpButton(t *testing.T) {
	out := screen(t, `<Category Name="Root"><pFeature>Exposure</pFeature></Category>
<Float Name="Exposure"><ToolTip>Exposure time, in µs.</ToolTip></Float>`, nil)

	mustContain(t, out, "displayFileName {\n  0 \"vimbaScreens/vimbaHelp.edl\"\n}\n")
	mustContain(t, out, `  0 "desc0=Exposure: Exposure time; in ?s. ,desc1='',desc2='',desc3='',desc4='',desc5=''"`)
}

func TestFeaturesNonASCII(t *testing.T) {
	out := screen(t, `<Category Name="Température"><pFeature>Width</pFeature></Category><Integer Name="Width"/>`, nil)

	mustContain(t, out, `"  Temp?rature  "`)
	for _, r := range out {
		require.LessOrEqual(t, r, rune(0x7f))
	}
}

func TestFeaturesExcluded(t *testing.T) {
	rec := &log.Recorder{}
	out := screen(t, `<Category Name="Root"><pFeature>PixelFormat</pFeature><pFeature>Width</pFeature></Category>
<Enumeration Name="PixelFormat"/><Integer Name="Width"/>`, rec)

	// The box keeps room for the excluded feature.
	mustContain(t, out, "x 4\ny 48\nw 288\nh 56\n")
	assert.Equal(t, 1, strings.Count(out, `buttonLabel "?"`))
	assert.NotContains(t, out, "PixelFormat")
	mustContain(t, out, "x 204\ny 96\nw 95\n")
	mustContain(t, out, "w 304\nh 124\n")

	skipped := rec.OfKind(log.KindSkippedFeature)
	require.Len(t, skipped, 1)
	assert.Equal(t, log.StageScreen, skipped[0].Stage)
}

func TestFeaturesUnknownType(t *testing.T) {
	rec := &log.Recorder{}
	out := screen(t, `<Category Name="Root"><pFeature>Payload</pFeature></Category><IntReg Name="Payload"/>`, rec)

	mustContain(t, out, "  \"Payload\"\n")
	assert.NotContains(t, out, "controlPv")

	unknown := rec.OfKind(log.KindUnknownNodeType)
	require.Len(t, unknown, 1)
	assert.Equal(t, "IntReg", unknown[0].NodeType)
}

func TestFeaturesNewColumn(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<Category Name="A">`)
	for i := 0; i < 32; i++ {
		fmt.Fprintf(&b, `<pFeature>F%d</pFeature>`, i)
	}
	b.WriteString(`</Category><Category Name="B">`)
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&b, `<pFeature>G%d</pFeature>`, i)
	}
	b.WriteString(`</Category>`)
	for i := 0; i < 32; i++ {
		fmt.Fprintf(&b, `<Integer Name="F%d"/>`, i)
	}
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&b, `<Integer Name="G%d"/>`, i)
	}

	out := screen(t, b.String(), nil)

	// A fills the first column down to y=840; B starts a second column.
	mustContain(t, out, "x 4\ny 48\nw 288\nh 776\n")
	mustContain(t, out, "x 300\ny 44\nw 288\nh 128\n")
	mustContain(t, out, "x 300\ny 36\nw 150\nh 14\n")
	mustContain(t, out, "x 304\ny 52\nw 16\nh 20\n")
	assert.True(t, strings.HasPrefix(out, "4 0 1\nbeginScreenProperties\nmajor 4\nminor 0\nrelease 1\nx 50\ny 50\nw 600\nh 840\n"))
	mustContain(t, out, "x 500\ny 812\nw 95\n")
}

func TestFeaturesEmpty(t *testing.T) {
	out := screen(t, "", nil)

	assert.True(t, strings.HasPrefix(out, "4 0 1\nbeginScreenProperties\nmajor 4\nminor 0\nrelease 1\nx 50\ny 50\nw 304\nh 76\n"))
	mustContain(t, out, "x 204\ny 48\nw 95\n")
}

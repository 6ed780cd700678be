package genicam

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenicam/gcgen/pkg/log"
)

func mustIndex(t *testing.T, body string, logger log.Logger) *Index {
	t.Helper()
	doc, err := Parse([]byte("<RegisterDescription>"+body+"</RegisterDescription>"), logger)
	require.NoError(t, err)
	return NewIndex(doc, logger)
}

func TestIndexNamedNodes(t *testing.T) {
	idx := mustIndex(t, `
<Category Name="Root"><pFeature>Width</pFeature></Category>
<Integer Name="Width"/>
<IntReg Name="WidthReg"/>`, nil)

	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, []string{"Root", "Width", "WidthReg"}, idx.Names())
	assert.Equal(t, []string{"Root"}, idx.Categories())

	n, ok := idx.Lookup("Width")
	require.True(t, ok)
	assert.Equal(t, TypeInteger, n.Type())

	rec, ok := idx.RecordName("Width")
	require.True(t, ok)
	assert.Equal(t, "GC_Width", rec)

	_, ok = idx.Lookup("Height")
	assert.False(t, ok)
}

func TestIndexGroupsAreTransparent(t *testing.T) {
	idx := mustIndex(t, `
<Group Comment="Image Format">
  <Integer Name="Width"/>
  <Group Comment="Nested">
    <Category Name="ImageFormatControl"/>
  </Group>
</Group>
<Group Name="NamedGroup"><Float Name="Gain"/></Group>`, nil)

	assert.Equal(t, []string{"Width", "ImageFormatControl", "Gain"}, idx.Names())
	assert.Equal(t, []string{"ImageFormatControl"}, idx.Categories())
	_, ok := idx.Lookup("NamedGroup")
	assert.False(t, ok, "groups are never indexed")
}

func TestIndexUnnamedNodes(t *testing.T) {
	rec := &log.Recorder{}
	mustIndex(t, `
<StructReg Comment="bits"><StructEntry Name="A"/></StructReg>
<Port/>
<Integer Name="Width"/>`, rec)

	events := rec.OfKind(log.KindUnnamedNode)
	require.Len(t, events, 1)
	assert.Equal(t, "Port", events[0].NodeType)
	assert.Equal(t, log.StageIndex, events[0].Stage)
}

func TestIndexDuplicateNameKeepsFirst(t *testing.T) {
	rec := &log.Recorder{}
	idx := mustIndex(t, `<Integer Name="Width"/><Float Name="Width"/>`, rec)

	n, _ := idx.Lookup("Width")
	assert.Equal(t, TypeInteger, n.Type())
	assert.Equal(t, 1, idx.Len())
	assert.Len(t, rec.OfKind(log.KindDuplicateName), 1)
}

func TestIndexRecordNamesUniqueAndBounded(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 60; i++ {
		fmt.Fprintf(&b, `<Integer Name="ChunkEncoderSelectorValue%d"/>`, i)
		fmt.Fprintf(&b, `<Integer Name="ChunkEncoderSelectorValue%dRaw"/>`, i)
	}
	idx := mustIndex(t, b.String(), nil)

	seen := make(map[string]string)
	for _, name := range idx.Names() {
		rec, ok := idx.RecordName(name)
		require.True(t, ok)
		assert.LessOrEqual(t, len(rec), MaxRecordNameLen, rec)
		if prev, dup := seen[rec]; dup {
			t.Errorf("record name %s assigned to both %s and %s", rec, prev, name)
		}
		seen[rec] = name
	}
}

func TestIndexDeterministic(t *testing.T) {
	body := `<Integer Name="DeviceLinkThroughputLimit"/><Integer Name="DeviceLinkThroughputLimitMode"/>
<Integer Name="DeviceLinkThroughputLimitModeX"/><Boolean Name="ReverseX"/>`

	first := mustIndex(t, body, nil)
	second := mustIndex(t, body, nil)

	for _, name := range first.Names() {
		a, _ := first.RecordName(name)
		b, _ := second.RecordName(name)
		assert.Equal(t, a, b, name)
	}
}

func TestIndexNilDocument(t *testing.T) {
	idx := NewIndex(nil, nil)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Categories())
}

func TestKindOf(t *testing.T) {
	tests := map[string]Kind{
		TypeInteger:       KindInteger,
		TypeIntConverter:  KindInteger,
		TypeIntSwissKnife: KindInteger,
		TypeBoolean:       KindBoolean,
		TypeFloat:         KindFloat,
		TypeConverter:     KindFloat,
		TypeSwissKnife:    KindFloat,
		TypeString:        KindString,
		TypeStringReg:     KindString,
		TypeCommand:       KindCommand,
		TypeEnumeration:   KindEnumeration,
		"IntReg":          KindUnknown,
		TypeCategory:      KindUnknown,
	}
	for typ, want := range tests {
		n := &Node{}
		n.XMLName.Local = typ
		assert.Equal(t, want, KindOf(n), typ)
	}
}

func TestDescriptionLastWins(t *testing.T) {
	idx := mustIndex(t, `<Integer Name="Width">
  <ToolTip>short</ToolTip>
  <Description>  long description  </Description>
</Integer>
<Integer Name="Height"/>`, nil)

	w, _ := idx.Lookup("Width")
	assert.Equal(t, "long description", Description(w))
	h, _ := idx.Lookup("Height")
	assert.Empty(t, Description(h))
}

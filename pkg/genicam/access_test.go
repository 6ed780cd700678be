package genicam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsReadOnly(t *testing.T) {
	idx := mustIndex(t, `
<Integer Name="Writable"><pValue>WritableReg</pValue></Integer>
<IntReg Name="WritableReg"><AccessMode>RW</AccessMode></IntReg>

<Integer Name="DirectRO"><AccessMode>RO</AccessMode></Integer>

<Integer Name="ViaRO"><pValue>ROReg</pValue></Integer>
<IntReg Name="ROReg"><AccessMode>RO</AccessMode></IntReg>

<Integer Name="TwoHops"><pValue>ViaRO</pValue></Integer>

<Integer Name="Dangling"><pValue>NoSuchReg</pValue></Integer>

<Integer Name="LoopA"><pValue>LoopB</pValue></Integer>
<Integer Name="LoopB"><pValue>LoopA</pValue></Integer>

<Integer Name="FirstChildDecides"><pValue>WritableReg</pValue><AccessMode>RO</AccessMode></Integer>

<Integer Name="NoMarkers"><Min>0</Min></Integer>
`, nil)

	tests := []struct {
		name string
		want bool
	}{
		{"Writable", false},
		{"DirectRO", true},
		{"ViaRO", true},
		{"TwoHops", true},
		{"Dangling", true},
		{"LoopA", true},
		{"FirstChildDecides", false},
		{"NoMarkers", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := idx.Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, idx.IsReadOnly(n))
		})
	}
}

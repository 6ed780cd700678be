package edl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpMacros(t *testing.T) {
	tests := []struct {
		name        string
		feature     string
		description string
		want        [helpLines]string
	}{
		{
			name:    "no description",
			feature: "Width",
			want:    [helpLines]string{"Width: ", "''", "''", "''", "''", "''"},
		},
		{
			name:        "single line",
			feature:     "Gain",
			description: "  Analog gain\n in dB. ",
			want:        [helpLines]string{"Gain: Analog gain in dB. ", "''", "''", "''", "''", "''"},
		},
		{
			name:        "quoted characters",
			feature:     "Mode",
			description: `Use {a}, "b" or c\d`,
			want:        [helpLines]string{`Mode: Use \{a\}; \"b\" or c\\d `, "''", "''", "''", "''", "''"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpMacros(tt.feature, tt.description))
		})
	}
}

func TestHelpMacrosWrap(t *testing.T) {
	// Each word is 9 characters plus a separating space.
	words := strings.Repeat("abcdefghi ", 100)
	got := helpMacros("F", words)

	// "F: " plus 7 words is 73 characters; the 8th word would pass 80.
	assert.Equal(t, "F: "+strings.Repeat("abcdefghi ", 7), got[0])
	for i := 1; i < helpLines; i++ {
		assert.Equal(t, strings.Repeat("abcdefghi ", 8), got[i], "line %d", i)
	}
}

package edl

import (
	"strings"
	"unicode/utf8"
)

// helpLines is the number of desc macros the help screen displays.
const helpLines = 6

// helpLineLen is the length a help line may reach before the next word
// starts a new line.
const helpLineLen = 80

// helpMacros splits a feature description into the desc0..desc5 macro
// values of the help screen. The first line starts with "<feature>: ".
// Words that do not fit on the last line are dropped.
func helpMacros(feature, description string) [helpLines]string {
	var lines [helpLines]string
	lines[0] = feature + ": "

	i := 0
	for _, word := range strings.Fields(description) {
		if utf8.RuneCountInString(lines[i])+utf8.RuneCountInString(word) > helpLineLen {
			i++
			if i >= helpLines {
				break
			}
		}
		lines[i] += word + " "
	}

	for i, line := range lines {
		if line == "" {
			lines[i] = "''"
			continue
		}
		lines[i] = quoteMacro(line)
	}
	return lines
}

// macroEscaper escapes the characters EDM treats specially in a macro
// value, drops line breaks and turns commas, which separate macros, into
// semicolons.
var macroEscaper = strings.NewReplacer(
	`\`, `\\`,
	`{`, `\{`,
	`}`, `\}`,
	`"`, `\"`,
	"\n", "",
	",", ";",
)

func quoteMacro(s string) string {
	return macroEscaper.Replace(s)
}

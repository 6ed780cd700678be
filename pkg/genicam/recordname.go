package genicam

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// RecordPrefix keeps generated records apart from the areaDetector base
	// records (ADBase.template) that share the same $(P)$(R) prefix.
	RecordPrefix = "GC_"

	// MaxRecordNameLen is the longest record name suffix produced.
	MaxRecordNameLen = 20

	// abbrevLen is the length words are shortened to.
	abbrevLen = 3
)

// wordPattern splits a camel-case identifier into words: a letter followed
// by any run of characters that are not upper-case letters.
var wordPattern = regexp.MustCompile(`[a-zA-Z][^A-Z]*`)

// RecordNamer assigns unique record names. The zero value is not usable;
// create one with NewRecordNamer.
type RecordNamer struct {
	used map[string]bool
}

// NewRecordNamer creates a namer with no names taken.
func NewRecordNamer() *RecordNamer {
	return &RecordNamer{used: make(map[string]bool)}
}

// Assign derives the record name for a feature and reserves it.
//
// The name is RecordPrefix+feature, shortened to MaxRecordNameLen by
// abbreviating words to three characters from the left, then by truncation.
// A name already taken gets a numeric suffix overwriting its last
// characters, trying 0, 1, 2... until it is free.
func (r *RecordNamer) Assign(feature string) string {
	name := Abbreviate(RecordPrefix + feature)

	for i := 0; r.used[name]; i++ {
		suffix := strconv.Itoa(i)
		keep := len(name) - len(suffix)
		if keep < 0 {
			keep = 0
		}
		name = name[:keep] + suffix
	}

	r.used[name] = true
	return name
}

// Taken reports whether name has been assigned.
func (r *RecordNamer) Taken(name string) bool {
	return r.used[name]
}

// Abbreviate shortens name to at most MaxRecordNameLen bytes without
// checking for collisions.
func Abbreviate(name string) string {
	if len(name) <= MaxRecordNameLen {
		return name
	}

	words := wordPattern.FindAllString(name, -1)
	for i, word := range words {
		if len(word) <= abbrevLen {
			continue
		}
		words[i] = word[:abbrevLen]
		name = strings.Join(words, "")
		if len(name) <= MaxRecordNameLen {
			break
		}
	}

	if len(name) > MaxRecordNameLen {
		name = name[:MaxRecordNameLen]
	}
	return name
}

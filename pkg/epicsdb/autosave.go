package epicsdb

import "strings"

// fieldSet selects the autosave field list of a record family.
type fieldSet int

const (
	analogFields fieldSet = iota
	binaryFields
	longFields
	multiBitFields
	stringFields
)

// autosaveFields lists, per record family, the fields restored from a saved
// snapshot on IOC start. Output records additionally restore PINI and VAL.
var autosaveFields = map[fieldSet][]string{
	analogFields:   {"DESC", "LOLO", "LOW", "HIGH", "HIHI", "LLSV", "LSV", "HSV", "HHSV", "EGU", "TSE", "PREC"},
	binaryFields:   {"DESC", "ZSV", "OSV", "TSE"},
	longFields:     {"DESC", "LOLO", "LOW", "HIGH", "HIHI", "LLSV", "LSV", "HSV", "HHSV", "EGU", "TSE"},
	multiBitFields: {"DESC", "ZRSV", "ONSV", "TWSV", "THSV", "FRSV", "FVSV", "SXSV", "SVSV", "EISV", "NISV", "TESV", "ELSV", "TVSV", "TTSV", "FTSV", "FFSV", "TSE"},
	stringFields:   {"DESC", "TSE"},
}

// outputAutosave is appended for demand records.
var outputAutosave = []string{"PINI", "VAL"}

func (s fieldSet) input() string {
	return strings.Join(autosaveFields[s], " ")
}

func (s fieldSet) output() string {
	return strings.Join(append(append([]string(nil), autosaveFields[s]...), outputAutosave...), " ")
}

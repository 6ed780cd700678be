// Package structure flattens the GenICam category graph into screen
// sections.
//
// Categories reference features and other categories through pFeature
// elements. The reference graph may share sub-categories or contain cycles;
// flattening visits every category once, depth first, and places every
// feature in exactly one Section.
package structure

import (
	"fmt"
	"strconv"

	"github.com/adgenicam/gcgen/pkg/genicam"
	"github.com/adgenicam/gcgen/pkg/log"
)

// MaxSectionFeatures bounds the features of one Section. Larger categories
// are split into numbered sections.
const MaxSectionFeatures = 32

// Section is a titled group of features shown as one box on the screen.
type Section struct {
	Title    string
	Features []*genicam.Node
}

// Flatten expands every category of idx, in document order, into sections.
func Flatten(idx *genicam.Index, logger log.Logger) []Section {
	f := &flattener{
		idx:     idx,
		logger:  log.OrNoop(logger),
		visited: make(map[string]bool),
		placed:  make(map[*genicam.Node]bool),
	}
	for _, category := range idx.Categories() {
		f.expand(category)
	}
	return f.sections
}

// Features returns the features of sections in placement order.
func Features(sections []Section) []*genicam.Node {
	var out []*genicam.Node
	for _, s := range sections {
		out = append(out, s.Features...)
	}
	return out
}

type flattener struct {
	idx      *genicam.Index
	logger   log.Logger
	visited  map[string]bool
	placed   map[*genicam.Node]bool
	sections []Section
}

func (f *flattener) expand(category string) {
	if f.visited[category] {
		return
	}
	f.visited[category] = true

	node, ok := f.idx.Lookup(category)
	if !ok {
		return
	}

	var features []*genicam.Node
	var subcategories []string
	for _, ref := range node.AllChildren("pFeature") {
		name := ref.Text()
		target, ok := f.idx.Lookup(name)
		if !ok {
			f.logger.Log(log.Event{
				Stage:    log.StageFlatten,
				Kind:     log.KindUnresolvedReference,
				Severity: log.SeverityWarning,
				Node:     name,
				Message:  fmt.Sprintf("Category %s references unknown feature %s", category, name),
			})
			continue
		}
		if target.Type() == genicam.TypeCategory {
			subcategories = append(subcategories, name)
			continue
		}
		if f.placed[target] {
			continue
		}
		f.placed[target] = true
		features = append(features, target)
	}

	f.add(category, features)

	for _, sub := range subcategories {
		f.expand(sub)
	}
}

// add appends the category's features as one section, or as sections
// title1, title2... of MaxSectionFeatures each when there are more.
func (f *flattener) add(title string, features []*genicam.Node) {
	if len(features) == 0 {
		return
	}
	if len(features) <= MaxSectionFeatures {
		f.sections = append(f.sections, Section{Title: title, Features: features})
		return
	}
	for i := 1; len(features) > 0; i++ {
		n := min(MaxSectionFeatures, len(features))
		f.sections = append(f.sections, Section{
			Title:    title + strconv.Itoa(i),
			Features: features[:n],
		})
		features = features[n:]
	}
}

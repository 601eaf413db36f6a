package jvsxml

import (
	"fmt"
	"slices"

	"github.com/heartmarshall/jbovlaste-export/internal/domain"
)

// Entry is one extracted valsi for a single language.
type Entry struct {
	Word       string
	Rafsi      []string
	Definition domain.Definition
}

// Extraction holds everything pulled from one export.
type Extraction struct {
	Entries []Entry
	// Experimental counts "experimental gismu" entries. They are not
	// extracted.
	Experimental int
}

// Extract pulls every valsi of type typ out of doc, in document order.
func Extract(doc *Document, typ string) Extraction {
	selected := doc.ValsiOfType(typ)

	res := Extraction{Entries: make([]Entry, 0, len(selected))}
	if typ == TypeGismu {
		res.Experimental = len(doc.ValsiOfType(TypeExperimentalGismu))
	}

	for _, v := range selected {
		res.Entries = append(res.Entries, extractEntry(doc, v))
	}

	return res
}

func extractEntry(doc *Document, v Valsi) Entry {
	rafsi := slices.Clone(v.Rafsi)
	if len(rafsi) == 0 {
		rafsi = []string{domain.NoRafsi}
	}

	definition, ok := v.Definition()
	if !ok {
		definition = domain.NoDefinition
	}

	notes := []string{domain.NoNotes}
	if text, ok := v.Notes(); ok {
		notes = SplitNotes(RewritePlaces(text))
	}

	glosses, _ := doc.GlossesFor(v.Word)

	return Entry{
		Word:  v.Word,
		Rafsi: rafsi,
		Definition: domain.Definition{
			PlaceStructure: RewritePlaces(definition),
			Notes:          notes,
			Glosses:        FormatGlosses(glosses),
		},
	}
}

// FormatGlosses renders gloss words for output. Plain glosses come first,
// sorted, followed by place-tagged glosses ("x1=word"), sorted. A sense
// tag is appended in parentheses. No glosses yields the placeholder.
func FormatGlosses(glosses []Gloss) []string {
	if len(glosses) == 0 {
		return []string{domain.NoGlosses}
	}

	var plain, placed []string
	for _, g := range glosses {
		s := g.Word
		if sense, ok := g.Sense(); ok {
			s = fmt.Sprintf("%s (%s)", s, sense)
		}
		if place, ok := g.Place(); ok {
			placed = append(placed, fmt.Sprintf("x%s=%s", place, s))
		} else {
			plain = append(plain, s)
		}
	}

	slices.Sort(plain)
	slices.Sort(placed)

	return append(plain, placed...)
}

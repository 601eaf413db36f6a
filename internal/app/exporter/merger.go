package exporter

import (
	"maps"
	"slices"
	"strings"

	"github.com/heartmarshall/jbovlaste-export/internal/app/exporter/jvsxml"
	"github.com/heartmarshall/jbovlaste-export/internal/domain"
)

// Merger accumulates per-language entries into one record per word.
// Not safe for concurrent use.
type Merger struct {
	records map[string]*domain.Record
	stats   map[string]int
}

// NewMerger creates an empty Merger.
func NewMerger() *Merger {
	return &Merger{
		records: make(map[string]*domain.Record),
		stats:   make(map[string]int),
	}
}

// Add merges one extracted entry for lang. The first language to introduce
// a word fixes its rafsi; the language slot is overwritten on every call.
func (m *Merger) Add(lang string, e jvsxml.Entry) {
	rec, ok := m.records[e.Word]
	if !ok {
		rec = &domain.Record{
			Word:        e.Word,
			Rafsi:       slices.Clone(e.Rafsi),
			Examples:    domain.NoExamples,
			Definitions: make(map[string]domain.Definition),
		}
		m.records[e.Word] = rec
	}

	rec.Definitions[lang] = e.Definition
	m.stats[lang]++
}

// Len returns the number of distinct words merged so far.
func (m *Merger) Len() int {
	return len(m.records)
}

// Stats returns the number of entries processed per language.
func (m *Merger) Stats() map[string]int {
	return maps.Clone(m.stats)
}

// Records returns a snapshot of all records sorted by word. Mutating the
// snapshot does not affect the merger.
func (m *Merger) Records() []domain.Record {
	out := make([]domain.Record, 0, len(m.records))
	for _, rec := range m.records {
		r := *rec
		r.Rafsi = slices.Clone(rec.Rafsi)
		r.Definitions = maps.Clone(rec.Definitions)
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b domain.Record) int {
		return strings.Compare(a.Word, b.Word)
	})
	return out
}

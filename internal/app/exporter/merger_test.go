package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jbovlaste-export/internal/app/exporter/jvsxml"
	"github.com/heartmarshall/jbovlaste-export/internal/domain"
)

func entry(word string, rafsi []string, placeStructure string) jvsxml.Entry {
	return jvsxml.Entry{
		Word:  word,
		Rafsi: rafsi,
		Definition: domain.Definition{
			PlaceStructure: placeStructure,
			Notes:          []string{domain.NoNotes},
			Glosses:        []string{domain.NoGlosses},
		},
	}
}

func TestMerger_FirstLanguageFixesRafsi(t *testing.T) {
	m := NewMerger()
	m.Add("en", entry("klama", []string{"kla"}, "x1 goes"))
	m.Add("jbo", entry("klama", []string{domain.NoRafsi}, "x1 klama"))

	recs := m.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, "klama", recs[0].Word)
	assert.Equal(t, []string{"kla"}, recs[0].Rafsi)
	assert.Equal(t, domain.NoExamples, recs[0].Examples)
	assert.Equal(t, "x1 goes", recs[0].Definitions["en"].PlaceStructure)
	assert.Equal(t, "x1 klama", recs[0].Definitions["jbo"].PlaceStructure)
}

func TestMerger_LastWriteWins(t *testing.T) {
	m := NewMerger()
	m.Add("en", entry("klama", []string{"kla"}, "first"))
	m.Add("en", entry("klama", []string{"kla"}, "second"))

	recs := m.Records()
	require.Len(t, recs, 1)
	assert.Len(t, recs[0].Definitions, 1)
	assert.Equal(t, "second", recs[0].Definitions["en"].PlaceStructure)
}

func TestMerger_SameExportTwiceIsIdempotent(t *testing.T) {
	entries := []jvsxml.Entry{
		entry("bangu", []string{"bau"}, "x1 is a language"),
		entry("klama", []string{"kla"}, "x1 goes"),
	}

	once := NewMerger()
	for _, e := range entries {
		once.Add("en", e)
	}

	twice := NewMerger()
	for range 2 {
		for _, e := range entries {
			twice.Add("en", e)
		}
	}

	assert.Equal(t, once.Records(), twice.Records())
	assert.Equal(t, 2, once.Stats()["en"])
	assert.Equal(t, 4, twice.Stats()["en"])
}

func TestMerger_RecordsSortedAndDetached(t *testing.T) {
	m := NewMerger()
	m.Add("en", entry("mlatu", []string{"lat"}, "cat"))
	m.Add("en", entry("bangu", []string{"bau"}, "language"))
	m.Add("fr", entry("klama", []string{"kla"}, "aller"))

	recs := m.Records()
	require.Len(t, recs, 3)
	assert.Equal(t, "bangu", recs[0].Word)
	assert.Equal(t, "klama", recs[1].Word)
	assert.Equal(t, "mlatu", recs[2].Word)
	assert.Equal(t, 3, m.Len())

	recs[0].Definitions["xx"] = domain.Definition{}
	recs[0].Rafsi[0] = "changed"

	again := m.Records()
	assert.NotContains(t, again[0].Definitions, "xx")
	assert.Equal(t, []string{"bau"}, again[0].Rafsi)
}

func TestMerger_Stats(t *testing.T) {
	m := NewMerger()
	m.Add("en", entry("a", nil, ""))
	m.Add("en", entry("b", nil, ""))
	m.Add("jbo", entry("a", nil, ""))

	stats := m.Stats()
	assert.Equal(t, map[string]int{"en": 2, "jbo": 1}, stats)

	stats["en"] = 100
	assert.Equal(t, 2, m.Stats()["en"])
}

// Package exporter turns jbovlaste exports into per-word YAML files.
// It runs strictly sequentially: locate, fetch, parse, extract+merge,
// write. Any error aborts the run.
package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/jbovlaste-export/internal/adapter/jbovlaste"
	"github.com/heartmarshall/jbovlaste-export/internal/app/exporter/jvsxml"
	"github.com/heartmarshall/jbovlaste-export/internal/domain"
)

// ExportLocator lists the available language exports.
type ExportLocator interface {
	Locate(ctx context.Context) ([]jbovlaste.ExportLink, error)
}

// ExportFetcher makes a language export available on local disk.
type ExportFetcher interface {
	Fetch(ctx context.Context, link jbovlaste.ExportLink) (jbovlaste.CachedExport, error)
}

// RecordWriter persists a merged record and returns where it went.
type RecordWriter interface {
	Write(rec domain.Record) (string, error)
}

// Summary reports the outcome of a run.
type Summary struct {
	Languages  []string
	Downloaded int
	Reused     int
	// Entries is the number of entries processed per language.
	Entries map[string]int
	// Experimental is the number of skipped experimental entries per language.
	Experimental map[string]int
	Records      int
	Written      int
	Duration     time.Duration
}

// Pipeline orchestrates a single export run.
type Pipeline struct {
	log       *slog.Logger
	locator   ExportLocator
	fetcher   ExportFetcher
	writer    RecordWriter
	valsiType string
}

// NewPipeline creates a new Pipeline extracting entries of valsiType.
func NewPipeline(log *slog.Logger, locator ExportLocator, fetcher ExportFetcher, writer RecordWriter, valsiType string) *Pipeline {
	return &Pipeline{
		log:       log,
		locator:   locator,
		fetcher:   fetcher,
		writer:    writer,
		valsiType: valsiType,
	}
}

// runState carries everything a run accumulates between phases.
type runState struct {
	links   []jbovlaste.ExportLink
	exports []jbovlaste.CachedExport
	docs    map[string]*jvsxml.Document
	merger  *Merger
	summary Summary
}

// Run executes every phase in order. Files written before a failure in the
// write phase stay on disk.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	st := &runState{
		docs:   make(map[string]*jvsxml.Document),
		merger: NewMerger(),
		summary: Summary{
			Experimental: make(map[string]int),
		},
	}

	phases := []struct {
		name string
		fn   func(context.Context, *runState) error
	}{
		{"locate", p.locate},
		{"fetch", p.fetch},
		{"parse", p.parse},
		{"extract", p.extract},
		{"write", p.write},
	}

	for _, ph := range phases {
		if err := ctx.Err(); err != nil {
			return st.summary, fmt.Errorf("%s: %w", ph.name, err)
		}

		phaseStart := time.Now()
		p.log.InfoContext(ctx, "starting phase", slog.String("phase", ph.name))

		if err := ph.fn(ctx, st); err != nil {
			return st.summary, fmt.Errorf("%s: %w", ph.name, err)
		}

		p.log.InfoContext(ctx, "phase completed",
			slog.String("phase", ph.name),
			slog.Duration("duration", time.Since(phaseStart)),
		)
	}

	st.summary.Duration = time.Since(start)
	p.log.InfoContext(ctx, "pipeline completed",
		slog.Int("languages", len(st.summary.Languages)),
		slog.Int("records", st.summary.Records),
		slog.Int("written", st.summary.Written),
		slog.Duration("duration", st.summary.Duration),
	)

	return st.summary, nil
}

func (p *Pipeline) locate(ctx context.Context, st *runState) error {
	links, err := p.locator.Locate(ctx)
	if err != nil {
		p.log.ErrorContext(ctx, "failed to download XML exports", slog.String("error", err.Error()))
		return err
	}

	st.links = links
	for _, l := range links {
		st.summary.Languages = append(st.summary.Languages, l.Lang)
	}
	p.log.InfoContext(ctx, "languages", slog.Any("langs", st.summary.Languages))
	return nil
}

func (p *Pipeline) fetch(ctx context.Context, st *runState) error {
	for _, link := range st.links {
		if err := ctx.Err(); err != nil {
			return err
		}

		exp, err := p.fetcher.Fetch(ctx, link)
		if err != nil {
			p.log.ErrorContext(ctx, "failed to download XML exports",
				slog.String("lang", link.Lang),
				slog.String("error", err.Error()),
			)
			return err
		}

		if exp.Reused {
			st.summary.Reused++
		} else {
			st.summary.Downloaded++
		}
		st.exports = append(st.exports, exp)
	}

	p.log.InfoContext(ctx, "exports ready",
		slog.Int("downloaded", st.summary.Downloaded),
		slog.Int("reused", st.summary.Reused),
	)
	return nil
}

func (p *Pipeline) parse(ctx context.Context, st *runState) error {
	for _, exp := range st.exports {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.log.InfoContext(ctx, "parsing", slog.String("lang", exp.Lang), slog.String("path", exp.Path))

		doc, err := parseFile(exp.Path)
		if err != nil {
			p.log.ErrorContext(ctx, "failed to parse import file",
				slog.String("lang", exp.Lang),
				slog.String("error", err.Error()),
			)
			return fmt.Errorf("lang %s: %w", exp.Lang, err)
		}
		st.docs[exp.Lang] = doc
	}
	return nil
}

func parseFile(path string) (*jvsxml.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	return jvsxml.Parse(f)
}

func (p *Pipeline) extract(ctx context.Context, st *runState) error {
	langs := make([]string, 0, len(st.docs))
	for lang := range st.docs {
		langs = append(langs, lang)
	}
	slices.Sort(langs)

	for _, lang := range langs {
		if err := ctx.Err(); err != nil {
			return err
		}

		res := jvsxml.Extract(st.docs[lang], p.valsiType)

		var letter rune
		for _, e := range res.Entries {
			if r, _ := utf8.DecodeRuneInString(e.Word); r != letter {
				letter = r
				p.log.DebugContext(ctx, "letter", slog.String("lang", lang), slog.String("letter", string(r)))
			}
			st.merger.Add(lang, e)
		}

		if res.Experimental > 0 {
			st.summary.Experimental[lang] = res.Experimental
			p.log.InfoContext(ctx, "experimental entries not exported",
				slog.String("lang", lang),
				slog.Int("count", res.Experimental),
			)
		}

		// The parsed tree is no longer needed.
		delete(st.docs, lang)
	}

	st.summary.Entries = st.merger.Stats()
	st.summary.Records = st.merger.Len()

	for _, lang := range langs {
		p.log.InfoContext(ctx, "entries processed",
			slog.String("lang", lang),
			slog.Int("count", st.summary.Entries[lang]),
		)
	}
	return nil
}

func (p *Pipeline) write(ctx context.Context, st *runState) error {
	for _, rec := range st.merger.Records() {
		if err := ctx.Err(); err != nil {
			return err
		}

		path, err := p.writer.Write(rec)
		if err != nil {
			p.log.ErrorContext(ctx, "failed to write record",
				slog.String("word", rec.Word),
				slog.Int("written", st.summary.Written),
				slog.String("error", err.Error()),
			)
			return fmt.Errorf("word %q: %w", rec.Word, err)
		}

		st.summary.Written++
		p.log.DebugContext(ctx, "record written", slog.String("word", rec.Word), slog.String("path", path))
	}
	return nil
}

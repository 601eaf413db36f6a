package jbovlaste

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ReservedLanguage is listed on the index page but never exported.
const ReservedLanguage = "test"

// ExportLink points at one language's XML export.
type ExportLink struct {
	Lang string
	Href string
}

// Getter fetches a resource relative to the service base URL.
type Getter interface {
	Get(ctx context.Context, ref string) (string, error)
}

// Locator discovers the per-language exports listed on the index page.
type Locator struct {
	client    Getter
	indexPath string
	log       *slog.Logger
}

// NewLocator creates a Locator reading the index page at indexPath.
func NewLocator(client Getter, indexPath string, logger *slog.Logger) *Locator {
	return &Locator{
		client:    client,
		indexPath: indexPath,
		log:       logger.With("component", "locator"),
	}
}

// Locate fetches the index page and returns its export links, one per
// language, sorted by language code.
func (l *Locator) Locate(ctx context.Context) ([]ExportLink, error) {
	page, err := l.client.Get(ctx, l.indexPath)
	if err != nil {
		return nil, fmt.Errorf("locate exports: %w", err)
	}

	links, err := ParseIndex(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("locate exports: %w", err)
	}

	l.log.InfoContext(ctx, "exports located", slog.Int("languages", len(links)))
	return links, nil
}

// ParseIndex extracts export links from the index page markup. Only the
// first link of each list item is considered, and it counts when its final
// query parameter carries a language code. The reserved "test" language is skipped; the first link
// seen for a language wins.
func ParseIndex(r io.Reader) ([]ExportLink, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse index page: %w", err)
	}

	seen := make(map[string]bool)
	var links []ExportLink

	doc.Find("li").Each(func(_ int, item *goquery.Selection) {
		href, ok := item.Find("a[href]").First().Attr("href")
		if !ok {
			return
		}
		lang, ok := langFromHref(href)
		if !ok || lang == ReservedLanguage || seen[lang] {
			return
		}
		seen[lang] = true
		links = append(links, ExportLink{Lang: lang, Href: href})
	})

	sort.Slice(links, func(i, j int) bool {
		return links[i].Lang < links[j].Lang
	})

	return links, nil
}

// langFromHref returns the value of the last query parameter of href,
// e.g. "en" for "export.html?type=xml&lang=en".
func langFromHref(href string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil || u.RawQuery == "" {
		return "", false
	}

	params := strings.Split(u.RawQuery, "&")
	_, value, ok := strings.Cut(params[len(params)-1], "=")
	if !ok {
		return "", false
	}

	lang, err := url.QueryUnescape(value)
	if err != nil {
		return "", false
	}
	lang = strings.TrimSpace(lang)

	return lang, lang != ""
}

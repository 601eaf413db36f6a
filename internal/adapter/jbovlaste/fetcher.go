package jbovlaste

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/jbovlaste-export/internal/config"
	"github.com/heartmarshall/jbovlaste-export/internal/domain"
)

// CachedExport is a language export available on local disk.
type CachedExport struct {
	Lang   string
	Path   string
	Reused bool
}

// Fetcher downloads language exports into a file cache. A cached file is
// reused whenever it exists; its age is not checked.
//
// Cache files hold the text returned by Client.Get, not the raw response
// bytes: they are always UTF-8 (invalid sequences replaced with U+FFFD) and
// NFC-normalized, whatever charset the server declared.
type Fetcher struct {
	client  Getter
	pattern string
	log     *slog.Logger
}

// NewFetcher creates a Fetcher. pattern must contain config.LangPlaceholder.
func NewFetcher(client Getter, pattern string, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client:  client,
		pattern: pattern,
		log:     logger.With("component", "fetcher"),
	}
}

// CachePath returns where the export for lang is stored.
func (f *Fetcher) CachePath(lang string) string {
	return strings.ReplaceAll(f.pattern, config.LangPlaceholder, lang)
}

// Fetch makes the export behind link available locally, downloading it only
// when no cached copy exists.
func (f *Fetcher) Fetch(ctx context.Context, link ExportLink) (CachedExport, error) {
	if !domain.SafeFileName(link.Lang) {
		return CachedExport{}, fmt.Errorf("fetch export: %w", domain.NewValidationError("lang", fmt.Sprintf("unusable language code %q", link.Lang)))
	}

	path := f.CachePath(link.Lang)
	result := CachedExport{Lang: link.Lang, Path: path}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return CachedExport{}, fmt.Errorf("fetch export %s: cache path %s is a directory", link.Lang, path)
	case err == nil:
		f.log.InfoContext(ctx, "file exists", slog.String("lang", link.Lang), slog.String("path", path))
		result.Reused = true
		return result, nil
	case !errors.Is(err, fs.ErrNotExist):
		return CachedExport{}, fmt.Errorf("fetch export %s: stat cache: %w", link.Lang, err)
	}

	f.log.InfoContext(ctx, "downloading", slog.String("lang", link.Lang), slog.String("href", link.Href))

	body, err := f.client.Get(ctx, link.Href)
	if err != nil {
		return CachedExport{}, fmt.Errorf("fetch export %s: %w", link.Lang, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return CachedExport{}, fmt.Errorf("fetch export %s: create cache dir: %w", link.Lang, err)
		}
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return CachedExport{}, fmt.Errorf("fetch export %s: write cache: %w", link.Lang, err)
	}

	return result, nil
}

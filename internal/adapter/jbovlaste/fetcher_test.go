package jbovlaste

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jbovlaste-export/internal/domain"
)

func TestFetcher_CachePath(t *testing.T) {
	t.Parallel()

	f := NewFetcher(nil, "xml/{lang}-xml-export.html", newTestLogger())
	assert.Equal(t, "xml/jbo-xml-export.html", f.CachePath("jbo"))
}

func TestFetcher_Fetch_Downloads(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		assert.Equal(t, testCookie, r.Header.Get("Cookie"))
		w.Write([]byte("<dictionary></dictionary>"))
	}))
	defer srv.Close()

	pattern := filepath.Join(t.TempDir(), "xml", "{lang}-xml-export.html")
	f := NewFetcher(newTestClient(t, srv.URL+"/export/"), pattern, newTestLogger())

	got, err := f.Fetch(context.Background(), ExportLink{Lang: "en", Href: "xml-export.html?lang=en"})
	require.NoError(t, err)

	assert.False(t, got.Reused)
	assert.Equal(t, "en", got.Lang)
	assert.Equal(t, int32(1), hits.Load())

	content, err := os.ReadFile(got.Path)
	require.NoError(t, err)
	assert.Equal(t, "<dictionary></dictionary>", string(content))
}

func TestFetcher_Fetch_ReusesCacheWithoutNetwork(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("fresh"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	pattern := filepath.Join(dir, "{lang}-xml-export.html")
	cached := filepath.Join(dir, "en-xml-export.html")
	require.NoError(t, os.WriteFile(cached, []byte("stale"), 0o644))

	f := NewFetcher(newTestClient(t, srv.URL+"/"), pattern, newTestLogger())
	got, err := f.Fetch(context.Background(), ExportLink{Lang: "en", Href: "xml-export.html?lang=en"})
	require.NoError(t, err)

	assert.True(t, got.Reused)
	assert.Equal(t, cached, got.Path)
	assert.Zero(t, hits.Load(), "no request expected for a cached export")

	content, err := os.ReadFile(cached)
	require.NoError(t, err)
	assert.Equal(t, "stale", string(content))
}

func TestFetcher_Fetch_UpstreamErrorWritesNothing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	pattern := filepath.Join(t.TempDir(), "{lang}.html")
	f := NewFetcher(newTestClient(t, srv.URL+"/"), pattern, newTestLogger())

	_, err := f.Fetch(context.Background(), ExportLink{Lang: "fr", Href: "x?lang=fr"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)

	_, statErr := os.Stat(f.CachePath("fr"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetcher_Fetch_RejectsPathLikeLanguage(t *testing.T) {
	t.Parallel()

	f := NewFetcher(nil, filepath.Join(t.TempDir(), "{lang}.html"), newTestLogger())

	for _, lang := range []string{"", "..", "../etc", `a\b`, "en\x00", "\xff"} {
		_, err := f.Fetch(context.Background(), ExportLink{Lang: lang})
		assert.ErrorIs(t, err, domain.ErrValidation, "lang %q", lang)
	}
}

func TestFetcher_Fetch_CachesNormalizedText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"declared latin-1", "text/xml; charset=ISO-8859-1", "caf\xe9"},
		{"decomposed utf-8", "text/xml", "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			pattern := filepath.Join(t.TempDir(), "{lang}.html")
			f := NewFetcher(newTestClient(t, srv.URL+"/"), pattern, newTestLogger())

			got, err := f.Fetch(context.Background(), ExportLink{Lang: "fr", Href: "x?lang=fr"})
			require.NoError(t, err)

			content, err := os.ReadFile(got.Path)
			require.NoError(t, err)
			assert.Equal(t, "café", string(content))
		})
	}
}

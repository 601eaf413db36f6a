// Package jbovlaste talks to the jbovlaste export service: it locates the
// per-language XML exports on the index page and downloads them into a
// local cache. Every request carries the operator's session cookie.
package jbovlaste

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/jbovlaste-export/internal/domain"
)

// Client performs authenticated GET requests against the export service.
type Client struct {
	baseURL    *url.URL
	cookie     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client rooted at baseURL. A zero timeout leaves the
// transport defaults in place.
func NewClient(baseURL, cookie string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("jbovlaste: parse base url: %w", err)
	}

	return &Client{
		baseURL:    u,
		cookie:     cookie,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "jbovlaste"),
	}, nil
}

// Get fetches ref (resolved against the base URL) and returns the body
// decoded to NFC-normalized UTF-8.
func (c *Client) Get(ctx context.Context, ref string) (string, error) {
	target, err := c.resolve(ref)
	if err != nil {
		return "", err
	}

	c.log.DebugContext(ctx, "jbovlaste request", slog.String("url", target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("jbovlaste: create request: %w", err)
	}
	req.Header.Set("Cookie", c.cookie)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("jbovlaste: GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("jbovlaste: %w", &domain.UpstreamError{URL: target, StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(decodeBody(resp.Body, resp.Header.Get("Content-Type")))
	if err != nil {
		return "", fmt.Errorf("jbovlaste: read body %s: %w", target, err)
	}

	text := norm.NFC.String(strings.ToValidUTF8(string(body), "\uFFFD"))

	c.log.DebugContext(ctx, "jbovlaste response",
		slog.String("url", target),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(text)),
	)

	return text, nil
}

func (c *Client) resolve(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("jbovlaste: parse ref %q: %w", ref, err)
	}
	return c.baseURL.ResolveReference(u).String(), nil
}

// decodeBody converts r to UTF-8 when the Content-Type declares another
// charset. Without a declaration the payload is taken as UTF-8.
func decodeBody(r io.Reader, contentType string) io.Reader {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return r
	}
	enc, _ := charset.Lookup(params["charset"])
	if enc == nil {
		return r
	}
	return enc.NewDecoder().Reader(r)
}

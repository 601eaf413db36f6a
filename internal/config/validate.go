package config

import (
	"fmt"
	"net/url"
	"strings"
)

// LangPlaceholder marks where the language code goes in ExportConfig.CachePattern.
const LangPlaceholder = "{lang}"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.JVS.validate(); err != nil {
		return fmt.Errorf("jvs: %w", err)
	}

	if err := c.Export.validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

func (j *JVSConfig) validate() error {
	u, err := url.Parse(j.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be an http(s) URL (got %q)", j.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url must include a host (got %q)", j.BaseURL)
	}
	if strings.TrimSpace(j.IndexPath) == "" {
		return fmt.Errorf("index_path must not be empty")
	}
	if strings.TrimSpace(j.CookiePath) == "" {
		return fmt.Errorf("cookie_path must not be empty")
	}
	if j.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %v)", j.Timeout)
	}
	return nil
}

func (e *ExportConfig) validate() error {
	if !strings.Contains(e.CachePattern, LangPlaceholder) {
		return fmt.Errorf("cache_pattern must contain %s (got %q)", LangPlaceholder, e.CachePattern)
	}
	if strings.TrimSpace(e.OutputDir) == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if strings.TrimSpace(e.ValsiType) == "" {
		return fmt.Errorf("valsi_type must not be empty")
	}

	e.FavoredLanguages = ParseLanguageList(e.FavoredLanguagesRaw)

	return nil
}

// ParseLanguageList parses a comma-separated list of language codes
// (e.g. "en,jbo,de"). Blank items and repeats are dropped; an empty
// string returns a nil slice.
func ParseLanguageList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	langs := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		langs = append(langs, p)
	}

	return langs
}

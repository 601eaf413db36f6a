package config

import (
	"time"
)

// Config is the root exporter configuration.
type Config struct {
	JVS    JVSConfig    `yaml:"jvs"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

// JVSConfig holds settings for the jbovlaste export service.
type JVSConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"JVS_BASE_URL"    env-default:"http://jbovlaste.lojban.org/export/"`
	IndexPath  string        `yaml:"index_path"  env:"JVS_INDEX_PATH"  env-default:"xml.html"`
	CookiePath string        `yaml:"cookie_path" env:"JVS_COOKIE_PATH" env-default:"jvs_cookie.secret"`
	Timeout    time.Duration `yaml:"timeout"     env:"JVS_TIMEOUT"     env-default:"0s"`
}

// ExportConfig holds cache and output settings.
type ExportConfig struct {
	// CachePattern is the path of a cached export; "{lang}" is replaced by the language code.
	CachePattern string `yaml:"cache_pattern" env:"EXPORT_CACHE_PATTERN" env-default:"xml/{lang}-xml-export.html"`
	OutputDir    string `yaml:"output_dir"    env:"EXPORT_OUTPUT_DIR"    env-default:"gismu"`
	ValsiType    string `yaml:"valsi_type"    env:"EXPORT_VALSI_TYPE"    env-default:"gismu"`

	FavoredLanguagesRaw string `yaml:"favored_languages" env:"EXPORT_FAVORED_LANGUAGES" env-default:"en,jbo,de,es,fr,ru"`

	// FavoredLanguages is parsed from FavoredLanguagesRaw during validation.
	FavoredLanguages []string `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

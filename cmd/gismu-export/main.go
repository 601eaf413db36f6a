// Command gismu-export downloads the jbovlaste XML exports for every
// language and writes one YAML file per gismu, merged across languages.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment. The session cookie is read from jvs.cookie_path.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/jbovlaste-export/internal/adapter/jbovlaste"
	"github.com/heartmarshall/jbovlaste-export/internal/adapter/yamlstore"
	"github.com/heartmarshall/jbovlaste-export/internal/app"
	"github.com/heartmarshall/jbovlaste-export/internal/app/exporter"
	"github.com/heartmarshall/jbovlaste-export/internal/config"
)

// Compile-time interface assertions.
var (
	_ exporter.ExportLocator = (*jbovlaste.Locator)(nil)
	_ exporter.ExportFetcher = (*jbovlaste.Fetcher)(nil)
	_ exporter.RecordWriter  = (*yamlstore.Writer)(nil)
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting gismu export", slog.String("version", app.BuildVersion()))

	cookie, err := jbovlaste.ReadCookie(cfg.JVS.CookiePath)
	if err != nil {
		logger.Error("failed to read cookie", slog.String("path", cfg.JVS.CookiePath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	client, err := jbovlaste.NewClient(cfg.JVS.BaseURL, cookie, cfg.JVS.Timeout, logger)
	if err != nil {
		logger.Error("create jbovlaste client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := exporter.NewPipeline(
		logger,
		jbovlaste.NewLocator(client, cfg.JVS.IndexPath, logger),
		jbovlaste.NewFetcher(client, cfg.Export.CachePattern, logger),
		yamlstore.NewWriter(cfg.Export.OutputDir, cfg.Export.FavoredLanguages),
		cfg.Export.ValsiType,
	)

	sum, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("pipeline failed", slog.Int("written", sum.Written), slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}

	logger.Info("export completed successfully",
		slog.Int("records", sum.Records),
		slog.String("output_dir", cfg.Export.OutputDir),
	)
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/qx-labs/deepcite/internal/cache"
	"github.com/qx-labs/deepcite/internal/citation"
	"github.com/qx-labs/deepcite/internal/ingest"
	"github.com/qx-labs/deepcite/internal/ledger"
	"github.com/qx-labs/deepcite/internal/model"
)

// activeConfig merges viper overrides onto the built-in defaults.
func activeConfig() (model.Config, error) {
	cfg := model.DefaultConfig()

	if s := viper.GetString("format"); s != "" {
		format, err := model.ParseCitationFormat(s)
		if err != nil {
			return cfg, err
		}
		cfg.Format = format
	}
	if viper.IsSet("high_credibility_threshold") {
		cfg.HighCredibilityThreshold = viper.GetFloat64("high_credibility_threshold")
	}
	if viper.IsSet("recent_window_days") {
		cfg.RecentWindowDays = viper.GetInt("recent_window_days")
	}
	if viper.IsSet("ingest.concurrency") {
		cfg.Ingest.Concurrency = viper.GetInt("ingest.concurrency")
	}
	return cfg, nil
}

// buildLedger loads a sources file and registers every entry, returning
// the populated ledger and a formatter over it.
func buildLedger(path string) (*ledger.Ledger, *citation.Formatter, error) {
	cfg, err := activeConfig()
	if err != nil {
		return nil, nil, err
	}

	inputs, err := ingest.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	led := ledger.New(cfg)
	batch := ingest.NewBatch(led, cfg.Ingest)
	for _, reg := range batch.Register(context.Background(), inputs) {
		if reg.Err != nil {
			return nil, nil, fmt.Errorf("register %s: %w", reg.URL, reg.Err)
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Registered %d sources from %s\n", led.Len(), path)
	}

	formatter := citation.NewFormatter(led, led.DefaultFormat())
	if cfg.Cache.Enabled {
		formatter.UseCache(cache.NewRenderCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval))
	}
	return led, formatter, nil
}

// flagFormat resolves a --format flag value, empty meaning the default.
func flagFormat(s string) (model.CitationFormat, error) {
	if s == "" {
		return "", nil
	}
	return model.ParseCitationFormat(s)
}

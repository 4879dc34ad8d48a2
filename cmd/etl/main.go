package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/salesbridge/internal/extract"
	"github.com/angelmondragon/salesbridge/internal/load"
	"github.com/angelmondragon/salesbridge/internal/pipeline"
	"github.com/angelmondragon/salesbridge/pkg/config"
	"github.com/angelmondragon/salesbridge/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "etl"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "etl",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	p, err := pipeline.New(pipeline.Params{
		Config: cfg.Pipeline,
		Files:  extract.NewFileExtractor(logg),
		API:    extract.NewAPIExtractor(logg, cfg.Pipeline.HTTPTimeout),
		Loader: load.NewLoader(cfg.Pipeline, logg),
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to build pipeline", err)
		os.Exit(1)
	}

	report := p.Run(context.Background())

	ctx := logg.WithFields(context.Background(), map[string]any{
		"run_id":      report.RunID,
		"csv_rows":    report.CSVRows,
		"api_rows":    report.APIRows,
		"merged_rows": report.MergedRows,
		"loaded_rows": report.LoadedRows,
		"loaded":      report.Loaded,
	})
	if report.Err != nil {
		// Stage failures are diagnostics, not crashes: the process still
		// exits normally.
		logg.Warn(logg.WithField(ctx, "error", report.Err.Error()), "run completed with failures")
		return
	}
	logg.Info(ctx, "run completed")
}

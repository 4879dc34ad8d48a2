package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/salesbridge/internal/fixture"
	"github.com/angelmondragon/salesbridge/pkg/config"
	"github.com/angelmondragon/salesbridge/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "fixture-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "fixture-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	catalog, err := fixture.LoadCatalog(cfg.Fixture)
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog", err)
		os.Exit(1)
	}

	ctx := logg.WithFields(context.Background(), map[string]any{
		"addr": cfg.Fixture.Addr,
		"rows": len(catalog),
	})
	logg.Info(ctx, "starting fixture api")

	server := &http.Server{
		Addr:    cfg.Fixture.Addr,
		Handler: fixture.NewRouter(catalog, logg),
	}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "fixture api stopped unexpectedly", err)
		os.Exit(1)
	}
}

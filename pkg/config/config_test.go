package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Pipeline.CSVPath != "online_sales.csv" {
		t.Fatalf("unexpected CSV path %q", cfg.Pipeline.CSVPath)
	}
	if cfg.Pipeline.DestTable != "master_sales" {
		t.Fatalf("unexpected destination table %q", cfg.Pipeline.DestTable)
	}
	if got := cfg.Pipeline.HTTPTimeout; got != 10*time.Second {
		t.Fatalf("expected http timeout 10s, got %v", got)
	}
	if !cfg.App.IsDev() {
		t.Fatalf("expected default env to be development, got %q", cfg.App.Env)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvCSVPath, "/var/data/sales.csv")
	t.Setenv(EnvTable, "merged_sales")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected production env, got %q", cfg.App.Env)
	}
	if cfg.Pipeline.CSVPath != "/var/data/sales.csv" {
		t.Fatalf("unexpected CSV path %q", cfg.Pipeline.CSVPath)
	}
	if cfg.Pipeline.DestTable != "merged_sales" {
		t.Fatalf("unexpected destination table %q", cfg.Pipeline.DestTable)
	}
}

func TestLoad_RejectsBlankTable(t *testing.T) {
	t.Setenv(EnvTable, "   ")

	if _, err := Load(); err == nil {
		t.Fatal("expected blank destination table to return an error")
	}
}

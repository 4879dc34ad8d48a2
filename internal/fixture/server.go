// Package fixture is a local stand-in for the in-store products API. It
// serves the same JSON array shape the pipeline's API extractor consumes, so
// a full run can be exercised without the real endpoint.
package fixture

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/salesbridge/pkg/config"
	"github.com/angelmondragon/salesbridge/pkg/logger"
)

// Product is one catalog entry served by the fixture.
type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
}

var defaultCatalog = []Product{
	{ID: 1, Title: "Widget", Price: 5.00, Category: "hardware"},
	{ID: 2, Title: "Sprocket", Price: 12.25, Category: "hardware"},
	{ID: 3, Title: "Gizmo", Price: 3.10, Category: "novelty"},
}

// LoadCatalog reads the seed file when configured, falling back to the
// built-in catalog.
func LoadCatalog(cfg config.FixtureConfig) ([]Product, error) {
	if cfg.SeedPath == "" {
		return defaultCatalog, nil
	}
	data, err := os.ReadFile(cfg.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", cfg.SeedPath, err)
	}
	var catalog []Product
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", cfg.SeedPath, err)
	}
	return catalog, nil
}

// NewRouter builds the fixture's HTTP surface.
func NewRouter(catalog []Product, logg *logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/products", func(w http.ResponseWriter, req *http.Request) {
		ctx := logg.WithFields(req.Context(), map[string]any{
			"path": req.URL.Path,
			"rows": len(catalog),
		})
		logg.Info(ctx, "serving product catalog")
		writeJSON(w, http.StatusOK, catalog)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

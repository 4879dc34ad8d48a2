// Package pipeline wires the extract, transform, and load stages into the
// single straight-line run the process performs. The only failure rule is
// that an absent upstream result makes every downstream stage a reported
// no-op; the run itself always completes.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/angelmondragon/salesbridge/internal/extract"
	"github.com/angelmondragon/salesbridge/internal/transform"
	"github.com/angelmondragon/salesbridge/pkg/config"
	"github.com/angelmondragon/salesbridge/pkg/db/models"
	"github.com/angelmondragon/salesbridge/pkg/logger"
)

type fileExtractor interface {
	Extract(ctx context.Context, path string) extract.Result[extract.RawSale]
}

type apiExtractor interface {
	Extract(ctx context.Context, url string) extract.Result[extract.RawProduct]
}

type loader interface {
	Load(ctx context.Context, rows []models.SaleRecord) (int, error)
}

// Params collects the pipeline's collaborators.
type Params struct {
	Config config.PipelineConfig
	Files  fileExtractor
	API    apiExtractor
	Loader loader
	Logger *logger.Logger
	Now    func() time.Time
}

// Pipeline runs the full extract-transform-load sequence once per Run call.
type Pipeline struct {
	cfg    config.PipelineConfig
	files  fileExtractor
	api    apiExtractor
	loader loader
	log    *logger.Logger
	now    func() time.Time
}

// New builds a pipeline from its collaborators.
func New(params Params) (*Pipeline, error) {
	if params.Files == nil {
		return nil, fmt.Errorf("file extractor required")
	}
	if params.API == nil {
		return nil, fmt.Errorf("api extractor required")
	}
	if params.Loader == nil {
		return nil, fmt.Errorf("loader required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		cfg:    params.Config,
		files:  params.Files,
		api:    params.API,
		loader: params.Loader,
		log:    params.Logger,
		now:    now,
	}, nil
}

// RunReport summarizes one pipeline run. Err aggregates every stage
// diagnostic; a non-nil Err never aborts the process.
type RunReport struct {
	RunID      string
	CSVRows    int
	APIRows    int
	MergedRows int
	LoadedRows int
	Loaded     bool
	Err        error
}

// Run executes extract, transform, and load in sequence and reports what
// happened. Stages run synchronously; each one finishes before the next
// starts.
func (p *Pipeline) Run(ctx context.Context) RunReport {
	report := RunReport{RunID: uuid.NewString()}
	ctx = p.log.WithRunID(ctx, report.RunID)
	p.log.Info(ctx, "pipeline run starting")

	extractCtx := p.log.WithStage(ctx, "extract")
	salesRes := p.files.Extract(extractCtx, p.cfg.CSVPath)
	report.CSVRows = salesRes.Count()

	productsRes := p.api.Extract(extractCtx, p.cfg.APIURL)
	report.APIRows = productsRes.Count()

	transformCtx := p.log.WithStage(ctx, "transform")
	merged := transform.Merge(salesRes, productsRes, p.now())
	if merged.Absent() {
		report.Err = merged.Err()
		p.log.Warn(transformCtx, "transform skipped: no data from extraction")
		p.log.Warn(p.log.WithStage(ctx, "load"), "load skipped: nothing to persist")
		p.log.Info(ctx, "pipeline run finished")
		return report
	}
	report.MergedRows = merged.Count()
	p.log.Info(p.log.WithField(transformCtx, "rows", merged.Count()), "transform complete")

	loaded, err := p.loader.Load(ctx, merged.Rows())
	if err != nil {
		report.Err = multierr.Append(report.Err, err)
	} else {
		report.Loaded = true
		report.LoadedRows = loaded
	}

	p.log.Info(ctx, "pipeline run finished")
	return report
}

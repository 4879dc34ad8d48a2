package load

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/angelmondragon/salesbridge/pkg/config"
	"github.com/angelmondragon/salesbridge/pkg/db"
	"github.com/angelmondragon/salesbridge/pkg/db/models"
	pkgerrors "github.com/angelmondragon/salesbridge/pkg/errors"
	"github.com/angelmondragon/salesbridge/pkg/logger"
)

// Opener acquires the destination store connection. It is called once per
// load and the connection is released before Load returns.
type Opener func(ctx context.Context) (*db.Client, error)

// Loader replaces the destination table's contents with a merged record set.
type Loader struct {
	open  Opener
	table string
	log   *logger.Logger
}

// Option configures optional loader behavior.
type Option func(*Loader)

// WithOpener overrides how the destination store is opened. Tests point this
// at an in-memory database.
func WithOpener(open Opener) Option {
	return func(l *Loader) {
		if open != nil {
			l.open = open
		}
	}
}

// NewLoader builds a loader bound to the configured SQLite file and table.
func NewLoader(cfg config.PipelineConfig, logg *logger.Logger, opts ...Option) *Loader {
	l := &Loader{
		open: func(ctx context.Context) (*db.Client, error) {
			return db.Open(ctx, cfg.DBPath, logg)
		},
		table: cfg.DestTable,
		log:   logg,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Load drops and recreates the destination table, then inserts every row,
// all inside one transaction. The row count is returned on success. Any
// persistence error is reported as a coded failure, never a crash.
func (l *Loader) Load(ctx context.Context, rows []models.SaleRecord) (int, error) {
	ctx = l.log.WithFields(ctx, map[string]any{"stage": "load", "table": l.table})
	l.log.Info(ctx, "replacing destination table")

	client, err := l.open(ctx)
	if err != nil {
		failure := pkgerrors.Wrap(pkgerrors.CodePersistence, err, "opening destination store")
		l.log.Error(ctx, "failed to open destination store", err)
		return 0, failure
	}
	defer func() {
		if err := client.Close(); err != nil {
			l.log.Warn(ctx, fmt.Sprintf("error closing destination store: %v", err))
		}
	}()

	err = client.WithTx(ctx, func(tx *gorm.DB) error {
		migrator := tx.Table(l.table).Migrator()
		if migrator.HasTable(l.table) {
			if err := migrator.DropTable(l.table); err != nil {
				return fmt.Errorf("dropping table %s: %w", l.table, err)
			}
		}
		if err := tx.Table(l.table).AutoMigrate(&models.SaleRecord{}); err != nil {
			return fmt.Errorf("creating table %s: %w", l.table, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Table(l.table).Create(&rows).Error; err != nil {
			return fmt.Errorf("inserting %d rows into %s: %w", len(rows), l.table, err)
		}
		return nil
	})
	if err != nil {
		failure := pkgerrors.Wrap(pkgerrors.CodePersistence, err, fmt.Sprintf("replacing table %s", l.table))
		l.log.Error(ctx, "failed to replace destination table", err)
		return 0, failure
	}

	l.log.Info(l.log.WithField(ctx, "rows", len(rows)), "destination table replaced")
	return len(rows), nil
}

// Package app drives the export pipelines: resolve series metadata,
// download game data, flatten it, and hand the records back for CSV
// writing. Control flow is strictly sequential; nothing is shared
// across runs.
package app

import (
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/grid-esports-engineering/gridDataPortalResources/internal/adapters/grid"
	"github.com/grid-esports-engineering/gridDataPortalResources/internal/adapters/valorantapi"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/logger"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// App wires the vendor clients into the two export pipelines.
type App struct {
	log    logger.Logger
	grid   *grid.Client
	valapi *valorantapi.Client
	met    *metrics.Manager
}

// Option applies a configuration option to the App.
type Option func(*App)

// WithLogger sets the pipeline logger.
func WithLogger(l logger.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// WithGridClient sets the GRID data portal client.
func WithGridClient(c *grid.Client) Option {
	return func(a *App) {
		a.grid = c
	}
}

// WithValorantAPI sets the valorant-api.com reference client, required
// only for Valorant runs.
func WithValorantAPI(c *valorantapi.Client) Option {
	return func(a *App) {
		a.valapi = c
	}
}

// WithMetrics sets the run metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(a *App) {
		a.met = m
	}
}

// New builds an App.
func New(opts ...Option) (*App, error) {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}
	if a.grid == nil {
		return nil, ErrNoGridClient
	}
	if a.log == nil {
		a.log = logger.Named("app")
	}
	return a, nil
}

// Result is one run's flattened output, ready for the CSV writer.
type Result struct {
	RunID   uuid.UUID
	Header  []string
	Records [][]string
}

func (a *App) countRows(kind string, n int) {
	if a.met != nil && n > 0 {
		a.met.RowsEmitted(kind, n)
	}
}

func (a *App) gameFailed() {
	if a.met != nil {
		a.met.GameFailed()
	}
}

func (a *App) seriesDone() {
	if a.met != nil {
		a.met.SeriesProcessed()
	}
}

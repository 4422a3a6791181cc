// Command valflat exports flattened Valorant series statistics from the
// GRID data portal into a CSV file, resolving map and agent names
// through valorant-api.com.
package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/grid-esports-engineering/gridDataPortalResources/internal/adapters/csvout"
	"github.com/grid-esports-engineering/gridDataPortalResources/internal/adapters/grid"
	"github.com/grid-esports-engineering/gridDataPortalResources/internal/adapters/valorantapi"
	"github.com/grid-esports-engineering/gridDataPortalResources/internal/app"
	"github.com/grid-esports-engineering/gridDataPortalResources/internal/config"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/logger"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/metrics"
)

const defaultOutput = "valorant_data"

func main() {
	_ = godotenv.Load()

	tool := &cli.App{
		Name:  "valflat",
		Usage: "export flattened Valorant series stats from the GRID data portal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api-key", Usage: "GRID API key"},
			&cli.StringSliceFlag{Name: "series", Aliases: []string{"s"}, Usage: "series id to export (repeatable)"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output filename stem"},
			&cli.BoolFlag{Name: "no-date-suffix", Usage: "write to the bare stem without a timestamp"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, or error"},
		},
		Action: run,
	}

	if err := tool.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "valflat:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger.Init(nil)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if v := c.String("api-key"); v != "" {
		cfg.APIKey = v
	}
	if v := c.StringSlice("series"); len(v) > 0 {
		cfg.SeriesIDs = v
	}
	if v := c.String("output"); v != "" {
		cfg.Output = v
	}
	if cfg.Output == "" {
		cfg.Output = defaultOutput
	}
	if c.Bool("no-date-suffix") {
		cfg.DateSuffix = false
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.Named("valflat")
	met := metrics.New()

	gridc, err := grid.New(cfg.APIKey,
		grid.WithBaseURL(cfg.BaseURL),
		grid.WithRetryAttempts(cfg.RetryAttempts),
		grid.WithBackoff(time.Duration(cfg.RetryBackoffMS)*time.Millisecond),
		grid.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.RequestTimeoutMS) * time.Millisecond}),
		grid.WithLogger(log.Named("grid")),
		grid.WithMetrics(met),
	)
	if err != nil {
		return err
	}

	exporter, err := app.New(
		app.WithLogger(log),
		app.WithGridClient(gridc),
		app.WithValorantAPI(valorantapi.New()),
		app.WithMetrics(met),
	)
	if err != nil {
		return err
	}

	result, err := exporter.RunValorant(ctx, cfg.SeriesIDs)
	if err != nil {
		return err
	}

	path := csvout.Filename(cfg.Output, cfg.DateSuffix, time.Now())
	if err := csvout.Write(path, result.Header, result.Records); err != nil {
		return err
	}
	log.Info(ctx, "flat file written",
		logger.String("path", path),
		logger.Int("rows", len(result.Records)),
		logger.String("run_id", result.RunID.String()))

	met.LogSummary(ctx, log)
	return nil
}

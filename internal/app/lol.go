package app

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/grid-esports-engineering/gridDataPortalResources/internal/domain/lol"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/logger"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/metrics"
)

// scrimTournamentName is rewritten to a short label during metadata
// resolution so scrim exports group under one tournament.
const scrimTournamentName = "League of Legends Scrims"

// RunLoL exports every finished game of the given series as flattened
// League of Legends rows. A series whose metadata cannot be resolved is
// skipped; a game that fails to download or validate aborts the rest of
// that series, and the remaining series continue.
func (a *App) RunLoL(ctx context.Context, seriesIDs []string) (*Result, error) {
	runID := uuid.New()
	log := a.log.Named("lol")
	log.Info(ctx, "starting export run",
		logger.String("run_id", runID.String()),
		logger.Int("series", len(seriesIDs)))

	result := &Result{RunID: runID, Header: lol.FieldList()}
	for _, seriesID := range seriesIDs {
		series, err := a.lolSeriesMeta(ctx, seriesID)
		if err != nil {
			log.Warn(ctx, "skipping series, metadata fetch failed",
				logger.String("series_id", seriesID), logger.Error(err))
			continue
		}

		state, err := a.grid.SeriesState(ctx, seriesID)
		if err != nil {
			log.Warn(ctx, "skipping series, state fetch failed",
				logger.String("series_id", seriesID), logger.Error(err))
			continue
		}

		for _, game := range state.Games {
			if !game.Finished {
				log.Debug(ctx, "skipping unfinished game",
					logger.String("series_id", seriesID),
					logger.Int("game", game.SequenceNumber))
				continue
			}
			records, err := a.lolGame(ctx, log, seriesID, series, game.SequenceNumber)
			if err != nil {
				a.gameFailed()
				log.Error(ctx, "aborting series, game failed",
					logger.String("series_id", seriesID),
					logger.Int("game", game.SequenceNumber),
					logger.Error(err))
				break
			}
			result.Records = append(result.Records, records...)
		}
		a.seriesDone()
	}

	log.Info(ctx, "export run complete",
		logger.String("run_id", runID.String()),
		logger.Int("rows", len(result.Records)))
	return result, nil
}

// lolSeriesMeta resolves a series' tournament context from central data.
func (a *App) lolSeriesMeta(ctx context.Context, seriesID string) (lol.SeriesMeta, error) {
	info, err := a.grid.SeriesInfo(ctx, seriesID)
	if err != nil {
		return lol.SeriesMeta{}, err
	}
	name := info.Tournament.Name
	if name == scrimTournamentName {
		name = "Scrim"
	}
	return lol.SeriesMeta{
		SeriesID:       seriesID,
		TournamentID:   info.Tournament.ID,
		TournamentName: name,
	}, nil
}

// lolGame downloads one game's summary, timeline, and live event log,
// then flattens it into CSV records.
func (a *App) lolGame(ctx context.Context, log logger.Logger, seriesID string, series lol.SeriesMeta, sequence int) ([][]string, error) {
	raw, err := a.grid.GameSummary(ctx, seriesID, sequence)
	if err != nil {
		return nil, fmt.Errorf("download summary: %w", err)
	}
	var summary lol.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}

	raw, err = a.grid.GameDetails(ctx, seriesID, sequence)
	if err != nil {
		return nil, fmt.Errorf("download details: %w", err)
	}
	var timeline lol.Timeline
	if err := json.Unmarshal(raw, &timeline); err != nil {
		return nil, fmt.Errorf("decode details: %w", err)
	}

	raw, err = a.grid.GameEvents(ctx, seriesID, sequence)
	if err != nil {
		return nil, fmt.Errorf("download events: %w", err)
	}
	log.Debug(ctx, "live event log downloaded",
		logger.String("series_id", seriesID),
		logger.Int("game", sequence),
		logger.Int("events", lineCount(raw)))

	rows, err := lol.Flatten(summary.PlatformGameID(), series, &summary, &timeline)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(rows))
	players, teams := 0, 0
	for _, row := range rows {
		records = append(records, row.Record())
		if _, ok := row.(*lol.TeamRow); ok {
			teams++
		} else {
			players++
		}
	}
	a.countRows(metrics.RowKindPlayer, players)
	a.countRows(metrics.RowKindTeam, teams)
	return records, nil
}

// lineCount counts newline-delimited entries, tolerating a missing
// trailing newline.
func lineCount(raw []byte) int {
	n := bytes.Count(raw, []byte{'\n'})
	if len(raw) > 0 && raw[len(raw)-1] != '\n' {
		n++
	}
	return n
}

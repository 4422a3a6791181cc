package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/grid-esports-engineering/gridDataPortalResources/internal/domain/valorant"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/logger"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/metrics"
)

// RunValorant exports every game of the given series as flattened
// Valorant rows. The static map and agent tables are fetched once per
// run. A series whose metadata or downloads fail is skipped; a game
// that fails validation contributes zero rows and aborts the rest of
// that series, and the remaining series continue.
func (a *App) RunValorant(ctx context.Context, seriesIDs []string) (*Result, error) {
	if a.valapi == nil {
		return nil, ErrNoValorantAPI
	}

	runID := uuid.New()
	log := a.log.Named("valorant")
	log.Info(ctx, "starting export run",
		logger.String("run_id", runID.String()),
		logger.Int("series", len(seriesIDs)))

	ref, err := a.reference(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reference tables: %w", err)
	}

	result := &Result{RunID: runID, Header: valorant.FieldList()}
	for _, seriesID := range seriesIDs {
		series, err := a.valSeriesMeta(ctx, seriesID)
		if err != nil {
			log.Warn(ctx, "skipping series, metadata fetch failed",
				logger.String("series_id", seriesID), logger.Error(err))
			continue
		}

		records, err := a.valSeries(ctx, log, seriesID, series, ref)
		if err != nil {
			log.Warn(ctx, "skipping series, download failed",
				logger.String("series_id", seriesID), logger.Error(err))
			continue
		}
		result.Records = append(result.Records, records...)
		a.seriesDone()
	}

	log.Info(ctx, "export run complete",
		logger.String("run_id", runID.String()),
		logger.Int("rows", len(result.Records)))
	return result, nil
}

// reference fetches the static map and agent tables and reduces them to
// the display-name lookups the flattener needs.
func (a *App) reference(ctx context.Context) (*valorant.Reference, error) {
	maps, err := a.valapi.Maps(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch maps: %w", err)
	}
	agents, err := a.valapi.Agents(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch agents: %w", err)
	}

	ref := &valorant.Reference{
		MapNames:   make(map[string]string, len(maps)),
		AgentNames: make(map[string]string, len(agents)),
	}
	for url, m := range maps {
		ref.MapNames[url] = m.DisplayName
	}
	for id, agent := range agents {
		ref.AgentNames[id] = agent.DisplayName
	}
	return ref, nil
}

// valSeriesMeta resolves a series' tournament context from central data.
func (a *App) valSeriesMeta(ctx context.Context, seriesID string) (valorant.SeriesMeta, error) {
	info, err := a.grid.SeriesInfo(ctx, seriesID)
	if err != nil {
		return valorant.SeriesMeta{}, err
	}
	return valorant.SeriesMeta{
		SeriesID:       seriesID,
		TournamentID:   info.Tournament.ID,
		TournamentName: info.Tournament.Name,
	}, nil
}

// valSeries downloads one series' end-state and match archive and
// flattens every game in it.
func (a *App) valSeries(ctx context.Context, log logger.Logger, seriesID string, series valorant.SeriesMeta, ref *valorant.Reference) ([][]string, error) {
	raw, err := a.grid.SeriesEndState(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("download end state: %w", err)
	}
	var end valorant.EndState
	if err := json.Unmarshal(raw, &end); err != nil {
		return nil, fmt.Errorf("decode end state: %w", err)
	}

	games := make([]*valorant.GameMeta, 0, len(end.Games))
	for i := range end.Games {
		meta, err := valorant.NewGameMeta(&end.Games[i])
		if err != nil {
			a.gameFailed()
			log.Warn(ctx, "skipping game metadata",
				logger.String("series_id", seriesID),
				logger.String("game_id", end.Games[i].ID),
				logger.Error(err))
			continue
		}
		games = append(games, meta)
	}

	raw, err = a.grid.SeriesMatches(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("download match archive: %w", err)
	}
	var matches []valorant.Match
	if err := json.Unmarshal(raw, &matches); err != nil {
		return nil, fmt.Errorf("decode match archive: %w", err)
	}

	var records [][]string
	for i := range matches {
		rows, err := valorant.Flatten(&matches[i], series, games, ref)
		if err != nil {
			a.gameFailed()
			log.Error(ctx, "aborting series, game failed",
				logger.String("series_id", seriesID),
				logger.String("match_id", matches[i].MatchInfo.MatchID),
				logger.Error(err))
			break
		}

		players, teams := 0, 0
		for _, row := range rows {
			records = append(records, row.Record())
			if _, ok := row.(*valorant.TeamRow); ok {
				teams++
			} else {
				players++
			}
		}
		a.countRows(metrics.RowKindPlayer, players)
		a.countRows(metrics.RowKindTeam, teams)
	}
	return records, nil
}

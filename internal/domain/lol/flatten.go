package lol

import (
	"encoding/json"
	"fmt"
)

// firstBloodCutoffMillis bounds the timeline scan: frames past this mark
// carry no first-blood or plate information the flat file reports.
const firstBloodCutoffMillis = 850_000

const teamsPerGame = 2

const playersPerGame = 10

// teamTotals accumulates per-side counters summed from player stats.
type teamTotals struct {
	kills               int
	deaths              int
	damageToChampions   int
	goldEarned          int
	creepScore          int
	wardsPlaced         int
	wardsKilled         int
	controlWardsBought  int
	turretPlates        int
}

// Flatten turns one game's summary and timeline into ten player rows
// followed by two team rows. Any data-shape violation returns an error
// and no rows.
func Flatten(gameID string, series SeriesMeta, summary *Summary, timeline *Timeline) ([]Row, error) {
	if len(summary.Teams) != teamsPerGame {
		return nil, fmt.Errorf("%w: found %d", ErrTeamCount, len(summary.Teams))
	}
	if len(summary.Participants) != playersPerGame {
		return nil, fmt.Errorf("%w: found %d", ErrPlayerCount, len(summary.Participants))
	}
	if summary.GameDuration == 0 {
		return nil, ErrZeroDuration
	}

	totals := map[int]*teamTotals{
		SideBlue: {},
		SideRed:  {},
	}

	firstBloodVictim := scanTimeline(timeline, totals)

	for i := range summary.Participants {
		p := &summary.Participants[i]
		t, ok := totals[p.TeamID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownSide, p.TeamID)
		}
		t.kills += p.Kills
		t.deaths += p.Deaths
		t.goldEarned += p.GoldEarned
		t.creepScore += p.CreepScore()
		t.damageToChampions += p.TotalDamageDealtToChampions
		t.wardsPlaced += p.WardsPlaced
		t.wardsKilled += p.WardsKilled
		t.controlWardsBought += p.VisionWardsBoughtInGame
	}

	minutes := float64(summary.GameDuration) / 60

	rows := make([]Row, 0, playersPerGame+teamsPerGame)
	for i := range summary.Participants {
		p := &summary.Participants[i]
		t := totals[p.TeamID]
		if t.kills == 0 {
			return nil, fmt.Errorf("side %d: %w", p.TeamID, ErrZeroTeamKills)
		}
		if t.damageToChampions == 0 {
			return nil, fmt.Errorf("side %d: %w", p.TeamID, ErrZeroTeamDamage)
		}

		tag, name := SplitNameTag(p.RiotIDGameName)

		deaths := p.Deaths
		if deaths == 0 {
			deaths = 1
		}

		rows = append(rows, &PlayerRow{
			PlatformGameID: gameID,
			TournamentID:   series.TournamentID,
			TournamentName: series.TournamentName,
			SummonerName:   name,
			TeamTag:        tag,
			Side:           p.TeamID,
			Role:           p.TeamPosition,
			Champion:       p.ChampionName,
			Win:            p.Win,
			GameDuration:   summary.GameDuration,

			Kills:             p.Kills,
			Deaths:            p.Deaths,
			Assists:           p.Assists,
			KDA:               float64(p.Kills+p.Assists) / float64(deaths),
			KillParticipation: float64(p.Kills+p.Assists) / float64(t.kills),
			TeamKills:         t.kills,
			TeamDeaths:        t.deaths,

			FirstBloodKill:   p.FirstBloodKill,
			FirstBloodAssist: p.FirstBloodAssist,
			FirstBloodVictim: p.ParticipantID == firstBloodVictim,

			DamagePerMinute:       float64(p.TotalDamageDealtToChampions) / minutes,
			DamageShare:           float64(p.TotalDamageDealtToChampions) / float64(t.damageToChampions),
			WardsPlacedPerMinute:  float64(p.WardsPlaced) / minutes,
			WardsClearedPerMinute: float64(p.WardsKilled) / minutes,
			ControlWardsPurchased: p.VisionWardsBoughtInGame,
			CreepScore:            p.CreepScore(),
			CreepScorePerMinute:   float64(p.CreepScore()) / minutes,
			GoldEarned:            p.GoldEarned,
			GoldEarnedPerMinute:   float64(p.GoldEarned) / minutes,
		})
	}

	for i := range summary.Teams {
		team := &summary.Teams[i]
		t, ok := totals[team.TeamID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownSide, team.TeamID)
		}

		bans, err := json.Marshal(team.Bans)
		if err != nil {
			return nil, fmt.Errorf("serialize bans: %w", err)
		}

		rows = append(rows, &TeamRow{
			PlatformGameID: gameID,
			TournamentID:   series.TournamentID,
			TournamentName: series.TournamentName,
			TeamTag:        teamTag(rows, team.TeamID),
			Side:           team.TeamID,
			Win:            team.Win,
			GameDuration:   summary.GameDuration,

			TeamKills:      team.Objectives.Champion.Kills,
			TeamDeaths:     t.deaths,
			FirstBloodKill: team.Objectives.Champion.First,

			WardsPlacedPerMinute:  float64(t.wardsPlaced) / minutes,
			WardsClearedPerMinute: float64(t.wardsKilled) / minutes,
			ControlWardsPurchased: t.controlWardsBought,
			CreepScorePerMinute:   float64(t.creepScore) / minutes,
			GoldEarnedPerMinute:   float64(t.goldEarned) / minutes,

			FirstTurret:     team.Objectives.Tower.First,
			TurretKills:     team.Objectives.Tower.Kills,
			TurretPlates:    t.turretPlates,
			FirstDragon:     team.Objectives.Dragon.First,
			DragonKills:     team.Objectives.Dragon.Kills,
			FirstHerald:     team.Objectives.RiftHerald.First,
			RiftHeraldKills: team.Objectives.RiftHerald.Kills,
			BaronKills:      team.Objectives.Baron.Kills,
			InhibitorKills:  team.Objectives.Inhibitor.Kills,
			Bans:            string(bans),
		})
	}

	return rows, nil
}

// scanTimeline walks frames in order up to the cutoff, crediting turret
// plates and fixing the first-blood victim. Plate events are tagged with
// the side whose turret was damaged, so credit goes to the opposing team.
// The first CHAMPION_KILL with a non-zero killer wins first blood; ties
// are broken by event order, not timestamps. Returns 0 when no valid kill
// occurs before the cutoff.
func scanTimeline(timeline *Timeline, totals map[int]*teamTotals) int {
	firstBloodVictim := 0
	firstBloodFound := false

	for _, frame := range timeline.Frames {
		if frame.Timestamp > firstBloodCutoffMillis {
			break
		}
		for _, event := range frame.Events {
			switch event.Type {
			case eventTurretPlateDestroyed:
				switch event.TeamID {
				case SideBlue:
					totals[SideRed].turretPlates++
				case SideRed:
					totals[SideBlue].turretPlates++
				}
			case eventChampionKill:
				if firstBloodFound || event.KillerID == 0 {
					continue
				}
				firstBloodFound = true
				firstBloodVictim = event.VictimID
			}
		}
	}
	return firstBloodVictim
}

// teamTag returns the first tag found among this side's player rows.
func teamTag(rows []Row, side int) string {
	for _, row := range rows {
		p, ok := row.(*PlayerRow)
		if !ok || p.Side != side {
			continue
		}
		if p.TeamTag != "" {
			return p.TeamTag
		}
	}
	return ""
}

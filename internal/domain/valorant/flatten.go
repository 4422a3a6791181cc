package valorant

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

const playersPerGame = 10

// sideTotals accumulates a side's round-economy counters.
type sideTotals struct {
	attackWins    int
	attackLosses  int
	defenseWins   int
	defenseLosses int
}

// playerTotals pre-aggregates a player's per-round contributions.
type playerTotals struct {
	damage      int
	headshots   int
	bodyshots   int
	legshots    int
	firstKills  int
	firstDeaths int
}

// Flatten joins one Riot match with the series' end-state metadata and
// produces ten player rows plus two team rows, players sorted by name
// ahead of the team rows. Any data-shape violation returns an error and
// no rows.
func Flatten(m *Match, series SeriesMeta, games []*GameMeta, ref *Reference) ([]Row, error) {
	mapName, ok := ref.MapNames[m.MatchInfo.MapID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMap, m.MatchInfo.MapID)
	}

	version, err := parseGameVersion(m.MatchInfo.GameVersion)
	if err != nil {
		return nil, err
	}

	meta := matchMetadata(games, mapName)
	if meta == nil {
		return nil, fmt.Errorf("%w: map %s", ErrNoMetadataMatch, mapName)
	}

	sideRefs, err := resolveSides(m.Teams, meta)
	if err != nil {
		return nil, err
	}

	sides, players, err := preaggregate(m.RoundResults)
	if err != nil {
		return nil, err
	}

	header := gameHeader{
		GameID:         m.MatchInfo.MatchID,
		SeriesID:       series.SeriesID,
		TournamentID:   series.TournamentID,
		TournamentName: series.TournamentName,
		MapID:          m.MatchInfo.MapID,
		MapName:        mapName,
		GameStart:      time.UnixMilli(m.MatchInfo.GameStartMillis),
		GameVersion:    version,
		GameNumber:     meta.GameNumber,
	}

	rows := make([]Row, 0, playersPerGame+2)
	teamRowAdded := map[string]bool{SideBlue: false, SideRed: false}
	playerCount := 0

	for i := range m.Players {
		p := &m.Players[i]
		if p.TeamID == SideNeutral {
			continue
		}
		playerCount++

		teamMeta, ok := sideRefs[p.TeamID]
		if !ok {
			return nil, fmt.Errorf("%w: side %s", ErrTeamMapping, p.TeamID)
		}
		agentName, ok := ref.AgentNames[p.CharacterID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, p.CharacterID)
		}
		if p.Stats.RoundsPlayed == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoRoundsPlayed, p.GameName)
		}

		pre := players[p.PUUID]
		if pre == nil {
			pre = &playerTotals{}
		}
		shots := pre.headshots + pre.bodyshots + pre.legshots
		if shots == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoShotData, p.GameName)
		}

		side := sideRecord{
			Win:               teamMeta.Winner,
			RoundsWon:         teamMeta.RoundsWon,
			RoundsLost:        p.Stats.RoundsPlayed - teamMeta.RoundsWon,
			AttackRoundsWon:   sides[p.TeamID].attackWins,
			AttackRoundsLost:  sides[p.TeamID].attackLosses,
			DefenseRoundsWon:  sides[p.TeamID].defenseWins,
			DefenseRoundsLost: sides[p.TeamID].defenseLosses,
		}

		rows = append(rows, &PlayerRow{
			gameHeader: header,
			sideRecord: side,
			PlayerName: p.GameName,
			TeamID:     teamMeta.ID,
			TeamName:   teamMeta.Name,
			AgentID:    p.CharacterID,
			AgentName:  agentName,

			Kills:              p.Stats.Kills,
			Deaths:             p.Stats.Deaths,
			Assists:            p.Stats.Assists,
			AverageCombatScore: round1(float64(p.Stats.Score) / float64(p.Stats.RoundsPlayed)),
			DamagePerRound:     round1(float64(pre.damage) / float64(p.Stats.RoundsPlayed)),
			FirstKills:         pre.firstKills,
			FirstDeaths:        pre.firstDeaths,
			HeadshotRate:       round3(float64(pre.headshots) / float64(shots)),
		})

		if !teamRowAdded[p.TeamID] {
			rows = append(rows, &TeamRow{
				gameHeader: header,
				sideRecord: side,
				TeamID:     teamMeta.ID,
				TeamName:   teamMeta.Name,
			})
			teamRowAdded[p.TeamID] = true
		}
	}

	if playerCount < playersPerGame {
		return nil, fmt.Errorf("%w: found %d", ErrPlayerCount, playerCount)
	}
	for _, side := range []string{SideBlue, SideRed} {
		if !teamRowAdded[side] {
			return nil, fmt.Errorf("%w: side %s", ErrMissingTeamRow, side)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		aTeamRow := a.sortName() == ""
		bTeamRow := b.sortName() == ""
		if aTeamRow != bTeamRow {
			return !aTeamRow
		}
		if a.sortName() != b.sortName() {
			return a.sortName() < b.sortName()
		}
		return a.sortTeam() < b.sortTeam()
	})

	return rows, nil
}

// matchMetadata finds the end-state game entry played on the given map.
func matchMetadata(games []*GameMeta, mapName string) *GameMeta {
	for _, g := range games {
		if g.MapName == mapName {
			return g
		}
	}
	return nil
}

// resolveSides maps Riot sides onto end-state team identities by
// matching round-win counts. A side matching neither expected total is
// an unrecoverable mapping error for the game.
func resolveSides(teams []MatchTeam, meta *GameMeta) (map[string]*TeamMeta, error) {
	refs := make(map[string]*TeamMeta, 2)
	for _, team := range teams {
		if team.TeamID != SideBlue && team.TeamID != SideRed {
			continue
		}
		switch team.RoundsWon {
		case meta.Teams[0].RoundsWon:
			refs[team.TeamID] = &meta.Teams[0]
		case meta.Teams[1].RoundsWon:
			refs[team.TeamID] = &meta.Teams[1]
		default:
			return nil, fmt.Errorf("%w: side %s won %d rounds", ErrTeamMapping, team.TeamID, team.RoundsWon)
		}
	}
	return refs, nil
}

// preaggregate walks every round once, accumulating side economics and
// per-player damage, shot locations, and first-kill/first-death credit.
func preaggregate(rounds []RoundResult) (map[string]*sideTotals, map[string]*playerTotals, error) {
	sides := map[string]*sideTotals{
		SideBlue: {},
		SideRed:  {},
	}
	players := make(map[string]*playerTotals)

	for idx := range rounds {
		round := &rounds[idx]
		roundNumber := idx + 1

		attackers := AttackersForRound(roundNumber)
		defenders := SideRed
		if attackers == SideRed {
			defenders = SideBlue
		}
		if round.WinningTeam == attackers {
			sides[attackers].attackWins++
			sides[defenders].defenseLosses++
		} else {
			sides[attackers].attackLosses++
			sides[defenders].defenseWins++
		}

		var kills []KillEvent
		for i := range round.PlayerStats {
			ps := &round.PlayerStats[i]
			pre := players[ps.PUUID]
			if pre == nil {
				pre = &playerTotals{}
				players[ps.PUUID] = pre
			}
			for _, target := range ps.Damage {
				pre.damage += target.Damage
				pre.headshots += target.Headshots
				pre.bodyshots += target.Bodyshots
				pre.legshots += target.Legshots
			}
			kills = append(kills, ps.Kills...)
		}

		if len(kills) == 0 {
			return nil, nil, fmt.Errorf("%w: round %d", ErrNoRoundKills, roundNumber)
		}
		sort.SliceStable(kills, func(i, j int) bool {
			return kills[i].TimeSinceRoundStartMillis < kills[j].TimeSinceRoundStartMillis
		})

		first := kills[0]
		if players[first.Killer] == nil {
			players[first.Killer] = &playerTotals{}
		}
		if players[first.Victim] == nil {
			players[first.Victim] = &playerTotals{}
		}
		players[first.Killer].firstKills++
		players[first.Victim].firstDeaths++
	}

	return sides, players, nil
}

// parseGameVersion extracts the patch number between the first two
// dashes of the raw version string, e.g. "release-07.12-shipping" -> 7.12.
func parseGameVersion(raw string) (float64, error) {
	start := strings.Index(raw, "-") + 1
	if start == 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadGameVersion, raw)
	}
	rest := strings.Index(raw[start+1:], "-")
	if rest == -1 {
		return 0, fmt.Errorf("%w: %q", ErrBadGameVersion, raw)
	}
	end := start + 1 + rest
	version, err := strconv.ParseFloat(raw[start:end], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadGameVersion, raw)
	}
	return version, nil
}

// Derived rates round half-to-even, so .x5 ties keep the historical
// flat-file values.
func round1(v float64) float64 { return math.RoundToEven(v*10) / 10 }

func round3(v float64) float64 { return math.RoundToEven(v*1000) / 1000 }

package valorant

import (
	"fmt"
	"strings"
	"unicode"
)

// TeamMeta is one team's identity from the GRID end-state file.
type TeamMeta struct {
	ID        string
	Name      string
	Winner    bool
	RoundsWon int
}

// GameMeta is the per-game overview extracted from the end-state file,
// used later to join Riot match data back onto series identities.
type GameMeta struct {
	MapName    string
	GameNumber int
	Teams      [2]TeamMeta
}

// NewGameMeta validates one end-state game entry and extracts its
// overview. Unfinished games and games without exactly two teams are
// rejected.
func NewGameMeta(g *EndStateGame) (*GameMeta, error) {
	if !g.Started {
		return nil, ErrGameNotStarted
	}
	if !g.Finished {
		return nil, ErrGameNotFinished
	}
	if len(g.Teams) != 2 {
		return nil, fmt.Errorf("%w: found %d", ErrTeamCount, len(g.Teams))
	}

	meta := &GameMeta{
		MapName:    capitalize(g.Map.Name),
		GameNumber: g.SequenceNumber,
	}
	for i, team := range g.Teams {
		meta.Teams[i] = TeamMeta{
			ID:        team.ID,
			Name:      team.Name,
			Winner:    team.Won,
			RoundsWon: team.Score,
		}
	}
	return meta, nil
}

// capitalize upper-cases the first rune and lower-cases the rest, the
// casing the valorant-api display names use for single-word maps.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

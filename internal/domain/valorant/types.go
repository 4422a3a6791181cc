// Package valorant flattens Riot Valorant match data, joined with GRID
// end-state metadata, into per-player and per-team statistical rows.
package valorant

// Riot side identifiers. A third pseudo-side marks observers.
const (
	SideBlue    = "Blue"
	SideRed     = "Red"
	SideNeutral = "Neutral"
)

// SeriesMeta is the previously resolved series context a game belongs to.
type SeriesMeta struct {
	SeriesID       string
	TournamentID   string
	TournamentName string
}

// Reference holds the static lookup tables from valorant-api.com.
// MapNames is keyed by internal map URL (what matchInfo.mapId carries),
// AgentNames by agent UUID.
type Reference struct {
	MapNames   map[string]string
	AgentNames map[string]string
}

// Match is the Riot postgame data for one game.
type Match struct {
	MatchInfo    MatchInfo     `json:"matchInfo"`
	Players      []MatchPlayer `json:"players"`
	Teams        []MatchTeam   `json:"teams"`
	RoundResults []RoundResult `json:"roundResults"`
}

// MatchInfo is the game-level header.
type MatchInfo struct {
	MatchID         string `json:"matchId"`
	MapID           string `json:"mapId"`
	GameStartMillis int64  `json:"gameStartMillis"`
	GameVersion     string `json:"gameVersion"`
}

// MatchPlayer is one player's identity and whole-game counters.
type MatchPlayer struct {
	PUUID       string      `json:"puuid"`
	GameName    string      `json:"gameName"`
	TeamID      string      `json:"teamId"`
	CharacterID string      `json:"characterId"`
	Stats       PlayerStats `json:"stats"`
}

// PlayerStats is the whole-game stat block.
type PlayerStats struct {
	Score        int `json:"score"`
	RoundsPlayed int `json:"roundsPlayed"`
	Kills        int `json:"kills"`
	Deaths       int `json:"deaths"`
	Assists      int `json:"assists"`
}

// MatchTeam is one team's game result as Riot reports it.
type MatchTeam struct {
	TeamID    string `json:"teamId"`
	RoundsWon int    `json:"roundsWon"`
}

// RoundResult is one round of play.
type RoundResult struct {
	WinningTeam string             `json:"winningTeam"`
	PlayerStats []RoundPlayerStats `json:"playerStats"`
}

// RoundPlayerStats is one player's contribution within a round.
type RoundPlayerStats struct {
	PUUID  string       `json:"puuid"`
	Damage []DamageStat `json:"damage"`
	Kills  []KillEvent  `json:"kills"`
}

// DamageStat is damage dealt to one target within a round.
type DamageStat struct {
	Damage    int `json:"damage"`
	Headshots int `json:"headshots"`
	Bodyshots int `json:"bodyshots"`
	Legshots  int `json:"legshots"`
}

// KillEvent is one kill within a round.
type KillEvent struct {
	TimeSinceRoundStartMillis int64  `json:"timeSinceRoundStartMillis"`
	Killer                    string `json:"killer"`
	Victim                    string `json:"victim"`
}

// EndState is the GRID end-state file for a series.
type EndState struct {
	Games []EndStateGame `json:"games"`
}

// EndStateGame is one game entry of the end-state file.
type EndStateGame struct {
	ID             string         `json:"id"`
	SequenceNumber int            `json:"sequenceNumber"`
	Started        bool           `json:"started"`
	Finished       bool           `json:"finished"`
	Map            EndStateMap    `json:"map"`
	Teams          []EndStateTeam `json:"teams"`
}

// EndStateMap names the map a game was played on.
type EndStateMap struct {
	Name string `json:"name"`
}

// EndStateTeam is one team's series-level identity and result.
type EndStateTeam struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Won   bool   `json:"won"`
	Score int    `json:"score"`
}

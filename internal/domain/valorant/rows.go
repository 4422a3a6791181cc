package valorant

import (
	"strconv"
	"time"
)

// gameStartLayout matches the flat files' human-readable timestamp.
const gameStartLayout = "2006-01-02 15:04:05"

// fieldList is the fixed CSV column order. Team rows leave player-only
// columns empty to preserve the column count.
var fieldList = []string{
	"game_id",
	"series_id",
	"tournament_id",
	"tournament_name",
	"map_id",
	"map_name",
	"game_start",
	"game_version",
	"game_number",
	"player_name",
	"team_id",
	"team_name",
	"agent_id",
	"agent_name",
	"win",
	"roundsWon",
	"roundsLost",
	"attackRoundsWon",
	"attackRoundsLost",
	"defenseRoundsWon",
	"defenseRoundsLost",
	"kills",
	"deaths",
	"assists",
	"averageCombatScore",
	"damagePerRound",
	"first_kills",
	"first_deaths",
	"headshot_rate",
}

// FieldList returns the CSV header columns in output order.
func FieldList() []string {
	out := make([]string, len(fieldList))
	copy(out, fieldList)
	return out
}

// Row is one flattened output row.
type Row interface {
	Record() []string

	// Sort accessors: team rows order after player rows.
	sortName() string
	sortTeam() string
}

// gameHeader carries the columns shared by player and team rows.
type gameHeader struct {
	GameID         string
	SeriesID       string
	TournamentID   string
	TournamentName string
	MapID          string
	MapName        string
	GameStart      time.Time
	GameVersion    float64
	GameNumber     int
}

func (h *gameHeader) headerCells() []string {
	return []string{
		h.GameID,
		h.SeriesID,
		h.TournamentID,
		h.TournamentName,
		h.MapID,
		h.MapName,
		h.GameStart.Format(gameStartLayout),
		ftoa(h.GameVersion),
		itoa(h.GameNumber),
	}
}

// sideRecord carries the round-economy columns shared by both row kinds.
type sideRecord struct {
	Win               bool
	RoundsWon         int
	RoundsLost        int
	AttackRoundsWon   int
	AttackRoundsLost  int
	DefenseRoundsWon  int
	DefenseRoundsLost int
}

func (s *sideRecord) sideCells() []string {
	return []string{
		boolCell(s.Win),
		itoa(s.RoundsWon),
		itoa(s.RoundsLost),
		itoa(s.AttackRoundsWon),
		itoa(s.AttackRoundsLost),
		itoa(s.DefenseRoundsWon),
		itoa(s.DefenseRoundsLost),
	}
}

// PlayerRow is the flattened per-player output.
type PlayerRow struct {
	gameHeader
	sideRecord

	PlayerName string
	TeamID     string
	TeamName   string
	AgentID    string
	AgentName  string

	Kills              int
	Deaths             int
	Assists            int
	AverageCombatScore float64
	DamagePerRound     float64
	FirstKills         int
	FirstDeaths        int
	HeadshotRate       float64
}

// Record renders the row against the field list.
func (r *PlayerRow) Record() []string {
	cells := r.headerCells()
	cells = append(cells,
		r.PlayerName,
		r.TeamID,
		r.TeamName,
		r.AgentID,
		r.AgentName,
	)
	cells = append(cells, r.sideCells()...)
	return append(cells,
		itoa(r.Kills),
		itoa(r.Deaths),
		itoa(r.Assists),
		ftoa(r.AverageCombatScore),
		ftoa(r.DamagePerRound),
		itoa(r.FirstKills),
		itoa(r.FirstDeaths),
		ftoa(r.HeadshotRate),
	)
}

func (r *PlayerRow) sortName() string { return r.PlayerName }
func (r *PlayerRow) sortTeam() string { return r.TeamName }

// TeamRow is the flattened per-team output; player-only columns stay
// empty to force the correct number of columns in the CSV.
type TeamRow struct {
	gameHeader
	sideRecord

	TeamID   string
	TeamName string
}

// Record renders the row against the field list.
func (r *TeamRow) Record() []string {
	cells := r.headerCells()
	cells = append(cells,
		"", // player_name
		r.TeamID,
		r.TeamName,
		"", // agent_id
		"", // agent_name
	)
	cells = append(cells, r.sideCells()...)
	return append(cells,
		"", // kills
		"", // deaths
		"", // assists
		"", // averageCombatScore
		"", // damagePerRound
		"", // first_kills
		"", // first_deaths
		"", // headshot_rate
	)
}

func (r *TeamRow) sortName() string { return "" }
func (r *TeamRow) sortTeam() string { return r.TeamName }

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func boolCell(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

package lol

import "strconv"

// fieldList is the fixed CSV column order. Team rows leave player-only
// columns empty and vice versa, preserving the column count.
var fieldList = []string{
	"platform_game_id",
	"tournament_id",
	"tournament_name",
	"summoner_name",
	"team_tag",
	"side",
	"auto_detect_role",
	"champion",
	"win",
	"game_duration",
	"kills",
	"deaths",
	"assists",
	"kda",
	"kill_participation",
	"team_kills",
	"team_deaths",
	"firstBloodKill",
	"firstBloodAssist",
	"firstBloodVictim",
	"damagePerMinute",
	"damageShare",
	"wardsPlacedPerMinute",
	"wardsClearedPerMinute",
	"controlWardsPurchased",
	"creepScore",
	"creepScorePerMinute",
	"goldEarned",
	"goldEarnedPerMinute",
	"firstTurret",
	"turretKills",
	"turretPlates",
	"firstDragon",
	"dragonKills",
	"firstHerald",
	"riftHeraldKills",
	"baronKills",
	"inhibitorKills",
	"bans",
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
}

// PlayerRow is the flattened per-player output.
type PlayerRow struct {
	PlatformGameID string
	TournamentID   string
	TournamentName string
	SummonerName   string
	TeamTag        string
	Side           int
	Role           string
	Champion       string
	Win            bool
	GameDuration   int

	Kills             int
	Deaths            int
	Assists           int
	KDA               float64
	KillParticipation float64
	TeamKills         int
	TeamDeaths        int

	FirstBloodKill   bool
	FirstBloodAssist bool
	FirstBloodVictim bool

	DamagePerMinute       float64
	DamageShare           float64
	WardsPlacedPerMinute  float64
	WardsClearedPerMinute float64
	ControlWardsPurchased int
	CreepScore            int
	CreepScorePerMinute   float64
	GoldEarned            int
	GoldEarnedPerMinute   float64
}

// Record renders the row against the field list; objective columns stay
// empty for players.
func (r *PlayerRow) Record() []string {
	return []string{
		r.PlatformGameID,
		r.TournamentID,
		r.TournamentName,
		r.SummonerName,
		r.TeamTag,
		itoa(r.Side),
		r.Role,
		r.Champion,
		boolCell(r.Win),
		itoa(r.GameDuration),
		itoa(r.Kills),
		itoa(r.Deaths),
		itoa(r.Assists),
		ftoa(r.KDA),
		ftoa(r.KillParticipation),
		itoa(r.TeamKills),
		itoa(r.TeamDeaths),
		boolCell(r.FirstBloodKill),
		boolCell(r.FirstBloodAssist),
		boolCell(r.FirstBloodVictim),
		ftoa(r.DamagePerMinute),
		ftoa(r.DamageShare),
		ftoa(r.WardsPlacedPerMinute),
		ftoa(r.WardsClearedPerMinute),
		itoa(r.ControlWardsPurchased),
		itoa(r.CreepScore),
		ftoa(r.CreepScorePerMinute),
		itoa(r.GoldEarned),
		ftoa(r.GoldEarnedPerMinute),
		"", // firstTurret
		"", // turretKills
		"", // turretPlates
		"", // firstDragon
		"", // dragonKills
		"", // firstHerald
		"", // riftHeraldKills
		"", // baronKills
		"", // inhibitorKills
		"", // bans
	}
}

// TeamRow is the flattened per-team output.
type TeamRow struct {
	PlatformGameID string
	TournamentID   string
	TournamentName string
	TeamTag        string
	Side           int
	Win            bool
	GameDuration   int

	TeamKills      int
	TeamDeaths     int
	FirstBloodKill bool

	WardsPlacedPerMinute  float64
	WardsClearedPerMinute float64
	ControlWardsPurchased int
	CreepScorePerMinute   float64
	GoldEarnedPerMinute   float64

	FirstTurret     bool
	TurretKills     int
	TurretPlates    int
	FirstDragon     bool
	DragonKills     int
	FirstHerald     bool
	RiftHeraldKills int
	BaronKills      int
	InhibitorKills  int
	Bans            string
}

// Record renders the row against the field list; player-only columns stay
// empty for teams.
func (r *TeamRow) Record() []string {
	return []string{
		r.PlatformGameID,
		r.TournamentID,
		r.TournamentName,
		"", // summoner_name
		r.TeamTag,
		itoa(r.Side),
		"", // auto_detect_role
		"", // champion
		boolCell(r.Win),
		itoa(r.GameDuration),
		"", // kills
		"", // deaths
		"", // assists
		"", // kda
		"", // kill_participation
		itoa(r.TeamKills),
		itoa(r.TeamDeaths),
		boolCell(r.FirstBloodKill),
		"", // firstBloodAssist
		"", // firstBloodVictim
		"", // damagePerMinute
		"", // damageShare
		ftoa(r.WardsPlacedPerMinute),
		ftoa(r.WardsClearedPerMinute),
		itoa(r.ControlWardsPurchased),
		"", // creepScore
		ftoa(r.CreepScorePerMinute),
		"", // goldEarned
		ftoa(r.GoldEarnedPerMinute),
		boolCell(r.FirstTurret),
		itoa(r.TurretKills),
		itoa(r.TurretPlates),
		boolCell(r.FirstDragon),
		itoa(r.DragonKills),
		boolCell(r.FirstHerald),
		itoa(r.RiftHeraldKills),
		itoa(r.BaronKills),
		itoa(r.InhibitorKills),
		r.Bans,
	}
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// boolCell serializes flags the way the flat files always have: 1 or 0.
func boolCell(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

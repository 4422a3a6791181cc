// Package lol flattens Riot League of Legends postgame data into
// per-player and per-team statistical rows.
package lol

import "fmt"

// Team side identifiers used throughout Riot data.
const (
	SideBlue = 100
	SideRed  = 200
)

// SeriesMeta is the previously resolved series context a game belongs to.
type SeriesMeta struct {
	SeriesID       string
	TournamentID   string
	TournamentName string
}

// Summary is the Riot postgame stats file for one game.
type Summary struct {
	PlatformID   string        `json:"platformId"`
	GameID       int64         `json:"gameId"`
	GameDuration int           `json:"gameDuration"`
	Participants []Participant `json:"participants"`
	Teams        []TeamSummary `json:"teams"`
}

// PlatformGameID builds the combined platform/game identifier.
func (s *Summary) PlatformGameID() string {
	return fmt.Sprintf("%s_%d", s.PlatformID, s.GameID)
}

// Participant is one player's raw postgame counters.
type Participant struct {
	ParticipantID  int    `json:"participantId"`
	TeamID         int    `json:"teamId"`
	RiotIDGameName string `json:"riotIdGameName"`
	TeamPosition   string `json:"teamPosition"`
	ChampionName   string `json:"championName"`
	Win            bool   `json:"win"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	FirstBloodKill   bool `json:"firstBloodKill"`
	FirstBloodAssist bool `json:"firstBloodAssist"`

	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	WardsPlaced                 int `json:"wardsPlaced"`
	WardsKilled                 int `json:"wardsKilled"`
	VisionWardsBoughtInGame     int `json:"visionWardsBoughtInGame"`
	TotalMinionsKilled          int `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int `json:"neutralMinionsKilled"`
	GoldEarned                  int `json:"goldEarned"`
}

// CreepScore is lane plus jungle minions.
func (p *Participant) CreepScore() int {
	return p.TotalMinionsKilled + p.NeutralMinionsKilled
}

// TeamSummary is one team's postgame entry.
type TeamSummary struct {
	TeamID     int        `json:"teamId"`
	Win        bool       `json:"win"`
	Objectives Objectives `json:"objectives"`
	Bans       []Ban      `json:"bans"`
}

// Objectives groups the per-objective counters.
type Objectives struct {
	Champion   Objective `json:"champion"`
	Tower      Objective `json:"tower"`
	Dragon     Objective `json:"dragon"`
	RiftHerald Objective `json:"riftHerald"`
	Baron      Objective `json:"baron"`
	Inhibitor  Objective `json:"inhibitor"`
}

// Objective is a first-take flag plus a kill count.
type Objective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

// Ban is one champion ban entry.
type Ban struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

// Timeline is the Riot postgame details file: per-minute frames of events.
type Timeline struct {
	Frames []Frame `json:"frames"`
}

// Frame is one timeline frame.
type Frame struct {
	Timestamp int64   `json:"timestamp"`
	Events    []Event `json:"events"`
}

// Event is one timeline event; only the fields the flattener reads.
type Event struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	TeamID    int    `json:"teamId"`
	KillerID  int    `json:"killerId"`
	VictimID  int    `json:"victimId"`
}

// Timeline event types the flattener cares about.
const (
	eventTurretPlateDestroyed = "TURRET_PLATE_DESTROYED"
	eventChampionKill         = "CHAMPION_KILL"
)

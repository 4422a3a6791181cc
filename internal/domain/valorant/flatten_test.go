package valorant_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grid-esports-engineering/gridDataPortalResources/internal/domain/valorant"
	"github.com/smartystreets/goconvey/convey"
)

func loadFixture(t *testing.T) (*valorant.Match, []*valorant.GameMeta) {
	t.Helper()
	var match valorant.Match
	raw, err := os.ReadFile(filepath.Join("testdata", "match.json"))
	if err != nil {
		t.Fatalf("read match fixture: %v", err)
	}
	if err := json.Unmarshal(raw, &match); err != nil {
		t.Fatalf("decode match fixture: %v", err)
	}

	var end valorant.EndState
	raw, err = os.ReadFile(filepath.Join("testdata", "endstate.json"))
	if err != nil {
		t.Fatalf("read end-state fixture: %v", err)
	}
	if err := json.Unmarshal(raw, &end); err != nil {
		t.Fatalf("decode end-state fixture: %v", err)
	}

	games := make([]*valorant.GameMeta, 0, len(end.Games))
	for i := range end.Games {
		meta, err := valorant.NewGameMeta(&end.Games[i])
		if err != nil {
			t.Fatalf("extract game metadata: %v", err)
		}
		games = append(games, meta)
	}
	return &match, games
}

var fixtureSeries = valorant.SeriesMeta{
	SeriesID:       "99",
	TournamentID:   "665",
	TournamentName: "Champions",
}

func fixtureReference() *valorant.Reference {
	agents := map[string]string{
		"agent-1": "Jett", "agent-2": "Sova", "agent-3": "Omen",
		"agent-4": "Killjoy", "agent-5": "Sage", "agent-6": "Raze",
		"agent-7": "Fade", "agent-8": "Breach", "agent-9": "Viper",
		"agent-10": "Gekko",
	}
	return &valorant.Reference{
		MapNames:   map[string]string{"/Game/Maps/Ascent/Ascent": "Ascent"},
		AgentNames: agents,
	}
}

func TestFlattenFixture(t *testing.T) {
	convey.Convey("Given the fixture game", t, func() {
		match, games := loadFixture(t)
		rows, err := valorant.Flatten(match, fixtureSeries, games, fixtureReference())
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then ten player rows precede two team rows", func() {
			convey.So(len(rows), convey.ShouldEqual, 12)
			for i := 0; i < 10; i++ {
				_, ok := rows[i].(*valorant.PlayerRow)
				convey.So(ok, convey.ShouldBeTrue)
			}
			for i := 10; i < 12; i++ {
				_, ok := rows[i].(*valorant.TeamRow)
				convey.So(ok, convey.ShouldBeTrue)
			}
		})

		convey.Convey("Then every record matches the header width", func() {
			for _, row := range rows {
				convey.So(len(row.Record()), convey.ShouldEqual, len(valorant.FieldList()))
			}
		})

		convey.Convey("Then rows come out sorted by name, teams by team name", func() {
			names := make([]string, 0, 10)
			for _, row := range rows[:10] {
				names = append(names, row.(*valorant.PlayerRow).PlayerName)
			}
			convey.So(names, convey.ShouldResemble, []string{
				"Alpha", "Bravo", "Charlie", "Delta", "Echo",
				"Foxtrot", "Golf", "Hotel", "India", "Juliett",
			})
			convey.So(rows[10].(*valorant.TeamRow).TeamName, convey.ShouldEqual, "Fnatic")
			convey.So(rows[11].(*valorant.TeamRow).TeamName, convey.ShouldEqual, "Team Liquid")
		})

		convey.Convey("Then the leading player row matches the golden record", func() {
			gameStart := time.UnixMilli(1719849600000).Format("2006-01-02 15:04:05")
			convey.So(rows[0].Record(), convey.ShouldResemble, []string{
				"val-game-1", "99", "665", "Champions",
				"/Game/Maps/Ascent/Ascent", "Ascent", gameStart, "7.12", "1",
				"Alpha", "tl", "Team Liquid", "agent-1", "Jett",
				"1", "2", "1", "0", "0", "2", "1",
				"2", "1", "0", "200", "150", "1", "1", "0.4",
			})
		})

		convey.Convey("Then the observer contributes no row", func() {
			for _, row := range rows[:10] {
				convey.So(row.(*valorant.PlayerRow).PlayerName, convey.ShouldNotEqual, "Observer")
			}
		})

		convey.Convey("Then the losing side's economics come out right", func() {
			foxtrot := rows[5].(*valorant.PlayerRow)
			convey.So(foxtrot.PlayerName, convey.ShouldEqual, "Foxtrot")
			convey.So(foxtrot.TeamName, convey.ShouldEqual, "Fnatic")
			convey.So(foxtrot.Win, convey.ShouldBeFalse)
			convey.So(foxtrot.RoundsWon, convey.ShouldEqual, 1)
			convey.So(foxtrot.RoundsLost, convey.ShouldEqual, 2)
			convey.So(foxtrot.AttackRoundsWon, convey.ShouldEqual, 1)
			convey.So(foxtrot.AttackRoundsLost, convey.ShouldEqual, 2)
			convey.So(foxtrot.DefenseRoundsWon, convey.ShouldEqual, 0)
			convey.So(foxtrot.DefenseRoundsLost, convey.ShouldEqual, 0)
			convey.So(foxtrot.AverageCombatScore, convey.ShouldAlmostEqual, 150)
			convey.So(foxtrot.DamagePerRound, convey.ShouldAlmostEqual, 33.3)
			convey.So(foxtrot.HeadshotRate, convey.ShouldAlmostEqual, 0.25)
			convey.So(foxtrot.FirstKills, convey.ShouldEqual, 1)
			convey.So(foxtrot.FirstDeaths, convey.ShouldEqual, 1)
		})

		convey.Convey("Then first kill credit follows the earliest kill per round", func() {
			// Round three has a later kill listed first; sorting by time
			// since round start must hand the credit to Bravo.
			bravo := rows[1].(*valorant.PlayerRow)
			convey.So(bravo.PlayerName, convey.ShouldEqual, "Bravo")
			convey.So(bravo.FirstKills, convey.ShouldEqual, 1)
			convey.So(bravo.FirstDeaths, convey.ShouldEqual, 1)

			hotel := rows[7].(*valorant.PlayerRow)
			convey.So(hotel.PlayerName, convey.ShouldEqual, "Hotel")
			convey.So(hotel.FirstDeaths, convey.ShouldEqual, 1)

			golf := rows[6].(*valorant.PlayerRow)
			convey.So(golf.PlayerName, convey.ShouldEqual, "Golf")
			convey.So(golf.FirstDeaths, convey.ShouldEqual, 0)
		})

		convey.Convey("Then the team rows carry the side record with empty player cells", func() {
			fnatic := rows[10].(*valorant.TeamRow)
			record := fnatic.Record()
			convey.So(record[9], convey.ShouldEqual, "")
			convey.So(record[10], convey.ShouldEqual, "fnc")
			convey.So(record[11], convey.ShouldEqual, "Fnatic")
			convey.So(record[14], convey.ShouldEqual, "0")
			convey.So(record[15], convey.ShouldEqual, "1")
			convey.So(record[21], convey.ShouldEqual, "")
		})
	})
}

func TestFlattenRounding(t *testing.T) {
	convey.Convey("Given a combat score landing on a rounding tie", t, func() {
		match, games := loadFixture(t)
		match.Players[4].Stats.Score = 401
		match.Players[4].Stats.RoundsPlayed = 4

		rows, err := valorant.Flatten(match, fixtureSeries, games, fixtureReference())
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then 100.25 rounds half-to-even, down to 100.2", func() {
			echo := rows[4].(*valorant.PlayerRow)
			convey.So(echo.PlayerName, convey.ShouldEqual, "Echo")
			convey.So(echo.AverageCombatScore, convey.ShouldAlmostEqual, 100.2)
		})
	})
}

func TestFlattenValidation(t *testing.T) {
	convey.Convey("Given malformed games", t, func() {
		convey.Convey("When the map is missing from the reference table", func() {
			match, games := loadFixture(t)
			ref := fixtureReference()
			delete(ref.MapNames, match.MatchInfo.MapID)

			_, err := valorant.Flatten(match, fixtureSeries, games, ref)

			convey.So(errors.Is(err, valorant.ErrUnknownMap), convey.ShouldBeTrue)
		})

		convey.Convey("When an agent is missing from the reference table", func() {
			match, games := loadFixture(t)
			ref := fixtureReference()
			delete(ref.AgentNames, "agent-3")

			_, err := valorant.Flatten(match, fixtureSeries, games, ref)

			convey.So(errors.Is(err, valorant.ErrUnknownAgent), convey.ShouldBeTrue)
		})

		convey.Convey("When no metadata entry was played on the map", func() {
			match, games := loadFixture(t)
			games[0].MapName = "Bind"

			_, err := valorant.Flatten(match, fixtureSeries, games, fixtureReference())

			convey.So(errors.Is(err, valorant.ErrNoMetadataMatch), convey.ShouldBeTrue)
		})

		convey.Convey("When round wins match neither metadata team", func() {
			match, games := loadFixture(t)
			match.Teams[0].RoundsWon = 7

			_, err := valorant.Flatten(match, fixtureSeries, games, fixtureReference())

			convey.So(errors.Is(err, valorant.ErrTeamMapping), convey.ShouldBeTrue)
		})

		convey.Convey("When a player is missing", func() {
			match, games := loadFixture(t)
			match.Players = match.Players[:9]

			_, err := valorant.Flatten(match, fixtureSeries, games, fixtureReference())

			convey.So(errors.Is(err, valorant.ErrPlayerCount), convey.ShouldBeTrue)
		})

		convey.Convey("When a round has no kill events", func() {
			match, games := loadFixture(t)
			for i := range match.RoundResults[1].PlayerStats {
				match.RoundResults[1].PlayerStats[i].Kills = nil
			}

			_, err := valorant.Flatten(match, fixtureSeries, games, fixtureReference())

			convey.So(errors.Is(err, valorant.ErrNoRoundKills), convey.ShouldBeTrue)
		})

		convey.Convey("When a player never fired a recorded shot", func() {
			match, games := loadFixture(t)
			for i := range match.RoundResults {
				for j := range match.RoundResults[i].PlayerStats {
					if match.RoundResults[i].PlayerStats[j].PUUID == "p9" {
						match.RoundResults[i].PlayerStats[j].Damage = nil
					}
				}
			}

			_, err := valorant.Flatten(match, fixtureSeries, games, fixtureReference())

			convey.So(errors.Is(err, valorant.ErrNoShotData), convey.ShouldBeTrue)
		})

		convey.Convey("When a player has zero rounds played", func() {
			match, games := loadFixture(t)
			match.Players[2].Stats.RoundsPlayed = 0

			_, err := valorant.Flatten(match, fixtureSeries, games, fixtureReference())

			convey.So(errors.Is(err, valorant.ErrNoRoundsPlayed), convey.ShouldBeTrue)
		})

		convey.Convey("When the game version has no second dash", func() {
			match, games := loadFixture(t)
			match.MatchInfo.GameVersion = "release-07.12"

			_, err := valorant.Flatten(match, fixtureSeries, games, fixtureReference())

			convey.So(errors.Is(err, valorant.ErrBadGameVersion), convey.ShouldBeTrue)
		})
	})
}

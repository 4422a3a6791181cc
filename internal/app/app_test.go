package app_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/grid-esports-engineering/gridDataPortalResources/internal/adapters/grid"
	"github.com/grid-esports-engineering/gridDataPortalResources/internal/adapters/valorantapi"
	"github.com/grid-esports-engineering/gridDataPortalResources/internal/app"
	"github.com/grid-esports-engineering/gridDataPortalResources/internal/domain/valorant"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/logger"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/metrics"
)

func TestMain(m *testing.M) {
	logger.Init(io.Discard)
	os.Exit(m.Run())
}

func fixture(t *testing.T, parts ...string) []byte {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(append([]string{"..", "domain"}, parts...)...))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return raw
}

// zipLine zips one entry whose first line is the given payload, the way
// the portal serves match-history archives.
func zipLine(t *testing.T, line []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("series.json")
	if err != nil {
		t.Fatalf("create archive entry: %v", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		t.Fatalf("write archive entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

// matchArchive zips the match fixture as a single-game archive.
func matchArchive(t *testing.T) []byte {
	t.Helper()
	var compact bytes.Buffer
	if err := json.Compact(&compact, fixture(t, "valorant", "testdata", "match.json")); err != nil {
		t.Fatalf("compact match fixture: %v", err)
	}
	return zipLine(t, []byte("["+compact.String()+"]"))
}

// mismatchedArchive zips a two-game archive whose first game's round
// wins match neither end-state team, followed by the valid fixture game.
func mismatchedArchive(t *testing.T) []byte {
	t.Helper()
	var good valorant.Match
	if err := json.Unmarshal(fixture(t, "valorant", "testdata", "match.json"), &good); err != nil {
		t.Fatalf("decode match fixture: %v", err)
	}

	bad := good
	bad.MatchInfo.MatchID = "val-game-0"
	bad.Teams = append([]valorant.MatchTeam(nil), good.Teams...)
	bad.Teams[0].RoundsWon = 7

	payload, err := json.Marshal([]valorant.Match{bad, good})
	if err != nil {
		t.Fatalf("encode match archive: %v", err)
	}
	return zipLine(t, payload)
}

// newPortal serves series 99 with one finished game; any other series id
// gets a GraphQL error from central data. A non-nil matches payload
// replaces the default single-game Valorant archive.
func newPortal(t *testing.T, matches []byte) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/central-data/graphql", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "id: 99") {
			io.WriteString(w, `{"errors":[{"message":"series not found"}]}`)
			return
		}
		io.WriteString(w, `{"data":{"series":{"id":"99","type":"ESPORTS",
			"tournament":{"id":"665","name":"League of Legends Scrims","nameShortened":"LS"}}}}`)
	})
	mux.HandleFunc("/live-data-feed/series-state/graphql", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"seriesState":{"id":"99","games":[
			{"id":"g1","sequenceNumber":1,"started":true,"finished":true},
			{"id":"g2","sequenceNumber":2,"started":true,"finished":false}]}}}`)
	})

	mux.HandleFunc("/file-download/end-state/riot/series/99/games/1/summary", func(w http.ResponseWriter, r *http.Request) {
		w.Write(fixture(t, "lol", "testdata", "summary.json"))
	})
	mux.HandleFunc("/file-download/end-state/riot/series/99/games/1/details", func(w http.ResponseWriter, r *http.Request) {
		w.Write(fixture(t, "lol", "testdata", "timeline.json"))
	})
	mux.HandleFunc("/file-download/events/riot/series/99/games/1", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "{\"event\":1}\n{\"event\":2}\n")
	})

	mux.HandleFunc("/file-download/end-state/grid/series/99", func(w http.ResponseWriter, r *http.Request) {
		w.Write(fixture(t, "valorant", "testdata", "endstate.json"))
	})
	mux.HandleFunc("/file-download/end-state/riot/series/99", func(w http.ResponseWriter, r *http.Request) {
		if matches != nil {
			w.Write(matches)
			return
		}
		w.Write(matchArchive(t))
	})

	return httptest.NewServer(mux)
}

func newReferenceServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/maps", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[{"uuid":"m1","displayName":"Ascent","mapUrl":"/Game/Maps/Ascent/Ascent"}]}`)
	})
	mux.HandleFunc("/v1/agents", func(w http.ResponseWriter, r *http.Request) {
		agents := make([]map[string]string, 0, 10)
		for _, a := range []struct{ id, name string }{
			{"agent-1", "Jett"}, {"agent-2", "Sova"}, {"agent-3", "Omen"},
			{"agent-4", "Killjoy"}, {"agent-5", "Sage"}, {"agent-6", "Raze"},
			{"agent-7", "Fade"}, {"agent-8", "Breach"}, {"agent-9", "Viper"},
			{"agent-10", "Gekko"},
		} {
			agents = append(agents, map[string]string{"uuid": a.id, "displayName": a.name})
		}
		payload, _ := json.Marshal(map[string]any{"data": agents})
		w.Write(payload)
	})
	return httptest.NewServer(mux)
}

func newApp(t *testing.T, portal, refServer *httptest.Server) (*app.App, *metrics.Manager) {
	t.Helper()
	met := metrics.New()
	gridc, err := grid.New("test-key", grid.WithBaseURL(portal.URL), grid.WithMetrics(met))
	if err != nil {
		t.Fatalf("build grid client: %v", err)
	}

	opts := []app.Option{
		app.WithLogger(logger.Named("test")),
		app.WithGridClient(gridc),
		app.WithMetrics(met),
	}
	if refServer != nil {
		opts = append(opts, app.WithValorantAPI(valorantapi.New(valorantapi.WithBaseURL(refServer.URL))))
	}
	exporter, err := app.New(opts...)
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	return exporter, met
}

func TestNew(t *testing.T) {
	convey.Convey("Given app construction", t, func() {
		convey.Convey("A grid client is required", func() {
			_, err := app.New(app.WithLogger(logger.Named("test")))
			convey.So(errors.Is(err, app.ErrNoGridClient), convey.ShouldBeTrue)
		})
	})
}

func TestRunLoL(t *testing.T) {
	convey.Convey("Given a portal with one finished game", t, func() {
		portal := newPortal(t, nil)
		defer portal.Close()
		exporter, _ := newApp(t, portal, nil)

		result, err := exporter.RunLoL(context.Background(), []string{"99", "404404"})
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then the finished game yields twelve records", func() {
			convey.So(len(result.Records), convey.ShouldEqual, 12)
			convey.So(len(result.Header), convey.ShouldEqual, 39)
			for _, record := range result.Records {
				convey.So(len(record), convey.ShouldEqual, len(result.Header))
			}
		})

		convey.Convey("Then the scrim tournament is renamed", func() {
			convey.So(result.Records[0][2], convey.ShouldEqual, "Scrim")
		})

		convey.Convey("Then the unknown series was skipped, not fatal", func() {
			convey.So(result.Records[0][3], convey.ShouldEqual, "Alpha")
		})
	})
}

func TestRunValorant(t *testing.T) {
	convey.Convey("Given a portal with one Valorant series", t, func() {
		portal := newPortal(t, nil)
		defer portal.Close()
		refServer := newReferenceServer(t)
		defer refServer.Close()
		exporter, _ := newApp(t, portal, refServer)

		result, err := exporter.RunValorant(context.Background(), []string{"99"})
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then the game yields twelve records", func() {
			convey.So(len(result.Records), convey.ShouldEqual, 12)
			for _, record := range result.Records {
				convey.So(len(record), convey.ShouldEqual, len(result.Header))
			}
		})

		convey.Convey("Then players come first, sorted by name", func() {
			convey.So(result.Records[0][9], convey.ShouldEqual, "Alpha")
			convey.So(result.Records[10][11], convey.ShouldEqual, "Fnatic")
			convey.So(result.Records[11][11], convey.ShouldEqual, "Team Liquid")
		})
	})

	convey.Convey("Given an archive whose first game fails team mapping", t, func() {
		portal := newPortal(t, mismatchedArchive(t))
		defer portal.Close()
		refServer := newReferenceServer(t)
		defer refServer.Close()
		exporter, _ := newApp(t, portal, refServer)

		result, err := exporter.RunValorant(context.Background(), []string{"99"})
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then the series aborts and later games add no rows", func() {
			convey.So(len(result.Records), convey.ShouldEqual, 0)
		})
	})

	convey.Convey("Given an app without a reference client", t, func() {
		portal := newPortal(t, nil)
		defer portal.Close()
		exporter, _ := newApp(t, portal, nil)

		_, err := exporter.RunValorant(context.Background(), []string{"99"})
		convey.So(errors.Is(err, app.ErrNoValorantAPI), convey.ShouldBeTrue)
	})
}

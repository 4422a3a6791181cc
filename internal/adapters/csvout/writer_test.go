package csvout_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grid-esports-engineering/gridDataPortalResources/internal/adapters/csvout"
	"github.com/smartystreets/goconvey/convey"
)

func TestFilename(t *testing.T) {
	convey.Convey("Given an output filename stem", t, func() {
		now := time.Date(2026, 8, 28, 14, 5, 0, 0, time.UTC)

		convey.Convey("Then the date suffix is appended when enabled", func() {
			convey.So(csvout.Filename("lol_data", true, now), convey.ShouldEqual, "lol_data_20260828_1405.csv")
		})

		convey.Convey("Then the bare stem is used otherwise", func() {
			convey.So(csvout.Filename("valorant_data", false, now), convey.ShouldEqual, "valorant_data.csv")
		})
	})
}

func TestWrite(t *testing.T) {
	convey.Convey("Given rows with empty cells", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv")
		header := []string{"a", "b", "c"}
		records := [][]string{
			{"1", "x", "0.5"},
			{"2", "", ""},
		}

		convey.Convey("When writing the file", func() {
			err := csvout.Write(path, header, records)

			convey.Convey("Then the header and all rows are present", func() {
				convey.So(err, convey.ShouldBeNil)
				body, readErr := os.ReadFile(path)
				convey.So(readErr, convey.ShouldBeNil)
				convey.So(string(body), convey.ShouldEqual, "a,b,c\n1,x,0.5\n2,,\n")
			})
		})
	})
}

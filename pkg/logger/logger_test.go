package logger_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	convey.Convey("Given an initialized logger", t, func() {
		var buf bytes.Buffer
		logger.Init(&buf)
		ctx := context.Background()

		convey.Convey("When logging at info level", func() {
			logger.Get().Info(ctx, "series started", logger.String("series_id", "12345"))

			convey.Convey("Then the message and fields appear in the output", func() {
				out := buf.String()
				convey.So(out, convey.ShouldContainSubstring, "series started")
				convey.So(out, convey.ShouldContainSubstring, "series_id=12345")
			})
		})

		convey.Convey("When the level is raised to warn", func() {
			convey.So(logger.SetLevelString("warn"), convey.ShouldBeNil)
			logger.Get().Info(ctx, "dropped line")
			logger.Get().Warn(ctx, "kept line")

			convey.Convey("Then info lines are filtered out", func() {
				out := buf.String()
				convey.So(out, convey.ShouldNotContainSubstring, "dropped line")
				convey.So(out, convey.ShouldContainSubstring, "kept line")
			})

			convey.So(logger.SetLevelString("info"), convey.ShouldBeNil)
		})

		convey.Convey("When using a named logger", func() {
			logger.Named("grid").Info(ctx, "request", logger.Int("attempt", 1))

			convey.Convey("Then fields are grouped under the component name", func() {
				convey.So(buf.String(), convey.ShouldContainSubstring, "grid.attempt=1")
			})
		})

		convey.Convey("When setting an unknown level", func() {
			err := logger.SetLevelString("loud")

			convey.Convey("Then it should error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(strings.Contains(err.Error(), "loud"), convey.ShouldBeTrue)
			})
		})
	})
}

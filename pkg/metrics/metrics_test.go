package metrics_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/logger"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/metrics"
	"github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	convey.Convey("Given a metrics manager", t, func() {
		m := metrics.New()
		ctx := context.Background()

		convey.Convey("When counters are incremented and the summary is logged", func() {
			m.APIRequest(metrics.OutcomeOK)
			m.APIRequest(metrics.OutcomeOK)
			m.APIRequest(metrics.OutcomeRateLimited)
			m.APIRetry()
			m.RowsEmitted(metrics.RowKindPlayer, 10)
			m.RowsEmitted(metrics.RowKindTeam, 2)
			m.GameFailed()
			m.SeriesProcessed()

			var buf bytes.Buffer
			logger.Init(&buf)
			m.LogSummary(ctx, logger.Get())
			out := buf.String()

			convey.Convey("Then every collector appears in the summary", func() {
				convey.So(out, convey.ShouldContainSubstring, "gridflat_api_requests_total")
				convey.So(out, convey.ShouldContainSubstring, "outcome=ok")
				convey.So(out, convey.ShouldContainSubstring, "outcome=rate_limited")
				convey.So(out, convey.ShouldContainSubstring, "gridflat_api_retries_total")
				convey.So(out, convey.ShouldContainSubstring, "gridflat_rows_emitted_total")
				convey.So(out, convey.ShouldContainSubstring, "kind=player")
				convey.So(out, convey.ShouldContainSubstring, "gridflat_games_failed_total")
				convey.So(out, convey.ShouldContainSubstring, "gridflat_series_processed_total")
			})
		})

		convey.Convey("When a namespace is configured", func() {
			custom := metrics.New(metrics.WithNamespace("lolflat"))
			custom.APIRequest(metrics.OutcomeOK)

			var buf bytes.Buffer
			logger.Init(&buf)
			custom.LogSummary(ctx, logger.Get())

			convey.Convey("Then metric names carry the namespace", func() {
				convey.So(buf.String(), convey.ShouldContainSubstring, "lolflat_api_requests_total")
			})
		})
	})
}

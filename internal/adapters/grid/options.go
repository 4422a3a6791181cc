package grid

import (
	"net/http"
	"time"

	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/logger"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/metrics"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpc = h
		}
	}
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithRetryAttempts bounds the download retry loop.
func WithRetryAttempts(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.attempts = n
		}
	}
}

// WithBackoff sets the fixed delay before retrying an unclassified
// server error.
func WithBackoff(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.backoff = d
		}
	}
}

// WithLogger attaches a logger for request-level progress lines.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics attaches run metrics.
func WithMetrics(m *metrics.Manager) Option {
	return func(c *Client) { c.met = m }
}

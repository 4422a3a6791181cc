// Package grid is the client for the GRID data portal: central-data and
// series-state GraphQL plus the file-download REST endpoints.
package grid

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/logger"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/metrics"
)

const defaultBaseURL = "https://api.grid.gg"

// Default retry shape for the file-download endpoints.
const (
	defaultAttempts = 5
	defaultBackoff  = time.Second
	defaultTimeout  = 3 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to the GRID API with x-api-key authentication.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client

	attempts int
	backoff  time.Duration

	log logger.Logger
	met *metrics.Manager
}

// New builds a Client. The API key is mandatory.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	c := &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		httpc:    &http.Client{Timeout: defaultTimeout},
		attempts: defaultAttempts,
		backoff:  defaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

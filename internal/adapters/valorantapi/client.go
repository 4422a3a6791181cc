// Package valorantapi fetches static map and agent reference tables from
// the public valorant-api.com service.
package valorantapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const defaultBaseURL = "https://valorant-api.com"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is an unauthenticated reader of the reference endpoints.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpc = h
		}
	}
}

// New builds a Client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Maps returns the map table keyed by internal map URL, the identifier
// Riot match data reports as mapId.
func (c *Client) Maps(ctx context.Context) (map[string]MapInfo, error) {
	var payload struct {
		Data []MapInfo `json:"data"`
	}
	if err := c.getJSON(ctx, "/v1/maps", &payload); err != nil {
		return nil, err
	}
	table := make(map[string]MapInfo, len(payload.Data))
	for _, m := range payload.Data {
		table[m.MapURL] = m
	}
	return table, nil
}

// Agents returns the agent table keyed by agent UUID.
func (c *Client) Agents(ctx context.Context) (map[string]AgentInfo, error) {
	var payload struct {
		Data []AgentInfo `json:"data"`
	}
	if err := c.getJSON(ctx, "/v1/agents", &payload); err != nil {
		return nil, err
	}
	table := make(map[string]AgentInfo, len(payload.Data))
	for _, a := range payload.Data {
		table[a.UUID] = a
	}
	return table, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("valorant-api: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return fmt.Errorf("valorant-api status %d: %s", res.StatusCode, body)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

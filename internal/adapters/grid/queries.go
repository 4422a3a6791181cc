package grid

import (
	"context"
	"fmt"
)

// GraphQL endpoints.
const (
	centralDataEndpoint = "central-data/graphql"
	seriesStateEndpoint = "live-data-feed/series-state/graphql"
)

const seriesInfoQuery = `
    {
        series (
            id: %s
        ) {
            id
            type
            tournament {
                id
                name
                nameShortened
            }
        }
    }
`

const seriesStateQuery = `
    {
        seriesState (
            id: %s
        ) {
            id
            games {
                id
                sequenceNumber
                started
                finished
            }
        }
    }
`

// SeriesInfo fetches series and tournament metadata from central data.
func (c *Client) SeriesInfo(ctx context.Context, seriesID string) (*SeriesInfo, error) {
	data, err := c.postGraphQL(ctx, centralDataEndpoint, fmt.Sprintf(seriesInfoQuery, seriesID))
	if err != nil {
		return nil, err
	}
	var out struct {
		Series SeriesInfo `json:"series"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode series info: %w", err)
	}
	return &out.Series, nil
}

// SeriesState fetches the list of games played in a series.
func (c *Client) SeriesState(ctx context.Context, seriesID string) (*SeriesState, error) {
	data, err := c.postGraphQL(ctx, seriesStateEndpoint, fmt.Sprintf(seriesStateQuery, seriesID))
	if err != nil {
		return nil, err
	}
	var out struct {
		SeriesState SeriesState `json:"seriesState"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode series state: %w", err)
	}
	return &out.SeriesState, nil
}

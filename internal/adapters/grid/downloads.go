package grid

import (
	"archive/zip"
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
)

// ErrEmptyArchive reports a series download zip with no usable content.
var ErrEmptyArchive = errors.New("series archive contained no data")

// GameSummary downloads the Riot postgame stats file for one game.
func (c *Client) GameSummary(ctx context.Context, seriesID string, sequence int) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("file-download/end-state/riot/series/%s/games/%d/summary", seriesID, sequence))
}

// GameDetails downloads the Riot postgame timeline file for one game.
func (c *Client) GameDetails(ctx context.Context, seriesID string, sequence int) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("file-download/end-state/riot/series/%s/games/%d/details", seriesID, sequence))
}

// GameEvents downloads the newline-delimited live event log for one game.
func (c *Client) GameEvents(ctx context.Context, seriesID string, sequence int) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("file-download/events/riot/series/%s/games/%d", seriesID, sequence))
}

// SeriesEndState downloads the GRID end-state file for a series.
func (c *Client) SeriesEndState(ctx context.Context, seriesID string) ([]byte, error) {
	return c.get(ctx, "file-download/end-state/grid/series/"+seriesID)
}

// SeriesMatches downloads the Riot match-history archive for a series and
// returns the first line of its first entry: the JSON array of games.
func (c *Client) SeriesMatches(ctx context.Context, seriesID string) ([]byte, error) {
	raw, err := c.get(ctx, "file-download/end-state/riot/series/"+seriesID)
	if err != nil {
		return nil, err
	}

	archive, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("open series archive: %w", err)
	}
	if len(archive.File) == 0 {
		return nil, ErrEmptyArchive
	}

	f, err := archive.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("open archive entry: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 64*1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyArchive
	}
	line := make([]byte, len(scanner.Bytes()))
	copy(line, scanner.Bytes())
	return line, nil
}

package grid

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/logger"
	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/metrics"
)

// get downloads an endpoint with the bounded retry loop: timeouts and
// unclassified server errors retry (the latter after a fixed backoff),
// 429 sleeps for the server-specified Retry-After, and 401/403/404 return
// sentinels immediately.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	url := c.baseURL + "/" + endpoint

	for attempt := 0; attempt < c.attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("x-api-key", c.apiKey)

		res, err := c.httpc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Transport failures and client timeouts are retryable.
			c.debug(ctx, "API request timed out; retrying", logger.Int("attempt", attempt+1))
			c.count(metrics.OutcomeTimeout)
			c.retry()
			continue
		}

		body, readErr := io.ReadAll(res.Body)
		_ = res.Body.Close()

		switch {
		case res.StatusCode == http.StatusOK:
			if readErr != nil {
				return nil, readErr
			}
			c.debug(ctx, "API call was successful", logger.String("endpoint", endpoint))
			c.count(metrics.OutcomeOK)
			return body, nil

		case res.StatusCode == http.StatusTooManyRequests:
			delay := retryAfter(res)
			c.debug(ctx, "API rate-limited; sleeping", logger.Float64("seconds", delay.Seconds()))
			c.count(metrics.OutcomeRateLimited)
			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}
			c.retry()

		case res.StatusCode == http.StatusUnauthorized:
			c.count(metrics.OutcomeDenied)
			return nil, ErrUnauthorized
		case res.StatusCode == http.StatusForbidden:
			c.count(metrics.OutcomeDenied)
			return nil, ErrForbidden
		case res.StatusCode == http.StatusNotFound:
			c.count(metrics.OutcomeDenied)
			return nil, ErrNotFound

		default:
			c.debug(ctx, "API request failed; sleeping and retrying",
				logger.Int("status", res.StatusCode))
			c.count(metrics.OutcomeError)
			if err := sleep(ctx, c.backoff); err != nil {
				return nil, err
			}
			c.retry()
		}
	}

	return nil, ErrRetriesExhausted
}

// postGraphQL sends a query to one of the GraphQL endpoints and returns
// the raw data portion of the envelope. GraphQL-level errors surface as
// *GraphQLError.
func (c *Client) postGraphQL(ctx context.Context, endpoint, query string) ([]byte, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var envelope struct {
		Data   jsonRaw `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Errors) > 0 {
		return nil, &GraphQLError{Message: envelope.Errors[0].Message}
	}
	c.count(metrics.OutcomeOK)
	return envelope.Data, nil
}

type jsonRaw []byte

func (r *jsonRaw) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

func retryAfter(res *http.Response) time.Duration {
	secs, err := strconv.Atoi(res.Header.Get("Retry-After"))
	if err != nil || secs < 0 {
		return time.Second
	}
	return time.Duration(secs) * time.Second
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Client) debug(ctx context.Context, msg string, fields ...logger.Field) {
	if c.log != nil {
		c.log.Debug(ctx, msg, fields...)
	}
}

func (c *Client) count(outcome string) {
	if c.met != nil {
		c.met.APIRequest(outcome)
	}
}

func (c *Client) retry() {
	if c.met != nil {
		c.met.APIRetry()
	}
}

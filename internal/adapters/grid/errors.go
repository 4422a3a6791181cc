package grid

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Authorization and not-found outcomes are sentinels
// rather than retried: the caller decides whether to skip the unit of work.
var (
	ErrNoAPIKey         = errors.New("no API key was provided")
	ErrUnauthorized     = errors.New("request was not authorized")
	ErrForbidden        = errors.New("access forbidden")
	ErrNotFound         = errors.New("not found")
	ErrRetriesExhausted = errors.New("API request failed too many times")
)

// APIError carries an unclassified non-2xx response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("grid api status %d: %s", e.Status, e.Body)
}

// GraphQLError carries the first error reported in a GraphQL response body.
type GraphQLError struct {
	Message string
}

func (e *GraphQLError) Error() string {
	return "query failed: " + e.Message
}

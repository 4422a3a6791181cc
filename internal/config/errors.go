package config

import "errors"

// Sentinel error kinds for this package, matchable via errors.Is.
var (
	ErrMissingAPIKey = errors.New("no API key was provided")
	ErrNoSeriesIDs   = errors.New("no series IDs were provided")
	ErrMissingOutput = errors.New("no output filename was provided")
)

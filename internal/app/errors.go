package app

import "errors"

var (
	// ErrNoGridClient reports an App built without a GRID client.
	ErrNoGridClient = errors.New("no grid client configured")

	// ErrNoValorantAPI reports a Valorant run without a reference client.
	ErrNoValorantAPI = errors.New("no valorant-api client configured")
)

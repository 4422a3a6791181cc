package valorant

import "errors"

// Data-shape error kinds. Any of these aborts the game: a game that fails
// validation contributes zero rows.
var (
	ErrGameNotStarted  = errors.New("game has not yet started; try again later")
	ErrGameNotFinished = errors.New("game is not yet complete; try again later")
	ErrTeamCount       = errors.New("game did not have exactly two teams")
	ErrPlayerCount     = errors.New("found fewer than ten non-neutral players")
	ErrUnknownMap      = errors.New("map id missing from reference table")
	ErrUnknownAgent    = errors.New("agent id missing from reference table")
	ErrNoMetadataMatch = errors.New("unable to match game to metadata")
	ErrTeamMapping     = errors.New("failed to map team onto the end-state metadata")
	ErrMissingTeamRow  = errors.New("failed to create a team row")
	ErrNoRoundKills    = errors.New("round contains no kill events")
	ErrNoShotData      = errors.New("player has no recorded shots")
	ErrNoRoundsPlayed  = errors.New("player has zero rounds played")
	ErrBadGameVersion  = errors.New("could not parse game version")
)

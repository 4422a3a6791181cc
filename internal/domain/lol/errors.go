package lol

import "errors"

// Data-shape error kinds. Any of these aborts the game: a game that fails
// validation contributes zero rows.
var (
	ErrTeamCount    = errors.New("game did not have exactly two teams")
	ErrPlayerCount  = errors.New("game did not have exactly ten players")
	ErrUnknownSide  = errors.New("participant has an unknown team side")
	ErrZeroDuration = errors.New("game duration is zero")

	// ErrZeroTeamKills makes the kill-participation division fault
	// explicit. Deaths are floored to one for KDA; team kills carry no
	// such guard, and the asymmetry is part of the contract.
	ErrZeroTeamKills = errors.New("team kills is zero: kill participation is undefined")

	// ErrZeroTeamDamage does the same for the damage-share divisor.
	ErrZeroTeamDamage = errors.New("team damage is zero: damage share is undefined")
)

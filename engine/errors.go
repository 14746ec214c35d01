package engine

import "errors"

// Error taxonomy shared by all engine operations. Every operation fails
// without partial mutation; callers decide whether to retry.
var (
	// Not found
	ErrPlayerNotFound       = errors.New("player not found")
	ErrGroupNotFound        = errors.New("group not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrBracketMatchNotFound = errors.New("bracket match not found")

	// Invalid lifecycle state
	ErrRegistrationClosed  = errors.New("tournament registration is closed")
	ErrGroupStageNotActive = errors.New("operation requires an active group stage")
	ErrAlreadyStarted      = errors.New("tournament has already started")
	ErrMatchNotReady       = errors.New("bracket match does not have both players assigned")
	ErrMatchAlreadyDecided = errors.New("bracket match already has a winner")

	// Invalid input
	ErrNameRequired   = errors.New("name cannot be empty")
	ErrInvalidWinner  = errors.New("winner must be one of the players in the match")
	ErrInvalidResult  = errors.New("result references a player not in this match")
	ErrSeriesComplete = errors.New("series already has the maximum number of games")

	// Below minimum to start
	ErrInsufficientPlayers = errors.New("not enough players to start the tournament")
)

package services

import "errors"

// Errors raised by the service layer itself. Engine errors pass through
// unwrapped so handlers can map the whole taxonomy in one place.
var (
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrTournamentNameRequired = errors.New("tournament name is required")
	ErrUnknownGameType        = errors.New("unknown game type")
	ErrPhotoUploadUnavailable = errors.New("photo upload storage is not configured")
)

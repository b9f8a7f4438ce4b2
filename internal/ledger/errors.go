package ledger

import "errors"

// Validation errors. Commands return them, possibly wrapped, before anything is committed.
var (
	ErrEmptyNick      = errors.New("player nick must not be empty")
	ErrInvalidPoints  = errors.New("points must not be negative")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrSelfDebt       = errors.New("players on both sides must differ")
	ErrMissingPlayer  = errors.New("player id required")
	ErrNoParticipants = errors.New("at least one participant required")
	ErrEmptyGameName  = errors.New("game name must not be empty")
)

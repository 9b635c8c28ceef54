package model

import "errors"

// Invalid-input errors: the request itself is malformed and never reached
// the rules.
var (
	ErrInvalidSquare = errors.New("invalid square token")
	ErrInvalidPiece  = errors.New("invalid fairy piece symbol")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
)

// Rule violations: the request was well formed but the rules reject it. The
// game is untouched and the caller may retry with a different action.
var (
	ErrGameOver       = errors.New("game is already over")
	ErrEmptySquare    = errors.New("no piece on source square")
	ErrNotYourTurn    = errors.New("piece does not belong to the player to move")
	ErrIllegalMove    = errors.New("move violates piece movement rules")
	ErrBlockedPath    = errors.New("another piece blocks the path")
	ErrFairyUsed      = errors.New("fairy piece is not in reserve")
	ErrFairyNotEarned = errors.New("no major-piece loss to redeem for a fairy entry")
	ErrBadEntrySquare = errors.New("entry square must be empty and within the home ranks")
)

// IsInvalidInput distinguishes malformed input from a rules rejection.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidSquare) ||
		errors.Is(err, ErrInvalidPiece) ||
		errors.Is(err, ErrOutOfBounds)
}

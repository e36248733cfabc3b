package domain

import "errors"

// Failure kinds shared by every layer. Callers branch with errors.Is; the
// wrapping message carries the specifics (which field, which id).
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrCapacity   = errors.New("capacity exceeded")
	ErrDecode     = errors.New("decode failed")
)

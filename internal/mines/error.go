package mines

import "errors"

var (
	ErrOutOfBounds      = errors.New("point out of bounds")
	ErrAlreadyGenerated = errors.New("mines already generated for this round")
	ErrNoRoom           = errors.New("not enough cells outside the safe zone")
	ErrInvalidParams    = errors.New("invalid game params")
)

// AssertionError is panicked with when an internal invariant breaks. Gameplay
// rule violations never raise it, those are silent no-ops.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

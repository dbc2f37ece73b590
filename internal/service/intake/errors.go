package intake

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")

	// ErrNothingToIntake distinguishes an empty candidate set from a bulk run
	// that happened to succeed zero times.
	ErrNothingToIntake = errors.New("nothing to add")
)

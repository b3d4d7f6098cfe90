package ledger

import "errors"

var (
	// ErrInvalidAmount marks a computed amount that is not a positive finite
	// number, e.g. a NaN total coerced from non-numeric input.
	ErrInvalidAmount = errors.New("amount is not a valid positive number")

	// ErrMissingTotal rejects a split whose total is absent, zero or negative.
	ErrMissingTotal = errors.New("total amount must be greater than zero")

	// ErrNoParticipants rejects a split with an empty participant list.
	ErrNoParticipants = errors.New("at least one participant is required")

	// ErrIncompleteParticipant rejects a participant with a missing name or
	// a non-positive amount.
	ErrIncompleteParticipant = errors.New("every participant needs a name and a positive amount")

	// ErrAllocationMismatch rejects a custom split whose assigned amounts do
	// not add up to the tip-inclusive total within tolerance.
	ErrAllocationMismatch = errors.New("assigned amounts do not match the total")

	// ErrAlreadyPaid rejects a payment for a participant who already paid.
	// A second attempt is an error, never a silent success.
	ErrAlreadyPaid = errors.New("this participant has already paid their share")

	// ErrUnknownParticipant rejects a payment from a name that matches no
	// participant on a split that cannot accept late joiners.
	ErrUnknownParticipant = errors.New("no matching participant on this split")
)

package models

import "time"

// SplitType selects how a bill is divided among participants.
type SplitType string

const (
	// SplitTypeEqual divides the tip-inclusive total uniformly across all
	// participant slots.
	SplitTypeEqual SplitType = "equal"

	// SplitTypeCustom uses the per-participant amounts entered by the payer.
	// The amounts must add up to the tip-inclusive total.
	SplitTypeCustom SplitType = "custom"
)

// Participant is one person's share of a split.
//
// Name lookups are case-insensitive. On equal splits the name may be an empty
// placeholder until the person self-identifies on the public payment page.
type Participant struct {
	// Name is the display name of the participant.
	Name string `json:"name"`

	// Amount is the participant's owed share, tip included.
	Amount float64 `json:"amount"`

	// Paid records whether the share has been settled.
	Paid bool `json:"paid"`

	// PaymentID is the opaque token of the simulated payment.
	// Empty until Paid becomes true.
	PaymentID string `json:"paymentId"`
}

// Split is a single bill-division instance. The JSON field names are the
// persisted document format; another client reading the store must match them.
//
// After creation only the participants' Paid/PaymentID fields ever change.
// TotalWithTip is always derived as TotalAmount * (1 + TipPercentage/100) by
// the ledger builder and is never edited independently of its inputs.
type Split struct {
	// ID is the document identifier assigned by the store at creation.
	ID string `json:"id"`

	// PayerID identifies the user who created the split and owns the
	// management view. Anyone holding the ID may use the public payment view.
	PayerID string `json:"payerId"`

	// TotalAmount is the base bill amount, strictly positive.
	TotalAmount float64 `json:"totalAmount"`

	// TipPercentage is the non-negative tip applied to TotalAmount.
	TipPercentage float64 `json:"tipPercentage"`

	// TotalWithTip is the derived tip-inclusive total.
	TotalWithTip float64 `json:"totalWithTip"`

	// SplitType is either SplitTypeEqual or SplitTypeCustom.
	SplitType SplitType `json:"splitType"`

	// Participants in insertion order. Order matters only for display.
	Participants []Participant `json:"participants"`

	// CreatedAt is the creation timestamp, immutable.
	CreatedAt time.Time `json:"createdAt"`

	// Revision is the store's compare-and-swap counter. It is not part of
	// the document body and never leaves the server.
	Revision int64 `json:"-"`
}

// Clone returns a deep copy of the split. Reconciliation works on a copy so
// a failed attempt never leaves a half-mutated split behind.
func (s *Split) Clone() *Split {
	out := *s
	out.Participants = make([]Participant, len(s.Participants))
	copy(out.Participants, s.Participants)
	return &out
}

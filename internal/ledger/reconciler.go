package ledger

import (
	"fmt"
	"strings"

	"github.com/JuanjoFeller/billwise/internal/models"
)

// ApplyPayment records a payment event against the split, in place. The payer
// self-identifies by name; the match is case-insensitive and the first match
// wins. It returns the amount that was settled.
//
// A participant who already paid is rejected with ErrAlreadyPaid and the
// split is left untouched; retrying a settled payment is an error, never a
// silent success.
//
// A name that matches nobody joins an equal split late: they are appended
// already paid, owing totalWithTip divided by the participant count at the
// time they join. Existing allocations are never recomputed, so late joiners
// dilute the share of future joiners only. Custom splits have no room for
// unplanned participants and reject the name with ErrUnknownParticipant.
func ApplyPayment(s *models.Split, name, paymentID string) (float64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("empty payer name: %w", ErrUnknownParticipant)
	}

	if idx := findParticipant(s, name); idx >= 0 {
		p := &s.Participants[idx]
		if p.Paid {
			return 0, fmt.Errorf("%s: %w", p.Name, ErrAlreadyPaid)
		}
		if !(p.Amount > 0) || !isFinite(p.Amount) {
			return 0, fmt.Errorf("share %v: %w", p.Amount, ErrInvalidAmount)
		}
		p.Paid = true
		p.PaymentID = paymentID
		return p.Amount, nil
	}

	if s.SplitType != models.SplitTypeEqual || len(s.Participants) == 0 {
		return 0, fmt.Errorf("%s: %w", name, ErrUnknownParticipant)
	}

	// Late joiner on an equal split: share is computed against the current
	// participant count, not the count at creation time.
	share := s.TotalWithTip / float64(len(s.Participants))
	if !(share > 0) || !isFinite(share) {
		return 0, fmt.Errorf("share %v: %w", share, ErrInvalidAmount)
	}
	s.Participants = append(s.Participants, models.Participant{
		Name:      name,
		Amount:    share,
		Paid:      true,
		PaymentID: paymentID,
	})
	return share, nil
}

// TogglePaid flips a participant's paid flag in either direction, by exact
// index. This is the payer's administrative override on the tracking view:
// no payment token is generated and the existing token is kept as-is.
func TogglePaid(s *models.Split, index int) error {
	if index < 0 || index >= len(s.Participants) {
		return fmt.Errorf("participant index %d out of range: %w", index, ErrUnknownParticipant)
	}
	s.Participants[index].Paid = !s.Participants[index].Paid
	return nil
}

// PendingBalance is the tip-inclusive total minus everything already marked
// paid. It is derived for display and never stored.
func PendingBalance(s *models.Split) float64 {
	paid := 0.0
	for _, p := range s.Participants {
		if p.Paid {
			paid += p.Amount
		}
	}
	return s.TotalWithTip - paid
}

// Complete reports whether the whole split has been settled, within
// Tolerance.
func Complete(s *models.Split) bool {
	return PendingBalance(s) <= Tolerance
}

func findParticipant(s *models.Split, name string) int {
	for i, p := range s.Participants {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}

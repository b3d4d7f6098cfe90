package ledger

import (
	"fmt"
	"math"
	"strings"

	"github.com/JuanjoFeller/billwise/internal/models"
)

// Validate accepts or rejects a candidate split before it is persisted.
//
// Checks run in a fixed order and the first failure wins: missing total,
// then empty participant list, then the mode-specific checks. Callers must
// not assume multiple simultaneous problems are reported together.
//
// On equal splits the participant names may be empty placeholders (people
// self-identify later on the public page), so only the amounts are checked.
// Custom splits require a name and a positive amount on every row, and the
// amounts must sum to the tip-inclusive total within Tolerance; a difference
// of exactly Tolerance is still accepted.
func Validate(s *models.Split) error {
	if !(s.TotalAmount > 0) {
		return fmt.Errorf("total %v: %w", s.TotalAmount, ErrMissingTotal)
	}
	if len(s.Participants) == 0 {
		return ErrNoParticipants
	}
	if !isFinite(s.TotalWithTip) {
		return fmt.Errorf("total with tip %v: %w", s.TotalWithTip, ErrInvalidAmount)
	}

	switch s.SplitType {
	case models.SplitTypeCustom:
		var sum float64
		for i, p := range s.Participants {
			if strings.TrimSpace(p.Name) == "" || !(p.Amount > 0) {
				return fmt.Errorf("participant %d: %w", i+1, ErrIncompleteParticipant)
			}
			sum += p.Amount
		}
		if diff := math.Abs(sum - s.TotalWithTip); diff > Tolerance {
			return fmt.Errorf("assigned %.2f vs total %.2f: %w", sum, s.TotalWithTip, ErrAllocationMismatch)
		}
	case models.SplitTypeEqual:
		for i, p := range s.Participants {
			if !isFinite(p.Amount) {
				return fmt.Errorf("participant %d share %v: %w", i+1, p.Amount, ErrInvalidAmount)
			}
			if !(p.Amount > 0) {
				return fmt.Errorf("participant %d: %w", i+1, ErrIncompleteParticipant)
			}
		}
	default:
		return fmt.Errorf("unsupported split type %q", s.SplitType)
	}

	return nil
}

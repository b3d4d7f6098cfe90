package ledger

import (
	"fmt"
	"math"

	"github.com/JuanjoFeller/billwise/internal/models"
)

// Tolerance is the absolute tolerance, in currency units, used when comparing
// monetary sums.
const Tolerance = 0.01

// Build computes a candidate split from raw form input. It derives the
// tip-inclusive total and the per-participant allocations but persists
// nothing; the result still has to pass Validate before it may be stored.
//
// Equal splits ignore any supplied per-participant amounts and give every
// slot an identical share of the tip-inclusive total. Custom splits keep the
// supplied amounts verbatim, without normalizing or redistributing.
func Build(totalAmount, tipPercentage float64, splitType models.SplitType, participants []models.ParticipantInput) (*models.Split, error) {
	tip := totalAmount * tipPercentage / 100
	totalWithTip := totalAmount + tip

	// A NaN or infinite total must never reach a persisted record.
	if !isFinite(totalWithTip) {
		return nil, fmt.Errorf("total %v with tip %v%%: %w", totalAmount, tipPercentage, ErrInvalidAmount)
	}

	split := &models.Split{
		TotalAmount:   totalAmount,
		TipPercentage: tipPercentage,
		TotalWithTip:  totalWithTip,
		SplitType:     splitType,
		Participants:  make([]models.Participant, 0, len(participants)),
	}

	switch splitType {
	case models.SplitTypeEqual:
		// Zero slots yields an empty list for the validator to reject;
		// there is deliberately no division by zero here.
		if len(participants) > 0 {
			share := totalWithTip / float64(len(participants))
			for _, p := range participants {
				split.Participants = append(split.Participants, models.Participant{
					Name:   p.Name,
					Amount: share,
				})
			}
		}
	case models.SplitTypeCustom:
		for _, p := range participants {
			split.Participants = append(split.Participants, models.Participant{
				Name:   p.Name,
				Amount: p.Amount,
			})
		}
	default:
		return nil, fmt.Errorf("unsupported split type %q", splitType)
	}

	return split, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

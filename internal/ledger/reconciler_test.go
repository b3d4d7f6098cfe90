package ledger

import (
	"errors"
	"math"
	"testing"

	"github.com/JuanjoFeller/billwise/internal/models"
)

func customSplit() *models.Split {
	return &models.Split{
		TotalAmount:  100,
		TotalWithTip: 100,
		SplitType:    models.SplitTypeCustom,
		Participants: []models.Participant{
			{Name: "Juan", Amount: 40},
			{Name: "Maria", Amount: 60},
		},
	}
}

func equalSplit(n int, totalWithTip float64) *models.Split {
	s := &models.Split{
		TotalAmount:  totalWithTip,
		TotalWithTip: totalWithTip,
		SplitType:    models.SplitTypeEqual,
	}
	share := totalWithTip / float64(n)
	for i := 0; i < n; i++ {
		s.Participants = append(s.Participants, models.Participant{Amount: share})
	}
	return s
}

func TestApplyPaymentCaseInsensitive(t *testing.T) {
	s := customSplit()

	amount, err := ApplyPayment(s, "juan", "sim-pay-1")
	if err != nil {
		t.Fatalf("ApplyPayment failed: %v", err)
	}
	if amount != 40 {
		t.Errorf("amount = %v, want 40", amount)
	}
	if !s.Participants[0].Paid {
		t.Error("expected Juan to be marked paid")
	}
	if s.Participants[0].PaymentID != "sim-pay-1" {
		t.Errorf("PaymentID = %q, want sim-pay-1", s.Participants[0].PaymentID)
	}
	// The stored display name is untouched by the lookup.
	if s.Participants[0].Name != "Juan" {
		t.Errorf("name = %q, want Juan", s.Participants[0].Name)
	}
}

func TestApplyPaymentAlreadyPaid(t *testing.T) {
	s := customSplit()
	if _, err := ApplyPayment(s, "Juan", "sim-pay-1"); err != nil {
		t.Fatalf("first payment failed: %v", err)
	}

	before := s.Clone()
	_, err := ApplyPayment(s, "JUAN", "sim-pay-2")
	if !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("second payment error = %v, want ErrAlreadyPaid", err)
	}

	// The rejected attempt must not mutate anything.
	if len(s.Participants) != len(before.Participants) {
		t.Fatalf("participant count changed on rejected payment")
	}
	for i := range s.Participants {
		if s.Participants[i] != before.Participants[i] {
			t.Errorf("participant %d mutated on rejected payment: %+v vs %+v",
				i, s.Participants[i], before.Participants[i])
		}
	}
}

func TestApplyPaymentUnknownOnCustom(t *testing.T) {
	s := customSplit()
	_, err := ApplyPayment(s, "Pedro", "sim-pay-1")
	if !errors.Is(err, ErrUnknownParticipant) {
		t.Errorf("error = %v, want ErrUnknownParticipant", err)
	}
	if len(s.Participants) != 2 {
		t.Errorf("participant count = %d, want 2", len(s.Participants))
	}
}

func TestApplyPaymentLateJoinerDilution(t *testing.T) {
	// An unknown name joins an equal split at totalWithTip / current count.
	// Existing amounts stay put; only future joiners see the diluted share.
	s := equalSplit(3, 165.00)

	amount, err := ApplyPayment(s, "Dana", "sim-pay-1")
	if err != nil {
		t.Fatalf("late join failed: %v", err)
	}
	if math.Abs(amount-55.00) > 1e-9 {
		t.Errorf("first joiner amount = %v, want 55.00", amount)
	}
	if len(s.Participants) != 4 {
		t.Fatalf("participant count = %d, want 4", len(s.Participants))
	}
	joined := s.Participants[3]
	if joined.Name != "Dana" || !joined.Paid || joined.PaymentID != "sim-pay-1" {
		t.Errorf("unexpected joined participant: %+v", joined)
	}

	// Next joiner divides by the grown count.
	amount, err = ApplyPayment(s, "Eva", "sim-pay-2")
	if err != nil {
		t.Fatalf("second late join failed: %v", err)
	}
	if math.Abs(amount-165.00/4) > 1e-9 {
		t.Errorf("second joiner amount = %v, want %v", amount, 165.00/4)
	}

	// Original slots were never recomputed.
	for i := 0; i < 3; i++ {
		if math.Abs(s.Participants[i].Amount-55.00) > 1e-9 {
			t.Errorf("existing participant %d amount changed to %v", i, s.Participants[i].Amount)
		}
	}
}

func TestApplyPaymentEmptyName(t *testing.T) {
	s := equalSplit(2, 100)
	if _, err := ApplyPayment(s, "   ", "sim-pay-1"); !errors.Is(err, ErrUnknownParticipant) {
		t.Errorf("error = %v, want ErrUnknownParticipant", err)
	}
}

func TestPendingBalance(t *testing.T) {
	s := customSplit()

	if got := PendingBalance(s); math.Abs(got-100) > 1e-9 {
		t.Errorf("initial pending = %v, want 100", got)
	}
	if Complete(s) {
		t.Error("fresh split should not be complete")
	}

	// Each successful payment decreases the balance by exactly that
	// participant's amount.
	if _, err := ApplyPayment(s, "Juan", "sim-pay-1"); err != nil {
		t.Fatalf("payment failed: %v", err)
	}
	if got := PendingBalance(s); math.Abs(got-60) > 1e-9 {
		t.Errorf("pending after Juan = %v, want 60", got)
	}

	if _, err := ApplyPayment(s, "Maria", "sim-pay-2"); err != nil {
		t.Fatalf("payment failed: %v", err)
	}
	if got := PendingBalance(s); math.Abs(got) > 1e-9 {
		t.Errorf("pending after everyone paid = %v, want 0", got)
	}
	if !Complete(s) {
		t.Error("fully paid split should be complete")
	}
}

func TestTogglePaid(t *testing.T) {
	s := customSplit()

	if err := TogglePaid(s, 1); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !s.Participants[1].Paid {
		t.Error("expected participant 1 to be paid after toggle")
	}
	// No token is generated by the administrative override.
	if s.Participants[1].PaymentID != "" {
		t.Errorf("PaymentID = %q, want empty", s.Participants[1].PaymentID)
	}

	// And back the other way.
	if err := TogglePaid(s, 1); err != nil {
		t.Fatalf("toggle back failed: %v", err)
	}
	if s.Participants[1].Paid {
		t.Error("expected participant 1 to be unpaid after second toggle")
	}

	if err := TogglePaid(s, 5); !errors.Is(err, ErrUnknownParticipant) {
		t.Errorf("out-of-range toggle error = %v, want ErrUnknownParticipant", err)
	}
	if err := TogglePaid(s, -1); !errors.Is(err, ErrUnknownParticipant) {
		t.Errorf("negative index toggle error = %v, want ErrUnknownParticipant", err)
	}
}

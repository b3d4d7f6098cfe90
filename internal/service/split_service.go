// Package service implements the application operations on top of the ledger
// and the document store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JuanjoFeller/billwise/internal/ledger"
	"github.com/JuanjoFeller/billwise/internal/models"
	"github.com/JuanjoFeller/billwise/internal/storage"
)

// ErrForbidden is returned when a user touches a split they do not own.
var ErrForbidden = errors.New("split belongs to another user")

// SplitService owns the split lifecycle: creation, tracking, the public
// payment view and the simulated payment flow.
type SplitService struct {
	store   storage.Store
	baseURL string

	// paymentDelay stands in for the round trip of a real payment gateway.
	// Zero in tests.
	paymentDelay time.Duration
}

// NewSplitService creates a split service. baseURL is the externally visible
// origin used in share links, without a trailing slash.
func NewSplitService(store storage.Store, baseURL string, paymentDelay time.Duration) *SplitService {
	return &SplitService{
		store:        store,
		baseURL:      strings.TrimRight(baseURL, "/"),
		paymentDelay: paymentDelay,
	}
}

// Create builds, validates and persists a new split for the payer. Validation
// failures come back unwrapped from the ledger, before anything is stored.
func (s *SplitService) Create(ctx context.Context, payerID string, req models.CreateSplitRequest) (*models.CreateSplitResponse, error) {
	split, err := ledger.Build(req.TotalAmount, req.TipPercentage, req.SplitType, req.Participants)
	if err != nil {
		return nil, err
	}
	split.PayerID = payerID

	if err := ledger.Validate(split); err != nil {
		return nil, err
	}

	if err := s.store.CreateSplit(ctx, split); err != nil {
		return nil, fmt.Errorf("failed to store split: %w", err)
	}

	slog.Info("split created",
		"split_id", split.ID,
		"payer_id", payerID,
		"type", split.SplitType,
		"total_with_tip", split.TotalWithTip,
		"participants", len(split.Participants),
	)

	return &models.CreateSplitResponse{
		Split:      split,
		PublicPath: publicPath(split.ID),
		ShareText:  s.shareText(split),
	}, nil
}

// Get returns the management view of a split. Only the payer who created the
// split may see it.
func (s *SplitService) Get(ctx context.Context, userID, splitID string) (*models.SplitStatus, error) {
	split, err := s.store.GetSplit(ctx, splitID)
	if err != nil {
		return nil, err
	}
	if split.PayerID != userID {
		return nil, ErrForbidden
	}
	return s.status(split), nil
}

// List returns the user's splits, newest first, each with its derived pending
// balance.
func (s *SplitService) List(ctx context.Context, userID string) (*models.SplitListResponse, error) {
	splits, err := s.store.ListSplitsByPayer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}

	out := &models.SplitListResponse{Splits: make([]*models.SplitStatus, 0, len(splits))}
	for _, split := range splits {
		out.Splits = append(out.Splits, s.status(split))
	}
	return out, nil
}

// TogglePaid flips a participant's paid flag by index, for the owning payer.
// No payment token is issued; an existing token is kept.
func (s *SplitService) TogglePaid(ctx context.Context, userID, splitID string, index int) (*models.SplitStatus, error) {
	split, err := s.store.GetSplit(ctx, splitID)
	if err != nil {
		return nil, err
	}
	if split.PayerID != userID {
		return nil, ErrForbidden
	}

	updated := split.Clone()
	if err := ledger.TogglePaid(updated, index); err != nil {
		return nil, err
	}
	if err := s.store.UpdateSplit(ctx, updated); err != nil {
		return nil, err
	}

	slog.Info("participant toggled",
		"split_id", splitID,
		"index", index,
		"paid", updated.Participants[index].Paid,
	)
	return s.status(updated), nil
}

// PublicGet returns the unauthenticated payment view. Knowing the split id is
// the only requirement.
func (s *SplitService) PublicGet(ctx context.Context, splitID string) (*models.PublicSplitResponse, error) {
	split, err := s.store.GetSplit(ctx, splitID)
	if err != nil {
		return nil, err
	}
	return &models.PublicSplitResponse{
		ID:           split.ID,
		PayerHint:    payerHint(split.PayerID),
		TotalWithTip: split.TotalWithTip,
		SplitType:    split.SplitType,
		Participants: split.Clone().Participants,
	}, nil
}

// Pay runs the simulated payment flow for a named participant: wait out the
// fake gateway delay, reconcile against a copy of the split, then write the
// copy back guarded by its revision. A lost write race surfaces as
// storage.ErrConflict; the caller retries from a fresh read if it wants to.
func (s *SplitService) Pay(ctx context.Context, splitID, name string) (*models.PayResponse, error) {
	split, err := s.store.GetSplit(ctx, splitID)
	if err != nil {
		return nil, err
	}

	if s.paymentDelay > 0 {
		time.Sleep(s.paymentDelay)
	}

	paymentID := "sim-pay-" + uuid.New().String()
	updated := split.Clone()
	amount, err := ledger.ApplyPayment(updated, name, paymentID)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateSplit(ctx, updated); err != nil {
		return nil, err
	}

	slog.Info("payment settled",
		"split_id", splitID,
		"name", strings.TrimSpace(name),
		"amount", amount,
		"payment_id", paymentID,
		"pending", ledger.PendingBalance(updated),
	)

	return &models.PayResponse{
		Name:       strings.TrimSpace(name),
		AmountPaid: amount,
		PaymentID:  paymentID,
	}, nil
}

func (s *SplitService) status(split *models.Split) *models.SplitStatus {
	return &models.SplitStatus{
		Split:          split,
		PendingBalance: ledger.PendingBalance(split),
		Complete:       ledger.Complete(split),
		PublicPath:     publicPath(split.ID),
		ShareText:      s.shareText(split),
	}
}

// shareText is the prefilled message a payer sends along with the public
// link. Listing shares with a paid marker mirrors the tracking page.
func (s *SplitService) shareText(split *models.Split) string {
	var b strings.Builder
	b.WriteString("Hi! I covered the bill, here is everyone's share on BillWise:\n\n")
	for _, p := range split.Participants {
		name := p.Name
		if name == "" {
			name = "(open slot)"
		}
		fmt.Fprintf(&b, "- %s: $%.2f", name, p.Amount)
		if p.Paid {
			b.WriteString(" (paid!)")
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nPay your share here: %s%s\n\nThanks!", s.baseURL, publicPath(split.ID))
	return b.String()
}

func publicPath(splitID string) string {
	return "/" + splitID
}

// payerHint is the truncated payer id shown on the public page, enough to
// recognize who is collecting without leaking the full account id.
func payerHint(payerID string) string {
	if len(payerID) <= 8 {
		return payerID
	}
	return payerID[:8]
}

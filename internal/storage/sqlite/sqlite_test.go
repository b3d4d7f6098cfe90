package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JuanjoFeller/billwise/internal/models"
	"github.com/JuanjoFeller/billwise/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "billwise-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testSplit(payerID string) *models.Split {
	return &models.Split{
		PayerID:       payerID,
		TotalAmount:   150.00,
		TipPercentage: 10,
		TotalWithTip:  165.00,
		SplitType:     models.SplitTypeEqual,
		Participants: []models.Participant{
			{Amount: 55}, {Amount: 55}, {Amount: 55},
		},
	}
}

func TestSQLiteStoreSplits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateSplit assigns id, timestamp and revision", func(t *testing.T) {
		split := testSplit("payer-1")
		if err := store.CreateSplit(ctx, split); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}
		if split.ID == "" {
			t.Error("Expected split ID to be generated")
		}
		if split.CreatedAt.IsZero() {
			t.Error("Expected CreatedAt to be set")
		}
		if split.Revision != 1 {
			t.Errorf("Revision = %d, want 1", split.Revision)
		}
	})

	t.Run("GetSplit round-trips the document", func(t *testing.T) {
		original := testSplit("payer-2")
		original.SplitType = models.SplitTypeCustom
		original.Participants = []models.Participant{
			{Name: "Ana", Amount: 100},
			{Name: "Bruno", Amount: 65, Paid: true, PaymentID: "sim-pay-x"},
		}
		if err := store.CreateSplit(ctx, original); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}

		got, err := store.GetSplit(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetSplit failed: %v", err)
		}
		if got.PayerID != "payer-2" || got.SplitType != models.SplitTypeCustom {
			t.Errorf("unexpected split: %+v", got)
		}
		if len(got.Participants) != 2 {
			t.Fatalf("participant count = %d, want 2", len(got.Participants))
		}
		if got.Participants[1] != original.Participants[1] {
			t.Errorf("participant = %+v, want %+v", got.Participants[1], original.Participants[1])
		}
		if got.Revision != 1 {
			t.Errorf("Revision = %d, want 1", got.Revision)
		}
	})

	t.Run("GetSplit returns ErrNotFound for missing id", func(t *testing.T) {
		_, err := store.GetSplit(ctx, "nope")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("UpdateSplit advances the revision", func(t *testing.T) {
		split := testSplit("payer-3")
		if err := store.CreateSplit(ctx, split); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}

		split.Participants[0].Paid = true
		split.Participants[0].PaymentID = "sim-pay-1"
		if err := store.UpdateSplit(ctx, split); err != nil {
			t.Fatalf("UpdateSplit failed: %v", err)
		}
		if split.Revision != 2 {
			t.Errorf("Revision = %d, want 2", split.Revision)
		}

		got, err := store.GetSplit(ctx, split.ID)
		if err != nil {
			t.Fatalf("GetSplit failed: %v", err)
		}
		if !got.Participants[0].Paid || got.Participants[0].PaymentID != "sim-pay-1" {
			t.Errorf("update not persisted: %+v", got.Participants[0])
		}
	})

	t.Run("UpdateSplit rejects a stale revision", func(t *testing.T) {
		split := testSplit("payer-4")
		if err := store.CreateSplit(ctx, split); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}

		// Two readers load the same revision.
		first, err := store.GetSplit(ctx, split.ID)
		if err != nil {
			t.Fatalf("GetSplit failed: %v", err)
		}
		second, err := store.GetSplit(ctx, split.ID)
		if err != nil {
			t.Fatalf("GetSplit failed: %v", err)
		}

		first.Participants[0].Paid = true
		if err := store.UpdateSplit(ctx, first); err != nil {
			t.Fatalf("first writer failed: %v", err)
		}

		second.Participants[1].Paid = true
		err = store.UpdateSplit(ctx, second)
		if !errors.Is(err, storage.ErrConflict) {
			t.Fatalf("second writer error = %v, want ErrConflict", err)
		}

		// The losing write changed nothing.
		got, err := store.GetSplit(ctx, split.ID)
		if err != nil {
			t.Fatalf("GetSplit failed: %v", err)
		}
		if got.Participants[1].Paid {
			t.Error("losing write must not be applied")
		}
	})

	t.Run("UpdateSplit returns ErrNotFound for a vanished document", func(t *testing.T) {
		split := testSplit("payer-5")
		split.ID = "never-created"
		split.CreatedAt = time.Now()
		split.Revision = 1
		err := store.UpdateSplit(ctx, split)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListSplitsByPayer returns newest first", func(t *testing.T) {
		payer := "payer-list"
		older := testSplit(payer)
		older.CreatedAt = time.Now().Add(-time.Hour)
		if err := store.CreateSplit(ctx, older); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}
		newer := testSplit(payer)
		if err := store.CreateSplit(ctx, newer); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}
		// Another payer's split must not leak into the listing.
		if err := store.CreateSplit(ctx, testSplit("someone-else")); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}

		splits, err := store.ListSplitsByPayer(ctx, payer)
		if err != nil {
			t.Fatalf("ListSplitsByPayer failed: %v", err)
		}
		if len(splits) != 2 {
			t.Fatalf("split count = %d, want 2", len(splits))
		}
		if splits[0].ID != newer.ID || splits[1].ID != older.ID {
			t.Errorf("unexpected order: got %s, %s", splits[0].ID, splits[1].ID)
		}
	})
}

func TestSQLiteStoreUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("ana@example.com", "Ana", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("GetUserByEmail", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != user.ID || got.DisplayName != "Ana" {
			t.Errorf("unexpected user: %+v", got)
		}
	})

	t.Run("GetUserByID", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got == nil || got.Email != "ana@example.com" {
			t.Errorf("unexpected user: %+v", got)
		}
	})

	t.Run("missing user is nil, not an error", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil user, got %+v", got)
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		dup := models.NewUser("ana@example.com", "Other Ana", "hash2")
		if err := store.CreateUser(ctx, dup); err == nil {
			t.Error("expected duplicate email insert to fail")
		}
	})
}

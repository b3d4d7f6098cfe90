package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JuanjoFeller/billwise/internal/models"
	"github.com/JuanjoFeller/billwise/internal/storage"
)

// splitDoc is the persisted document body. It mirrors the wire format
// exactly: the id is the row key, not part of the document, and the revision
// lives in its own column.
type splitDoc struct {
	PayerID       string               `json:"payerId"`
	TotalAmount   float64              `json:"totalAmount"`
	TipPercentage float64              `json:"tipPercentage"`
	TotalWithTip  float64              `json:"totalWithTip"`
	SplitType     models.SplitType     `json:"splitType"`
	Participants  []models.Participant `json:"participants"`
	CreatedAt     time.Time            `json:"createdAt"`
}

func encodeSplit(split *models.Split) ([]byte, error) {
	return json.Marshal(splitDoc{
		PayerID:       split.PayerID,
		TotalAmount:   split.TotalAmount,
		TipPercentage: split.TipPercentage,
		TotalWithTip:  split.TotalWithTip,
		SplitType:     split.SplitType,
		Participants:  split.Participants,
		CreatedAt:     split.CreatedAt,
	})
}

func decodeSplit(id string, raw []byte, revision int64) (*models.Split, error) {
	var doc splitDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode split document %s: %w", id, err)
	}
	return &models.Split{
		ID:            id,
		PayerID:       doc.PayerID,
		TotalAmount:   doc.TotalAmount,
		TipPercentage: doc.TipPercentage,
		TotalWithTip:  doc.TotalWithTip,
		SplitType:     doc.SplitType,
		Participants:  doc.Participants,
		CreatedAt:     doc.CreatedAt,
		Revision:      revision,
	}, nil
}

// CreateSplit persists a new split document, assigning its id, creation
// timestamp and initial revision.
func (s *SQLiteStore) CreateSplit(ctx context.Context, split *models.Split) error {
	if split.ID == "" {
		split.ID = uuid.New().String()
	}
	if split.CreatedAt.IsZero() {
		split.CreatedAt = time.Now().UTC()
	}
	split.Revision = 1

	raw, err := encodeSplit(split)
	if err != nil {
		return fmt.Errorf("failed to encode split: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO splits (id, payer_id, doc, revision, created_at) VALUES (?, ?, ?, ?, ?)",
		split.ID, split.PayerID, string(raw), split.Revision, split.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert split: %w", err)
	}
	return nil
}

// GetSplit retrieves a split document by id.
func (s *SQLiteStore) GetSplit(ctx context.Context, id string) (*models.Split, error) {
	var (
		raw      string
		revision int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT doc, revision FROM splits WHERE id = ?", id,
	).Scan(&raw, &revision)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("split %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get split: %w", err)
	}
	return decodeSplit(id, []byte(raw), revision)
}

// UpdateSplit overwrites the whole document if the caller still holds the
// current revision. A lost race returns storage.ErrConflict with no write.
func (s *SQLiteStore) UpdateSplit(ctx context.Context, split *models.Split) error {
	raw, err := encodeSplit(split)
	if err != nil {
		return fmt.Errorf("failed to encode split: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE splits SET doc = ?, revision = revision + 1 WHERE id = ? AND revision = ?",
		string(raw), split.ID, split.Revision,
	)
	if err != nil {
		return fmt.Errorf("failed to update split: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if n == 0 {
		// Either the document vanished or someone else wrote first.
		var exists int
		if err := s.db.QueryRowContext(ctx,
			"SELECT 1 FROM splits WHERE id = ?", split.ID,
		).Scan(&exists); err == sql.ErrNoRows {
			return fmt.Errorf("split %s: %w", split.ID, storage.ErrNotFound)
		}
		return fmt.Errorf("split %s at revision %d: %w", split.ID, split.Revision, storage.ErrConflict)
	}

	split.Revision++
	return nil
}

// ListSplitsByPayer returns all splits created by the given user, newest
// first. created_at has second resolution, so rowid breaks ties in insertion
// order.
func (s *SQLiteStore) ListSplitsByPayer(ctx context.Context, payerID string) ([]*models.Split, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, doc, revision FROM splits WHERE payer_id = ? ORDER BY created_at DESC, rowid DESC",
		payerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer rows.Close()

	var splits []*models.Split
	for rows.Next() {
		var (
			id       string
			raw      string
			revision int64
		)
		if err := rows.Scan(&id, &raw, &revision); err != nil {
			return nil, fmt.Errorf("failed to scan split row: %w", err)
		}
		split, err := decodeSplit(id, []byte(raw), revision)
		if err != nil {
			return nil, err
		}
		splits = append(splits, split)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}
	return splits, nil
}

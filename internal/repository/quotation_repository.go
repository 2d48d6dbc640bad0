// Package repository persists saved quotations in Postgres. Each row holds
// the full aggregate as a JSON snapshot next to a few indexed columns for
// listing; the editing session never reads through here mid-edit.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/travelpro/quotes-service/internal/model"
)

type QuotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

func (r *QuotationRepository) Upsert(ctx context.Context, q model.Quotation) error {
	payload, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("marshal quotation %s: %w", q.Details.ID, err)
	}

	return r.db.WithContext(ctx).Exec(`
		INSERT INTO quotations (id, customer_name, status, created_at, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			status = EXCLUDED.status,
			payload = EXCLUDED.payload
	`, q.Details.ID, q.Details.CustomerName, string(q.Details.Status), q.Details.CreatedAt, payload).Error
}

func (r *QuotationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Exec(`
		DELETE FROM quotations WHERE id = ?
	`, id).Error
}

func (r *QuotationRepository) List(ctx context.Context) ([]model.Quotation, error) {
	var rows []struct {
		ID        string
		CreatedAt time.Time
		Payload   []byte
	}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, created_at, payload
		FROM quotations
		ORDER BY created_at ASC, id ASC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	quotations := make([]model.Quotation, 0, len(rows))
	for _, row := range rows {
		var q model.Quotation
		if err := json.Unmarshal(row.Payload, &q); err != nil {
			return nil, fmt.Errorf("unmarshal quotation %s: %w", row.ID, err)
		}
		quotations = append(quotations, q)
	}
	return quotations, nil
}

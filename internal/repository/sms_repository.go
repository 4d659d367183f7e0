package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/smsio/sms-inbox/internal/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations, the storage-layer backstop for the idempotency invariant.
const uniqueViolation = "23505"

const smsColumns = `id, provider_message_id, from_number, to_number, text, received_at, status, raw_payload, created_at, updated_at`

type smsRepository struct {
	db *sqlx.DB
}

func NewSMSRepository(db *sqlx.DB) SMSRepository {
	return &smsRepository{
		db: db,
	}
}

// Insert stores a new incoming SMS. ON CONFLICT DO NOTHING keeps at most one
// row per provider message id even when two requests race; the loser gets
// ErrDuplicateKey and re-reads the winner's row.
func (r *smsRepository) Insert(ctx context.Context, fields models.CanonicalFields, raw models.RawPayload) (*models.IncomingSMS, error) {
	query := `
		INSERT INTO incoming_sms (provider_message_id, from_number, to_number, text, received_at, status, raw_payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (provider_message_id) DO NOTHING
		RETURNING ` + smsColumns

	now := time.Now().UTC()

	var sms models.IncomingSMS
	err := r.db.GetContext(ctx, &sms, query,
		fields.ProviderMessageID,
		fields.FromNumber,
		fields.ToNumber,
		fields.Text,
		now,
		models.StatusReceived,
		raw,
		now,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The conflict target swallowed the insert.
			return nil, ErrDuplicateKey
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert incoming sms: %w", err)
	}

	return &sms, nil
}

// GetByProviderMessageID looks up a row by the provider's own message id.
func (r *smsRepository) GetByProviderMessageID(ctx context.Context, providerMessageID string) (*models.IncomingSMS, error) {
	query := `SELECT ` + smsColumns + ` FROM incoming_sms WHERE provider_message_id = $1`

	var sms models.IncomingSMS
	err := r.db.GetContext(ctx, &sms, query, providerMessageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sms by provider message id: %w", err)
	}

	return &sms, nil
}

// GetByID retrieves a single incoming SMS by its surrogate id.
func (r *smsRepository) GetByID(ctx context.Context, id int64) (*models.IncomingSMS, error) {
	query := `SELECT ` + smsColumns + ` FROM incoming_sms WHERE id = $1`

	var sms models.IncomingSMS
	err := r.db.GetContext(ctx, &sms, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sms by id: %w", err)
	}

	return &sms, nil
}

// List retrieves incoming SMS ordered by received_at descending with optional
// exact-match filters and the pre-pagination total.
func (r *smsRepository) List(ctx context.Context, filter ListFilter) ([]*models.IncomingSMS, int64, error) {
	where := ""
	args := []interface{}{}

	if filter.FromNumber != "" {
		args = append(args, filter.FromNumber)
		where += fmt.Sprintf(" AND from_number = $%d", len(args))
	}
	if filter.ToNumber != "" {
		args = append(args, filter.ToNumber)
		where += fmt.Sprintf(" AND to_number = $%d", len(args))
	}

	countQuery := `SELECT COUNT(*) FROM incoming_sms WHERE 1=1` + where

	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count incoming sms: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	listQuery := fmt.Sprintf(
		`SELECT %s FROM incoming_sms WHERE 1=1%s ORDER BY received_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		smsColumns, where, len(args)-1, len(args),
	)

	var items []*models.IncomingSMS
	if err := r.db.SelectContext(ctx, &items, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list incoming sms: %w", err)
	}

	return items, total, nil
}

package repository

import (
	"context"
	"errors"

	"github.com/smsio/sms-inbox/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateKey is returned when an insert loses the race against another
// request carrying the same provider message id. The caller resolves it by
// re-reading the winner's row.
var ErrDuplicateKey = errors.New("duplicate provider message id")

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// SMS returns incoming SMS repository
	SMS() SMSRepository
}

// ListFilter narrows and paginates the incoming SMS listing.
type ListFilter struct {
	Limit      int
	Offset     int
	FromNumber string
	ToNumber   string
}

// SMSRepository interface defines incoming SMS operations.
type SMSRepository interface {
	// Insert stores a new row with server-assigned received_at and status
	// "received". A concurrent duplicate surfaces as ErrDuplicateKey.
	Insert(ctx context.Context, fields models.CanonicalFields, raw models.RawPayload) (*models.IncomingSMS, error)
	GetByProviderMessageID(ctx context.Context, providerMessageID string) (*models.IncomingSMS, error)
	GetByID(ctx context.Context, id int64) (*models.IncomingSMS, error)
	// List returns rows ordered by received_at descending plus the total
	// count of matching rows before pagination.
	List(ctx context.Context, filter ListFilter) ([]*models.IncomingSMS, int64, error)
}

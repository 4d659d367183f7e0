package service

import (
	"context"

	"github.com/smsio/sms-inbox/internal/api"
	"github.com/smsio/sms-inbox/internal/models"
	"github.com/smsio/sms-inbox/internal/repository"
)

// SMSService is the ingestion service: idempotent persistence of normalized
// inbound SMS plus the read operations.
type SMSService interface {
	// SaveIncoming stores the canonical record exactly once per provider
	// message id. A retried delivery returns the already stored row.
	SaveIncoming(ctx context.Context, fields models.CanonicalFields, raw models.RawPayload) (*models.IncomingSMS, error)
	GetByID(ctx context.Context, id int64) (*models.IncomingSMS, error)
	List(ctx context.Context, filter repository.ListFilter) ([]*models.IncomingSMS, int64, error)
}

// TwilioService proxies outbound operations to the Twilio REST API.
type TwilioService interface {
	SendSMS(ctx context.Context, to, body string, from *string) (*api.SendSMSResponse, error)
	GetAccount(ctx context.Context) (*api.AccountResponse, error)
}

// OnlineSimService proxies read operations to the OnlineSim API.
type OnlineSimService interface {
	GetBalance(ctx context.Context) (map[string]interface{}, error)
}

type HealthService interface {
	GetHealth() *HealthStatus
}

// Package models defines data structures used throughout the application.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	// StatusReceived is the status assigned to every message on first insertion.
	StatusReceived = "received"
	// StatusProcessed is reserved for future status transitions.
	StatusProcessed = "processed"
)

// IncomingSMS represents a normalized inbound SMS in the database.
// One row exists per distinct provider message id regardless of how many
// times the provider delivered the webhook.
type IncomingSMS struct {
	ID                int64      `db:"id" json:"id"`
	ProviderMessageID string     `db:"provider_message_id" json:"provider_message_id"`
	FromNumber        string     `db:"from_number" json:"from_number"`
	ToNumber          string     `db:"to_number" json:"to_number"`
	Text              string     `db:"text" json:"text"`
	ReceivedAt        time.Time  `db:"received_at" json:"received_at"`
	Status            string     `db:"status" json:"status"`
	RawPayload        RawPayload `db:"raw_payload" json:"-"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// RawPayload is the verbatim provider payload stored alongside the canonical
// fields for audit and replay. Persisted as JSONB.
type RawPayload map[string]interface{}

// Value implements driver.Valuer.
func (p RawPayload) Value() (driver.Value, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner.
func (p *RawPayload) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = nil
		return nil
	default:
		return fmt.Errorf("unsupported raw payload type %T", src)
	}
}

// CanonicalFields carries the provider-independent fields extracted by an
// adapter before persistence.
type CanonicalFields struct {
	ProviderMessageID string
	FromNumber        string
	ToNumber          string
	Text              string
}

// Package api defines the request and response shapes of the HTTP surface.
package api

import "time"

// SMSResponse is the canonical record shape returned by the webhook and
// query endpoints.
type SMSResponse struct {
	ID                int64     `json:"id"`
	ProviderMessageID string    `json:"provider_message_id"`
	FromNumber        string    `json:"from_number"`
	ToNumber          string    `json:"to_number"`
	Text              string    `json:"text"`
	ReceivedAt        time.Time `json:"received_at"`
	Status            string    `json:"status"`
}

// SMSListResponse is the paginated list envelope.
type SMSListResponse struct {
	Items  []SMSResponse `json:"items"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error     string     `json:"error"`
	Message   string     `json:"message"`
	RequestID string     `json:"request_id,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// HealthResponse reports liveness of the service and its collaborators.
type HealthResponse struct {
	Status         string    `json:"status"`
	DatabaseStatus string    `json:"database_status"`
	RedisStatus    string    `json:"redis_status"`
	Timestamp      time.Time `json:"timestamp"`
}

const (
	HealthStatusOK        = "ok"
	HealthStatusUnhealthy = "unhealthy"

	ComponentConnected    = "connected"
	ComponentDisconnected = "disconnected"
)

// SendSMSRequest is the outbound send passthrough body.
type SendSMSRequest struct {
	To   string  `json:"to"`
	Body string  `json:"body"`
	From *string `json:"from,omitempty"`
}

// SendSMSResponse mirrors the provider's message resource.
type SendSMSResponse struct {
	Sid    string `json:"sid"`
	Status string `json:"status"`
	To     string `json:"to"`
	From   string `json:"from"`
	Body   string `json:"body"`
}

// AccountResponse mirrors the signed provider's account resource.
type AccountResponse struct {
	AccountSid string `json:"account_sid"`
	Status     string `json:"status"`
	Type       string `json:"type"`
}

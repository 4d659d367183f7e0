package provider

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/smsio/sms-inbox/internal/models"
)

// onlineSimPayload is the JSON body OnlineSim posts to the webhook. Extra
// fields the provider may add are ignored here but preserved in the raw
// snapshot.
type onlineSimPayload struct {
	UserID      string `json:"user_id"`
	CountryCode string `json:"country_code"`
	Number      string `json:"number"`
	Sender      string `json:"sender"`
	Message     string `json:"message"`
	TimeStart   string `json:"time_start"`
	TimeLeft    string `json:"time_left"`
	OperationID string `json:"operation_id"`
	WebhookType string `json:"webhook_type"`
	Code        string `json:"code"`
}

// OnlineSimAdapter handles the push-webhook provider: JSON body, shared
// secret supplied as the "token" query parameter.
type OnlineSimAdapter struct {
	webhookToken string
}

func NewOnlineSimAdapter(webhookToken string) *OnlineSimAdapter {
	return &OnlineSimAdapter{webhookToken: webhookToken}
}

func (a *OnlineSimAdapter) Name() string {
	return "onlinesim"
}

// Authenticate compares the query token against the configured secret in
// constant time.
func (a *OnlineSimAdapter) Authenticate(r *http.Request) error {
	token := r.URL.Query().Get("token")
	if token == "" || a.webhookToken == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(a.webhookToken)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// Parse decodes the JSON body and maps code/number/sender/message to the
// canonical fields.
func (a *OnlineSimAdapter) Parse(r *http.Request) (models.CanonicalFields, models.RawPayload, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return models.CanonicalFields{}, nil, fmt.Errorf("failed to read request body: %w", err)
	}

	var raw models.RawPayload
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.CanonicalFields{}, nil, &ValidationError{Field: "body", Reason: "is not valid JSON"}
	}

	var payload onlineSimPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.CanonicalFields{}, nil, &ValidationError{Field: "body", Reason: "has unexpected field types"}
	}

	fields := models.CanonicalFields{
		ProviderMessageID: payload.Code,
		FromNumber:        payload.Sender,
		ToNumber:          payload.Number,
		Text:              payload.Message,
	}
	if err := validateCanonical(fields); err != nil {
		return models.CanonicalFields{}, nil, err
	}

	return fields, raw, nil
}

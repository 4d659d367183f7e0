// Package provider contains the inbound webhook adapters. Each adapter
// authenticates a provider request and maps the provider payload into the
// canonical fields stored by the ingestion service.
package provider

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/smsio/sms-inbox/internal/models"
)

// ErrUnauthorized is returned when a webhook request fails the provider's
// authenticity check. Authentication runs before any payload mapping or
// persistence, so a failed check has zero side effects.
var ErrUnauthorized = errors.New("unauthorized webhook request")

// ValidationError reports a provider payload that cannot be mapped to a
// complete canonical record.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payload: field %q %s", e.Field, e.Reason)
}

// Adapter authenticates an inbound provider request and extracts canonical
// fields plus the raw payload snapshot. One implementation exists per
// provider; the route selects the adapter.
type Adapter interface {
	// Name identifies the provider in logs.
	Name() string
	// Authenticate verifies the request came from the provider. It must be
	// called before Parse.
	Authenticate(r *http.Request) error
	// Parse maps the provider payload to canonical fields and a verbatim
	// raw snapshot. Missing required fields fail with *ValidationError.
	Parse(r *http.Request) (models.CanonicalFields, models.RawPayload, error)
}

func validateCanonical(f models.CanonicalFields) error {
	switch {
	case f.ProviderMessageID == "":
		return &ValidationError{Field: "provider_message_id", Reason: "is required"}
	case f.FromNumber == "":
		return &ValidationError{Field: "from_number", Reason: "is required"}
	case f.ToNumber == "":
		return &ValidationError{Field: "to_number", Reason: "is required"}
	case f.Text == "":
		return &ValidationError{Field: "text", Reason: "is required"}
	}
	return nil
}

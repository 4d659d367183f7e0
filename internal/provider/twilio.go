package provider

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/smsio/sms-inbox/internal/models"
)

// SignatureHeader carries the HMAC signature Twilio computes over each
// webhook request.
const SignatureHeader = "X-Twilio-Signature"

// TwilioAdapter handles the signed-form provider: form-encoded body
// authenticated via an HMAC-SHA1 signature header.
type TwilioAdapter struct {
	authToken string
}

func NewTwilioAdapter(authToken string) *TwilioAdapter {
	return &TwilioAdapter{authToken: authToken}
}

func (a *TwilioAdapter) Name() string {
	return "twilio"
}

// Authenticate verifies the X-Twilio-Signature header. The expected value is
// HMAC-SHA1 over the request URL without its query string followed by the
// form fields sorted by key, base64-encoded. This canonicalization must match
// Twilio's documented algorithm exactly.
func (a *TwilioAdapter) Authenticate(r *http.Request) error {
	signature := r.Header.Get(SignatureHeader)
	if signature == "" || a.authToken == "" {
		return ErrUnauthorized
	}

	if err := r.ParseForm(); err != nil {
		return &ValidationError{Field: "body", Reason: "is not valid form data"}
	}

	expected := a.computeSignature(requestURL(r), r.PostForm)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrUnauthorized
	}
	return nil
}

// computeSignature reproduces Twilio's request signing:
// base64(HMAC-SHA1(url + k1 + v1 + k2 + v2 + ..., auth_token)) with form
// keys in alphabetical order.
func (a *TwilioAdapter) computeSignature(requestURL string, form url.Values) string {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(requestURL)
	for _, k := range keys {
		for _, v := range form[k] {
			b.WriteString(k)
			b.WriteString(v)
		}
	}

	mac := hmac.New(sha1.New, []byte(a.authToken))
	mac.Write([]byte(b.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// requestURL rebuilds the public URL the provider signed: scheme, host and
// path, query string excluded.
func requestURL(r *http.Request) string {
	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path
}

// Parse maps the form fields to the canonical record. NumMedia defaults to
// "0" when the provider omits it; optional status fields are passed through
// to the raw snapshot only when present.
func (a *TwilioAdapter) Parse(r *http.Request) (models.CanonicalFields, models.RawPayload, error) {
	if err := r.ParseForm(); err != nil {
		return models.CanonicalFields{}, nil, &ValidationError{Field: "body", Reason: "is not valid form data"}
	}

	raw := make(models.RawPayload, len(r.PostForm))
	for k, vs := range r.PostForm {
		if len(vs) > 0 {
			raw[k] = vs[0]
		}
	}
	if _, ok := raw["NumMedia"]; !ok {
		raw["NumMedia"] = "0"
	}

	fields := models.CanonicalFields{
		ProviderMessageID: r.PostForm.Get("MessageSid"),
		FromNumber:        r.PostForm.Get("From"),
		ToNumber:          r.PostForm.Get("To"),
		Text:              r.PostForm.Get("Body"),
	}
	if err := validateCanonical(fields); err != nil {
		return models.CanonicalFields{}, nil, err
	}

	return fields, raw, nil
}

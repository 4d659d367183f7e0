package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smsio/sms-inbox/internal/config"
	"github.com/smsio/sms-inbox/internal/service"
)

func twilioTestConfig(baseURL string) *config.TwilioConfig {
	return &config.TwilioConfig{
		AccountSid:  "AC123",
		AuthToken:   "token",
		PhoneNumber: "+15550001111",
		APIBaseURL:  baseURL,
		Timeout:     5,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      3,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.6,
			ConsecutiveFails: 5,
		},
	}
}

func TestTwilioService_SendSMS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "token", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+15551230000", r.PostForm.Get("To"))
		assert.Equal(t, "+15550001111", r.PostForm.Get("From"))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"sid":    "SM999",
			"status": "queued",
			"to":     r.PostForm.Get("To"),
			"from":   r.PostForm.Get("From"),
			"body":   r.PostForm.Get("Body"),
		})
	}))
	defer srv.Close()

	svc := service.NewTwilioService(twilioTestConfig(srv.URL), zap.NewNop())

	result, err := svc.SendSMS(context.Background(), "+15551230000", "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "SM999", result.Sid)
	assert.Equal(t, "queued", result.Status)
}

func TestTwilioService_SendSMS_NoSendingNumber(t *testing.T) {
	cfg := twilioTestConfig("http://localhost:1")
	cfg.PhoneNumber = ""

	svc := service.NewTwilioService(cfg, zap.NewNop())

	_, err := svc.SendSMS(context.Background(), "+15551230000", "hello", nil)
	assert.ErrorIs(t, err, service.ErrNoSendingNumber)
}

func TestTwilioService_SendSMS_ExplicitFromOverridesConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+15557770000", r.PostForm.Get("From"))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"sid": "SM1", "status": "queued"})
	}))
	defer srv.Close()

	svc := service.NewTwilioService(twilioTestConfig(srv.URL), zap.NewNop())

	from := "+15557770000"
	_, err := svc.SendSMS(context.Background(), "+15551230000", "hello", &from)
	require.NoError(t, err)
}

func TestTwilioService_SendSMS_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := service.NewTwilioService(twilioTestConfig(srv.URL), zap.NewNop())

	_, err := svc.SendSMS(context.Background(), "+15551230000", "hello", nil)
	assert.Error(t, err)
}

func TestTwilioService_GetAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2010-04-01/Accounts/AC123.json", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"sid":    "AC123",
			"status": "active",
			"type":   "Full",
		})
	}))
	defer srv.Close()

	svc := service.NewTwilioService(twilioTestConfig(srv.URL), zap.NewNop())

	account, err := svc.GetAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AC123", account.AccountSid)
	assert.Equal(t, "active", account.Status)
	assert.Equal(t, "Full", account.Type)
}

func TestOnlineSimService_GetBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/getBalance.php", r.URL.Path)
		assert.Equal(t, "api-key", r.URL.Query().Get("apikey"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"response": "1",
			"balance":  "42.50",
		})
	}))
	defer srv.Close()

	svc := service.NewOnlineSimService(&config.OnlineSimConfig{
		APIBaseURL: srv.URL,
		APIKey:     "api-key",
		Timeout:    5,
	}, zap.NewNop())

	balance, err := svc.GetBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "42.50", balance["balance"])
}

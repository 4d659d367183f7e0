package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/smsio/sms-inbox/internal/api"
	"github.com/smsio/sms-inbox/internal/config"
)

// ErrNoSendingNumber is returned when neither the request nor the
// configuration supplies a sending number.
var ErrNoSendingNumber = errors.New("no sending number configured")

type twilioService struct {
	cfg            *config.TwilioConfig
	httpClient     *http.Client
	logger         *zap.Logger
	circuitBreaker *CircuitBreaker
}

func NewTwilioService(cfg *config.TwilioConfig, logger *zap.Logger) TwilioService {
	cb := NewCircuitBreaker("twilio-send", &cfg.CircuitBreaker, logger)

	return &twilioService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger:         logger,
		circuitBreaker: cb,
	}
}

// SendSMS creates a message resource via the Twilio REST API. The call goes
// through the circuit breaker and never touches the inbound ingestion path.
func (s *twilioService) SendSMS(ctx context.Context, to, body string, from *string) (*api.SendSMSResponse, error) {
	fromNumber := s.cfg.PhoneNumber
	if from != nil && *from != "" {
		fromNumber = *from
	}
	if fromNumber == "" {
		return nil, ErrNoSendingNumber
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", fromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json",
		strings.TrimRight(s.cfg.APIBaseURL, "/"), s.cfg.AccountSid)

	var result api.SendSMSResponse
	err := s.circuitBreaker.Execute(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.SetBasicAuth(s.cfg.AccountSid, s.cfg.AuthToken)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				s.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		var payload struct {
			Sid    string `json:"sid"`
			Status string `json:"status"`
			To     string `json:"to"`
			From   string `json:"from"`
			Body   string `json:"body"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}

		result = api.SendSMSResponse{
			Sid:    payload.Sid,
			Status: payload.Status,
			To:     payload.To,
			From:   payload.From,
			Body:   payload.Body,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SMS sent via Twilio",
		zap.String("sid", result.Sid),
		zap.String("to", result.To))

	return &result, nil
}

// GetAccount fetches the account resource for the configured account SID.
func (s *twilioService) GetAccount(ctx context.Context) (*api.AccountResponse, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s.json",
		strings.TrimRight(s.cfg.APIBaseURL, "/"), s.cfg.AccountSid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(s.cfg.AccountSid, s.cfg.AuthToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload struct {
		Sid    string `json:"sid"`
		Status string `json:"status"`
		Type   string `json:"type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &api.AccountResponse{
		AccountSid: payload.Sid,
		Status:     payload.Status,
		Type:       payload.Type,
	}, nil
}

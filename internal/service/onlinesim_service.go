package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/smsio/sms-inbox/internal/config"
)

type onlineSimService struct {
	cfg        *config.OnlineSimConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewOnlineSimService(cfg *config.OnlineSimConfig, logger *zap.Logger) OnlineSimService {
	return &onlineSimService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger: logger,
	}
}

// GetBalance returns the raw OnlineSim balance payload for monitoring.
func (s *onlineSimService) GetBalance(ctx context.Context) (map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/api/getBalance.php?apikey=%s",
		strings.TrimRight(s.cfg.APIBaseURL, "/"), s.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return payload, nil
}

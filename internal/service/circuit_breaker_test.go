package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smsio/sms-inbox/internal/config"
	"github.com/smsio/sms-inbox/internal/service"
)

func testBreakerConfig() *config.CircuitBreakerConfig {
	return &config.CircuitBreakerConfig{
		MaxRequests:      3,
		Interval:         10,
		Timeout:          60,
		FailureRatio:     0.6,
		ConsecutiveFails: 5,
	}
}

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	tests := []struct {
		name     string
		function func() error
	}{
		{
			name: "successful execution",
			function: func() error {
				return nil
			},
		},
		{
			name: "successful execution with delay",
			function: func() error {
				time.Sleep(10 * time.Millisecond)
				return nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := service.NewCircuitBreaker("twilio", testBreakerConfig(), zap.NewNop())

			err := cb.Execute(context.Background(), tt.function)
			assert.NoError(t, err)
			assert.Equal(t, gobreaker.StateClosed, cb.GetState())
		})
	}
}

func TestCircuitBreaker_Execute_Failure(t *testing.T) {
	t.Run("function returns error", func(t *testing.T) {
		cb := service.NewCircuitBreaker("twilio", testBreakerConfig(), zap.NewNop())

		err := cb.Execute(context.Background(), func() error {
			return errors.New("provider unreachable")
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider unreachable")
	})

	t.Run("context cancelled", func(t *testing.T) {
		cb := service.NewCircuitBreaker("twilio", testBreakerConfig(), zap.NewNop())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := cb.Execute(ctx, func() error {
			return nil
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	cfg := &config.CircuitBreakerConfig{
		MaxRequests:      1,
		Interval:         10,
		Timeout:          60,
		FailureRatio:     0.5,
		ConsecutiveFails: 3,
	}
	cb := service.NewCircuitBreaker("twilio", cfg, zap.NewNop())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("boom")
		})
	}

	assert.Equal(t, gobreaker.StateOpen, cb.GetState())

	err := cb.Execute(context.Background(), func() error {
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")

	requests, failures := cb.GetCounts()
	assert.Zero(t, requests)
	assert.Zero(t, failures)
}

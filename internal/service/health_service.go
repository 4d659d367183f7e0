package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/smsio/sms-inbox/internal/api"
	"github.com/smsio/sms-inbox/internal/repository"
)

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
}

func NewHealthService(repo repository.Repository, redisClient *redis.Client) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: api.HealthStatusOK,
	}

	status.DatabaseStatus = s.checkDatabaseHealth()
	status.RedisStatus = s.checkRedisHealth()

	if status.DatabaseStatus != api.ComponentConnected {
		status.Status = api.HealthStatusUnhealthy
	}

	return status
}

func (s *healthService) checkDatabaseHealth() string {
	if err := s.repo.Ping(); err != nil {
		return api.ComponentDisconnected
	}
	return api.ComponentConnected
}

func (s *healthService) checkRedisHealth() string {
	if s.redisClient == nil {
		return api.ComponentDisconnected
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return api.ComponentDisconnected
	}
	return api.ComponentConnected
}

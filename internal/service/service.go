package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/smsio/sms-inbox/internal/config"
	"github.com/smsio/sms-inbox/internal/repository"
)

type Service struct {
	SMS       SMSService
	Twilio    TwilioService
	OnlineSim OnlineSimService
	Health    HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	smsService := NewSMSService(cfg, repo, redisClient, logger)
	twilioService := NewTwilioService(&cfg.Twilio, logger)
	onlineSimService := NewOnlineSimService(&cfg.OnlineSim, logger)
	healthService := NewHealthService(repo, redisClient)

	return &Service{
		SMS:       smsService,
		Twilio:    twilioService,
		OnlineSim: onlineSimService,
		Health:    healthService,
	}
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/smsio/sms-inbox/internal/config"
	"github.com/smsio/sms-inbox/internal/models"
	"github.com/smsio/sms-inbox/internal/repository"
)

const smsCacheTTL = 24 * time.Hour

type smsService struct {
	cfg         *config.Config
	repo        repository.Repository
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewSMSService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) SMSService {
	return &smsService{
		cfg:         cfg,
		repo:        repo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// SaveIncoming persists a normalized inbound SMS at most once per provider
// message id. The existence check is not atomic with the insert; the unique
// constraint on provider_message_id is the backstop, and a lost race is
// resolved by re-reading the winner's row.
func (s *smsService) SaveIncoming(ctx context.Context, fields models.CanonicalFields, raw models.RawPayload) (*models.IncomingSMS, error) {
	s.logger.Info("Saving incoming SMS",
		zap.String("provider_message_id", fields.ProviderMessageID),
		zap.String("from_number", fields.FromNumber),
		zap.String("to_number", fields.ToNumber))

	existing, err := s.repo.SMS().GetByProviderMessageID(ctx, fields.ProviderMessageID)
	if err == nil {
		s.logger.Info("Duplicate webhook delivery, returning stored row",
			zap.String("provider_message_id", fields.ProviderMessageID),
			zap.Int64("id", existing.ID))
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing sms: %w", err)
	}

	sms, err := s.repo.SMS().Insert(ctx, fields, raw)
	if errors.Is(err, repository.ErrDuplicateKey) {
		// Lost the insert race against a concurrent delivery of the same
		// message; the winner's row is already committed.
		sms, err = s.repo.SMS().GetByProviderMessageID(ctx, fields.ProviderMessageID)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read sms after conflict: %w", err)
		}
		return sms, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save incoming sms: %w", err)
	}

	s.cacheSMS(ctx, sms)

	s.logger.Info("Incoming SMS stored",
		zap.Int64("id", sms.ID),
		zap.String("provider_message_id", sms.ProviderMessageID))

	return sms, nil
}

// cacheSMS caches the stored row keyed by provider message id. Best effort;
// the database stays the source of truth.
func (s *smsService) cacheSMS(ctx context.Context, sms *models.IncomingSMS) {
	if s.redisClient == nil {
		return
	}

	data, err := json.Marshal(sms)
	if err != nil {
		s.logger.Warn("Failed to marshal SMS for cache", zap.Error(err))
		return
	}

	cacheKey := fmt.Sprintf("sms:provider:%s", sms.ProviderMessageID)
	if err := s.redisClient.Set(ctx, cacheKey, data, smsCacheTTL).Err(); err != nil {
		s.logger.Warn("Failed to cache incoming SMS",
			zap.String("provider_message_id", sms.ProviderMessageID),
			zap.Error(err))
	}
}

func (s *smsService) GetByID(ctx context.Context, id int64) (*models.IncomingSMS, error) {
	return s.repo.SMS().GetByID(ctx, id)
}

func (s *smsService) List(ctx context.Context, filter repository.ListFilter) ([]*models.IncomingSMS, int64, error) {
	return s.repo.SMS().List(ctx, filter)
}

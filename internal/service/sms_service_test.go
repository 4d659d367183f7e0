package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/smsio/sms-inbox/internal/config"
	"github.com/smsio/sms-inbox/internal/models"
	"github.com/smsio/sms-inbox/internal/repository"
	"github.com/smsio/sms-inbox/internal/repository/mocks"
	"github.com/smsio/sms-inbox/internal/service"
)

func testFields() models.CanonicalFields {
	return models.CanonicalFields{
		ProviderMessageID: "sms-test-1",
		FromNumber:        "BANK",
		ToNumber:          "+70000000000",
		Text:              "Your code 1234",
	}
}

func storedSMS() *models.IncomingSMS {
	return &models.IncomingSMS{
		ID:                1,
		ProviderMessageID: "sms-test-1",
		FromNumber:        "BANK",
		ToNumber:          "+70000000000",
		Text:              "Your code 1234",
		ReceivedAt:        time.Now().UTC(),
		Status:            models.StatusReceived,
	}
}

func newSMSService(t *testing.T) (service.SMSService, *mocks.MockSMSRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	smsRepo := mocks.NewMockSMSRepository(ctrl)
	repo.EXPECT().SMS().Return(smsRepo).AnyTimes()

	svc := service.NewSMSService(&config.Config{}, repo, nil, zap.NewNop())
	return svc, smsRepo
}

func TestSMSService_SaveIncoming_New(t *testing.T) {
	svc, smsRepo := newSMSService(t)

	fields := testFields()
	raw := models.RawPayload{"code": "sms-test-1"}
	stored := storedSMS()

	smsRepo.EXPECT().GetByProviderMessageID(gomock.Any(), "sms-test-1").Return(nil, repository.ErrNotFound)
	smsRepo.EXPECT().Insert(gomock.Any(), fields, raw).Return(stored, nil)

	sms, err := svc.SaveIncoming(context.Background(), fields, raw)
	require.NoError(t, err)
	assert.Equal(t, stored, sms)
}

func TestSMSService_SaveIncoming_DuplicateDelivery(t *testing.T) {
	svc, smsRepo := newSMSService(t)

	stored := storedSMS()

	// Existing row short-circuits the insert entirely.
	smsRepo.EXPECT().GetByProviderMessageID(gomock.Any(), "sms-test-1").Return(stored, nil)

	sms, err := svc.SaveIncoming(context.Background(), testFields(), models.RawPayload{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), sms.ID)
}

func TestSMSService_SaveIncoming_ConflictRace(t *testing.T) {
	svc, smsRepo := newSMSService(t)

	fields := testFields()
	stored := storedSMS()

	// Both requests missed the existence check; this one loses the insert
	// race and must return the winner's row via re-read.
	gomock.InOrder(
		smsRepo.EXPECT().GetByProviderMessageID(gomock.Any(), "sms-test-1").Return(nil, repository.ErrNotFound),
		smsRepo.EXPECT().Insert(gomock.Any(), fields, gomock.Any()).Return(nil, repository.ErrDuplicateKey),
		smsRepo.EXPECT().GetByProviderMessageID(gomock.Any(), "sms-test-1").Return(stored, nil),
	)

	sms, err := svc.SaveIncoming(context.Background(), fields, models.RawPayload{})
	require.NoError(t, err)
	assert.Equal(t, stored, sms)
}

func TestSMSService_SaveIncoming_StorageError(t *testing.T) {
	svc, smsRepo := newSMSService(t)

	storageErr := errors.New("connection refused")
	smsRepo.EXPECT().GetByProviderMessageID(gomock.Any(), "sms-test-1").Return(nil, repository.ErrNotFound)
	smsRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storageErr)

	_, err := svc.SaveIncoming(context.Background(), testFields(), models.RawPayload{})
	assert.ErrorIs(t, err, storageErr)
}

func TestSMSService_SaveIncoming_ExistenceCheckError(t *testing.T) {
	svc, smsRepo := newSMSService(t)

	storageErr := errors.New("connection refused")
	smsRepo.EXPECT().GetByProviderMessageID(gomock.Any(), "sms-test-1").Return(nil, storageErr)

	_, err := svc.SaveIncoming(context.Background(), testFields(), models.RawPayload{})
	assert.ErrorIs(t, err, storageErr)
}

func TestSMSService_GetByID(t *testing.T) {
	svc, smsRepo := newSMSService(t)

	smsRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, repository.ErrNotFound)

	_, err := svc.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSMSService_List(t *testing.T) {
	svc, smsRepo := newSMSService(t)

	filter := repository.ListFilter{Limit: 10, Offset: 0, FromNumber: "BANK"}
	smsRepo.EXPECT().List(gomock.Any(), filter).Return([]*models.IncomingSMS{storedSMS()}, int64(1), nil)

	items, total, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(1), total)
}

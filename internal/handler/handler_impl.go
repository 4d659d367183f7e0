// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/smsio/sms-inbox/internal/api"
	"github.com/smsio/sms-inbox/internal/middleware"
	"github.com/smsio/sms-inbox/internal/models"
	"github.com/smsio/sms-inbox/internal/provider"
	"github.com/smsio/sms-inbox/internal/repository"
	"github.com/smsio/sms-inbox/internal/service"
)

const (
	errorCodeUnauthorized = "UNAUTHORIZED"
	errorCodeValidation   = "VALIDATION_ERROR"
	errorCodeNotFound     = "NOT_FOUND"
)

const (
	errorMessageUnauthorized    = "Invalid or missing webhook credentials"
	errorMessageSMSNotFound     = "SMS not found"
	errorMessageInvalidSMSID    = "SMS id must be an integer"
	errorMessageInvalidLimit    = "limit must be between 1 and 500"
	errorMessageInvalidOffset   = "offset must be non-negative"
	errorMessageStorageFailure  = "Failed to store incoming SMS"
	errorMessageListFailure     = "Failed to list SMS"
	errorMessageProviderFailure = "Provider request failed"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type Handler struct {
	service   *service.Service
	onlineSim provider.Adapter
	twilio    provider.Adapter
	logger    *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(svc *service.Service, onlineSim, twilio provider.Adapter, logger *zap.Logger) *Handler {
	return &Handler{
		service:   svc,
		onlineSim: onlineSim,
		twilio:    twilio,
		logger:    logger,
	}
}

// OnlineSimWebhook receives the push-webhook provider's JSON notification.
func (h *Handler) OnlineSimWebhook(w http.ResponseWriter, r *http.Request) {
	h.handleWebhook(h.onlineSim, w, r)
}

// TwilioWebhook receives the signed-form provider's notification.
func (h *Handler) TwilioWebhook(w http.ResponseWriter, r *http.Request) {
	h.handleWebhook(h.twilio, w, r)
}

// handleWebhook runs the inbound pipeline: authenticate, map to canonical
// fields, persist idempotently. Authentication failures never reach storage.
func (h *Handler) handleWebhook(adapter provider.Adapter, w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := adapter.Authenticate(r); err != nil {
		var validationErr *provider.ValidationError
		if errors.As(err, &validationErr) {
			h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeValidation, validationErr.Error())
			return
		}

		h.logger.Warn("Webhook authentication failed",
			zap.String("provider", adapter.Name()),
			zap.String("request_id", requestID))
		h.sendError(w, r, http.StatusUnauthorized, errorCodeUnauthorized, errorMessageUnauthorized)
		return
	}

	fields, raw, err := adapter.Parse(r)
	if err != nil {
		var validationErr *provider.ValidationError
		if errors.As(err, &validationErr) {
			h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeValidation, validationErr.Error())
			return
		}

		h.logger.Error("Failed to parse webhook payload",
			zap.String("provider", adapter.Name()),
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, middleware.ErrorMessageInternal)
		return
	}

	sms, err := h.service.SMS.SaveIncoming(r.Context(), fields, raw)
	if err != nil {
		h.logger.Error("Failed to save incoming SMS",
			zap.String("provider", adapter.Name()),
			zap.String("provider_message_id", fields.ProviderMessageID),
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageStorageFailure)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toSMSResponse(sms))
}

// GetSMS returns a single stored record by its id.
func (h *Handler) GetSMS(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, errorMessageInvalidSMSID)
		return
	}

	sms, err := h.service.SMS.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, errorMessageSMSNotFound)
			return
		}

		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error("Failed to get SMS",
			zap.Int64("id", id),
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, middleware.ErrorMessageInternal)
		return
	}

	render.JSON(w, r, toSMSResponse(sms))
}

// ListSMS returns stored records ordered by received_at descending.
// Out-of-range limit/offset values are rejected, not clamped.
func (h *Handler) ListSMS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := defaultListLimit
	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxListLimit {
			h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, errorMessageInvalidLimit)
			return
		}
		limit = n
	}

	offset := 0
	if v := query.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, errorMessageInvalidOffset)
			return
		}
		offset = n
	}

	filter := repository.ListFilter{
		Limit:      limit,
		Offset:     offset,
		FromNumber: query.Get("from_number"),
		ToNumber:   query.Get("to_number"),
	}

	items, total, err := h.service.SMS.List(r.Context(), filter)
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error("Failed to list SMS",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageListFailure)
		return
	}

	responses := make([]api.SMSResponse, 0, len(items))
	for _, sms := range items {
		responses = append(responses, toSMSResponse(sms))
	}

	render.JSON(w, r, api.SMSListResponse{
		Items:  responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// HealthCheck reports liveness of the service and its collaborators.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := api.HealthResponse{
		Status:         health.Status,
		DatabaseStatus: health.DatabaseStatus,
		RedisStatus:    health.RedisStatus,
		Timestamp:      time.Now(),
	}

	if health.Status == api.HealthStatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

// OnlineSimInfo proxies the provider's balance endpoint.
func (h *Handler) OnlineSimInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.OnlineSim.GetBalance(r.Context())
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error("Failed to fetch OnlineSim balance",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusBadGateway, middleware.ErrorCodeInternal, errorMessageProviderFailure)
		return
	}

	render.JSON(w, r, info)
}

// TwilioAccount proxies the provider's account resource.
func (h *Handler) TwilioAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.Twilio.GetAccount(r.Context())
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error("Failed to fetch Twilio account",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusBadGateway, middleware.ErrorCodeInternal, errorMessageProviderFailure)
		return
	}

	render.JSON(w, r, account)
}

// TwilioSendSMS proxies an outbound send through the provider.
func (h *Handler) TwilioSendSMS(w http.ResponseWriter, r *http.Request) {
	var req api.SendSMSRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "request body is not valid JSON")
		return
	}

	if req.To == "" || req.Body == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "to and body are required")
		return
	}

	result, err := h.service.Twilio.SendSMS(r.Context(), req.To, req.Body, req.From)
	if err != nil {
		if errors.Is(err, service.ErrNoSendingNumber) {
			h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, service.ErrNoSendingNumber.Error())
			return
		}

		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error("Failed to send SMS",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusBadGateway, middleware.ErrorCodeInternal, errorMessageProviderFailure)
		return
	}

	render.JSON(w, r, result)
}

func toSMSResponse(sms *models.IncomingSMS) api.SMSResponse {
	return api.SMSResponse{
		ID:                sms.ID,
		ProviderMessageID: sms.ProviderMessageID,
		FromNumber:        sms.FromNumber,
		ToNumber:          sms.ToNumber,
		Text:              sms.Text,
		ReceivedAt:        sms.ReceivedAt,
		Status:            sms.Status,
	}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, api.ErrorResponse{
		Error:     errorCode,
		Message:   message,
		RequestID: middleware.GetRequestID(r.Context()),
		Timestamp: func() *time.Time {
			t := time.Now()
			return &t
		}(),
	})
}

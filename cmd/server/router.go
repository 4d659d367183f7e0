package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smsio/sms-inbox/internal/handler"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/webhooks/onlinesim/new-sms", h.OnlineSimWebhook)
		r.Post("/webhooks/twilio/sms", h.TwilioWebhook)

		r.Get("/sms", h.ListSMS)
		r.Get("/sms/{id}", h.GetSMS)

		r.Get("/onlinesim/info", h.OnlineSimInfo)

		r.Route("/twilio", func(r chi.Router) {
			r.Get("/account", h.TwilioAccount)
			r.Post("/sms/send", h.TwilioSendSMS)
		})
	})

	return r
}

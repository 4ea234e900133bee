package rest

import (
	"github.com/gin-gonic/gin"

	"ispbilling/internal/controller/rest/handlers"
	"ispbilling/pkg/health"
)

// WebhookRouter is the ingest gateway surface: health, metrics and the GoCardless webhook.
type WebhookRouter struct {
	gocardless     *handlers.GoCardlessHandler
	healthRegistry *health.Registry
}

func NewWebhookRouter(gocardless *handlers.GoCardlessHandler, healthRegistry *health.Registry) *WebhookRouter {
	return &WebhookRouter{gocardless: gocardless, healthRegistry: healthRegistry}
}

func (r *WebhookRouter) SetUp(engine *gin.Engine) {
	setUpOps(engine, r.healthRegistry)
	engine.POST("/webhooks/gocardless", r.gocardless.Webhook)
}

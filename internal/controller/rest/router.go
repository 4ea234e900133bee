package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ispbilling/internal/controller/rest/handlers"
	"ispbilling/pkg/health"
	"ispbilling/pkg/metrics"
)

// Router serves the billing API. Optional routes are only mounted when their
// handler is set: in kafka mode the ingest process owns the GoCardless
// webhook, and checkout needs a Stripe secret key.
type Router struct {
	GoCardless     *handlers.GoCardlessHandler
	Stripe         *handlers.StripeHandler
	DocuSeal       *handlers.DocuSealHandler
	Invoice        *handlers.InvoiceHandler
	Checkout       *handlers.CheckoutHandler
	Contract       *handlers.ContractHandler
	WebhookEvents  *handlers.WebhookEventHandler
	HealthRegistry *health.Registry
}

func (r *Router) SetUp(engine *gin.Engine) {
	setUpOps(engine, r.HealthRegistry)

	if r.GoCardless != nil {
		engine.POST("/webhooks/gocardless", r.GoCardless.Webhook)
	}
	if r.Stripe != nil {
		engine.POST("/webhooks/stripe", r.Stripe.Webhook)
	}
	if r.DocuSeal != nil {
		engine.POST("/webhooks/docuseal", r.DocuSeal.Webhook)
	}

	engine.POST("/invoices", r.Invoice.Create)
	engine.GET("/invoices", r.Invoice.Filter)
	engine.GET("/invoices/:invoice_id", r.Invoice.Get)
	engine.GET("/invoices/:invoice_id/settlements", r.Invoice.Settlements)
	if r.Checkout != nil {
		engine.POST("/invoices/:invoice_id/checkout", r.Checkout.Start)
	}

	if r.Contract != nil {
		engine.POST("/contracts", r.Contract.Create)
	}

	engine.GET("/webhook-events", r.WebhookEvents.GetEvents)
}

func setUpOps(engine *gin.Engine, registry *health.Registry) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(registry, health.DefaultTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
}

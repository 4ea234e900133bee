package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ispbilling/internal/domain/webhookevent"
)

type WebhookEventHandler struct {
	sink webhookevent.EventSink
}

func NewWebhookEventHandler(sink webhookevent.EventSink) *WebhookEventHandler {
	return &WebhookEventHandler{sink: sink}
}

func (h *WebhookEventHandler) GetEvents(c *gin.Context) {
	var query webhookevent.EventQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	events, err := h.sink.GetEvents(c.Request.Context(), query.Normalize())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if events == nil {
		events = []webhookevent.WebhookEvent{}
	}

	c.JSON(http.StatusOK, events)
}

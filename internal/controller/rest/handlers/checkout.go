package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ispbilling/internal/domain/invoice"
)

type CheckoutService interface {
	StartCheckout(ctx context.Context, invoiceID string, req invoice.CheckoutRequest) (invoice.CheckoutSession, error)
}

type CheckoutHandler struct {
	service CheckoutService
}

func NewCheckoutHandler(s CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: s}
}

type startCheckoutRequest struct {
	SuccessURL    string `json:"success_url" binding:"required"`
	CancelURL     string `json:"cancel_url" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
}

func (h *CheckoutHandler) Start(c *gin.Context) {
	var req startCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	session, err := h.service.StartCheckout(c.Request.Context(), c.Param("invoice_id"), invoice.CheckoutRequest{
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
		CustomerEmail: req.CustomerEmail,
	})
	switch {
	case errors.Is(err, invoice.ErrInvalidCheckout):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, invoice.ErrInvoiceNotPayable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, invoice.ErrCheckoutFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, session)
	}
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ispbilling/internal/domain/invoice"
)

type InvoiceService interface {
	CreateInvoice(ctx context.Context, req invoice.NewInvoice) (invoice.Invoice, error)
	GetInvoiceByID(ctx context.Context, id string) (invoice.Invoice, error)
	GetInvoices(ctx context.Context, query invoice.InvoicesQuery) ([]invoice.Invoice, error)
	GetSettlements(ctx context.Context, invoiceID string) ([]invoice.Settlement, error)
}

type InvoiceHandler struct {
	service InvoiceService
}

func NewInvoiceHandler(s InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

type createInvoiceRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
	Currency   string `json:"currency" binding:"required"`
	DueDate    string `json:"due_date" binding:"required"`
}

type invoiceResponse struct {
	invoice.Invoice
	Total       string `json:"total"`
	Outstanding string `json:"outstanding"`
}

func toInvoiceResponse(inv invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		Invoice:     inv,
		Total:       invoice.FormatMinor(inv.Total),
		Outstanding: invoice.FormatMinor(inv.Outstanding),
	}
}

type settlementResponse struct {
	invoice.Settlement
	Amount string `json:"amount"`
}

type FilterParams struct {
	CustomerID string `form:"customer_id"`
	Status     string `form:"status"`
	Limit      int    `form:"limit" binding:"omitempty,min=0"`
	Offset     int    `form:"offset" binding:"omitempty,min=0"`
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	amount, err := invoice.ParseMoney(req.Amount, req.Currency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := time.Parse(time.DateOnly, req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be YYYY-MM-DD"})
		return
	}

	inv, err := h.service.CreateInvoice(c.Request.Context(), invoice.NewInvoice{
		CustomerID: req.CustomerID,
		Amount:     amount,
		DueDate:    dueDate,
	})
	if err != nil {
		if errors.Is(err, invoice.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toInvoiceResponse(inv))
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.service.GetInvoiceByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toInvoiceResponse(inv))
}

func (h *InvoiceHandler) Filter(c *gin.Context) {
	query, err := h.createFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoices, err := h.service.GetInvoices(c.Request.Context(), *query)
	if err != nil {
		if errors.Is(err, invoice.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	res := make([]invoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		res = append(res, toInvoiceResponse(inv))
	}
	c.JSON(http.StatusOK, res)
}

func (h *InvoiceHandler) Settlements(c *gin.Context) {
	settlements, err := h.service.GetSettlements(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	res := make([]settlementResponse, 0, len(settlements))
	for _, s := range settlements {
		res = append(res, settlementResponse{Settlement: s, Amount: invoice.FormatMinor(s.Amount)})
	}
	c.JSON(http.StatusOK, res)
}

func (h *InvoiceHandler) createFilter(c *gin.Context) (*invoice.InvoicesQuery, error) {
	var params FilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	builder := invoice.NewInvoicesQueryBuilder()
	if params.CustomerID != "" {
		builder.WithCustomerIDs(splitList(params.CustomerID)...)
	}
	if params.Status != "" {
		raw := splitList(params.Status)
		statuses := make([]invoice.Status, 0, len(raw))
		for _, v := range raw {
			s, err := invoice.NewStatus(v)
			if err != nil {
				return nil, err
			}
			statuses = append(statuses, s)
		}
		builder.WithStatuses(statuses...)
	}

	limit := params.Limit
	if limit == 0 {
		limit = invoice.DefaultPageLimit
	}
	builder.WithPagination(invoice.Pagination{Limit: limit, Offset: params.Offset})

	return builder.Build()
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ispbilling/internal/domain/contract"
)

type ContractService interface {
	CreateContract(ctx context.Context, req contract.NewContract) (contract.Contract, error)
}

type ContractHandler struct {
	service ContractService
}

func NewContractHandler(s ContractService) *ContractHandler {
	return &ContractHandler{service: s}
}

type createContractRequest struct {
	CustomerID         string `json:"customer_id" binding:"required"`
	DocusealTemplateID string `json:"docuseal_template_id" binding:"required"`
	SignerEmail        string `json:"signer_email" binding:"required"`
}

// Create stores a pending contract and sends its template for signature.
// The DocuSeal webhook completes it later.
func (h *ContractHandler) Create(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	created, err := h.service.CreateContract(c.Request.Context(), contract.NewContract{
		CustomerID:  req.CustomerID,
		TemplateID:  req.DocusealTemplateID,
		SignerEmail: req.SignerEmail,
	})
	switch {
	case errors.Is(err, contract.ErrInvalidContract):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, contract.ErrContractExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, contract.ErrSubmissionFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, created)
	}
}

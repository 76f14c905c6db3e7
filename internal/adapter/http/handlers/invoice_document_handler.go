package handlers

import (
	"errors"
	"net/http"

	response "billing_saas/internal/adapter/http/dto/response"
	"billing_saas/internal/usecase"
	"billing_saas/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceDocumentHandler triggers the invoice document pipeline over HTTP.
type InvoiceDocumentHandler struct {
	usecase usecase.IInvoicePdfUseCase
}

func NewInvoiceDocumentHandler(uc usecase.IInvoicePdfUseCase) *InvoiceDocumentHandler {
	return &InvoiceDocumentHandler{usecase: uc}
}

// GenerateDocument runs the pipeline for one invoice id and reports the
// stored object on success.
//
// @Summary      Generate the PDF document for an invoice
// @Description  Aggregates the invoice's time entries, renders the invoice and upserts the PDF into durable storage. Safe to re-invoke: the storage key is deterministic per invoice.
// @Tags         invoices
// @Produce      json
// @Param        invoice_id  path      string  true  "Invoice ID"
// @Success      201  {object}  response.DocumentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id}/documents [post]
func (h *InvoiceDocumentHandler) GenerateDocument(c *gin.Context) {
	receipt, err := h.usecase.Generate(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReceipt(receipt))
}

func mapPipelineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid invoice id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageConflict):
		return pkg.NewDomainErrorSimple("DOCUMENT_CONFLICT", "Document storage conflict was not resolved", http.StatusConflict)
	}

	var stageErr *usecase.StageError
	if errors.As(err, &stageErr) {
		switch stageErr.Stage {
		case usecase.StageRender, usecase.StageDocument:
			return pkg.NewDomainError("RENDER_FAILED", "Document rendering failed", err, http.StatusBadGateway)
		}
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

package handlers

import (
	"errors"
	"net/http"

	request "billing_saas/internal/adapter/http/dto/request"
	response "billing_saas/internal/adapter/http/dto/response"
	"billing_saas/internal/usecase"
	"billing_saas/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSummaryWindow = pkg.NewDomainErrorSimple("INVALID_WINDOW", "Invalid summary window", http.StatusBadRequest)

// FinancialSummaryHandler serves windowed financial summaries per client.
type FinancialSummaryHandler struct {
	usecase usecase.IFinancialSummaryUseCase
}

func NewFinancialSummaryHandler(uc usecase.IFinancialSummaryUseCase) *FinancialSummaryHandler {
	return &FinancialSummaryHandler{usecase: uc}
}

// GetClientSummary computes the unbilled/billed/paid breakdown for a client
// over an optional time window.
//
// @Summary      Windowed financial summary for a client
// @Description  Sums minutes and amounts of the client's time entries into unbilled, billed and paid buckets. Computed fresh on every call.
// @Tags         clients
// @Produce      json
// @Param        client_id  path   string  true   "Client ID"
// @Param        from       query  string  false  "Window start (RFC3339 or YYYY-MM-DD)"
// @Param        to         query  string  false  "Window end (RFC3339 or YYYY-MM-DD, inclusive for bare dates)"
// @Success      200  {object}  response.FinancialSummaryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{client_id}/summary [get]
func (h *FinancialSummaryHandler) GetClientSummary(c *gin.Context) {
	var window request.SummaryWindowRequest
	if err := c.ShouldBindQuery(&window); err != nil {
		c.JSON(errInvalidSummaryWindow.HTTPStatus, errInvalidSummaryWindow.ToHTTPError())
		return
	}

	from, to, err := window.Resolve()
	if err != nil {
		c.JSON(errInvalidSummaryWindow.HTTPStatus, errInvalidSummaryWindow.ToHTTPError())
		return
	}

	summary, err := h.usecase.GetClientSummary(c.Request.Context(), c.Param("client_id"), from, to)
	if err != nil {
		appErr := mapSummaryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSummary(summary))
}

func mapSummaryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidWindow):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

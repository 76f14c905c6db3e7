package routes

import (
	"billing_saas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
	PathClients  = "/clients"
)

func addBillingRoutes(rg *gin.RouterGroup, documentHandler *handlers.InvoiceDocumentHandler, summaryHandler *handlers.FinancialSummaryHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("/:invoice_id/documents", documentHandler.GenerateDocument)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("/:client_id/summary", summaryHandler.GetClientSummary)
	}
}

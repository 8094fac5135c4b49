package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
	"github.com/SscSPs/accounts_backoffice/internal/middleware"
)

type invoiceHandler struct {
	service portssvc.InvoiceSvcFacade
}

// RegisterInvoiceRoutes registers invoice CRUD and posting routes on rg.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, service portssvc.InvoiceSvcFacade) {
	h := &invoiceHandler{service: service}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
		invoices.POST("/:id/post", h.postInvoice)
	}
}

// createInvoice godoc
// @Summary Create a DRAFT invoice
// @Description Line amounts and header totals are computed server-side.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.InvoiceRequest true "Invoice"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Company or item not found"
// @Failure 409 {object} dto.ErrorResponse "Invoice number already exists"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actorFromContext(c)
	if !ok {
		return
	}

	invoice, err := h.service.CreateInvoice(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// getInvoice godoc
// @Summary Get an invoice with its lines
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	invoice, err := h.service.GetInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "get invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce  json
// @Param   companyID query string false "Only invoices of this company"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.InvoiceResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}
	var companyID *string
	if v := strings.TrimSpace(c.Query("companyID")); v != "" {
		companyID = &v
	}

	invoices, err := h.service.ListInvoices(c.Request.Context(), companyID, params)
	if err != nil {
		respondWithError(c, err, "list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}

// updateInvoice godoc
// @Summary Replace a DRAFT invoice
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   invoice body dto.InvoiceRequest true "Invoice"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Invoice is posted"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actorFromContext(c)
	if !ok {
		return
	}

	invoice, err := h.service.UpdateInvoice(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "update invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// deleteInvoice godoc
// @Summary Delete a DRAFT invoice
// @Tags invoices
// @Param   id path string true "Invoice ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Invoice is posted"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	userID, ok := actorFromContext(c)
	if !ok {
		return
	}
	if err := h.service.DeleteInvoice(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondWithError(c, err, "delete invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

// postInvoice godoc
// @Summary Post an invoice to the ledger
// @Description Generates a balanced journal entry from the company and item GL mappings
// @Description and marks the invoice POSTED in the same transaction.
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.PostedInvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Invoice total is not positive"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already posted"
// @Failure 422 {object} dto.ErrorResponse "GL mapping missing"
// @Security BearerAuth
// @Router /invoices/{id}/post [post]
func (h *invoiceHandler) postInvoice(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	invoice, entry, err := h.service.PostInvoice(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondWithError(c, err, "post invoice")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Invoice posted",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("journal_entry_id", entry.JournalEntryID))
	c.JSON(http.StatusOK, dto.PostedInvoiceResponse{
		Invoice:      dto.ToInvoiceResponse(invoice),
		JournalEntry: dto.ToJournalEntryResponse(entry),
	})
}

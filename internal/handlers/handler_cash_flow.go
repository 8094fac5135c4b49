package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
)

type cashFlowHandler struct {
	service portssvc.CashFlowSvcFacade
	timeout time.Duration
}

// RegisterCashFlowRoutes registers cash-flow items, transactions and the statement.
func RegisterCashFlowRoutes(rg *gin.RouterGroup, service portssvc.CashFlowSvcFacade, timeout time.Duration) {
	h := &cashFlowHandler{service: service, timeout: timeout}

	cashFlow := rg.Group("/cash-flow")
	{
		cashFlow.POST("/items", h.createCashFlowItem)
		cashFlow.GET("/items", h.listCashFlowItems)

		cashFlow.POST("/transactions", h.createCashFlowTransaction)
		cashFlow.GET("/transactions", h.listCashFlowTransactions)
		cashFlow.GET("/transactions/unposted", h.listUnpostedCashFlowTransactions)
		cashFlow.GET("/transactions/:id", h.getCashFlowTransaction)
		cashFlow.POST("/transactions/:id/post", h.postCashFlowTransaction)

		cashFlow.GET("/statement", h.getCashFlowStatement)
	}
}

// createCashFlowItem godoc
// @Summary Create a cash-flow statement item
// @Tags cash-flow
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateCashFlowItemRequest true "Cash-flow item"
// @Success 201 {object} domain.CashFlowItem
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cash-flow/items [post]
func (h *cashFlowHandler) createCashFlowItem(c *gin.Context) {
	var req dto.CreateCashFlowItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actorFromContext(c)
	if !ok {
		return
	}

	item, err := h.service.CreateCashFlowItem(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create cash flow item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// listCashFlowItems godoc
// @Summary List cash-flow items in display order
// @Tags cash-flow
// @Produce  json
// @Success 200 {array} domain.CashFlowItem
// @Security BearerAuth
// @Router /cash-flow/items [get]
func (h *cashFlowHandler) listCashFlowItems(c *gin.Context) {
	items, err := h.service.ListCashFlowItems(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "list cash flow items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// createCashFlowTransaction godoc
// @Summary Record a cash-flow transaction
// @Description Flow type and category default to the item's. Currency defaults from configuration.
// @Tags cash-flow
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateCashFlowTransactionRequest true "Cash-flow transaction"
// @Success 201 {object} domain.CashFlowTransaction
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Cash-flow item not found"
// @Failure 409 {object} dto.ErrorResponse "Transaction number already exists"
// @Security BearerAuth
// @Router /cash-flow/transactions [post]
func (h *cashFlowHandler) createCashFlowTransaction(c *gin.Context) {
	var req dto.CreateCashFlowTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actorFromContext(c)
	if !ok {
		return
	}

	txn, err := h.service.CreateCashFlowTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create cash flow transaction")
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// listCashFlowTransactions godoc
// @Summary List cash-flow transactions
// @Description The date range applies only when both dates are given.
// @Tags cash-flow
// @Produce  json
// @Param   startDate query string false "Start date (2006-01-02)"
// @Param   endDate query string false "End date (2006-01-02)"
// @Param   entity query string false "Entity filter"
// @Success 200 {array} domain.CashFlowTransaction
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cash-flow/transactions [get]
func (h *cashFlowHandler) listCashFlowTransactions(c *gin.Context) {
	var params dto.CashFlowQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondWithError(c, err, "list cash flow transactions")
		return
	}

	txns, err := h.service.ListCashFlowTransactions(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err, "list cash flow transactions")
		return
	}
	c.JSON(http.StatusOK, txns)
}

// listUnpostedCashFlowTransactions godoc
// @Summary List cash-flow transactions not yet posted
// @Tags cash-flow
// @Produce  json
// @Success 200 {array} domain.CashFlowTransaction
// @Security BearerAuth
// @Router /cash-flow/transactions/unposted [get]
func (h *cashFlowHandler) listUnpostedCashFlowTransactions(c *gin.Context) {
	txns, err := h.service.ListUnpostedCashFlowTransactions(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "list unposted cash flow transactions")
		return
	}
	c.JSON(http.StatusOK, txns)
}

// getCashFlowTransaction godoc
// @Summary Get a cash-flow transaction
// @Tags cash-flow
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} domain.CashFlowTransaction
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cash-flow/transactions/{id} [get]
func (h *cashFlowHandler) getCashFlowTransaction(c *gin.Context) {
	txn, err := h.service.GetCashFlowTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "get cash flow transaction")
		return
	}
	c.JSON(http.StatusOK, txn)
}

// postCashFlowTransaction godoc
// @Summary Post a cash-flow transaction
// @Tags cash-flow
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} domain.CashFlowTransaction
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already posted"
// @Security BearerAuth
// @Router /cash-flow/transactions/{id}/post [post]
func (h *cashFlowHandler) postCashFlowTransaction(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	txn, err := h.service.PostCashFlowTransaction(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondWithError(c, err, "post cash flow transaction")
		return
	}
	c.JSON(http.StatusOK, txn)
}

// getCashFlowStatement godoc
// @Summary Generate the statement of cash flows
// @Tags cash-flow
// @Produce  json
// @Param   startDate query string false "Start date (2006-01-02)"
// @Param   endDate query string false "End date (2006-01-02)"
// @Param   entity query string false "Entity filter"
// @Success 200 {object} domain.CashFlowStatement
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cash-flow/statement [get]
func (h *cashFlowHandler) getCashFlowStatement(c *gin.Context) {
	var params dto.CashFlowQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondWithError(c, err, "generate cash flow statement")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	statement, err := h.service.GenerateCashFlowStatement(ctx, filter.StartDate, filter.EndDate, filter.Entity)
	if err != nil {
		respondWithError(c, err, "generate cash flow statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}

package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
)

type equityHandler struct {
	service portssvc.EquitySvcFacade
	timeout time.Duration
}

// RegisterEquityRoutes registers equity master data, transactions and the statement
// of changes in equity. Statement generation is bounded by timeout.
func RegisterEquityRoutes(rg *gin.RouterGroup, service portssvc.EquitySvcFacade, timeout time.Duration) {
	h := &equityHandler{service: service, timeout: timeout}

	equity := rg.Group("/equity")
	{
		equity.POST("/accounts", h.createEquityAccount)
		equity.GET("/accounts", h.listEquityAccounts)

		equity.POST("/transactions", h.createEquityTransaction)
		equity.GET("/transactions", h.listEquityTransactions)
		equity.GET("/transactions/:id", h.getEquityTransaction)
		equity.POST("/transactions/:id/post", h.postEquityTransaction)

		equity.GET("/fiscal-years", h.listFiscalYears)

		equity.GET("/statement", h.getEquityStatement)
		equity.GET("/statement/year/:year", h.getEquityStatementForYear)
	}
}

// createEquityAccount godoc
// @Summary Create an equity account (statement column)
// @Tags equity
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateEquityAccountRequest true "Equity account"
// @Success 201 {object} domain.EquityAccount
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /equity/accounts [post]
func (h *equityHandler) createEquityAccount(c *gin.Context) {
	var req dto.CreateEquityAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actorFromContext(c)
	if !ok {
		return
	}

	account, err := h.service.CreateEquityAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create equity account")
		return
	}
	c.JSON(http.StatusCreated, account)
}

// listEquityAccounts godoc
// @Summary List active equity accounts in display order
// @Tags equity
// @Produce  json
// @Success 200 {array} domain.EquityAccount
// @Security BearerAuth
// @Router /equity/accounts [get]
func (h *equityHandler) listEquityAccounts(c *gin.Context) {
	accounts, err := h.service.ListEquityAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "list equity accounts")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// createEquityTransaction godoc
// @Summary Record an equity transaction
// @Tags equity
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateEquityTransactionRequest true "Equity transaction"
// @Success 201 {object} domain.EquityTransaction
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Equity account not found"
// @Failure 409 {object} dto.ErrorResponse "Transaction number already exists"
// @Security BearerAuth
// @Router /equity/transactions [post]
func (h *equityHandler) createEquityTransaction(c *gin.Context) {
	var req dto.CreateEquityTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actorFromContext(c)
	if !ok {
		return
	}

	txn, err := h.service.CreateEquityTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create equity transaction")
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// listEquityTransactions godoc
// @Summary List equity transactions of a fiscal year
// @Tags equity
// @Produce  json
// @Param   fiscalYear query int true "Fiscal year"
// @Success 200 {array} domain.EquityTransaction
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /equity/transactions [get]
func (h *equityHandler) listEquityTransactions(c *gin.Context) {
	var params dto.EquityTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	txns, err := h.service.ListEquityTransactionsByYear(c.Request.Context(), params.FiscalYear)
	if err != nil {
		respondWithError(c, err, "list equity transactions")
		return
	}
	c.JSON(http.StatusOK, txns)
}

// getEquityTransaction godoc
// @Summary Get an equity transaction
// @Tags equity
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} domain.EquityTransaction
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /equity/transactions/{id} [get]
func (h *equityHandler) getEquityTransaction(c *gin.Context) {
	txn, err := h.service.GetEquityTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "get equity transaction")
		return
	}
	c.JSON(http.StatusOK, txn)
}

// postEquityTransaction godoc
// @Summary Post an equity transaction
// @Tags equity
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} domain.EquityTransaction
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already posted"
// @Security BearerAuth
// @Router /equity/transactions/{id}/post [post]
func (h *equityHandler) postEquityTransaction(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	txn, err := h.service.PostEquityTransaction(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondWithError(c, err, "post equity transaction")
		return
	}
	c.JSON(http.StatusOK, txn)
}

// listFiscalYears godoc
// @Summary List fiscal years that have equity transactions, newest first
// @Tags equity
// @Produce  json
// @Success 200 {array} int
// @Security BearerAuth
// @Router /equity/fiscal-years [get]
func (h *equityHandler) listFiscalYears(c *gin.Context) {
	years, err := h.service.ListFiscalYears(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "list fiscal years")
		return
	}
	c.JSON(http.StatusOK, years)
}

// getEquityStatement godoc
// @Summary Generate the statement of changes in equity
// @Description Opening and closing balances are derived from the full transaction history.
// @Tags equity
// @Produce  json
// @Param   startYear query int true "First fiscal year"
// @Param   endYear query int true "Last fiscal year"
// @Param   company query string false "Company name filter"
// @Success 200 {object} domain.EquityStatement
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /equity/statement [get]
func (h *equityHandler) getEquityStatement(c *gin.Context) {
	var params dto.EquityStatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}
	h.renderStatement(c, params.StartYear, params.EndYear, params.Company)
}

// getEquityStatementForYear godoc
// @Summary Generate the statement of changes in equity for one fiscal year
// @Tags equity
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Param   company query string false "Company name filter"
// @Success 200 {object} domain.EquityStatement
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /equity/statement/year/{year} [get]
func (h *equityHandler) getEquityStatementForYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		respondWithBindError(c, err)
		return
	}
	var company *string
	if v := strings.TrimSpace(c.Query("company")); v != "" {
		company = &v
	}
	h.renderStatement(c, year, year, company)
}

func (h *equityHandler) renderStatement(c *gin.Context, startYear, endYear int, company *string) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	statement, err := h.service.GenerateEquityStatement(ctx, startYear, endYear, company)
	if err != nil {
		respondWithError(c, err, "generate equity statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}

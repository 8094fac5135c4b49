package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
	"github.com/SscSPs/accounts_backoffice/internal/middleware"
)

// masterDataHandler serves accounts, companies and items.
type masterDataHandler struct {
	service portssvc.MasterDataSvcFacade
}

// RegisterMasterDataRoutes registers the lookup-data routes on rg.
func RegisterMasterDataRoutes(rg *gin.RouterGroup, service portssvc.MasterDataSvcFacade) {
	h := &masterDataHandler{service: service}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.GET("/code/:code", h.getAccountByCode)
	}

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:id", h.getCompany)
		companies.PUT("/:id/gl-mapping", h.setCompanyGLMapping)
	}

	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:id", h.getItem)
		items.PUT("/:id/gl-mapping", h.setItemGLMapping)
	}
}

// createAccount godoc
// @Summary Create a chart-of-accounts entry
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} domain.Account
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Code already exists"
// @Security BearerAuth
// @Router /accounts [post]
func (h *masterDataHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actorFromContext(c)
	if !ok {
		return
	}

	account, err := h.service.CreateAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create account")
		return
	}
	c.JSON(http.StatusCreated, account)
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} domain.Account
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *masterDataHandler) getAccount(c *gin.Context) {
	account, err := h.service.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "get account")
		return
	}
	c.JSON(http.StatusOK, account)
}

// getAccountByCode godoc
// @Summary Get an account by code
// @Tags accounts
// @Produce  json
// @Param   code path string true "Account code"
// @Success 200 {object} domain.Account
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/code/{code} [get]
func (h *masterDataHandler) getAccountByCode(c *gin.Context) {
	account, err := h.service.GetAccountByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondWithError(c, err, "get account by code")
		return
	}
	c.JSON(http.StatusOK, account)
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce  json
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} domain.Account
// @Security BearerAuth
// @Router /accounts [get]
func (h *masterDataHandler) listAccounts(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}
	accounts, err := h.service.ListAccounts(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "list accounts")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// createCompany godoc
// @Summary Create a company
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} domain.Company
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies [post]
func (h *masterDataHandler) createCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actorFromContext(c)
	if !ok {
		return
	}

	company, err := h.service.CreateCompany(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create company")
		return
	}
	c.JSON(http.StatusCreated, company)
}

// getCompany godoc
// @Summary Get a company with its GL mapping
// @Tags companies
// @Produce  json
// @Param   id path string true "Company ID"
// @Success 200 {object} domain.Company
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *masterDataHandler) getCompany(c *gin.Context) {
	company, err := h.service.GetCompanyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "get company")
		return
	}
	c.JSON(http.StatusOK, company)
}

// listCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce  json
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} domain.Company
// @Security BearerAuth
// @Router /companies [get]
func (h *masterDataHandler) listCompanies(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}
	companies, err := h.service.ListCompanies(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "list companies")
		return
	}
	c.JSON(http.StatusOK, companies)
}

// setCompanyGLMapping godoc
// @Summary Replace a company's GL account mapping
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   id path string true "Company ID"
// @Param   mapping body dto.CompanyGLMappingRequest true "GL roles"
// @Success 200 {object} domain.Company
// @Failure 404 {object} dto.ErrorResponse "Company or referenced account not found"
// @Security BearerAuth
// @Router /companies/{id}/gl-mapping [put]
func (h *masterDataHandler) setCompanyGLMapping(c *gin.Context) {
	var req dto.CompanyGLMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actorFromContext(c)
	if !ok {
		return
	}

	company, err := h.service.SetCompanyGLMapping(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "set company GL mapping")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Company GL mapping updated", slog.String("company_id", company.CompanyID))
	c.JSON(http.StatusOK, company)
}

// createItem godoc
// @Summary Create an item
// @Tags items
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} domain.Item
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /items [post]
func (h *masterDataHandler) createItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actorFromContext(c)
	if !ok {
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// getItem godoc
// @Summary Get an item with its GL mapping
// @Tags items
// @Produce  json
// @Param   id path string true "Item ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /items/{id} [get]
func (h *masterDataHandler) getItem(c *gin.Context) {
	item, err := h.service.GetItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "get item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// listItems godoc
// @Summary List items
// @Tags items
// @Produce  json
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} domain.Item
// @Security BearerAuth
// @Router /items [get]
func (h *masterDataHandler) listItems(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}
	items, err := h.service.ListItems(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "list items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// setItemGLMapping godoc
// @Summary Replace an item's GL account mapping
// @Tags items
// @Accept  json
// @Produce  json
// @Param   id path string true "Item ID"
// @Param   mapping body dto.ItemGLMappingRequest true "GL roles"
// @Success 200 {object} domain.Item
// @Failure 404 {object} dto.ErrorResponse "Item or referenced account not found"
// @Security BearerAuth
// @Router /items/{id}/gl-mapping [put]
func (h *masterDataHandler) setItemGLMapping(c *gin.Context) {
	var req dto.ItemGLMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actorFromContext(c)
	if !ok {
		return
	}

	item, err := h.service.SetItemGLMapping(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "set item GL mapping")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Item GL mapping updated", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusOK, item)
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
	"github.com/SscSPs/accounts_backoffice/internal/middleware"
)

// journalEntryHandler handles HTTP requests for manual journal entries.
type journalEntryHandler struct {
	service portssvc.JournalEntrySvcFacade
}

// RegisterJournalEntryRoutes registers the journal entry lifecycle routes on rg.
func RegisterJournalEntryRoutes(rg *gin.RouterGroup, service portssvc.JournalEntrySvcFacade) {
	h := &journalEntryHandler{service: service}

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:id", h.getJournalEntry)
		entries.POST("/:id/post", h.postJournalEntry)
		entries.POST("/:id/reverse", h.reverseJournalEntry)
		entries.DELETE("/:id", h.deleteJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Create a DRAFT journal entry
// @Description Every line must carry exactly one non-zero side. The entry number must be unique.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Entry number already exists"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalEntryHandler) createJournalEntry(c *gin.Context) {
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actorFromContext(c)
	if !ok {
		return
	}

	entry, err := h.service.CreateJournalEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getJournalEntry godoc
// @Summary Get a journal entry with its lines
// @Tags journal-entries
// @Produce  json
// @Param   id path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /journal-entries/{id} [get]
func (h *journalEntryHandler) getJournalEntry(c *gin.Context) {
	entry, err := h.service.GetJournalEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "get journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries, newest first
// @Tags journal-entries
// @Produce  json
// @Param   status query string false "DRAFT, POSTED or REVERSED"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalEntryHandler) listJournalEntries(c *gin.Context) {
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	resp, err := h.service.ListJournalEntries(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "list journal entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// postJournalEntry godoc
// @Summary Post a DRAFT journal entry
// @Description Re-checks the balance. The authenticated user is recorded as poster.
// @Tags journal-entries
// @Produce  json
// @Param   id path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already posted or unbalanced"
// @Security BearerAuth
// @Router /journal-entries/{id}/post [post]
func (h *journalEntryHandler) postJournalEntry(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	entry, err := h.service.PostJournalEntry(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondWithError(c, err, "post journal entry")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry posted",
		slog.String("journal_entry_id", entry.JournalEntryID))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseJournalEntry godoc
// @Summary Reverse a POSTED journal entry
// @Description Marks the entry REVERSED. No counter-entry is generated.
// @Tags journal-entries
// @Produce  json
// @Param   id path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Entry is not posted"
// @Security BearerAuth
// @Router /journal-entries/{id}/reverse [post]
func (h *journalEntryHandler) reverseJournalEntry(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	entry, err := h.service.ReverseJournalEntry(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondWithError(c, err, "reverse journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteJournalEntry godoc
// @Summary Delete a DRAFT journal entry
// @Tags journal-entries
// @Param   id path string true "Journal entry ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Only drafts can be deleted"
// @Security BearerAuth
// @Router /journal-entries/{id} [delete]
func (h *journalEntryHandler) deleteJournalEntry(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	if err := h.service.DeleteJournalEntry(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondWithError(c, err, "delete journal entry")
		return
	}
	c.Status(http.StatusNoContent)
}

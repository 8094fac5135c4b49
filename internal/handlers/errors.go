package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
	"github.com/SscSPs/accounts_backoffice/internal/middleware"
)

const internalErrorMessage = "internal server error"

// statusFor maps an error class to its HTTP status and the short class name used in bodies.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "ValidationFailure"
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "NotFound"
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, "DuplicateKey"
	case errors.Is(err, apperrors.ErrInvalidState):
		return http.StatusConflict, "InvalidState"
	case errors.Is(err, apperrors.ErrMissingConfiguration):
		return http.StatusUnprocessableEntity, "MissingConfiguration"
	default:
		return http.StatusInternalServerError, "InternalError"
	}
}

func newErrorResponse(c *gin.Context, status int, class, message string) dto.ErrorResponse {
	return dto.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     class,
		Message:   message,
		Path:      c.Request.URL.Path,
	}
}

// respondWithError writes the error body for err. Unclassified errors are logged and
// replaced by an opaque message.
func respondWithError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, class := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		message = internalErrorMessage
	} else {
		logger.Warn("Rejected request to "+action, slog.String("error", err.Error()))
	}
	c.JSON(status, newErrorResponse(c, status, class, message))
}

// respondWithBindError reports a malformed or invalid request body or query.
func respondWithBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))

	resp := newErrorResponse(c, http.StatusBadRequest, "ValidationFailure", "Invalid request: "+err.Error())
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		resp.Message = "Request validation failed"
		resp.Details = make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			resp.Details[fe.Field()] = validationMessage(fe)
		}
	}
	c.JSON(http.StatusBadRequest, resp)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "len":
		return "must have length " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}

// actorFromContext returns the authenticated subject or writes a 401.
func actorFromContext(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, newErrorResponse(c, http.StatusUnauthorized, "Unauthorized", "Unauthorized"))
		return "", false
	}
	return userID, true
}

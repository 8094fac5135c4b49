package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated subject in the request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID placed by AuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/accounts_backoffice/internal/dto"
	"github.com/SscSPs/accounts_backoffice/internal/middleware"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// handlerSuite carries the router shared by every handler suite. Routes are mounted
// under /api/v1 behind the real AuthMiddleware.
type handlerSuite struct {
	suite.Suite
	router *gin.Engine
	v1     *gin.RouterGroup
}

func (s *handlerSuite) setupRouter() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.v1 = s.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
}

// generateTestToken creates a signed JWT for userID.
func (s *handlerSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "backoffice-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		s.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// perform sends a request as userID. An empty userID sends no Authorization header.
func (s *handlerSuite) perform(method, url string, body any, userID string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+s.generateTestToken(userID))
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *handlerSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func strPtr(s string) *string {
	return &s
}

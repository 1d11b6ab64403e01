package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(tokens *TokenService, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireToken(tokens), func(c *gin.Context) {
		*calls++
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": claims.Username, "role": claims.Role})
	})
	return router
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequireToken_MissingHeader(t *testing.T) {
	var calls int
	router := protectedRouter(NewTokenService("test-secret", time.Hour), &calls)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Access denied. No token provided.", body["message"])
	assert.Equal(t, 0, calls)
}

func TestRequireToken_EmptyBearer(t *testing.T) {
	var calls int
	router := protectedRouter(NewTokenService("test-secret", time.Hour), &calls)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer ")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, calls)
}

func TestRequireToken_InvalidToken(t *testing.T) {
	var calls int
	router := protectedRouter(NewTokenService("test-secret", time.Hour), &calls)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid token.", body["message"])
	assert.Equal(t, 0, calls)
}

func TestRequireToken_ValidToken(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	var calls int
	router := protectedRouter(tokens, &calls)

	token, err := tokens.Issue("admin", RoleAdmin)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "admin", body["username"])
	assert.Equal(t, RoleAdmin, body["role"])
	assert.Equal(t, 1, calls)
}

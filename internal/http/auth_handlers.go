package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/internal/auth"
	"portfolio-api/internal/service"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	// a malformed body carries no credentials, which is just a failed login
	_ = c.ShouldBindJSON(&req)

	token, user, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.serverError(c, "Server Error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Authentication successful",
		"token":   token,
		"user": gin.H{
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

func (h *Handler) verifyToken(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		fail(c, http.StatusBadRequest, "Invalid token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Token is valid",
		"user": gin.H{
			"username": claims.Username,
			"role":     claims.Role,
			"iat":      claims.IssuedAt.Unix(),
			"exp":      claims.ExpiresAt.Unix(),
		},
	})
}

func (h *Handler) logout(c *gin.Context) {
	// tokens are stateless; logout is a client side discard
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

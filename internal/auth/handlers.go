package auth

import (
	"errors"
	"net/http"

	apperrors "nexus-hub-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// TokenRequest represents the credentials for the token endpoint
type TokenRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// TokenResponse represents the response from the token endpoint
type TokenResponse struct {
	Token           string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType       string `json:"token_type" example:"Bearer"`
	PermissionLevel string `json:"permission_level" example:"admin"`
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// IssueToken godoc
//
//	@Summary		Issue an access token
//	@Description	Exchanges a username and password for a signed bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		TokenRequest	true	"User credentials"
//	@Success		200			{object}	TokenResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		401			{object}	map[string]string
//	@Router			/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, user, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Token:           token,
		TokenType:       "Bearer",
		PermissionLevel: user.PermissionLevel,
	})
}

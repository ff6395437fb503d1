package auth

import (
	"net/http"
	"strings"

	"nexus-hub-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates bearer tokens and sets user context. A static API
// key in X-API-Key is accepted as an alternative to a JWT.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
			user, err := m.service.AuthenticateAPIKey(apiKey)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
				c.Abort()
				return
			}
			setUserContext(c, &AuthClaims{
				UserID:               user.ID,
				Username:             user.Username,
				PermissionLevel:      user.PermissionLevel,
				CompanyAccountNumber: user.CompanyAccountNumber,
			})
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		setUserContext(c, claims)
		c.Next()
	}
}

// RequirePermission restricts a route to the given permission levels. It
// must run after RequireAuth.
func (m *AuthMiddleware) RequirePermission(allowedLevels ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		for _, level := range allowedLevels {
			if claims.PermissionLevel == level {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permission level for this resource"})
		c.Abort()
	}
}

// RequireCompanyScope lets admins and technicians through unconditionally
// and restricts client users to their own company. The route must carry an
// account_number path parameter.
func (m *AuthMiddleware) RequireCompanyScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if claims.PermissionLevel != models.PermissionClient {
			c.Next()
			return
		}

		if c.Param("account_number") != claims.CompanyAccountNumber {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access to this company is not allowed"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func setUserContext(c *gin.Context, claims *AuthClaims) {
	c.Set("user_id", claims.UserID)
	c.Set("username", claims.Username)
	c.Set("permission_level", claims.PermissionLevel)
	c.Set("company_account_number", claims.CompanyAccountNumber)
	c.Set("auth_claims", claims)
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint)
	return id, ok
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

// GetPermissionLevel is a helper function to extract the permission level from context
func GetPermissionLevel(c *gin.Context) (string, bool) {
	level, exists := c.Get("permission_level")
	if !exists {
		return "", false
	}

	levelStr, ok := level.(string)
	return levelStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

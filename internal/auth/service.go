package auth

import (
	"errors"
	"fmt"
	"time"

	"nexus-hub-backend/internal/database/models"
	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uint   `json:"user_id" example:"1"`
	Username             string `json:"username" example:"admin"`
	PermissionLevel      string `json:"permission_level" example:"admin"`
	CompanyAccountNumber string `json:"company_account_number,omitempty" example:"ACC100"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService issues and validates bearer tokens for local API users.
// Credentials live in the users table; there is no external identity
// provider.
type AuthService struct {
	userRepo  repository.UserRepositoryInterface
	jwtSecret []byte
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo repository.UserRepositoryInterface, jwtSecret string) (*AuthService, error) {
	if jwtSecret == "" {
		return nil, fmt.Errorf("invalid auth config: %w", apperrors.ErrNexusConfigMissing)
	}
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}, nil
}

// Login verifies a username and password and returns a signed token. The
// same error comes back for unknown users and bad passwords so callers
// cannot probe for valid usernames.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.CheckPassword(password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return token, user, nil
}

// AuthenticateAPIKey resolves a static API key to its user. Keys are meant
// for machine callers like the sync job.
func (s *AuthService) AuthenticateAPIKey(apiKey string) (*models.User, error) {
	user, err := s.userRepo.GetByAPIKey(apiKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up API key: %w", err)
	}
	return user, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:               user.ID,
		Username:             user.Username,
		PermissionLevel:      user.PermissionLevel,
		CompanyAccountNumber: user.CompanyAccountNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "nexus-hub-backend",
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

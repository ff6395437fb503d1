package repository

import (
	"nexus-hub-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for API users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByAPIKey retrieves a user by API key
func (r *UserRepository) GetByAPIKey(apiKey string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "api_key = ?", apiKey).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update saves a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

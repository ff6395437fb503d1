package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Permission levels for API users.
const (
	PermissionAdmin      = "admin"
	PermissionTechnician = "technician"
	PermissionClient     = "client"
)

// User is a local API principal. Clients are scoped to a single company.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username             string `json:"username" gorm:"uniqueIndex;not null;size:150" validate:"required,max=150"`
	Email                string `json:"email" gorm:"uniqueIndex;not null;size:150" validate:"required,email,max=150"`
	PasswordHash         string `json:"-" gorm:"not null;size:200"`
	PermissionLevel      string `json:"permission_level" gorm:"not null;size:50;default:client" validate:"required,oneof=admin technician client"`
	CompanyAccountNumber string `json:"company_account_number" gorm:"size:50"`
	APIKey               string `json:"-" gorm:"uniqueIndex;size:64"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// SetPassword hashes and stores the given password
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares the given password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

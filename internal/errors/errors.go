package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this account number"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// WriteError represents a failed create/update call against the Nexus API.
// Status carries the HTTP status code of the rejected write.
type WriteError struct {
	Operation string
	Status    int
	Body      string
}

func (e *WriteError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s failed: status=%d body=%s", e.Operation, e.Status, e.Body)
	}
	return fmt.Sprintf("%s failed: status=%d", e.Operation, e.Status)
}

// FetchError represents a failed collection fetch from Freshservice.
// A failed fetch aborts the entire sync; no partial results are kept.
type FetchError struct {
	Collection string
	Page       int
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s page %d: %v", e.Collection, e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrCompanyNotFound     = &NotFoundError{Entity: "company"}
	ErrContactNotFound     = &NotFoundError{Entity: "contact"}
	ErrLocationNotFound    = &NotFoundError{Entity: "location"}
	ErrBillingPlanNotFound = &NotFoundError{Entity: "billing plan"}
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrCompanyExists  = &AlreadyExistsError{Entity: "company", Context: "with this account number"}
	ErrContactExists  = &AlreadyExistsError{Entity: "contact", Context: "with this email"}
	ErrUserExists     = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrLocationExists = &AlreadyExistsError{Entity: "location", Context: "with this name for the company"}
)

// Business Logic Errors
var (
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidSortColumn       = errors.New("sort column is not allowed")
	ErrAccountNumberMismatch   = errors.New("account number in path and payload do not match")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrTokenMissing       = &AuthenticationError{Message: "token missing from response"}
	ErrInsufficientRights = &AuthorizationError{Message: "insufficient permissions"}
)

// Configuration Errors
var (
	ErrFreshserviceConfigMissing = errors.New("freshservice configuration missing: FRESHSERVICE_DOMAIN or FRESHSERVICE_API_KEY")
	ErrNexusConfigMissing        = errors.New("nexus configuration missing: NEXUS_API_URL, NEXUS_USERNAME or NEXUS_PASSWORD")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsWriteError checks if an error is a WriteError
func IsWriteError(err error) bool {
	var writeErr *WriteError
	return errors.As(err, &writeErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewWriteError creates a WriteError for a failed API write
func NewWriteError(operation string, status int, body string) error {
	return &WriteError{Operation: operation, Status: status, Body: body}
}

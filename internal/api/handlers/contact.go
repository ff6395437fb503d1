package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles HTTP requests for contacts
type ContactHandler struct {
	service service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// CreateContact handles POST /api/contacts
// @Summary Create a new contact
// @Description Create a new contact with its initial company association set
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body service.UpsertContactRequest true "Contact data"
// @Success 201 {object} service.ContactResponse "Successfully created contact"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Contact already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req service.UpsertContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contact, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrContactExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// GetContact handles GET /api/contacts/:id
// @Summary Get contact by ID
// @Description Get a specific contact with its full association set
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} service.ContactResponse "Successfully retrieved contact"
// @Failure 400 {object} map[string]interface{} "Invalid contact ID"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}

	contact, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contact", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// ListContacts handles GET /api/contacts
// @Summary List contacts
// @Description Get contacts with sorting and pagination. With an email query parameter the response is a bare array holding at most the one contact with that primary email, which lets callers probe for existence.
// @Tags contacts
// @Accept json
// @Produce json
// @Param email query string false "Exact primary email to probe for"
// @Param sort_by query string false "Sort column" default(name)
// @Param order query string false "Sort order (asc or desc)" default(asc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ContactListResponse "Successfully retrieved contacts"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	// Email probe: respond with a bare array so callers can distinguish
	// absent (empty array) from present without a 404 round trip.
	if email := c.Query("email"); email != "" {
		contact, err := h.service.FindByEmail(email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up contact", "details": err.Error()})
			return
		}
		if contact == nil {
			c.JSON(http.StatusOK, []service.ContactResponse{})
			return
		}
		c.JSON(http.StatusOK, []service.ContactResponse{*contact})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	sortBy := c.DefaultQuery("sort_by", "name")
	order := c.DefaultQuery("order", "asc")

	contacts, err := h.service.List(sortBy, order, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) || errors.Is(err, apperrors.ErrInvalidSortColumn) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contacts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// UpdateContact handles PUT /api/contacts/:id
// @Summary Update contact
// @Description Overwrite a contact's fields. The company association set is replaced with exactly the set in the request body when present.
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param contact body service.UpsertContactRequest true "Updated contact data"
// @Success 200 {object} service.ContactResponse "Successfully updated contact"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}

	var req service.UpsertContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contact, err := h.service.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

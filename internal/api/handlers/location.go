package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles HTTP requests for company locations
type LocationHandler struct {
	service service.LocationServiceInterface
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service service.LocationServiceInterface) *LocationHandler {
	return &LocationHandler{service: service}
}

// ListLocations handles GET /api/companies/:account_number/locations
// @Summary List company locations
// @Description Get all locations for a company
// @Tags locations
// @Accept json
// @Produce json
// @Param account_number path string true "Company account number"
// @Success 200 {array} models.Location "Successfully retrieved locations"
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /companies/{account_number}/locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	accountNumber := c.Param("account_number")

	locations, err := h.service.ListForCompany(accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list locations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// CreateLocation handles POST /api/companies/:account_number/locations
// @Summary Create a location
// @Description Create a new location for a company
// @Tags locations
// @Accept json
// @Produce json
// @Param account_number path string true "Company account number"
// @Param location body service.CreateLocationRequest true "Location data"
// @Success 201 {object} models.Location "Successfully created location"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Failure 409 {object} map[string]interface{} "Location already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /companies/{account_number}/locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	accountNumber := c.Param("account_number")

	var req service.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	location, err := h.service.Create(accountNumber, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrLocationExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create location", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, location)
}

// UpsertMainOffice handles PUT /api/companies/:account_number/locations/main
// @Summary Upsert the Main Office location
// @Description Create or update the company's "Main Office" location with the given address and phone number
// @Tags locations
// @Accept json
// @Produce json
// @Param account_number path string true "Company account number"
// @Param location body service.UpsertMainOfficeRequest true "Main office address and phone"
// @Success 200 {object} models.Location "Successfully upserted location"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /companies/{account_number}/locations/main [put]
func (h *LocationHandler) UpsertMainOffice(c *gin.Context) {
	accountNumber := c.Param("account_number")

	var req service.UpsertMainOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	location, err := h.service.UpsertMainOffice(accountNumber, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upsert main office", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, location)
}

// DeleteLocation handles DELETE /api/companies/:account_number/locations/:id
// @Summary Delete a location
// @Description Delete a company location by ID
// @Tags locations
// @Accept json
// @Produce json
// @Param account_number path string true "Company account number"
// @Param id path int true "Location ID"
// @Success 204 "Successfully deleted location"
// @Failure 400 {object} map[string]interface{} "Invalid location ID"
// @Failure 404 {object} map[string]interface{} "Location not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /companies/{account_number}/locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	accountNumber := c.Param("account_number")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	if err := h.service.Delete(accountNumber, uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrLocationNotFound) || errors.Is(err, apperrors.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete location", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

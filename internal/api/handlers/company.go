package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"nexus-hub-backend/internal/database/models"
	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for companies
type CompanyHandler struct {
	service service.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(service service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// CreateCompany handles POST /api/companies
// @Summary Create a new company
// @Description Create a new company keyed by its account number
// @Tags companies
// @Accept json
// @Produce json
// @Param company body service.UpsertCompanyRequest true "Company data"
// @Success 201 {object} models.Company "Successfully created company"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Company already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req service.UpsertCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	company, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompanyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create company", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, company)
}

// GetCompany handles GET /api/companies/:account_number
// @Summary Get company by account number
// @Description Get a specific company by its account number
// @Tags companies
// @Accept json
// @Produce json
// @Param account_number path string true "Company account number"
// @Success 200 {object} models.Company "Successfully retrieved company"
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /companies/{account_number} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	accountNumber := c.Param("account_number")
	if accountNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account number is required"})
		return
	}

	company, err := h.service.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get company", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, company)
}

// ListCompanies handles GET /api/companies
// @Summary List companies
// @Description Get companies with optional free-text search, sorting and pagination. With a freshservice_id query parameter the response is a bare array holding at most the one company carrying that Freshservice back-reference.
// @Tags companies
// @Accept json
// @Produce json
// @Param freshservice_id query int false "Exact Freshservice department id to probe for"
// @Param q query string false "Free-text search over name, account number and description"
// @Param sort_by query string false "Sort column" default(name)
// @Param order query string false "Sort order (asc or desc)" default(asc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.CompanyListResponse "Successfully retrieved companies"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	if raw := c.Query("freshservice_id"); raw != "" {
		freshserviceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "freshservice_id must be an integer"})
			return
		}

		company, err := h.service.GetByFreshserviceID(freshserviceID)
		if err != nil {
			if errors.Is(err, apperrors.ErrCompanyNotFound) {
				c.JSON(http.StatusOK, []*models.Company{})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up company", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, []*models.Company{company})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	query := c.Query("q")
	sortBy := c.DefaultQuery("sort_by", "name")
	order := c.DefaultQuery("order", "asc")

	companies, err := h.service.Search(query, sortBy, order, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) || errors.Is(err, apperrors.ErrInvalidSortColumn) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list companies", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, companies)
}

// UpdateCompany handles PUT /api/companies/:account_number
// @Summary Update company
// @Description Overwrite the synchronized fields of an existing company
// @Tags companies
// @Accept json
// @Produce json
// @Param account_number path string true "Company account number"
// @Param company body service.UpsertCompanyRequest true "Updated company data"
// @Success 200 {object} models.Company "Successfully updated company"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /companies/{account_number} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	accountNumber := c.Param("account_number")

	var req service.UpsertCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	company, err := h.service.Update(accountNumber, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAccountNumberMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update company", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, company)
}

// PatchCompany handles PATCH /api/companies/:account_number
// @Summary Patch company
// @Description Apply a partial update to the allow-listed portal fields of a company
// @Tags companies
// @Accept json
// @Produce json
// @Param account_number path string true "Company account number"
// @Param patch body service.CompanyPatch true "Fields to update"
// @Success 200 {object} models.Company "Successfully patched company"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /companies/{account_number} [patch]
func (h *CompanyHandler) PatchCompany(c *gin.Context) {
	accountNumber := c.Param("account_number")

	var patch service.CompanyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	company, err := h.service.Patch(accountNumber, &patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to patch company", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, company)
}

// GetCompanyFeatures handles GET /api/companies/:account_number/features
// @Summary Get company features
// @Description Get the company's billing-plan feature defaults merged with its enabled overrides
// @Tags companies
// @Accept json
// @Produce json
// @Param account_number path string true "Company account number"
// @Success 200 {object} map[string]service.ClientFeature "Merged feature values keyed by display name"
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /companies/{account_number}/features [get]
func (h *CompanyHandler) GetCompanyFeatures(c *gin.Context) {
	accountNumber := c.Param("account_number")

	features, err := h.service.ClientFeatures(accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get company features", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, features)
}

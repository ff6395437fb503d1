package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexus-hub-backend/internal/api/handlers"
	"nexus-hub-backend/internal/database/models"
	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/mocks"
	"nexus-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LocationHandlerTestSuite defines the test suite for LocationHandler
type LocationHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockLocationSv *mocks.MockLocationServiceInterface
	handler        *handlers.LocationHandler
	router         *gin.Engine
}

func (suite *LocationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLocationSv = mocks.NewMockLocationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewLocationHandler(suite.mockLocationSv)

	suite.router = gin.New()
	suite.router.GET("/companies/:account_number/locations", suite.handler.ListLocations)
	suite.router.POST("/companies/:account_number/locations", suite.handler.CreateLocation)
	suite.router.PUT("/companies/:account_number/locations/main", suite.handler.UpsertMainOffice)
	suite.router.DELETE("/companies/:account_number/locations/:id", suite.handler.DeleteLocation)
}

func (suite *LocationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LocationHandlerTestSuite) TestListLocations_Success() {
	locations := []models.Location{
		{Name: models.MainOfficeName, Address: "1 Main St", CompanyAccountNumber: "ACC100"},
	}
	suite.mockLocationSv.EXPECT().ListForCompany("ACC100").Return(locations, nil)

	req := httptest.NewRequest(http.MethodGet, "/companies/ACC100/locations", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []models.Location
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), models.MainOfficeName, got[0].Name)
}

func (suite *LocationHandlerTestSuite) TestListLocations_CompanyNotFound() {
	suite.mockLocationSv.EXPECT().ListForCompany("ACC404").Return(nil, apperrors.ErrCompanyNotFound)

	req := httptest.NewRequest(http.MethodGet, "/companies/ACC404/locations", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *LocationHandlerTestSuite) TestCreateLocation_Success() {
	suite.mockLocationSv.EXPECT().Create("ACC100", gomock.Any()).DoAndReturn(
		func(accountNumber string, req *service.CreateLocationRequest) (*models.Location, error) {
			assert.Equal(suite.T(), "Warehouse", req.Name)
			return &models.Location{Name: req.Name, Address: req.Address, CompanyAccountNumber: accountNumber}, nil
		})

	body, _ := json.Marshal(map[string]string{
		"name":    "Warehouse",
		"address": "2 Dock Rd",
	})
	req := httptest.NewRequest(http.MethodPost, "/companies/ACC100/locations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *LocationHandlerTestSuite) TestCreateLocation_DuplicateName() {
	suite.mockLocationSv.EXPECT().Create("ACC100", gomock.Any()).Return(nil, apperrors.ErrLocationExists)

	body, _ := json.Marshal(map[string]string{
		"name":    "Main Office",
		"address": "1 Main St",
	})
	req := httptest.NewRequest(http.MethodPost, "/companies/ACC100/locations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *LocationHandlerTestSuite) TestUpsertMainOffice_Success() {
	suite.mockLocationSv.EXPECT().UpsertMainOffice("ACC100", gomock.Any()).DoAndReturn(
		func(accountNumber string, req *service.UpsertMainOfficeRequest) (*models.Location, error) {
			assert.Equal(suite.T(), "1 Main St", req.Address)
			assert.Equal(suite.T(), "555-0100", req.PhoneNumber)
			return &models.Location{
				Name:                 models.MainOfficeName,
				Address:              req.Address,
				PhoneNumber:          req.PhoneNumber,
				CompanyAccountNumber: accountNumber,
			}, nil
		})

	body, _ := json.Marshal(map[string]string{
		"address":      "1 Main St",
		"phone_number": "555-0100",
	})
	req := httptest.NewRequest(http.MethodPut, "/companies/ACC100/locations/main", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), models.MainOfficeName)
}

func (suite *LocationHandlerTestSuite) TestDeleteLocation_Success() {
	suite.mockLocationSv.EXPECT().Delete("ACC100", uint(3)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/companies/ACC100/locations/3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *LocationHandlerTestSuite) TestDeleteLocation_NotFound() {
	suite.mockLocationSv.EXPECT().Delete("ACC100", uint(404)).Return(apperrors.ErrLocationNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/companies/ACC100/locations/404", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestLocationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LocationHandlerTestSuite))
}

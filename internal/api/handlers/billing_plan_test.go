package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexus-hub-backend/internal/api/handlers"
	"nexus-hub-backend/internal/database/models"
	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BillingPlanHandlerTestSuite defines the test suite for BillingPlanHandler
type BillingPlanHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockPlanSv *mocks.MockBillingPlanServiceInterface
	handler    *handlers.BillingPlanHandler
	router     *gin.Engine
}

func (suite *BillingPlanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlanSv = mocks.NewMockBillingPlanServiceInterface(suite.ctrl)
	suite.handler = handlers.NewBillingPlanHandler(suite.mockPlanSv)

	suite.router = gin.New()
	suite.router.GET("/billing-plans", suite.handler.ListBillingPlans)
	suite.router.GET("/billing-plans/names", suite.handler.ListPlanNames)
	suite.router.GET("/billing-plans/:plan_name", suite.handler.GetBillingPlan)
	suite.router.GET("/feature-options", suite.handler.ListFeatureOptions)
}

func (suite *BillingPlanHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BillingPlanHandlerTestSuite) TestListBillingPlans_Success() {
	plans := []models.BillingPlan{
		{PlanName: "Essential", TermLength: "Month to Month"},
		{PlanName: "Professional", TermLength: "1 Year"},
	}
	suite.mockPlanSv.EXPECT().List().Return(plans, nil)

	req := httptest.NewRequest(http.MethodGet, "/billing-plans", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []models.BillingPlan
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 2)
}

func (suite *BillingPlanHandlerTestSuite) TestGetBillingPlan_DefaultTerm() {
	plan := &models.BillingPlan{PlanName: "Professional", TermLength: "Month to Month"}
	suite.mockPlanSv.EXPECT().Get("Professional", "Month to Month").Return(plan, nil)

	req := httptest.NewRequest(http.MethodGet, "/billing-plans/Professional", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BillingPlanHandlerTestSuite) TestGetBillingPlan_ExplicitTerm() {
	plan := &models.BillingPlan{PlanName: "Professional", TermLength: "1 Year"}
	suite.mockPlanSv.EXPECT().Get("Professional", "1 Year").Return(plan, nil)

	req := httptest.NewRequest(http.MethodGet, "/billing-plans/Professional?term_length=1+Year", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BillingPlanHandlerTestSuite) TestGetBillingPlan_NotFound() {
	suite.mockPlanSv.EXPECT().Get("Fancy", "Month to Month").Return(nil, apperrors.ErrBillingPlanNotFound)

	req := httptest.NewRequest(http.MethodGet, "/billing-plans/Fancy", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *BillingPlanHandlerTestSuite) TestListPlanNames_Success() {
	suite.mockPlanSv.EXPECT().PlanNames().Return([]string{"Complete", "Essential", "Professional"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/billing-plans/names", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `["Complete","Essential","Professional"]`, w.Body.String())
}

func (suite *BillingPlanHandlerTestSuite) TestListFeatureOptions_FilteredByType() {
	options := []models.FeatureOption{
		{FeatureType: "email", DisplayName: "Microsoft 365"},
		{FeatureType: "email", DisplayName: "Google Workspace"},
	}
	suite.mockPlanSv.EXPECT().FeatureOptions("email").Return(options, nil)

	req := httptest.NewRequest(http.MethodGet, "/feature-options?type=email", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []models.FeatureOption
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 2)
}

func TestBillingPlanHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BillingPlanHandlerTestSuite))
}

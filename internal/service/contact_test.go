package service_test

import (
	"encoding/json"
	"testing"

	"nexus-hub-backend/internal/database/models"
	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/mocks"
	"nexus-hub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ContactServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockContactRepo *mocks.MockContactRepositoryInterface
	contactService  *service.ContactService
	validator       *validator.Validate
}

func (suite *ContactServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContactRepo = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.contactService = service.NewContactService(suite.mockContactRepo, suite.validator)
}

func (suite *ContactServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func storedContact(id uint, email string, accountNumbers ...string) *models.Contact {
	companies := make([]models.Company, 0, len(accountNumbers))
	for _, accountNumber := range accountNumbers {
		companies = append(companies, models.Company{AccountNumber: accountNumber})
	}
	return &models.Contact{
		ID:              id,
		Name:            "Alice Example",
		Email:           email,
		SecondaryEmails: json.RawMessage(`[]`),
		Companies:       companies,
	}
}

func (suite *ContactServiceTestSuite) TestCreateContact_Success() {
	req := &service.UpsertContactRequest{
		Name:                  "Alice Example",
		Email:                 "alice@acme.com",
		CompanyAccountNumbers: []string{"ACC100"},
	}

	suite.mockContactRepo.EXPECT().GetByEmail("alice@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockContactRepo.EXPECT().Create(gomock.Any(), []string{"ACC100"}).DoAndReturn(
		func(contact *models.Contact, accountNumbers []string) error {
			assert.Equal(suite.T(), "alice@acme.com", contact.Email)
			contact.ID = 7
			return nil
		})
	suite.mockContactRepo.EXPECT().GetByID(uint(7)).Return(storedContact(7, "alice@acme.com", "ACC100"), nil)

	resp, err := suite.contactService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(7), resp.ID)
	assert.Equal(suite.T(), []string{"ACC100"}, resp.CompanyAccountNumbers)
}

func (suite *ContactServiceTestSuite) TestCreateContact_DuplicateEmail() {
	req := &service.UpsertContactRequest{Name: "Alice Example", Email: "alice@acme.com"}

	suite.mockContactRepo.EXPECT().GetByEmail("alice@acme.com").Return(storedContact(7, "alice@acme.com"), nil)

	resp, err := suite.contactService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrContactExists)
}

func (suite *ContactServiceTestSuite) TestCreateContact_InvalidEmail() {
	req := &service.UpsertContactRequest{Name: "Alice Example", Email: "not-an-email"}

	resp, err := suite.contactService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *ContactServiceTestSuite) TestUpdateContact_ReplacesAssociationSet() {
	req := &service.UpsertContactRequest{
		Name:                  "Alice Example",
		Email:                 "alice@acme.com",
		CompanyAccountNumbers: []string{"ACC100", "ACC200"},
	}

	suite.mockContactRepo.EXPECT().GetByID(uint(7)).Return(storedContact(7, "alice@acme.com", "ACC100"), nil)
	suite.mockContactRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockContactRepo.EXPECT().ReplaceCompanies(gomock.Any(), []string{"ACC100", "ACC200"}).Return(nil)
	suite.mockContactRepo.EXPECT().GetByID(uint(7)).Return(storedContact(7, "alice@acme.com", "ACC100", "ACC200"), nil)

	resp, err := suite.contactService.Update(7, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"ACC100", "ACC200"}, resp.CompanyAccountNumbers)
}

func (suite *ContactServiceTestSuite) TestUpdateContact_NilSetLeavesAssociationsAlone() {
	req := &service.UpsertContactRequest{Name: "Alice Example", Email: "alice@acme.com"}

	suite.mockContactRepo.EXPECT().GetByID(uint(7)).Return(storedContact(7, "alice@acme.com", "ACC100"), nil)
	suite.mockContactRepo.EXPECT().Update(gomock.Any()).Return(nil)
	// No ReplaceCompanies call expected
	suite.mockContactRepo.EXPECT().GetByID(uint(7)).Return(storedContact(7, "alice@acme.com", "ACC100"), nil)

	resp, err := suite.contactService.Update(7, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"ACC100"}, resp.CompanyAccountNumbers)
}

func (suite *ContactServiceTestSuite) TestUpdateContact_NotFound() {
	req := &service.UpsertContactRequest{Name: "Alice Example", Email: "alice@acme.com"}

	suite.mockContactRepo.EXPECT().GetByID(uint(404)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.contactService.Update(404, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrContactNotFound)
}

func (suite *ContactServiceTestSuite) TestFindByEmail_Found() {
	suite.mockContactRepo.EXPECT().GetByEmail("alice@acme.com").Return(storedContact(7, "alice@acme.com", "ACC100"), nil)

	resp, err := suite.contactService.FindByEmail("alice@acme.com")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), uint(7), resp.ID)
}

func (suite *ContactServiceTestSuite) TestFindByEmail_AbsentIsNotAnError() {
	suite.mockContactRepo.EXPECT().GetByEmail("nobody@acme.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.contactService.FindByEmail("nobody@acme.com")

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp)
}

func (suite *ContactServiceTestSuite) TestList_Success() {
	contacts := []models.Contact{*storedContact(7, "alice@acme.com", "ACC100")}

	suite.mockContactRepo.EXPECT().GetAll("name", "asc", 20, 0).Return(contacts, int64(1), nil)

	resp, err := suite.contactService.List("name", "asc", 1, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Len(suite.T(), resp.Contacts, 1)
	assert.Equal(suite.T(), []string{"ACC100"}, resp.Contacts[0].CompanyAccountNumbers)
}

func (suite *ContactServiceTestSuite) TestList_InvalidPagination() {
	resp, err := suite.contactService.List("name", "asc", 1, 0)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPaginationParams)
}

func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}

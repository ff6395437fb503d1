//go:build integration
// +build integration

package repository

import (
	"testing"

	"nexus-hub-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ContactRepositoryTestSuite tests the ContactRepository
type ContactRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ContactRepository
	companyRepo   *CompanyRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ContactRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewContactRepository(suite.baseTestSuite.DB)
	suite.companyRepo = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ContactRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ContactRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ContactRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ContactRepositoryTestSuite) createCompany(accountNumber string, freshserviceID int64) {
	suite.NoError(suite.companyRepo.Create(suite.factories.Company.WithAccountNumber(accountNumber, freshserviceID)))
}

// TestCreate_WithAssociations tests creating a contact linked to companies
func (suite *ContactRepositoryTestSuite) TestCreate_WithAssociations() {
	suite.createCompany("ACC100", 1001)
	suite.createCompany("ACC200", 1002)

	contact := suite.factories.Contact.Create()
	err := suite.repo.Create(contact, []string{"ACC100", "ACC200"})
	suite.NoError(err)

	found, err := suite.repo.GetByID(contact.ID)
	suite.NoError(err)
	suite.ElementsMatch([]string{"ACC100", "ACC200"}, found.CompanyAccountNumbers())
}

// TestCreate_UnknownAccountNumbersIgnored tests that unresolvable account
// numbers are dropped instead of failing the insert
func (suite *ContactRepositoryTestSuite) TestCreate_UnknownAccountNumbersIgnored() {
	suite.createCompany("ACC100", 1001)

	contact := suite.factories.Contact.Create()
	err := suite.repo.Create(contact, []string{"ACC100", "ACC999"})
	suite.NoError(err)

	found, err := suite.repo.GetByID(contact.ID)
	suite.NoError(err)
	suite.Equal([]string{"ACC100"}, found.CompanyAccountNumbers())
}

// TestCreate_DuplicateEmail tests the unique email constraint
func (suite *ContactRepositoryTestSuite) TestCreate_DuplicateEmail() {
	contact := suite.factories.Contact.WithEmail("alice@acme.com", 5001)
	suite.NoError(suite.repo.Create(contact, nil))

	duplicate := suite.factories.Contact.WithEmail("alice@acme.com", 5002)
	err := suite.repo.Create(duplicate, nil)
	suite.Error(err)
}

// TestGetByEmail tests lookup by primary email
func (suite *ContactRepositoryTestSuite) TestGetByEmail() {
	suite.createCompany("ACC100", 1001)
	contact := suite.factories.Contact.WithEmail("alice@acme.com", 5001)
	suite.NoError(suite.repo.Create(contact, []string{"ACC100"}))

	found, err := suite.repo.GetByEmail("alice@acme.com")
	suite.NoError(err)
	suite.Equal(contact.ID, found.ID)
	suite.Equal([]string{"ACC100"}, found.CompanyAccountNumbers())

	_, err = suite.repo.GetByEmail("nobody@acme.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByFreshserviceID tests lookup by the external back-reference
func (suite *ContactRepositoryTestSuite) TestGetByFreshserviceID() {
	contact := suite.factories.Contact.WithEmail("alice@acme.com", 5007)
	suite.NoError(suite.repo.Create(contact, nil))

	found, err := suite.repo.GetByFreshserviceID(5007)
	suite.NoError(err)
	suite.Equal("alice@acme.com", found.Email)
}

// TestReplaceCompanies tests that the association set is replaced wholesale
func (suite *ContactRepositoryTestSuite) TestReplaceCompanies() {
	suite.createCompany("ACC100", 1001)
	suite.createCompany("ACC200", 1002)
	suite.createCompany("ACC300", 1003)

	contact := suite.factories.Contact.Create()
	suite.NoError(suite.repo.Create(contact, []string{"ACC100"}))

	// The union computed by sync lands here as the full new set
	err := suite.repo.ReplaceCompanies(contact, []string{"ACC100", "ACC200", "ACC300"})
	suite.NoError(err)

	found, err := suite.repo.GetByID(contact.ID)
	suite.NoError(err)
	suite.ElementsMatch([]string{"ACC100", "ACC200", "ACC300"}, found.CompanyAccountNumbers())
}

// TestReplaceCompanies_Idempotent tests that re-applying the same set does
// not duplicate join rows
func (suite *ContactRepositoryTestSuite) TestReplaceCompanies_Idempotent() {
	suite.createCompany("ACC100", 1001)

	contact := suite.factories.Contact.Create()
	suite.NoError(suite.repo.Create(contact, []string{"ACC100"}))
	suite.NoError(suite.repo.ReplaceCompanies(contact, []string{"ACC100"}))
	suite.NoError(suite.repo.ReplaceCompanies(contact, []string{"ACC100"}))

	found, err := suite.repo.GetByID(contact.ID)
	suite.NoError(err)
	suite.Equal([]string{"ACC100"}, found.CompanyAccountNumbers())
}

// TestUpdate_DoesNotTouchAssociations tests that a scalar update leaves the
// association set alone
func (suite *ContactRepositoryTestSuite) TestUpdate_DoesNotTouchAssociations() {
	suite.createCompany("ACC100", 1001)

	contact := suite.factories.Contact.Create()
	suite.NoError(suite.repo.Create(contact, []string{"ACC100"}))

	contact.Title = "CTO"
	contact.Companies = nil
	suite.NoError(suite.repo.Update(contact))

	found, err := suite.repo.GetByID(contact.ID)
	suite.NoError(err)
	suite.Equal("CTO", found.Title)
	suite.Equal([]string{"ACC100"}, found.CompanyAccountNumbers())
}

// TestGetAll tests sorting and pagination
func (suite *ContactRepositoryTestSuite) TestGetAll() {
	alice := suite.factories.Contact.WithEmail("alice@acme.com", 5001)
	alice.Name = "Alice"
	suite.NoError(suite.repo.Create(alice, nil))

	bob := suite.factories.Contact.WithEmail("bob@acme.com", 5002)
	bob.Name = "Bob"
	suite.NoError(suite.repo.Create(bob, nil))

	contacts, total, err := suite.repo.GetAll("name", "desc", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal("Bob", contacts[0].Name)

	contacts, total, err = suite.repo.GetAll("name", "asc", 1, 1)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(contacts, 1)
	suite.Equal("Bob", contacts[0].Name)
}

func TestContactRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContactRepositoryTestSuite))
}

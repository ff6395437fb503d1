//go:build integration
// +build integration

package repository

import (
	"testing"

	"nexus-hub-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CompanyRepositoryTestSuite tests the CompanyRepository
type CompanyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CompanyRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CompanyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CompanyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CompanyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CompanyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new company
func (suite *CompanyRepositoryTestSuite) TestCreate() {
	company := suite.factories.Company.Create()

	err := suite.repo.Create(company)
	suite.NoError(err)

	found, err := suite.repo.GetByAccountNumber(company.AccountNumber)
	suite.NoError(err)
	suite.Equal(company.Name, found.Name)
	suite.Equal(*company.FreshserviceID, *found.FreshserviceID)
}

// TestCreate_DuplicateAccountNumber tests the primary key constraint
func (suite *CompanyRepositoryTestSuite) TestCreate_DuplicateAccountNumber() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.repo.Create(company))

	duplicate := suite.factories.Company.WithAccountNumber(company.AccountNumber, 9999)
	err := suite.repo.Create(duplicate)
	suite.Error(err)
}

// TestGetByAccountNumber_NotFound tests retrieval of a missing company
func (suite *CompanyRepositoryTestSuite) TestGetByAccountNumber_NotFound() {
	_, err := suite.repo.GetByAccountNumber("ACC404")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByFreshserviceID tests lookup by the external back-reference
func (suite *CompanyRepositoryTestSuite) TestGetByFreshserviceID() {
	company := suite.factories.Company.WithAccountNumber("ACC300", 3003)
	suite.NoError(suite.repo.Create(company))

	found, err := suite.repo.GetByFreshserviceID(3003)
	suite.NoError(err)
	suite.Equal("ACC300", found.AccountNumber)
}

// TestGetAll tests pagination
func (suite *CompanyRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.Company.WithAccountNumber("ACC100", 1001)))
	suite.NoError(suite.repo.Create(suite.factories.Company.WithAccountNumber("ACC200", 1002)))
	suite.NoError(suite.repo.Create(suite.factories.Company.WithAccountNumber("ACC300", 1003)))

	companies, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(companies, 2)
	suite.Equal("ACC100", companies[0].AccountNumber)

	companies, total, err = suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(companies, 1)
	suite.Equal("ACC300", companies[0].AccountNumber)
}

// TestSearch tests free-text matching on name and account number
func (suite *CompanyRepositoryTestSuite) TestSearch() {
	acme := suite.factories.Company.WithAccountNumber("ACC100", 1001)
	acme.Name = "Acme Corp"
	suite.NoError(suite.repo.Create(acme))

	globex := suite.factories.Company.WithAccountNumber("ACC200", 1002)
	globex.Name = "Globex"
	suite.NoError(suite.repo.Create(globex))

	companies, total, err := suite.repo.Search("acme", "name", "asc", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Acme Corp", companies[0].Name)

	// Account number matches too
	companies, total, err = suite.repo.Search("ACC2", "name", "asc", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Globex", companies[0].Name)
}

// TestSearch_SortOrder tests descending sort and the sort column allow-list
func (suite *CompanyRepositoryTestSuite) TestSearch_SortOrder() {
	a := suite.factories.Company.WithAccountNumber("ACC100", 1001)
	a.Name = "Alpha"
	suite.NoError(suite.repo.Create(a))

	b := suite.factories.Company.WithAccountNumber("ACC200", 1002)
	b.Name = "Beta"
	suite.NoError(suite.repo.Create(b))

	companies, _, err := suite.repo.Search("", "name", "desc", 10, 0)
	suite.NoError(err)
	suite.Equal("Beta", companies[0].Name)

	// An unknown sort column falls back to name ascending instead of
	// reaching the database
	companies, _, err = suite.repo.Search("", "password_hash; drop table companies", "asc", 10, 0)
	suite.NoError(err)
	suite.Equal("Alpha", companies[0].Name)
}

// TestUpdate tests overwriting company fields
func (suite *CompanyRepositoryTestSuite) TestUpdate() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.repo.Create(company))

	company.Name = "Renamed Corp"
	company.Description = "Updated"
	suite.NoError(suite.repo.Update(company))

	found, err := suite.repo.GetByAccountNumber(company.AccountNumber)
	suite.NoError(err)
	suite.Equal("Renamed Corp", found.Name)
	suite.Equal("Updated", found.Description)
}

// TestUpdateFields tests the column-level patch path
func (suite *CompanyRepositoryTestSuite) TestUpdateFields() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.repo.Create(company))

	err := suite.repo.UpdateFields(company.AccountNumber, map[string]interface{}{
		"billing_plan":  "Professional",
		"email_system":  "Microsoft 365",
	})
	suite.NoError(err)

	found, err := suite.repo.GetByAccountNumber(company.AccountNumber)
	suite.NoError(err)
	suite.Equal("Professional", found.BillingPlan)
	suite.Equal("Microsoft 365", found.EmailSystem)
	// Untouched columns survive
	suite.Equal(company.Name, found.Name)
}

// TestGetWithLocations tests the locations preload
func (suite *CompanyRepositoryTestSuite) TestGetWithLocations() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.repo.Create(company))

	location := suite.factories.Location.Create(company.AccountNumber)
	suite.NoError(suite.baseTestSuite.DB.Create(location).Error)

	found, err := suite.repo.GetWithLocations(company.AccountNumber)
	suite.NoError(err)
	suite.Len(found.Locations, 1)
	suite.Equal(location.Name, found.Locations[0].Name)
}

func TestCompanyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyRepositoryTestSuite))
}

//go:build integration
// +build integration

package repository

import (
	"testing"

	"nexus-hub-backend/internal/database/models"
	"nexus-hub-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LocationRepositoryTestSuite tests the LocationRepository
type LocationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LocationRepository
	companyRepo   *CompanyRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *LocationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewLocationRepository(suite.baseTestSuite.DB)
	suite.companyRepo = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *LocationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LocationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.NoError(suite.companyRepo.Create(suite.factories.Company.WithAccountNumber("ACC100", 1001)))
}

// TearDownTest runs after each test
func (suite *LocationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a location for a company
func (suite *LocationRepositoryTestSuite) TestCreate() {
	location := suite.factories.Location.WithName("ACC100", "Warehouse")

	suite.NoError(suite.repo.Create(location))

	found, err := suite.repo.GetByID(location.ID)
	suite.NoError(err)
	suite.Equal("Warehouse", found.Name)
	suite.Equal("ACC100", found.CompanyAccountNumber)
}

// TestGetByCompany tests listing a company's locations
func (suite *LocationRepositoryTestSuite) TestGetByCompany() {
	suite.NoError(suite.repo.Create(suite.factories.Location.WithName("ACC100", "Main Office")))
	suite.NoError(suite.repo.Create(suite.factories.Location.WithName("ACC100", "Warehouse")))

	locations, err := suite.repo.GetByCompany("ACC100")
	suite.NoError(err)
	suite.Len(locations, 2)
}

// TestGetByCompanyAndName tests the name-scoped lookup
func (suite *LocationRepositoryTestSuite) TestGetByCompanyAndName() {
	suite.NoError(suite.repo.Create(suite.factories.Location.WithName("ACC100", "Warehouse")))

	found, err := suite.repo.GetByCompanyAndName("ACC100", "Warehouse")
	suite.NoError(err)
	suite.Equal("Warehouse", found.Name)

	_, err = suite.repo.GetByCompanyAndName("ACC100", "Garage")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpsertMainOffice_CreatesWhenAbsent tests the create branch
func (suite *LocationRepositoryTestSuite) TestUpsertMainOffice_CreatesWhenAbsent() {
	location, err := suite.repo.UpsertMainOffice("ACC100", "1 Main St", "555-0100")
	suite.NoError(err)
	suite.Equal(models.MainOfficeName, location.Name)
	suite.Equal("1 Main St", location.Address)

	locations, err := suite.repo.GetByCompany("ACC100")
	suite.NoError(err)
	suite.Len(locations, 1)
}

// TestUpsertMainOffice_OverwritesWhenPresent tests idempotence: repeated
// upserts keep exactly one Main Office row with the latest values
func (suite *LocationRepositoryTestSuite) TestUpsertMainOffice_OverwritesWhenPresent() {
	_, err := suite.repo.UpsertMainOffice("ACC100", "1 Main St", "555-0100")
	suite.NoError(err)

	location, err := suite.repo.UpsertMainOffice("ACC100", "2 New Ave", "555-0200")
	suite.NoError(err)
	suite.Equal("2 New Ave", location.Address)
	suite.Equal("555-0200", location.PhoneNumber)

	locations, err := suite.repo.GetByCompany("ACC100")
	suite.NoError(err)
	suite.Len(locations, 1)
	suite.Equal("2 New Ave", locations[0].Address)
}

// TestDelete tests removing a location
func (suite *LocationRepositoryTestSuite) TestDelete() {
	location := suite.factories.Location.WithName("ACC100", "Warehouse")
	suite.NoError(suite.repo.Create(location))

	suite.NoError(suite.repo.Delete(location.ID))

	_, err := suite.repo.GetByID(location.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestLocationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryTestSuite))
}

package sync_test

import (
	"testing"

	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/service"
	"nexus-hub-backend/internal/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// fakeNexusAPI is an in-memory stand-in for the resource API so reconciler
// behavior can be asserted against resulting state, not call sequences.
type fakeNexusAPI struct {
	companies map[string]*sync.CompanyRecord
	contacts  map[uint]*sync.ContactRecord
	locations map[string]string // account number -> main office address

	nextContactID uint

	failCreateCompany error
	failUpdateContact error

	createCompanyCalls int
	updateCompanyCalls int
	createContactCalls int
	updateContactCalls int
}

func newFakeNexusAPI() *fakeNexusAPI {
	return &fakeNexusAPI{
		companies:     make(map[string]*sync.CompanyRecord),
		contacts:      make(map[uint]*sync.ContactRecord),
		locations:     make(map[string]string),
		nextContactID: 1,
	}
}

func (f *fakeNexusAPI) GetCompany(accountNumber string) (*sync.CompanyRecord, error) {
	record, ok := f.companies[accountNumber]
	if !ok {
		return nil, apperrors.ErrCompanyNotFound
	}
	copied := *record
	return &copied, nil
}

func (f *fakeNexusAPI) CreateCompany(record *sync.CompanyRecord) error {
	f.createCompanyCalls++
	if f.failCreateCompany != nil {
		return f.failCreateCompany
	}
	copied := *record
	f.companies[record.AccountNumber] = &copied
	return nil
}

func (f *fakeNexusAPI) UpdateCompany(record *sync.CompanyRecord) error {
	f.updateCompanyCalls++
	copied := *record
	f.companies[record.AccountNumber] = &copied
	return nil
}

func (f *fakeNexusAPI) FindContactByEmail(email string) (*sync.ContactRecord, error) {
	for _, contact := range f.contacts {
		if contact.Email == email {
			// The probe returns summary fields only, no association set
			return &sync.ContactRecord{ID: contact.ID, Name: contact.Name, Email: contact.Email}, nil
		}
	}
	return nil, nil
}

func (f *fakeNexusAPI) GetContact(id uint) (*sync.ContactRecord, error) {
	contact, ok := f.contacts[id]
	if !ok {
		return nil, apperrors.ErrContactNotFound
	}
	copied := *contact
	copied.CompanyAccountNumbers = append([]string(nil), contact.CompanyAccountNumbers...)
	return &copied, nil
}

func (f *fakeNexusAPI) CreateContact(record *sync.ContactRecord) error {
	f.createContactCalls++
	copied := *record
	copied.ID = f.nextContactID
	f.nextContactID++
	copied.CompanyAccountNumbers = append([]string(nil), record.CompanyAccountNumbers...)
	f.contacts[copied.ID] = &copied
	return nil
}

func (f *fakeNexusAPI) UpdateContact(record *sync.ContactRecord) error {
	f.updateContactCalls++
	if f.failUpdateContact != nil {
		return f.failUpdateContact
	}
	copied := *record
	copied.CompanyAccountNumbers = append([]string(nil), record.CompanyAccountNumbers...)
	f.contacts[record.ID] = &copied
	return nil
}

func (f *fakeNexusAPI) UpsertMainOfficeLocation(accountNumber, address, phone string) error {
	f.locations[accountNumber] = address
	return nil
}

type ReconcilerTestSuite struct {
	suite.Suite
	api        *fakeNexusAPI
	reconciler *sync.Reconciler
}

func (suite *ReconcilerTestSuite) SetupTest() {
	suite.api = newFakeNexusAPI()
	suite.reconciler = sync.NewReconciler(suite.api)
}

func fsCompany(id int64, name, accountNumber string) service.FreshserviceCompany {
	return service.FreshserviceCompany{
		ID:   id,
		Name: name,
		CustomFields: service.FreshserviceCustomFields{
			AccountNumber: accountNumber,
		},
	}
}

func fsUser(id int64, email string, departmentIDs ...int64) service.FreshserviceUser {
	return service.FreshserviceUser{
		ID:            id,
		FirstName:     "Test",
		LastName:      "User",
		PrimaryEmail:  email,
		DepartmentIDs: departmentIDs,
	}
}

func (suite *ReconcilerTestSuite) TestRun_CreatesNewCompanies() {
	companies := []service.FreshserviceCompany{
		fsCompany(1001, "Acme Corp", "ACC100"),
		fsCompany(1002, "Globex", "ACC200"),
	}

	summary, err := suite.reconciler.Run(companies, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, summary.CompaniesCreated)
	assert.Equal(suite.T(), 0, summary.CompaniesUpdated)
	assert.Equal(suite.T(), 0, summary.CompaniesSkipped)
	assert.Contains(suite.T(), suite.api.companies, "ACC100")
	assert.Contains(suite.T(), suite.api.companies, "ACC200")
	assert.Equal(suite.T(), "Acme Corp", suite.api.companies["ACC100"].Name)
}

func (suite *ReconcilerTestSuite) TestRun_UpdatesExistingCompany() {
	suite.api.companies["ACC100"] = &sync.CompanyRecord{AccountNumber: "ACC100", Name: "Old Name"}

	summary, err := suite.reconciler.Run([]service.FreshserviceCompany{
		fsCompany(1001, "New Name", "ACC100"),
	}, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, summary.CompaniesCreated)
	assert.Equal(suite.T(), 1, summary.CompaniesUpdated)
	assert.Equal(suite.T(), "New Name", suite.api.companies["ACC100"].Name)
}

func (suite *ReconcilerTestSuite) TestRun_SkipsCompanyWithoutAccountNumber() {
	companies := []service.FreshserviceCompany{
		fsCompany(1001, "Mappable", "ACC100"),
		fsCompany(1002, "Unmappable", ""),
	}
	// A user in the unmappable department must not pick up any association
	users := []service.FreshserviceUser{
		fsUser(5001, "alice@acme.com", 1001, 1002),
	}

	summary, err := suite.reconciler.Run(companies, users)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, summary.CompaniesCreated)
	assert.Equal(suite.T(), 1, summary.CompaniesSkipped)
	assert.NotContains(suite.T(), suite.api.companies, "")

	contact, _ := suite.api.FindContactByEmail("alice@acme.com")
	full, _ := suite.api.GetContact(contact.ID)
	assert.Equal(suite.T(), []string{"ACC100"}, full.CompanyAccountNumbers)
}

func (suite *ReconcilerTestSuite) TestRun_SyncsMainOfficeLocation() {
	company := fsCompany(1001, "Acme Corp", "ACC100")
	company.CustomFields.Address = "1 Main St"
	company.CustomFields.CompanyMainNumber = "555-0100"

	summary, err := suite.reconciler.Run([]service.FreshserviceCompany{company}, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, summary.LocationsSynced)
	assert.Equal(suite.T(), "1 Main St", suite.api.locations["ACC100"])
}

func (suite *ReconcilerTestSuite) TestRun_NoLocationWithoutAddress() {
	summary, err := suite.reconciler.Run([]service.FreshserviceCompany{
		fsCompany(1001, "Acme Corp", "ACC100"),
	}, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, summary.LocationsSynced)
	assert.Empty(suite.T(), suite.api.locations)
}

func (suite *ReconcilerTestSuite) TestRun_CreatesContactWithResolvedCompanies() {
	companies := []service.FreshserviceCompany{
		fsCompany(1001, "Acme Corp", "ACC100"),
		fsCompany(1002, "Globex", "ACC200"),
	}
	users := []service.FreshserviceUser{
		fsUser(5001, "alice@acme.com", 1001, 1002),
	}

	summary, err := suite.reconciler.Run(companies, users)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, summary.ContactsCreated)
	assert.Equal(suite.T(), 0, summary.ContactsUpdated)

	probe, _ := suite.api.FindContactByEmail("alice@acme.com")
	full, _ := suite.api.GetContact(probe.ID)
	assert.Equal(suite.T(), []string{"ACC100", "ACC200"}, full.CompanyAccountNumbers)
}

func (suite *ReconcilerTestSuite) TestRun_SkipsContactWithoutEmail() {
	users := []service.FreshserviceUser{
		fsUser(5001, ""),
	}

	summary, err := suite.reconciler.Run(nil, users)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, summary.ContactsSkipped)
	assert.Equal(suite.T(), 0, suite.api.createContactCalls)
}

func (suite *ReconcilerTestSuite) TestRun_UnionMergesContactCompanies() {
	// Existing contact already associated with A and C; the incoming batch
	// resolves B and C. The result must be the union {A, B, C}.
	suite.api.contacts[7] = &sync.ContactRecord{
		ID:                    7,
		Name:                  "Alice Example",
		Email:                 "alice@acme.com",
		CompanyAccountNumbers: []string{"ACC-A", "ACC-C"},
	}
	suite.api.nextContactID = 8

	companies := []service.FreshserviceCompany{
		fsCompany(1002, "Company B", "ACC-B"),
		fsCompany(1003, "Company C", "ACC-C"),
	}
	users := []service.FreshserviceUser{
		fsUser(5001, "alice@acme.com", 1002, 1003),
	}

	summary, err := suite.reconciler.Run(companies, users)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, summary.ContactsUpdated)
	assert.Equal(suite.T(), []string{"ACC-A", "ACC-B", "ACC-C"}, suite.api.contacts[7].CompanyAccountNumbers)
}

func (suite *ReconcilerTestSuite) TestRun_Idempotent() {
	companies := []service.FreshserviceCompany{
		fsCompany(1001, "Acme Corp", "ACC100"),
	}
	users := []service.FreshserviceUser{
		fsUser(5001, "alice@acme.com", 1001),
	}

	first, err := suite.reconciler.Run(companies, users)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, first.CompaniesCreated)
	assert.Equal(suite.T(), 1, first.ContactsCreated)

	second, err := suite.reconciler.Run(companies, users)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, second.CompaniesCreated)
	assert.Equal(suite.T(), 1, second.CompaniesUpdated)
	assert.Equal(suite.T(), 0, second.ContactsCreated)
	assert.Equal(suite.T(), 1, second.ContactsUpdated)

	// Re-running must not duplicate the association
	probe, _ := suite.api.FindContactByEmail("alice@acme.com")
	full, _ := suite.api.GetContact(probe.ID)
	assert.Equal(suite.T(), []string{"ACC100"}, full.CompanyAccountNumbers)
}

func (suite *ReconcilerTestSuite) TestRun_AbortsOnWriteFailureByDefault() {
	suite.api.failCreateCompany = apperrors.NewWriteError("create company", 500, "boom")

	companies := []service.FreshserviceCompany{
		fsCompany(1001, "First", "ACC100"),
		fsCompany(1002, "Second", "ACC200"),
	}

	summary, err := suite.reconciler.Run(companies, nil)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsWriteError(err))
	assert.Equal(suite.T(), 1, summary.RecordsFailed)
	// The batch stopped at the first failure
	assert.Equal(suite.T(), 1, suite.api.createCompanyCalls)
}

func (suite *ReconcilerTestSuite) TestRun_ContinueOnErrorProcessesRemainingRecords() {
	suite.api.failCreateCompany = apperrors.NewWriteError("create company", 500, "boom")
	suite.reconciler.ContinueOnError = true

	companies := []service.FreshserviceCompany{
		fsCompany(1001, "First", "ACC100"),
		fsCompany(1002, "Second", "ACC200"),
	}

	summary, err := suite.reconciler.Run(companies, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, summary.RecordsFailed)
	assert.Equal(suite.T(), 2, suite.api.createCompanyCalls)
}

func (suite *ReconcilerTestSuite) TestRun_ContactWriteFailureAbortsBatch() {
	suite.api.contacts[7] = &sync.ContactRecord{ID: 7, Name: "Alice", Email: "alice@acme.com"}
	suite.api.nextContactID = 8
	suite.api.failUpdateContact = apperrors.NewWriteError("update contact 7", 500, "boom")

	users := []service.FreshserviceUser{
		fsUser(5001, "alice@acme.com"),
		fsUser(5002, "bob@acme.com"),
	}

	summary, err := suite.reconciler.Run(nil, users)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), 1, summary.RecordsFailed)
	assert.Equal(suite.T(), 0, summary.ContactsUpdated)
	// bob was never reached
	assert.Equal(suite.T(), 0, suite.api.createContactCalls)
}

func TestReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

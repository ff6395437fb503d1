package sync_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	client *sync.Client
}

func (suite *ClientTestSuite) SetupTest() {
	suite.mux = http.NewServeMux()
	suite.server = httptest.NewServer(suite.mux)
	suite.client = sync.NewClient(suite.server.URL + "/api")
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *ClientTestSuite) handleToken(status int, body string) {
	suite.mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPost, r.Method)

		var creds map[string]string
		assert.NoError(suite.T(), json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(suite.T(), "sync-user", creds["username"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

func (suite *ClientTestSuite) TestAuthenticate_Success() {
	suite.handleToken(http.StatusOK, `{"token":"jwt-abc","token_type":"Bearer"}`)

	err := suite.client.Authenticate("sync-user", "secret")
	assert.NoError(suite.T(), err)

	// Subsequent calls carry the bearer token
	suite.mux.HandleFunc("/api/companies/ACC100", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), "Bearer jwt-abc", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"account_number":"ACC100","name":"Acme"}`))
	})

	company, err := suite.client.GetCompany("ACC100")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme", company.Name)
}

func (suite *ClientTestSuite) TestAuthenticate_EmptyToken() {
	suite.handleToken(http.StatusOK, `{"token":""}`)

	err := suite.client.Authenticate("sync-user", "secret")
	assert.ErrorIs(suite.T(), err, apperrors.ErrTokenMissing)
}

func (suite *ClientTestSuite) TestAuthenticate_Rejected() {
	suite.handleToken(http.StatusUnauthorized, `{"error":"invalid username or password"}`)

	err := suite.client.Authenticate("sync-user", "wrong")
	assert.True(suite.T(), apperrors.IsWriteError(err))
}

func (suite *ClientTestSuite) TestGetCompany_NotFound() {
	suite.mux.HandleFunc("/api/companies/ACC404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"company not found"}`))
	})

	company, err := suite.client.GetCompany("ACC404")
	assert.Nil(suite.T(), company)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyNotFound)
}

func (suite *ClientTestSuite) TestGetCompany_ServerError() {
	suite.mux.HandleFunc("/api/companies/ACC100", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := suite.client.GetCompany("ACC100")
	assert.NotErrorIs(suite.T(), err, apperrors.ErrCompanyNotFound)
	assert.True(suite.T(), apperrors.IsWriteError(err))
}

func (suite *ClientTestSuite) TestCreateCompany_SendsPayload() {
	var received sync.CompanyRecord
	suite.mux.HandleFunc("/api/companies", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPost, r.Method)
		assert.NoError(suite.T(), json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"account_number":"ACC100"}`))
	})

	fsID := int64(1001)
	err := suite.client.CreateCompany(&sync.CompanyRecord{
		AccountNumber:  "ACC100",
		Name:           "Acme",
		FreshserviceID: &fsID,
		Domains:        []string{"acme.com"},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ACC100", received.AccountNumber)
	assert.Equal(suite.T(), int64(1001), *received.FreshserviceID)
	assert.Equal(suite.T(), []string{"acme.com"}, received.Domains)
}

func (suite *ClientTestSuite) TestUpdateCompany_Rejected() {
	suite.mux.HandleFunc("/api/companies/ACC100", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPut, r.Method)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"account number in path and payload do not match"}`))
	})

	err := suite.client.UpdateCompany(&sync.CompanyRecord{AccountNumber: "ACC100"})

	var writeErr *apperrors.WriteError
	assert.ErrorAs(suite.T(), err, &writeErr)
	assert.Equal(suite.T(), http.StatusBadRequest, writeErr.Status)
	assert.Contains(suite.T(), writeErr.Body, "do not match")
}

func (suite *ClientTestSuite) TestFindContactByEmail_Found() {
	suite.mux.HandleFunc("/api/contacts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), "alice@acme.com", r.URL.Query().Get("email"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":7,"name":"Alice Example","email":"alice@acme.com","company_account_numbers":[]}]`))
	})

	contact, err := suite.client.FindContactByEmail("alice@acme.com")
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), contact)
	assert.Equal(suite.T(), uint(7), contact.ID)
}

func (suite *ClientTestSuite) TestFindContactByEmail_NotFound() {
	suite.mux.HandleFunc("/api/contacts", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	contact, err := suite.client.FindContactByEmail("nobody@acme.com")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), contact)
}

func (suite *ClientTestSuite) TestUpdateContact_SendsAssociationSet() {
	var received sync.ContactRecord
	suite.mux.HandleFunc("/api/contacts/7", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPut, r.Method)
		assert.NoError(suite.T(), json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"id":7}`))
	})

	err := suite.client.UpdateContact(&sync.ContactRecord{
		ID:                    7,
		Name:                  "Alice Example",
		Email:                 "alice@acme.com",
		CompanyAccountNumbers: []string{"ACC100", "ACC200"},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"ACC100", "ACC200"}, received.CompanyAccountNumbers)
}

func (suite *ClientTestSuite) TestUpsertMainOfficeLocation() {
	var received map[string]string
	suite.mux.HandleFunc("/api/companies/ACC100/locations/main", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPut, r.Method)
		assert.NoError(suite.T(), json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"id":1,"name":"Main Office"}`))
	})

	err := suite.client.UpsertMainOfficeLocation("ACC100", "1 Main St", "555-0100")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "1 Main St", received["address"])
	assert.Equal(suite.T(), "555-0100", received["phone_number"])
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

package sync

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "nexus-hub-backend/internal/errors"
)

// Client speaks to the Nexus resource API on behalf of the sync run. Every
// call after Authenticate carries the bearer token; a non-2xx response on a
// write surfaces as a WriteError so the reconciler can decide whether the
// batch continues.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Nexus API client for the given base URL, e.g.
// "https://127.0.0.1:5000/api".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// CompanyRecord mirrors the company payload of the Nexus API
type CompanyRecord struct {
	AccountNumber      string   `json:"account_number"`
	Name               string   `json:"name"`
	FreshserviceID     *int64   `json:"freshservice_id"`
	Description        string   `json:"description,omitempty"`
	PlanSelected       string   `json:"plan_selected,omitempty"`
	ProfitOrNonProfit  string   `json:"profit_or_non_profit,omitempty"`
	CompanyMainNumber  string   `json:"company_main_number,omitempty"`
	CompanyStartDate   string   `json:"company_start_date,omitempty"`
	HeadName           string   `json:"head_name,omitempty"`
	PrimaryContactName string   `json:"primary_contact_name,omitempty"`
	Domains            []string `json:"domains,omitempty"`
	Address            string   `json:"address,omitempty"`
}

// ContactRecord mirrors the contact payload of the Nexus API
type ContactRecord struct {
	ID                    uint     `json:"id,omitempty"`
	Name                  string   `json:"name"`
	Email                 string   `json:"email"`
	Title                 string   `json:"title,omitempty"`
	Active                *bool    `json:"active,omitempty"`
	MobilePhoneNumber     string   `json:"mobile_phone_number,omitempty"`
	WorkPhoneNumber       string   `json:"work_phone_number,omitempty"`
	SecondaryEmails       []string `json:"secondary_emails,omitempty"`
	FreshserviceID        *int64   `json:"freshservice_id,omitempty"`
	CompanyAccountNumbers []string `json:"company_account_numbers"`
}

// Authenticate exchanges credentials for a bearer token. The sync run cannot
// proceed without one; any failure here aborts the process.
func (c *Client) Authenticate(username, password string) error {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+"/token", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error authenticating with Nexus API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return apperrors.NewWriteError("nexus token request", resp.StatusCode, string(body))
	}

	var parsed tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("failed to decode token response: %w", err)
	}
	if parsed.Token == "" {
		return apperrors.ErrTokenMissing
	}

	c.token = parsed.Token
	return nil
}

// GetCompany fetches a company by account number. A 404 maps to
// ErrCompanyNotFound so the reconciler can branch create-or-update.
func (c *Client) GetCompany(accountNumber string) (*CompanyRecord, error) {
	var record CompanyRecord
	err := c.doJSON(http.MethodGet, "/companies/"+url.PathEscape(accountNumber), nil, &record)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, err
	}
	return &record, nil
}

// CreateCompany creates a company
func (c *Client) CreateCompany(record *CompanyRecord) error {
	return c.doJSON(http.MethodPost, "/companies", record, nil)
}

// UpdateCompany overwrites a company's denormalized fields
func (c *Client) UpdateCompany(record *CompanyRecord) error {
	return c.doJSON(http.MethodPut, "/companies/"+url.PathEscape(record.AccountNumber), record, nil)
}

// FindContactByEmail probes for a contact by primary email. Returns nil when
// no contact exists; the returned record carries only summary fields.
func (c *Client) FindContactByEmail(email string) (*ContactRecord, error) {
	values := url.Values{}
	values.Set("email", email)

	var contacts []ContactRecord
	if err := c.doJSON(http.MethodGet, "/contacts?"+values.Encode(), nil, &contacts); err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, nil
	}
	return &contacts[0], nil
}

// GetContact fetches a contact's full record including its association set
func (c *Client) GetContact(id uint) (*ContactRecord, error) {
	var record ContactRecord
	if err := c.doJSON(http.MethodGet, fmt.Sprintf("/contacts/%d", id), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateContact creates a contact with its initial association set
func (c *Client) CreateContact(record *ContactRecord) error {
	return c.doJSON(http.MethodPost, "/contacts", record, nil)
}

// UpdateContact overwrites a contact's fields and association set
func (c *Client) UpdateContact(record *ContactRecord) error {
	return c.doJSON(http.MethodPut, fmt.Sprintf("/contacts/%d", record.ID), record, nil)
}

// UpsertMainOfficeLocation ensures the company's "Main Office" location holds
// the given address and phone.
func (c *Client) UpsertMainOfficeLocation(accountNumber, address, phone string) error {
	payload := map[string]string{
		"address":      address,
		"phone_number": phone,
	}
	path := "/companies/" + url.PathEscape(accountNumber) + "/locations/main"
	return c.doJSON(http.MethodPut, path, payload, nil)
}

// doJSON performs a single authenticated JSON round trip. A non-2xx status
// yields a WriteError carrying the operation, status and body.
func (c *Client) doJSON(method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("nexus request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return apperrors.NewWriteError(fmt.Sprintf("%s %s", method, path), resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func isNotFound(err error) bool {
	var writeErr *apperrors.WriteError
	return errors.As(err, &writeErr) && writeErr.Status == http.StatusNotFound
}

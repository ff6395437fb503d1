package service

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nexus-hub-backend/internal/config"
	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/logger"
)

const (
	defaultPageSize          = 100
	defaultRateLimitWaitSecs = 5
)

// FreshserviceService fetches company and requester collections from the
// Freshservice API. Fetches are all-or-nothing: any failure other than a
// rate limit aborts the whole collection with no partial results.
type FreshserviceService struct {
	cfg        *config.Config
	httpClient *http.Client
	log        *logger.Logger

	// sleep is swapped out in tests to avoid real rate-limit waits
	sleep func(time.Duration)
}

// NewFreshserviceService creates a new Freshservice client
func NewFreshserviceService(cfg *config.Config) *FreshserviceService {
	return &FreshserviceService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.ForComponent("freshservice"),
		sleep:      time.Sleep,
	}
}

// FreshserviceCompany represents a department record from Freshservice
type FreshserviceCompany struct {
	ID            int64                    `json:"id"`
	Name          string                   `json:"name"`
	Description   string                   `json:"description"`
	Domains       []string                 `json:"domains"`
	HeadName      string                   `json:"head_name"`
	PrimeUserName string                   `json:"prime_user_name"`
	CustomFields  FreshserviceCustomFields `json:"custom_fields"`
}

// FreshserviceCustomFields carries the tenant-defined department fields.
// AccountNumber is the join key to local companies; records without one are
// unmappable and skipped by reconciliation.
type FreshserviceCustomFields struct {
	AccountNumber     string `json:"account_number"`
	Address           string `json:"address"`
	CompanyMainNumber string `json:"company_main_number"`
	PlanSelected      string `json:"plan_selected"`
	ProfitOrNonProfit string `json:"profit_or_non_profit"`
	CompanyStartDate  string `json:"company_start_date"`
}

// FreshserviceUser represents a requester record from Freshservice
type FreshserviceUser struct {
	ID                int64    `json:"id"`
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	PrimaryEmail      string   `json:"primary_email"`
	JobTitle          string   `json:"job_title"`
	Active            *bool    `json:"active"`
	MobilePhoneNumber string   `json:"mobile_phone_number"`
	WorkPhoneNumber   string   `json:"work_phone_number"`
	DepartmentIDs     []int64  `json:"department_ids"`
	SecondaryEmails   []string `json:"secondary_emails"`
}

// FullName joins the name parts the way the portal displays them.
func (u *FreshserviceUser) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type departmentsPage struct {
	Departments []FreshserviceCompany `json:"departments"`
}

type requestersPage struct {
	Requesters []FreshserviceUser `json:"requesters"`
}

// FetchAllCompanies pages through the departments collection until an empty
// page terminates the loop.
func (s *FreshserviceService) FetchAllCompanies() ([]FreshserviceCompany, error) {
	s.log.Info("Fetching companies from Freshservice")

	var all []FreshserviceCompany
	err := s.fetchAllPages("departments", func(body []byte) (int, error) {
		var page departmentsPage
		if err := json.Unmarshal(body, &page); err != nil {
			return 0, fmt.Errorf("failed to decode departments page: %w", err)
		}
		all = append(all, page.Departments...)
		return len(page.Departments), nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infof("Found %d companies in Freshservice", len(all))
	return all, nil
}

// FetchAllUsers pages through the requesters collection until an empty page
// terminates the loop.
func (s *FreshserviceService) FetchAllUsers() ([]FreshserviceUser, error) {
	s.log.Info("Fetching all users from Freshservice")

	var all []FreshserviceUser
	err := s.fetchAllPages("requesters", func(body []byte) (int, error) {
		var page requestersPage
		if err := json.Unmarshal(body, &page); err != nil {
			return 0, fmt.Errorf("failed to decode requesters page: %w", err)
		}
		all = append(all, page.Requesters...)
		return len(page.Requesters), nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infof("Found %d total users in Freshservice", len(all))
	return all, nil
}

// fetchAllPages walks a collection endpoint from page 1, handing each body to
// consume, which reports how many items the page held. A zero-item page ends
// the loop. HTTP 429 sleeps for the server-specified duration and retries the
// same page without advancing; any other failure aborts the whole fetch.
func (s *FreshserviceService) fetchAllPages(collection string, consume func(body []byte) (int, error)) error {
	base, err := s.baseURL()
	if err != nil {
		return err
	}

	pageSize := s.cfg.FreshservicePageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	for page := 1; ; page++ {
		values := url.Values{}
		values.Set("page", strconv.Itoa(page))
		values.Set("per_page", strconv.Itoa(pageSize))
		fullURL := fmt.Sprintf("%s/api/v2/%s?%s", base, collection, values.Encode())

		count, err := s.fetchPage(collection, page, fullURL, consume)
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
	}
}

// fetchPage requests a single page, retrying in place on HTTP 429 until the
// server lets it through. Returns the number of items the page held.
func (s *FreshserviceService) fetchPage(collection string, page int, fullURL string, consume func(body []byte) (int, error)) (int, error) {
	for {
		req, err := http.NewRequest(http.MethodGet, fullURL, nil)
		if err != nil {
			return 0, &apperrors.FetchError{Collection: collection, Page: page, Err: err}
		}
		req.Header.Set("Authorization", "Basic "+s.basicAuth())
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return 0, &apperrors.FetchError{Collection: collection, Page: page, Err: err}
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			wait := retryAfter(resp)
			resp.Body.Close()
			s.log.Warnf("Rate limit exceeded fetching %s, waiting %s", collection, wait)
			s.sleep(wait)
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return 0, &apperrors.FetchError{
				Collection: collection,
				Page:       page,
				Err:        fmt.Errorf("status=%d body=%s", resp.StatusCode, string(body)),
			}
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return 0, &apperrors.FetchError{Collection: collection, Page: page, Err: err}
		}

		count, err := consume(body)
		if err != nil {
			return 0, &apperrors.FetchError{Collection: collection, Page: page, Err: err}
		}
		return count, nil
	}
}

func (s *FreshserviceService) baseURL() (string, error) {
	if s.cfg.FreshserviceDomain == "" || s.cfg.FreshserviceAPIKey == "" {
		return "", apperrors.ErrFreshserviceConfigMissing
	}
	base := s.cfg.FreshserviceDomain
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	return strings.TrimRight(base, "/"), nil
}

// basicAuth builds the Freshservice credential: the API key as username with
// a literal "X" password.
func (s *FreshserviceService) basicAuth() string {
	return base64.StdEncoding.EncodeToString([]byte(s.cfg.FreshserviceAPIKey + ":X"))
}

// retryAfter reads the Retry-After header, defaulting to 5 seconds when the
// header is absent or unparseable.
func retryAfter(resp *http.Response) time.Duration {
	header := resp.Header.Get("Retry-After")
	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		secs = defaultRateLimitWaitSecs
	}
	return time.Duration(secs) * time.Second
}

package sync

import (
	"errors"
	"sort"

	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/logger"
	"nexus-hub-backend/internal/service"
)

// NexusAPI is the surface of the resource API the reconciler writes through.
type NexusAPI interface {
	GetCompany(accountNumber string) (*CompanyRecord, error)
	CreateCompany(record *CompanyRecord) error
	UpdateCompany(record *CompanyRecord) error
	FindContactByEmail(email string) (*ContactRecord, error)
	GetContact(id uint) (*ContactRecord, error)
	CreateContact(record *ContactRecord) error
	UpdateContact(record *ContactRecord) error
	UpsertMainOfficeLocation(accountNumber, address, phone string) error
}

// Summary reports what one reconciliation run did.
type Summary struct {
	CompaniesCreated int
	CompaniesUpdated int
	CompaniesSkipped int
	ContactsCreated  int
	ContactsUpdated  int
	ContactsSkipped  int
	LocationsSynced  int
	RecordsFailed    int
}

// Reconciler maps Freshservice records onto local resources. Companies are
// keyed by account number, contacts by primary email; a contact's company
// association set is merged by union, never replaced, so associations
// recorded outside the current batch survive every run.
type Reconciler struct {
	api NexusAPI
	log *logger.Logger

	// ContinueOnError switches write failures from batch-fatal (the observed
	// legacy behavior, and the default) to per-record log-and-continue.
	ContinueOnError bool
}

// NewReconciler creates a reconciler writing through the given API.
func NewReconciler(api NexusAPI) *Reconciler {
	return &Reconciler{
		api: api,
		log: logger.ForComponent("sync"),
	}
}

// Run reconciles both collections: companies first, which builds the
// freshservice id to account number lookup the contact phase resolves
// department ids through.
func (r *Reconciler) Run(companies []service.FreshserviceCompany, users []service.FreshserviceUser) (*Summary, error) {
	summary := &Summary{}

	lookup, err := r.reconcileCompanies(companies, summary)
	if err != nil {
		return summary, err
	}

	if err := r.reconcileContacts(users, lookup, summary); err != nil {
		return summary, err
	}

	r.log.WithFields(map[string]interface{}{
		"companies_created": summary.CompaniesCreated,
		"companies_updated": summary.CompaniesUpdated,
		"companies_skipped": summary.CompaniesSkipped,
		"contacts_created":  summary.ContactsCreated,
		"contacts_updated":  summary.ContactsUpdated,
		"contacts_skipped":  summary.ContactsSkipped,
		"locations_synced":  summary.LocationsSynced,
		"records_failed":    summary.RecordsFailed,
	}).Info("Reconciliation finished")

	return summary, nil
}

// reconcileCompanies upserts every mappable company and returns the
// freshservice id to account number lookup built along the way. The lookup
// is complete once this phase returns and is never mutated afterwards.
func (r *Reconciler) reconcileCompanies(companies []service.FreshserviceCompany, summary *Summary) (map[int64]string, error) {
	lookup := make(map[int64]string, len(companies))

	for i := range companies {
		company := &companies[i]
		accountNumber := company.CustomFields.AccountNumber
		if accountNumber == "" {
			r.log.Infof("Skipping company %q: no account number", company.Name)
			summary.CompaniesSkipped++
			continue
		}

		lookup[company.ID] = accountNumber

		if err := r.upsertCompany(company, accountNumber, summary); err != nil {
			summary.RecordsFailed++
			if !r.ContinueOnError {
				return nil, err
			}
			r.log.WithError(err).Errorf("Company %q failed, continuing", company.Name)
		}
	}

	r.log.Infof("Finished processing %d companies", len(companies))
	return lookup, nil
}

func (r *Reconciler) upsertCompany(company *service.FreshserviceCompany, accountNumber string, summary *Summary) error {
	fsID := company.ID
	record := &CompanyRecord{
		AccountNumber:      accountNumber,
		Name:               company.Name,
		FreshserviceID:     &fsID,
		Description:        company.Description,
		PlanSelected:       company.CustomFields.PlanSelected,
		ProfitOrNonProfit:  company.CustomFields.ProfitOrNonProfit,
		CompanyMainNumber:  company.CustomFields.CompanyMainNumber,
		CompanyStartDate:   company.CustomFields.CompanyStartDate,
		HeadName:           company.HeadName,
		PrimaryContactName: company.PrimeUserName,
		Domains:            company.Domains,
		Address:            company.CustomFields.Address,
	}

	_, err := r.api.GetCompany(accountNumber)
	switch {
	case errors.Is(err, apperrors.ErrCompanyNotFound):
		r.log.Infof("Creating new company: %s", company.Name)
		if err := r.api.CreateCompany(record); err != nil {
			return err
		}
		summary.CompaniesCreated++
	case err != nil:
		return err
	default:
		r.log.Infof("Updating existing company: %s", company.Name)
		if err := r.api.UpdateCompany(record); err != nil {
			return err
		}
		summary.CompaniesUpdated++
	}

	if company.CustomFields.Address != "" {
		if err := r.api.UpsertMainOfficeLocation(accountNumber, company.CustomFields.Address, company.CustomFields.CompanyMainNumber); err != nil {
			return err
		}
		summary.LocationsSynced++
		r.log.Infof("Synced %q location for %s", "Main Office", company.Name)
	}

	return nil
}

// reconcileContacts upserts every user with a primary email. Department ids
// resolve through the company lookup; unresolvable ids are dropped silently.
func (r *Reconciler) reconcileContacts(users []service.FreshserviceUser, lookup map[int64]string, summary *Summary) error {
	r.log.Info("Processing contacts")

	for i := range users {
		user := &users[i]
		if user.PrimaryEmail == "" {
			summary.ContactsSkipped++
			continue
		}

		resolved := resolveAccountNumbers(user.DepartmentIDs, lookup)

		if err := r.upsertContact(user, resolved, summary); err != nil {
			summary.RecordsFailed++
			if !r.ContinueOnError {
				return err
			}
			r.log.WithError(err).Errorf("Contact %q failed, continuing", user.PrimaryEmail)
		}
	}

	r.log.Infof("Finished processing %d contacts", len(users))
	return nil
}

func (r *Reconciler) upsertContact(user *service.FreshserviceUser, resolved map[string]bool, summary *Summary) error {
	fsID := user.ID
	record := &ContactRecord{
		Name:              user.FullName(),
		Email:             user.PrimaryEmail,
		Title:             user.JobTitle,
		Active:            user.Active,
		MobilePhoneNumber: user.MobilePhoneNumber,
		WorkPhoneNumber:   user.WorkPhoneNumber,
		SecondaryEmails:   user.SecondaryEmails,
		FreshserviceID:    &fsID,
	}

	existing, err := r.api.FindContactByEmail(user.PrimaryEmail)
	if err != nil {
		return err
	}

	if existing == nil {
		// Brand-new contact: the resolved set is the full association set
		record.CompanyAccountNumbers = sortedKeys(resolved)
		if err := r.api.CreateContact(record); err != nil {
			return err
		}
		summary.ContactsCreated++
		return nil
	}

	// The email probe only returns summary fields; fetch the full record to
	// learn the current association set before computing the union.
	detailed, err := r.api.GetContact(existing.ID)
	if err != nil {
		return err
	}

	union := make(map[string]bool, len(detailed.CompanyAccountNumbers)+len(resolved))
	for _, accountNumber := range detailed.CompanyAccountNumbers {
		union[accountNumber] = true
	}
	for accountNumber := range resolved {
		union[accountNumber] = true
	}

	record.ID = existing.ID
	record.CompanyAccountNumbers = sortedKeys(union)
	if err := r.api.UpdateContact(record); err != nil {
		return err
	}
	summary.ContactsUpdated++
	return nil
}

func resolveAccountNumbers(departmentIDs []int64, lookup map[int64]string) map[string]bool {
	resolved := make(map[string]bool, len(departmentIDs))
	for _, id := range departmentIDs {
		if accountNumber, ok := lookup[id]; ok {
			resolved[accountNumber] = true
		}
	}
	return resolved
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

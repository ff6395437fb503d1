package main

import (
	"os"

	"nexus-hub-backend/internal/config"
	"nexus-hub-backend/internal/service"
	"nexus-hub-backend/internal/sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// The sync command pulls companies and contacts from Freshservice and
// reconciles them into the hub through its own REST API. It is meant to run
// from cron; any failure exits non-zero so the scheduler can alert on it.
func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration:", err)
	}

	setupLogging(cfg.LogLevel)

	if err := config.ValidateSync(cfg); err != nil {
		logrus.Fatal("Sync configuration incomplete:", err)
	}

	logrus.Info("--- Starting Freshservice Sync ---")

	client := sync.NewClient(cfg.NexusAPIURL)
	if err := client.Authenticate(cfg.NexusUsername, cfg.NexusPassword); err != nil {
		logrus.WithError(err).Error("Authentication against the hub API failed")
		os.Exit(1)
	}

	freshservice := service.NewFreshserviceService(cfg)

	companies, err := freshservice.FetchAllCompanies()
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch companies from Freshservice")
		os.Exit(1)
	}
	logrus.Infof("Fetched %d companies from Freshservice", len(companies))

	users, err := freshservice.FetchAllUsers()
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch requesters from Freshservice")
		os.Exit(1)
	}
	logrus.Infof("Fetched %d requesters from Freshservice", len(users))

	reconciler := sync.NewReconciler(client)
	reconciler.ContinueOnError = cfg.SyncContinueOnError

	summary, err := reconciler.Run(companies, users)
	if err != nil {
		logrus.WithError(err).Error("Reconciliation aborted")
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"companies_created": summary.CompaniesCreated,
		"companies_updated": summary.CompaniesUpdated,
		"contacts_created":  summary.ContactsCreated,
		"contacts_updated":  summary.ContactsUpdated,
		"records_failed":    summary.RecordsFailed,
	}).Info("--- Freshservice Sync Complete ---")

	if summary.RecordsFailed > 0 {
		os.Exit(1)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

package main

import (
	"fmt"
	"log"

	"commitgate/internal/config"
	"commitgate/internal/handler"
	noopnotify "commitgate/internal/notify/noop"
	"commitgate/internal/notify/ses"
	"commitgate/internal/port"
	"commitgate/internal/repository/postgres"
	"commitgate/internal/router"
	"commitgate/internal/rules"
	"commitgate/internal/service"
	noopstorage "commitgate/internal/storage/noop"
	s3storage "commitgate/internal/storage/s3"
	"commitgate/internal/tracker/jira"
	"commitgate/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Load validation rules
	rulesProvider, err := rules.Load(cfg.Rules.File)
	if err != nil {
		return fmt.Errorf("failed to load rules: %w", err)
	}

	// Initialize repositories
	runRepo := postgres.NewValidationRunRepo(db)

	// Initialize report archive
	var archive port.ReportArchive
	if cfg.Archive.Enabled {
		archive, err = s3storage.NewReportArchive(&cfg.Archive)
		if err != nil {
			return fmt.Errorf("failed to initialize report archive: %w", err)
		}
	} else {
		archive = noopstorage.NewArchive()
	}

	// Initialize rejection notifier
	var notifier port.Notifier
	switch cfg.Email.Provider {
	case "ses":
		notifier, err = ses.NewSESNotifier(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES notifier: %w", err)
		}
	default:
		notifier = noopnotify.NewNoopNotifier()
	}

	// Initialize validation engine
	trackers := jira.NewFactory(cfg.Jira.Timeout)
	evaluator := validator.NewEvaluator(rulesProvider, trackers)

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWT, cfg.Admin)
	validationSvc := service.NewValidationService(
		rulesProvider, rulesProvider, evaluator, runRepo, notifier, archive,
	)

	// Initialize handlers
	h := router.Handlers{
		Hook:   handler.NewHookHandler(validationSvc),
		Audit:  handler.NewAuditHandler(runRepo),
		Rules:  handler.NewRulesHandler(rulesProvider, rulesProvider),
		Auth:   handler.NewAuthHandler(authSvc),
		Health: handler.NewHealthHandler(db),
	}

	r := router.Setup(cfg, authSvc, h)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

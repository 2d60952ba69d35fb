package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"commitgate/internal/domain"
	"commitgate/internal/port"
	"commitgate/internal/validator"
)

// Decision is the outcome of one commit validation run. Report carries the
// rendered rejection text and is the sole rejection payload.
type Decision struct {
	Accepted bool   `json:"accepted"`
	Report   string `json:"report,omitempty"`
}

// ValidationService validates received commits against project rules.
type ValidationService interface {
	ValidateCommit(ctx context.Context, commit *domain.Commit) (*Decision, error)
}

type validationService struct {
	rules     port.RulesProvider
	templates port.TemplateProvider
	evaluator *validator.Evaluator
	runRepo   port.ValidationRunRepository
	notifier  port.Notifier
	archive   port.ReportArchive
}

// NewValidationService creates a ValidationService.
func NewValidationService(
	rules port.RulesProvider,
	templates port.TemplateProvider,
	evaluator *validator.Evaluator,
	runRepo port.ValidationRunRepository,
	notifier port.Notifier,
	archive port.ReportArchive,
) ValidationService {
	return &validationService{
		rules:     rules,
		templates: templates,
		evaluator: evaluator,
		runRepo:   runRepo,
		notifier:  notifier,
		archive:   archive,
	}
}

// ValidateCommit runs the template evaluation for one commit. Rules that
// cannot be read, unconfigured or disabled projects, and unknown templates
// all fail open: the commit is accepted and nothing is recorded. Only runs
// that actually evaluated a template are audited.
func (s *validationService) ValidateCommit(ctx context.Context, commit *domain.Commit) (*Decision, error) {
	start := time.Now()

	projectRules, err := s.rules.ProjectRules(ctx, commit.Project, commit.Branch)
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			log.Printf("validation: project %s, commit %s - skipping, no validation rules configured", commit.Project, commit.SHA)
		} else {
			log.Printf("validation: project %s, commit %s - skipping, error reading validation rules: %v", commit.Project, commit.SHA, err)
		}
		return &Decision{Accepted: true}, nil
	}
	if !projectRules.Enabled {
		log.Printf("validation: project %s, commit %s - skipping, project not enabled for validation", commit.Project, commit.SHA)
		return &Decision{Accepted: true}, nil
	}

	tpl, err := s.templates.Template(ctx, projectRules.Template)
	if err != nil {
		log.Printf("validation: project %s, commit %s - skipping, commit template %q not found", commit.Project, commit.SHA, projectRules.Template)
		return &Decision{Accepted: true}, nil
	}

	log.Printf("validation: project %s, commit %s - validating against template %q", commit.Project, commit.SHA, tpl.Name)
	report := s.evaluator.Evaluate(ctx, commit, tpl)

	decision := &Decision{Accepted: report.Empty()}
	if !decision.Accepted {
		decision.Report = report.Render()
	}

	run := &domain.ValidationRun{
		ID:           uuid.New(),
		Project:      commit.Project,
		Branch:       commit.Branch,
		CommitSHA:    commit.SHA,
		Template:     tpl.Name,
		Accepted:     decision.Accepted,
		FailureCount: len(report.Results),
		Report:       decision.Report,
		DurationMS:   time.Since(start).Milliseconds(),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		// Audit is best-effort; the decision stands.
		log.Printf("validation: project %s, commit %s - recording audit run failed: %v", commit.Project, commit.SHA, err)
	}

	if !decision.Accepted {
		s.archiveReport(ctx, commit, decision.Report)
		s.notifyCommitter(ctx, commit, decision.Report)
	}

	log.Printf("validation: project %s, commit %s - accepted=%v, failures=%d", commit.Project, commit.SHA, decision.Accepted, run.FailureCount)
	return decision, nil
}

func (s *validationService) archiveReport(ctx context.Context, commit *domain.Commit, report string) {
	key := fmt.Sprintf("rejections/%s/%s.txt", commit.Project, commit.SHA)
	if err := s.archive.ArchiveReport(ctx, key, report); err != nil {
		log.Printf("validation: project %s, commit %s - archiving rejection report failed: %v", commit.Project, commit.SHA, err)
	}
}

func (s *validationService) notifyCommitter(ctx context.Context, commit *domain.Commit, report string) {
	if commit.CommitterEmail == "" {
		return
	}
	if err := s.notifier.SendRejectionNotice(ctx, commit, report); err != nil {
		log.Printf("validation: project %s, commit %s - sending rejection notice failed: %v", commit.Project, commit.SHA, err)
	}
}

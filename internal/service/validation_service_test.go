package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commitgate/internal/domain"
	"commitgate/internal/service"
	"commitgate/internal/validator"
	"commitgate/mocks"
)

type validationFixture struct {
	rules     *mocks.MockRulesProvider
	templates *mocks.MockTemplateProvider
	runRepo   *mocks.MockValidationRunRepo
	notifier  *mocks.MockNotifier
	archive   *mocks.MockReportArchive
	svc       service.ValidationService
}

func newValidationFixture() *validationFixture {
	f := &validationFixture{
		rules:     new(mocks.MockRulesProvider),
		templates: new(mocks.MockTemplateProvider),
		runRepo:   new(mocks.MockValidationRunRepo),
		notifier:  new(mocks.MockNotifier),
		archive:   new(mocks.MockReportArchive),
	}
	evaluator := validator.NewEvaluator(new(mocks.MockEndpointProvider), new(mocks.MockTrackerFactory))
	f.svc = service.NewValidationService(f.rules, f.templates, evaluator, f.runRepo, f.notifier, f.archive)
	return f
}

func testCommit(message string) *domain.Commit {
	return &domain.Commit{
		Project:        "platform/core",
		Branch:         "refs/heads/main",
		SHA:            "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
		CommitterEmail: "dev@example.com",
		Message:        message,
	}
}

func standardTemplate() *domain.Template {
	return &domain.Template{
		Name: "standard",
		Entries: []domain.TemplateEntry{
			{Kind: domain.KindKeyValue, Key: "Bug", Value: "[0-9]+", Type: domain.ValueTypeInteger, Example: "176253"},
			{Kind: domain.KindKeyValue, Key: "Tested", Type: domain.ValueTypeBoolean},
		},
	}
}

func TestValidateCommitAccepted(t *testing.T) {
	f := newValidationFixture()
	f.rules.On("ProjectRules", mock.Anything, "platform/core", "refs/heads/main").
		Return(&domain.ProjectRules{Project: "platform/core", Enabled: true, Template: "standard"}, nil)
	f.templates.On("Template", mock.Anything, "standard").Return(standardTemplate(), nil)
	f.runRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ValidationRun")).Return(nil)

	decision, err := f.svc.ValidateCommit(context.Background(), testCommit("subject\n\nBug: 176253\nTested: true"))
	require.NoError(t, err)
	assert.True(t, decision.Accepted)
	assert.Empty(t, decision.Report)

	f.runRepo.AssertExpectations(t)
	f.notifier.AssertNotCalled(t, "SendRejectionNotice", mock.Anything, mock.Anything, mock.Anything)
	f.archive.AssertNotCalled(t, "ArchiveReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestValidateCommitRejected(t *testing.T) {
	f := newValidationFixture()
	commit := testCommit("subject\n\nTested: maybe")

	f.rules.On("ProjectRules", mock.Anything, "platform/core", "refs/heads/main").
		Return(&domain.ProjectRules{Project: "platform/core", Enabled: true, Template: "standard"}, nil)
	f.templates.On("Template", mock.Anything, "standard").Return(standardTemplate(), nil)
	f.runRepo.On("Create", mock.Anything, mock.MatchedBy(func(run *domain.ValidationRun) bool {
		return !run.Accepted && run.FailureCount == 2 && run.CommitSHA == commit.SHA
	})).Return(nil)
	f.archive.On("ArchiveReport", mock.Anything, "rejections/platform/core/"+commit.SHA+".txt", mock.Anything).Return(nil)
	f.notifier.On("SendRejectionNotice", mock.Anything, commit, mock.Anything).Return(nil)

	decision, err := f.svc.ValidateCommit(context.Background(), commit)
	require.NoError(t, err)
	assert.False(t, decision.Accepted)
	assert.Contains(t, decision.Report, "INVALID COMMIT")
	assert.Contains(t, decision.Report, "Bug [KEY_VALUE/INTEGER]: missing key (example: 176253)")
	assert.Contains(t, decision.Report, "Tested [KEY_VALUE/BOOLEAN]: invalid value - not a boolean value")

	f.runRepo.AssertExpectations(t)
	f.archive.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestValidateCommitFailsOpen(t *testing.T) {
	t.Run("project not configured", func(t *testing.T) {
		f := newValidationFixture()
		f.rules.On("ProjectRules", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.ErrNotConfigured)

		decision, err := f.svc.ValidateCommit(context.Background(), testCommit("anything"))
		require.NoError(t, err)
		assert.True(t, decision.Accepted)
		f.runRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rules read failure", func(t *testing.T) {
		f := newValidationFixture()
		f.rules.On("ProjectRules", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("disk on fire"))

		decision, err := f.svc.ValidateCommit(context.Background(), testCommit("anything"))
		require.NoError(t, err)
		assert.True(t, decision.Accepted)
	})

	t.Run("project disabled", func(t *testing.T) {
		f := newValidationFixture()
		f.rules.On("ProjectRules", mock.Anything, mock.Anything, mock.Anything).
			Return(&domain.ProjectRules{Project: "platform/core", Enabled: false, Template: "standard"}, nil)

		decision, err := f.svc.ValidateCommit(context.Background(), testCommit("anything"))
		require.NoError(t, err)
		assert.True(t, decision.Accepted)
		f.templates.AssertNotCalled(t, "Template", mock.Anything, mock.Anything)
	})

	t.Run("template not found", func(t *testing.T) {
		f := newValidationFixture()
		f.rules.On("ProjectRules", mock.Anything, mock.Anything, mock.Anything).
			Return(&domain.ProjectRules{Project: "platform/core", Enabled: true, Template: "ghost"}, nil)
		f.templates.On("Template", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		decision, err := f.svc.ValidateCommit(context.Background(), testCommit("anything"))
		require.NoError(t, err)
		assert.True(t, decision.Accepted)
	})
}

func TestValidateCommitAuditFailureDoesNotBlock(t *testing.T) {
	f := newValidationFixture()
	f.rules.On("ProjectRules", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.ProjectRules{Project: "platform/core", Enabled: true, Template: "standard"}, nil)
	f.templates.On("Template", mock.Anything, "standard").Return(standardTemplate(), nil)
	f.runRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	decision, err := f.svc.ValidateCommit(context.Background(), testCommit("subject\n\nBug: 1\nTested: true"))
	require.NoError(t, err)
	assert.True(t, decision.Accepted)
}

func TestValidateCommitNoEmailSkipsNotice(t *testing.T) {
	f := newValidationFixture()
	commit := testCommit("subject\n\nnothing here")
	commit.CommitterEmail = ""

	f.rules.On("ProjectRules", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.ProjectRules{Project: "platform/core", Enabled: true, Template: "standard"}, nil)
	f.templates.On("Template", mock.Anything, "standard").Return(standardTemplate(), nil)
	f.runRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.archive.On("ArchiveReport", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	decision, err := f.svc.ValidateCommit(context.Background(), commit)
	require.NoError(t, err)
	assert.False(t, decision.Accepted)
	f.notifier.AssertNotCalled(t, "SendRejectionNotice", mock.Anything, mock.Anything, mock.Anything)
}

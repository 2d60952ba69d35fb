package noop

import (
	"context"
	"log"

	"commitgate/internal/domain"
	"commitgate/internal/port"
)

type noopNotifier struct{}

// NewNoopNotifier creates a Notifier that logs rejection notices to stdout
// instead of sending email.
func NewNoopNotifier() port.Notifier {
	return noopNotifier{}
}

func (noopNotifier) SendRejectionNotice(_ context.Context, commit *domain.Commit, _ string) error {
	log.Printf("[NOOP EMAIL] Rejection notice for %s: commit %s on %s/%s", commit.CommitterEmail, commit.SHA, commit.Project, commit.Branch)
	return nil
}

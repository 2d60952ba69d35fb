package port

import (
	"context"

	"commitgate/internal/domain"
)

// Notifier informs a committer that their commit was rejected. Delivery is
// best-effort; failures never change the validation decision.
type Notifier interface {
	SendRejectionNotice(ctx context.Context, commit *domain.Commit, report string) error
}

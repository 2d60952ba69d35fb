package port

import (
	"context"

	"github.com/google/uuid"

	"commitgate/internal/domain"
)

// RunFilter narrows ValidationRun listings.
type RunFilter struct {
	Project  string
	Accepted *bool
}

// ValidationRunRepository defines the contract for audit-run persistence.
type ValidationRunRepository interface {
	Create(ctx context.Context, run *domain.ValidationRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ValidationRun, error)
	List(ctx context.Context, filter RunFilter, offset, limit int) ([]domain.ValidationRun, int, error)
}

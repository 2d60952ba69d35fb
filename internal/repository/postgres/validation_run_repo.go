package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"commitgate/internal/domain"
	"commitgate/internal/port"
)

type validationRunRepo struct {
	db *sqlx.DB
}

// NewValidationRunRepo creates a new PostgreSQL-backed ValidationRunRepository.
func NewValidationRunRepo(db *sqlx.DB) port.ValidationRunRepository {
	return &validationRunRepo{db: db}
}

func (r *validationRunRepo) Create(ctx context.Context, run *domain.ValidationRun) error {
	query := `INSERT INTO validation_runs (
		id, project, branch, commit_sha, template,
		accepted, failure_count, report, duration_ms, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.Project, run.Branch, run.CommitSHA, run.Template,
		run.Accepted, run.FailureCount, run.Report, run.DurationMS, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("validationRunRepo.Create: %w", err)
	}
	return nil
}

func (r *validationRunRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ValidationRun, error) {
	var run domain.ValidationRun
	err := r.db.GetContext(ctx, &run,
		"SELECT * FROM validation_runs WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("validationRunRepo.GetByID: %w", err)
	}
	return &run, nil
}

func (r *validationRunRepo) List(ctx context.Context, filter port.RunFilter, offset, limit int) ([]domain.ValidationRun, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	idx := 1

	if filter.Project != "" {
		where += fmt.Sprintf(" AND project = $%d", idx)
		args = append(args, filter.Project)
		idx++
	}
	if filter.Accepted != nil {
		where += fmt.Sprintf(" AND accepted = $%d", idx)
		args = append(args, *filter.Accepted)
		idx++
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM validation_runs " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("validationRunRepo.List count: %w", err)
	}

	listQuery := fmt.Sprintf(
		"SELECT * FROM validation_runs %s ORDER BY created_at DESC OFFSET $%d LIMIT $%d",
		where, idx, idx+1)
	args = append(args, offset, limit)

	var runs []domain.ValidationRun
	if err := r.db.SelectContext(ctx, &runs, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("validationRunRepo.List: %w", err)
	}
	return runs, total, nil
}

package port

import (
	"context"

	"commitgate/internal/domain"
)

// RulesProvider resolves the validation rules for a project and branch.
// A nil result with domain.ErrNotConfigured means the project has no rules;
// any other error is a configuration-read failure (callers fail open).
type RulesProvider interface {
	ProjectRules(ctx context.Context, project, branch string) (*domain.ProjectRules, error)
}

// TemplateProvider resolves a commit template by name.
type TemplateProvider interface {
	Template(ctx context.Context, name string) (*domain.Template, error)
}

// EndpointProvider resolves a configured external endpoint by name.
type EndpointProvider interface {
	Endpoint(ctx context.Context, name string) (*domain.Endpoint, error)
}

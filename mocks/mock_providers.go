package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"commitgate/internal/domain"
)

// MockRulesProvider is a mock implementation of port.RulesProvider.
type MockRulesProvider struct {
	mock.Mock
}

func (m *MockRulesProvider) ProjectRules(ctx context.Context, project, branch string) (*domain.ProjectRules, error) {
	args := m.Called(ctx, project, branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectRules), args.Error(1)
}

// MockTemplateProvider is a mock implementation of port.TemplateProvider.
type MockTemplateProvider struct {
	mock.Mock
}

func (m *MockTemplateProvider) Template(ctx context.Context, name string) (*domain.Template, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}

// MockEndpointProvider is a mock implementation of port.EndpointProvider.
type MockEndpointProvider struct {
	mock.Mock
}

func (m *MockEndpointProvider) Endpoint(ctx context.Context, name string) (*domain.Endpoint, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Endpoint), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"commitgate/internal/domain"
	"commitgate/internal/service"
)

// MockValidationService is a mock implementation of service.ValidationService.
type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) ValidateCommit(ctx context.Context, commit *domain.Commit) (*service.Decision, error) {
	args := m.Called(ctx, commit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Decision), args.Error(1)
}

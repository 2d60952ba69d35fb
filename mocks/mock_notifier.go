package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"commitgate/internal/domain"
)

// MockNotifier is a mock implementation of port.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendRejectionNotice(ctx context.Context, commit *domain.Commit, report string) error {
	args := m.Called(ctx, commit, report)
	return args.Error(0)
}

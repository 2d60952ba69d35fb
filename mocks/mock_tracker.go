package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"commitgate/internal/port"
)

// MockIssueTracker is a mock implementation of port.IssueTracker.
type MockIssueTracker struct {
	mock.Mock
}

func (m *MockIssueTracker) CheckIssue(ctx context.Context, id string, allowedStatuses []string) (bool, error) {
	args := m.Called(ctx, id, allowedStatuses)
	return args.Bool(0), args.Error(1)
}

// MockTrackerFactory is a mock implementation of port.TrackerFactory.
type MockTrackerFactory struct {
	mock.Mock
}

func (m *MockTrackerFactory) TrackerFor(url, username, password string) port.IssueTracker {
	args := m.Called(url, username, password)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(port.IssueTracker)
}

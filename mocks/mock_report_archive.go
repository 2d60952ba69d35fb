package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockReportArchive is a mock implementation of port.ReportArchive.
type MockReportArchive struct {
	mock.Mock
}

func (m *MockReportArchive) ArchiveReport(ctx context.Context, key string, report string) error {
	args := m.Called(ctx, key, report)
	return args.Error(0)
}

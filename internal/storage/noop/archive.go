package noop

import (
	"context"

	"commitgate/internal/port"
)

type noopArchive struct{}

// NewArchive creates a ReportArchive that discards reports. Used when the
// archive is disabled in configuration.
func NewArchive() port.ReportArchive {
	return noopArchive{}
}

func (noopArchive) ArchiveReport(context.Context, string, string) error {
	return nil
}

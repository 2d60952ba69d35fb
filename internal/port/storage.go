package port

import "context"

// ReportArchive stores rendered rejection reports for compliance review.
// Archiving is best-effort; failures never change the validation decision.
type ReportArchive interface {
	ArchiveReport(ctx context.Context, key string, report string) error
}

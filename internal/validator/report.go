package validator

import (
	"fmt"
	"strings"

	"commitgate/internal/domain"
)

// EntryResult pairs a template entry with its extracted values, outcome,
// and rendering-ready diagnostic. Created fresh per run, never persisted.
type EntryResult struct {
	Entry      domain.TemplateEntry
	Values     []string
	Status     domain.EntryStatus
	Diagnostic string
}

// Report is the ordered collection of entries that failed validation.
type Report struct {
	Results []EntryResult
}

// Empty reports whether every mandatory entry was satisfied.
func (r *Report) Empty() bool {
	return len(r.Results) == 0
}

const (
	bannerLine  = "************************************************************"
	sectionLine = "------------------------------------------------------------"
	reportTitle = "\tINVALID COMMIT"
	entriesHead = "Missing or invalid entries in the commit message:"
)

// statusText maps outcomes to the phrasing used in rejection reports.
var statusText = map[domain.EntryStatus]string{
	domain.StatusMissingKey:   "missing key",
	domain.StatusMissingValue: "missing value",
	domain.StatusInvalidValue: "invalid value",
}

// Render produces the rejection message shown to the committer. The output
// is a pure function of the report contents: no timestamps, no randomized
// ordering, byte-identical across runs for identical input.
func (r *Report) Render() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	sb.WriteString(bannerLine + "\n")
	sb.WriteString(reportTitle + "\n")
	sb.WriteString(bannerLine + "\n")
	sb.WriteString(entriesHead + "\n")
	sb.WriteString(sectionLine + "\n")
	for _, res := range r.Results {
		sb.WriteString(renderResult(&res) + "\n")
	}
	sb.WriteString(bannerLine + "\n")
	return sb.String()
}

// renderResult formats one failed entry as a single report line:
// name, kind, expected type, outcome, diagnostic, and example.
func renderResult(res *EntryResult) string {
	entry := &res.Entry

	valueType := entry.Type
	if valueType == "" {
		valueType = domain.ValueTypeString
	}

	line := fmt.Sprintf("%s [%s/%s]: %s", entry.DisplayName(), entry.Kind, valueType, statusText[res.Status])
	if res.Diagnostic != "" {
		line += " - " + res.Diagnostic
	}
	if entry.Example != "" {
		line += fmt.Sprintf(" (example: %s)", entry.Example)
	}
	return line
}

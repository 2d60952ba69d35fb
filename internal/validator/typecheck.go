package validator

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"commitgate/internal/domain"
)

// checkResult is the outcome of validating a single candidate value.
type checkResult struct {
	status  domain.EntryStatus
	message string
}

func valid(message string) checkResult {
	return checkResult{status: domain.StatusValid, message: message}
}

func invalid(message string) checkResult {
	return checkResult{status: domain.StatusInvalidValue, message: message}
}

// checkValue validates one candidate value against the entry's declared
// type. STRING is the default for entries without a simpler explicit type.
func (e *Evaluator) checkValue(ctx context.Context, entry *domain.TemplateEntry, value string) checkResult {
	switch entry.Type {
	case domain.ValueTypeBoolean:
		return checkBool(value)
	case domain.ValueTypeInteger:
		return checkInt(value)
	default:
		return e.checkString(ctx, entry, value)
	}
}

// checkBool accepts any value containing "true" or "false",
// case-insensitively. Substring match, not anchored.
func checkBool(value string) checkResult {
	lower := strings.ToLower(value)
	if !strings.Contains(lower, "true") && !strings.Contains(lower, "false") {
		return invalid("not a boolean value")
	}
	return valid("")
}

// checkInt accepts base-10 integers within native int range.
func checkInt(value string) checkResult {
	if _, err := strconv.Atoi(value); err != nil {
		return invalid("not a number value")
	}
	return valid("")
}

// checkString requires the trimmed value to fully match the entry's
// pattern, then optionally cross-validates it against the configured
// endpoint.
func (e *Evaluator) checkString(ctx context.Context, entry *domain.TemplateEntry, value string) checkResult {
	pattern := strings.TrimSpace(entry.Value)
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return invalid(fmt.Sprintf("template pattern '%s' does not compile", pattern))
	}
	if !re.MatchString(strings.TrimSpace(value)) {
		return invalid(fmt.Sprintf("no values matching '%s' format", entry.Value))
	}

	if entry.ValidateAgainstEndpoint {
		return e.checkAgainstEndpoint(ctx, entry, value)
	}
	return valid("")
}

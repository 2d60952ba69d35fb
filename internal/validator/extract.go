package validator

import (
	"regexp"
	"strings"

	"commitgate/internal/domain"
)

// Extraction holds the candidate values pulled from a commit message for
// one template entry. Present distinguishes "key occurred with no value"
// from "key never occurred"; pattern kinds only ever report values.
type Extraction struct {
	Present bool
	Values  []string
}

// Extract locates candidate values for the entry in the commit message
// using the entry's extraction strategy. It never fails: an uncompilable
// pattern behaves like a pattern that matched nothing.
func Extract(commit *domain.Commit, entry *domain.TemplateEntry) Extraction {
	switch entry.Kind {
	case domain.KindKeyValue:
		return extractKeyValue(commit.Message, entry.Key)
	case domain.KindSubjectPattern:
		return extractMatches(commit.Subject(), entry.Value)
	case domain.KindBodyPattern:
		return extractMatches(commit.Message, entry.Value)
	default:
		return Extraction{}
	}
}

// extractKeyValue finds the first line whose trimmed content starts with
// key and returns the trimmed remainder after the first colon. Splitting
// on the first colon only, so values may themselves contain colons.
func extractKeyValue(message, key string) Extraction {
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, key) {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) < 2 {
			return Extraction{Present: true}
		}
		value := strings.TrimSpace(parts[1])
		if value == "" {
			return Extraction{Present: true}
		}
		return Extraction{Present: true, Values: []string{value}}
	}
	return Extraction{}
}

// extractMatches collects every non-overlapping match of pattern in input,
// in order of occurrence. The pattern is applied as a search, not a full
// match.
func extractMatches(input, pattern string) Extraction {
	re, err := regexp.Compile(strings.TrimSpace(pattern))
	if err != nil {
		return Extraction{}
	}
	matches := re.FindAllString(strings.TrimSpace(input), -1)
	return Extraction{Present: len(matches) > 0, Values: matches}
}

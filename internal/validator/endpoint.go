package validator

import (
	"context"
	"fmt"
	"log"
	"strings"

	"commitgate/internal/domain"
)

// checkAgainstEndpoint cross-validates a value against the external system
// named by the entry. Misconfigured or unknown endpoints fail open: a bad
// endpoint declaration must never block a commit. Lookup failures fail
// closed for the entry only, never for the run.
func (e *Evaluator) checkAgainstEndpoint(ctx context.Context, entry *domain.TemplateEntry, value string) checkResult {
	if entry.EndpointType == "" || entry.EndpointName == "" {
		log.Printf("validator: entry %q requests endpoint validation but endpoint details are missing", entry.DisplayName())
		return valid("no endpoint details in config")
	}

	switch entry.EndpointType {
	case domain.EndpointJira:
		return e.checkIssueTracker(ctx, entry, value)
	default:
		log.Printf("validator: entry %q has unknown endpoint type %q", entry.DisplayName(), entry.EndpointType)
		return valid("unknown endpoint type")
	}
}

// checkIssueTracker verifies that value names an existing issue in one of
// the entry's allowed statuses. Values wrapped in brackets by commit
// convention ("[ABC-123]") are unwrapped first.
func (e *Evaluator) checkIssueTracker(ctx context.Context, entry *domain.TemplateEntry, value string) checkResult {
	id := strings.NewReplacer("[", "", "]", "").Replace(value)

	ep, err := e.endpoints.Endpoint(ctx, entry.EndpointName)
	if err != nil {
		log.Printf("validator: endpoint %q for entry %q is not configured: %v", entry.EndpointName, entry.DisplayName(), err)
		return valid(fmt.Sprintf("endpoint '%s' is not configured", entry.EndpointName))
	}

	tracker := e.trackers.TrackerFor(ep.URL, ep.Username, ep.Password)
	ok, err := tracker.CheckIssue(ctx, id, entry.AllowedStatuses)
	if err != nil {
		return invalid(err.Error())
	}
	if !ok {
		return invalid(fmt.Sprintf("issue '%s' is not valid or not found", id))
	}
	return valid("")
}

package port

import "context"

// IssueTracker checks whether an issue identifier exists in the external
// tracker and is in one of the allowed states. An empty allowedStatuses
// set accepts any state. Implementations return domain.ErrInvalidIssueID
// for malformed identifiers and wrap transport failures with
// domain.ErrTrackerUnavailable.
type IssueTracker interface {
	CheckIssue(ctx context.Context, id string, allowedStatuses []string) (bool, error)
}

// TrackerFactory builds an IssueTracker bound to a configured endpoint
// identity (URL and credentials).
type TrackerFactory interface {
	TrackerFor(url, username, password string) IssueTracker
}

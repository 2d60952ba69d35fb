package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"commitgate/internal/domain"
	"commitgate/internal/port"
)

// issueIDPattern is the shape of a well-formed issue key ("ABC-123").
var issueIDPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*-[0-9]+$`)

// issueResponse is the subset of Jira's issue resource we read.
type issueResponse struct {
	Fields struct {
		Status struct {
			Name string `json:"name"`
		} `json:"status"`
	} `json:"fields"`
}

// Client queries a Jira instance for issue existence and status.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// Factory builds Jira clients bound to per-endpoint credentials. All
// clients share one underlying HTTP client.
type Factory struct {
	httpClient *http.Client
}

// NewFactory creates a Factory with the given request timeout.
func NewFactory(timeout time.Duration) *Factory {
	return &Factory{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// TrackerFor returns an IssueTracker for the endpoint identity.
func (f *Factory) TrackerFor(baseURL, username, password string) port.IssueTracker {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		username:   username,
		password:   password,
		httpClient: f.httpClient,
	}
}

// CheckIssue reports whether the issue exists and is in one of the allowed
// statuses. An empty allowedStatuses set accepts any status. A missing
// issue is a plain false; malformed IDs and transport failures are errors.
func (c *Client) CheckIssue(ctx context.Context, id string, allowedStatuses []string) (bool, error) {
	if !issueIDPattern.MatchString(id) {
		return false, fmt.Errorf("%w: '%s'", domain.ErrInvalidIssueID, id)
	}

	endpoint := fmt.Sprintf("%s/rest/api/2/issue/%s?fields=status", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrTrackerUnavailable, err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrTrackerUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return false, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return false, fmt.Errorf("%w: authentication failed (%d)", domain.ErrTrackerUnavailable, resp.StatusCode)
	default:
		return false, fmt.Errorf("%w: unexpected status %d", domain.ErrTrackerUnavailable, resp.StatusCode)
	}

	var issue issueResponse
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return false, fmt.Errorf("%w: decoding issue response: %v", domain.ErrTrackerUnavailable, err)
	}

	if len(allowedStatuses) == 0 {
		return true, nil
	}
	for _, status := range allowedStatuses {
		if strings.EqualFold(status, issue.Fields.Status.Name) {
			return true, nil
		}
	}
	return false, nil
}

// Compile-time checks.
var (
	_ port.IssueTracker   = (*Client)(nil)
	_ port.TrackerFactory = (*Factory)(nil)
)

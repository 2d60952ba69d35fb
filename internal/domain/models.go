package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TemplateEntry describes one mandatory piece of information a commit
// message must carry.
type TemplateEntry struct {
	Name string    `mapstructure:"name" json:"name"`
	Kind EntryKind `mapstructure:"kind" json:"kind"`
	// Key is the literal token for KEY_VALUE entries ("Bug" matches a
	// "Bug: ..." line).
	Key string `mapstructure:"key" json:"key"`
	// Value is the regular expression used to locate matches for pattern
	// kinds, and the full-match pattern STRING values are checked against.
	Value   string    `mapstructure:"value" json:"value"`
	Type    ValueType `mapstructure:"type" json:"type"`
	Example string    `mapstructure:"example" json:"example"`

	ValidateAgainstEndpoint bool         `mapstructure:"validate_against_endpoint" json:"validate_against_endpoint"`
	EndpointType            EndpointType `mapstructure:"endpoint_type" json:"endpoint_type,omitempty"`
	EndpointName            string       `mapstructure:"endpoint_name" json:"endpoint_name,omitempty"`
	AllowedStatuses         []string     `mapstructure:"allowed_statuses" json:"allowed_statuses,omitempty"`
}

// Inert reports whether the entry carries neither a key nor a value
// pattern. Inert entries are never evaluated and never reported.
func (e *TemplateEntry) Inert() bool {
	return e.Key == "" && e.Value == ""
}

// DisplayName is the name used in reports: the key for KEY_VALUE entries,
// the configured name otherwise.
func (e *TemplateEntry) DisplayName() string {
	if e.Kind == KindKeyValue {
		return e.Key
	}
	return e.Name
}

// Template is the ordered set of mandatory entries a project's commit
// messages are validated against. Immutable once loaded.
type Template struct {
	Name    string          `mapstructure:"name" json:"name"`
	Entries []TemplateEntry `mapstructure:"entries" json:"entries"`
}

// ProjectRules binds a project/branch to a commit template.
type ProjectRules struct {
	Project  string `mapstructure:"project" json:"project"`
	Branch   string `mapstructure:"branch" json:"branch"`
	Enabled  bool   `mapstructure:"enabled" json:"enabled"`
	Template string `mapstructure:"template" json:"template"`
}

// MatchesBranch reports whether the rules apply to the given branch.
// An empty branch in the rules matches every branch; "refs/heads/"
// prefixes are ignored on both sides.
func (r *ProjectRules) MatchesBranch(branch string) bool {
	if r.Branch == "" {
		return true
	}
	return normalizeBranch(r.Branch) == normalizeBranch(branch)
}

func normalizeBranch(branch string) string {
	return strings.TrimPrefix(branch, "refs/heads/")
}

// Endpoint is a configured external validation endpoint instance,
// resolved by name.
type Endpoint struct {
	Name     string `mapstructure:"name" json:"name"`
	URL      string `mapstructure:"url" json:"url"`
	Username string `mapstructure:"username" json:"username"`
	Password string `mapstructure:"password" json:"-"`
}

// Commit is one received commit event to validate.
type Commit struct {
	Project        string `json:"project"`
	Branch         string `json:"branch"`
	SHA            string `json:"sha"`
	CommitterEmail string `json:"committer_email"`
	Message        string `json:"message"`
}

// Subject returns the first line of the commit message.
func (c *Commit) Subject() string {
	if i := strings.IndexByte(c.Message, '\n'); i >= 0 {
		return c.Message[:i]
	}
	return c.Message
}

// ValidationRun is the audit record of one completed validation run.
type ValidationRun struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Project      string    `db:"project" json:"project"`
	Branch       string    `db:"branch" json:"branch"`
	CommitSHA    string    `db:"commit_sha" json:"commit_sha"`
	Template     string    `db:"template" json:"template"`
	Accepted     bool      `db:"accepted" json:"accepted"`
	FailureCount int       `db:"failure_count" json:"failure_count"`
	Report       string    `db:"report" json:"report,omitempty"`
	DurationMS   int64     `db:"duration_ms" json:"duration_ms"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commitgate/internal/domain"
	"commitgate/mocks"
	"commitgate/internal/validator"
)

func newTestEvaluator() (*validator.Evaluator, *mocks.MockEndpointProvider, *mocks.MockTrackerFactory) {
	endpoints := new(mocks.MockEndpointProvider)
	trackers := new(mocks.MockTrackerFactory)
	return validator.NewEvaluator(endpoints, trackers), endpoints, trackers
}

func keyValueEntry(key string, valueType domain.ValueType) domain.TemplateEntry {
	return domain.TemplateEntry{
		Kind: domain.KindKeyValue,
		Key:  key,
		Type: valueType,
	}
}

func TestEvaluateBooleanEntry(t *testing.T) {
	e, _, _ := newTestEvaluator()
	tpl := &domain.Template{
		Name:    "standard",
		Entries: []domain.TemplateEntry{keyValueEntry("Tested", domain.ValueTypeBoolean)},
	}

	tests := []struct {
		name       string
		message    string
		wantStatus domain.EntryStatus
	}{
		{"plain true", "subject\n\nTested: true", domain.StatusValid},
		{"capitalized false", "subject\n\nTested: False", domain.StatusValid},
		{"substring match", "subject\n\nTested: it's true actually", domain.StatusValid},
		{"not a boolean", "subject\n\nTested: yes", domain.StatusInvalidValue},
		{"key missing", "subject\n\nbody only", domain.StatusMissingKey},
		{"value missing", "subject\n\nTested:", domain.StatusMissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := e.Evaluate(context.Background(), &domain.Commit{Message: tt.message}, tpl)
			if tt.wantStatus == domain.StatusValid {
				assert.True(t, report.Empty())
				return
			}
			require.Len(t, report.Results, 1)
			assert.Equal(t, tt.wantStatus, report.Results[0].Status)
		})
	}
}

func TestEvaluateIntegerEntry(t *testing.T) {
	e, _, _ := newTestEvaluator()
	tpl := &domain.Template{
		Name:    "standard",
		Entries: []domain.TemplateEntry{keyValueEntry("Story-points", domain.ValueTypeInteger)},
	}

	tests := []struct {
		name       string
		value      string
		wantStatus domain.EntryStatus
	}{
		{"integer", "42", domain.StatusValid},
		{"negative integer", "-7", domain.StatusValid},
		{"float", "4.2", domain.StatusInvalidValue},
		{"text", "abc", domain.StatusInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commit := &domain.Commit{Message: "subject\n\nStory-points: " + tt.value}
			report := e.Evaluate(context.Background(), commit, tpl)
			if tt.wantStatus == domain.StatusValid {
				assert.True(t, report.Empty())
				return
			}
			require.Len(t, report.Results, 1)
			assert.Equal(t, tt.wantStatus, report.Results[0].Status)
			assert.Equal(t, "not a number value", report.Results[0].Diagnostic)
		})
	}
}

func TestEvaluateStringEntry(t *testing.T) {
	e, _, _ := newTestEvaluator()

	t.Run("full match required", func(t *testing.T) {
		entry := keyValueEntry("Change-Id", domain.ValueTypeString)
		entry.Value = `I[0-9a-f]{8}`
		tpl := &domain.Template{Entries: []domain.TemplateEntry{entry}}

		report := e.Evaluate(context.Background(), &domain.Commit{Message: "subject\n\nChange-Id: I0123abcd"}, tpl)
		assert.True(t, report.Empty())

		report = e.Evaluate(context.Background(), &domain.Commit{Message: "subject\n\nChange-Id: xxI0123abcdxx"}, tpl)
		require.Len(t, report.Results, 1)
		assert.Equal(t, domain.StatusInvalidValue, report.Results[0].Status)
		assert.Contains(t, report.Results[0].Diagnostic, "no values matching")
	})

	t.Run("uncompilable pattern on extracted value", func(t *testing.T) {
		entry := keyValueEntry("Change-Id", domain.ValueTypeString)
		entry.Value = `[unclosed`
		tpl := &domain.Template{Entries: []domain.TemplateEntry{entry}}

		report := e.Evaluate(context.Background(), &domain.Commit{Message: "subject\n\nChange-Id: anything"}, tpl)
		require.Len(t, report.Results, 1)
		assert.Equal(t, domain.StatusInvalidValue, report.Results[0].Status)
		assert.Contains(t, report.Results[0].Diagnostic, "does not compile")
	})
}

func TestEvaluateSubjectPattern(t *testing.T) {
	e, _, _ := newTestEvaluator()
	tpl := &domain.Template{
		Entries: []domain.TemplateEntry{{
			Name:  "release-tag",
			Kind:  domain.KindSubjectPattern,
			Value: `\[RELEASE\]`,
			Type:  domain.ValueTypeString,
		}},
	}

	t.Run("subject carries the tag", func(t *testing.T) {
		report := e.Evaluate(context.Background(), &domain.Commit{Message: "[RELEASE] cut 2.4.0\n\nbody"}, tpl)
		assert.True(t, report.Empty())
	})

	t.Run("zero matches is a missing value", func(t *testing.T) {
		report := e.Evaluate(context.Background(), &domain.Commit{Message: "cut 2.4.0\n\nbody"}, tpl)
		require.Len(t, report.Results, 1)
		assert.Equal(t, domain.StatusMissingValue, report.Results[0].Status)
	})
}

func TestEvaluateSkipsInertEntries(t *testing.T) {
	e, _, _ := newTestEvaluator()
	tpl := &domain.Template{
		Entries: []domain.TemplateEntry{
			{Name: "placeholder", Kind: domain.KindKeyValue, Key: "", Value: ""},
			keyValueEntry("Tested", domain.ValueTypeBoolean),
		},
	}

	report := e.Evaluate(context.Background(), &domain.Commit{Message: "subject\n\nbody"}, tpl)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "Tested", report.Results[0].Entry.Key)
	assert.Equal(t, domain.StatusMissingKey, report.Results[0].Status)
}

func TestEvaluateReportOrderIsDeclarationOrder(t *testing.T) {
	e, _, _ := newTestEvaluator()
	tpl := &domain.Template{
		Entries: []domain.TemplateEntry{
			keyValueEntry("Alpha", domain.ValueTypeBoolean),
			keyValueEntry("Bravo", domain.ValueTypeInteger),
			keyValueEntry("Charlie", domain.ValueTypeBoolean),
			keyValueEntry("Delta", domain.ValueTypeInteger),
			keyValueEntry("Echo", domain.ValueTypeBoolean),
		},
	}
	commit := &domain.Commit{Message: "subject\n\nbody with none of the keys"}

	first := e.Evaluate(context.Background(), commit, tpl)
	require.Len(t, first.Results, 5)
	for run := 0; run < 20; run++ {
		report := e.Evaluate(context.Background(), commit, tpl)
		require.Len(t, report.Results, 5)
		for i, key := range []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"} {
			assert.Equal(t, key, report.Results[i].Entry.Key)
		}
		assert.Equal(t, first.Render(), report.Render())
	}
}

func jiraEntry() domain.TemplateEntry {
	return domain.TemplateEntry{
		Kind:                    domain.KindKeyValue,
		Key:                     "Jira-Issue",
		Value:                   `\[?[A-Z]+-[0-9]+\]?`,
		Type:                    domain.ValueTypeString,
		ValidateAgainstEndpoint: true,
		EndpointType:            domain.EndpointJira,
		EndpointName:            "jira-prod",
	}
}

func TestEvaluateEndpointValidation(t *testing.T) {
	endpoint := &domain.Endpoint{
		Name:     "jira-prod",
		URL:      "https://jira.example.com",
		Username: "svc",
		Password: "secret",
	}

	t.Run("brackets stripped before the tracker call", func(t *testing.T) {
		e, endpoints, trackers := newTestEvaluator()
		tracker := new(mocks.MockIssueTracker)
		endpoints.On("Endpoint", mock.Anything, "jira-prod").Return(endpoint, nil)
		trackers.On("TrackerFor", endpoint.URL, endpoint.Username, endpoint.Password).Return(tracker)
		tracker.On("CheckIssue", mock.Anything, "ABC-123", mock.Anything).Return(true, nil)

		tpl := &domain.Template{Entries: []domain.TemplateEntry{jiraEntry()}}
		report := e.Evaluate(context.Background(), &domain.Commit{Message: "subject\n\nJira-Issue: [ABC-123]"}, tpl)
		assert.True(t, report.Empty())
		tracker.AssertExpectations(t)
	})

	t.Run("unknown issue fails the entry", func(t *testing.T) {
		e, endpoints, trackers := newTestEvaluator()
		tracker := new(mocks.MockIssueTracker)
		endpoints.On("Endpoint", mock.Anything, "jira-prod").Return(endpoint, nil)
		trackers.On("TrackerFor", endpoint.URL, endpoint.Username, endpoint.Password).Return(tracker)
		tracker.On("CheckIssue", mock.Anything, "ABC-999", mock.Anything).Return(false, nil)

		tpl := &domain.Template{Entries: []domain.TemplateEntry{jiraEntry()}}
		report := e.Evaluate(context.Background(), &domain.Commit{Message: "subject\n\nJira-Issue: ABC-999"}, tpl)
		require.Len(t, report.Results, 1)
		assert.Equal(t, domain.StatusInvalidValue, report.Results[0].Status)
		assert.Contains(t, report.Results[0].Diagnostic, "not valid or not found")
	})

	t.Run("tracker failure fails the entry only", func(t *testing.T) {
		e, endpoints, trackers := newTestEvaluator()
		tracker := new(mocks.MockIssueTracker)
		endpoints.On("Endpoint", mock.Anything, "jira-prod").Return(endpoint, nil)
		trackers.On("TrackerFor", endpoint.URL, endpoint.Username, endpoint.Password).Return(tracker)
		tracker.On("CheckIssue", mock.Anything, "ABC-123", mock.Anything).
			Return(false, errors.New("issue tracker unavailable: connection refused"))

		tpl := &domain.Template{Entries: []domain.TemplateEntry{jiraEntry()}}
		report := e.Evaluate(context.Background(), &domain.Commit{Message: "subject\n\nJira-Issue: ABC-123"}, tpl)
		require.Len(t, report.Results, 1)
		assert.Equal(t, domain.StatusInvalidValue, report.Results[0].Status)
		assert.Contains(t, report.Results[0].Diagnostic, "unavailable")
	})

	t.Run("missing endpoint details fail open", func(t *testing.T) {
		e, _, _ := newTestEvaluator()
		entry := jiraEntry()
		entry.EndpointName = ""
		tpl := &domain.Template{Entries: []domain.TemplateEntry{entry}}

		report := e.Evaluate(context.Background(), &domain.Commit{Message: "subject\n\nJira-Issue: ABC-123"}, tpl)
		assert.True(t, report.Empty())
	})

	t.Run("unknown endpoint type fails open", func(t *testing.T) {
		e, _, _ := newTestEvaluator()
		entry := jiraEntry()
		entry.EndpointType = "BUGZILLA"
		tpl := &domain.Template{Entries: []domain.TemplateEntry{entry}}

		report := e.Evaluate(context.Background(), &domain.Commit{Message: "subject\n\nJira-Issue: ABC-123"}, tpl)
		assert.True(t, report.Empty())
	})

	t.Run("unconfigured endpoint fails open", func(t *testing.T) {
		e, endpoints, _ := newTestEvaluator()
		endpoints.On("Endpoint", mock.Anything, "jira-prod").Return(nil, domain.ErrNotFound)

		tpl := &domain.Template{Entries: []domain.TemplateEntry{jiraEntry()}}
		report := e.Evaluate(context.Background(), &domain.Commit{Message: "subject\n\nJira-Issue: ABC-123"}, tpl)
		assert.True(t, report.Empty())
	})
}

package validator

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"commitgate/internal/domain"
	"commitgate/internal/port"
)

const defaultWorkers = 8

// Evaluator runs a commit message through a template's mandatory entries.
// Entries are evaluated concurrently; each evaluation is a pure function
// of (commit, entry, tracker responses), so the only shared state is the
// index-addressed result slice.
type Evaluator struct {
	endpoints port.EndpointProvider
	trackers  port.TrackerFactory
	workers   int
}

// NewEvaluator creates an Evaluator. The endpoint provider and tracker
// factory are only consulted for entries that request endpoint validation.
func NewEvaluator(endpoints port.EndpointProvider, trackers port.TrackerFactory) *Evaluator {
	return &Evaluator{
		endpoints: endpoints,
		trackers:  trackers,
		workers:   defaultWorkers,
	}
}

// Evaluate validates the commit against every non-inert template entry and
// returns the report of failed entries, in template declaration order
// regardless of completion order.
func (e *Evaluator) Evaluate(ctx context.Context, commit *domain.Commit, tpl *domain.Template) Report {
	active := make([]domain.TemplateEntry, 0, len(tpl.Entries))
	for _, entry := range tpl.Entries {
		if entry.Inert() {
			continue
		}
		active = append(active, entry)
	}

	// Results land at their entry's original index, which keeps report
	// order deterministic under concurrency.
	results := make([]EntryResult, len(active))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range active {
		g.Go(func() error {
			results[i] = e.evaluateEntry(gctx, commit, &active[i])
			return nil
		})
	}
	// Entry evaluation absorbs all failures into the entry's result.
	_ = g.Wait()

	var failed []EntryResult
	for _, res := range results {
		if res.Status != domain.StatusValid {
			failed = append(failed, res)
		}
	}
	return Report{Results: failed}
}

// evaluateEntry drives one entry through extraction and validation.
// Terminal states: MISSING_KEY, MISSING_VALUE, INVALID_VALUE, VALID.
func (e *Evaluator) evaluateEntry(ctx context.Context, commit *domain.Commit, entry *domain.TemplateEntry) EntryResult {
	result := EntryResult{Entry: *entry}

	extraction := Extract(commit, entry)
	result.Values = extraction.Values

	if entry.Kind == domain.KindKeyValue {
		if !extraction.Present {
			result.Status = domain.StatusMissingKey
			return result
		}
		if len(extraction.Values) == 0 {
			result.Status = domain.StatusMissingValue
			return result
		}
		check := e.checkValue(ctx, entry, extraction.Values[0])
		result.Status = check.status
		result.Diagnostic = check.message
		return result
	}

	// Pattern kinds have no key, so zero matches is a missing value.
	if len(extraction.Values) == 0 {
		result.Status = domain.StatusMissingValue
		return result
	}

	// Every match is validated independently; one bad match fails the
	// entry and all individual diagnostics are kept.
	var invalidMessages []string
	for _, match := range extraction.Values {
		check := e.checkString(ctx, entry, match)
		if check.status == domain.StatusInvalidValue {
			invalidMessages = append(invalidMessages, check.message)
		}
	}
	if len(invalidMessages) > 0 {
		result.Status = domain.StatusInvalidValue
		result.Diagnostic = strings.Join(invalidMessages, "; ")
		return result
	}
	result.Status = domain.StatusValid
	return result
}

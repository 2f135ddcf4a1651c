// Package engine drives the submission lifecycle: one scoring request at a
// time, result replacement on every attempt, and a single feedback answer
// per result.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fraudlens/fraudlens/internal/form"
	"github.com/fraudlens/fraudlens/internal/model"
	"github.com/fraudlens/fraudlens/internal/payload"
	"github.com/fraudlens/fraudlens/internal/service"
)

// Engine errors.
var (
	ErrBusy            = errors.New("a submission is already in flight")
	ErrNoResult        = errors.New("no prediction to answer")
	ErrAlreadyAnswered = errors.New("feedback already submitted for this prediction")
)

// Engine owns the draft store and serializes scoring submissions. The busy
// flag rejects overlapping submissions outright; callers are expected to
// disable the trigger rather than queue. There is no cancellation beyond
// the request context.
type Engine struct {
	store    *form.Store
	scorer   service.Scorer
	history  service.History // optional; nil disables local history
	result   *model.PredictionResult
	feedback *model.FeedbackRecord
	lastID   int64
	mu       sync.Mutex
	busy     bool
}

// New creates an engine. history may be nil.
func New(store *form.Store, scorer service.Scorer, history service.History) *Engine {
	return &Engine{
		store:   store,
		scorer:  scorer,
		history: history,
	}
}

// Store exposes the draft store for input surfaces.
func (e *Engine) Store() *form.Store {
	return e.store
}

// Result returns the current prediction, or nil before the first
// successful submission and between a new attempt and its response.
func (e *Engine) Result() *model.PredictionResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

// Feedback returns the pending feedback record, or nil when there is no
// result to answer.
func (e *Engine) Feedback() *model.FeedbackRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.feedback
}

// Busy reports whether a submission is outstanding.
func (e *Engine) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// Submit builds the payload for the draft's current mode and scores it.
//
// The prior result and any pending feedback are discarded before anything
// else happens, so a failed attempt leaves no stale result behind. Local
// build failures (a missing field, a malformed override) abort before any
// network call and are returned as-is for remediation.
func (e *Engine) Submit(ctx context.Context) (model.PredictionResult, error) {
	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		return model.PredictionResult{}, ErrBusy
	}
	e.busy = true
	e.result = nil
	e.feedback = nil
	e.lastID = 0
	draft := e.store.Draft()
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.busy = false
		e.mu.Unlock()
	}()

	pl, err := payload.Build(draft)
	if err != nil {
		return model.PredictionResult{}, err
	}

	body := pl.Body()
	result, err := e.scorer.Predict(ctx, body)
	if err != nil {
		return model.PredictionResult{}, err
	}

	id := e.recordSubmission(ctx, draft.Mode, body, result)

	e.mu.Lock()
	e.result = &result
	e.feedback = &model.FeedbackRecord{Label: result.Label}
	e.lastID = id
	e.mu.Unlock()

	return result, nil
}

// SubmitFeedback reports the operator's verdict on the current result.
// Exactly one successful answer is allowed per result; afterwards the
// answered flag suppresses further answers. A transport failure is logged
// and returned without marking the record answered.
func (e *Engine) SubmitFeedback(ctx context.Context, correct bool) error {
	e.mu.Lock()
	if e.feedback == nil {
		e.mu.Unlock()
		return ErrNoResult
	}
	if e.feedback.Answered {
		e.mu.Unlock()
		return ErrAlreadyAnswered
	}
	label := e.feedback.Label
	id := e.lastID
	e.mu.Unlock()

	if err := e.scorer.SubmitFeedback(ctx, label, correct); err != nil {
		slog.Warn("Feedback submission failed", "error", err)
		return err
	}

	e.mu.Lock()
	e.feedback.Correct = correct
	e.feedback.Answered = true
	e.mu.Unlock()

	if e.history != nil && id > 0 {
		if err := e.history.RecordFeedback(ctx, id, correct); err != nil {
			slog.Warn("Failed to record feedback locally", "id", id, "error", err)
		}
	}

	return nil
}

// recordSubmission persists the scored request to history. History is best
// effort: a write failure is logged, not surfaced, and never blocks the
// result.
func (e *Engine) recordSubmission(ctx context.Context, mode model.Mode, body map[string]any, result model.PredictionResult) int64 {
	if e.history == nil {
		return 0
	}

	payloadJSON, err := json.Marshal(body)
	if err != nil {
		slog.Warn("Failed to marshal payload for history", "error", err)
		return 0
	}

	id, err := e.history.SaveSubmission(ctx, &model.Submission{
		Mode:             mode,
		Payload:          string(payloadJSON),
		FraudProbability: result.FraudProbability,
		Label:            result.Label,
	})
	if err != nil {
		slog.Warn("Failed to save submission to history", "error", err)
		return 0
	}
	return id
}

// DescribeLocalError renders the two local abort errors for inline
// display; other errors pass through unchanged.
func DescribeLocalError(err error) string {
	var gap *payload.ValidationGapError
	if errors.As(err, &gap) {
		return fmt.Sprintf("missing required field: %s", gap.Field)
	}
	var malformed *payload.MalformedOverrideError
	if errors.As(err, &malformed) {
		return "Invalid JSON"
	}
	return err.Error()
}

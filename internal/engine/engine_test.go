package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudlens/fraudlens/internal/form"
	"github.com/fraudlens/fraudlens/internal/model"
	"github.com/fraudlens/fraudlens/internal/payload"
	"github.com/fraudlens/fraudlens/internal/validate"
)

type mockScorer struct {
	predictErr    error
	feedbackErr   error
	block         chan struct{} // if set, Predict waits until closed
	lastBody      map[string]any
	lastLabel     model.Label
	lastCorrect   bool
	result        model.PredictionResult
	mu            sync.Mutex
	predictCalls  int
	feedbackCalls int
}

func (m *mockScorer) Predict(_ context.Context, body map[string]any) (model.PredictionResult, error) {
	m.mu.Lock()
	m.predictCalls++
	m.lastBody = body
	block := m.block
	m.mu.Unlock()

	if block != nil {
		<-block
	}
	if m.predictErr != nil {
		return model.PredictionResult{}, m.predictErr
	}
	return m.result, nil
}

func (m *mockScorer) SubmitFeedback(_ context.Context, label model.Label, correct bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedbackCalls++
	m.lastLabel = label
	m.lastCorrect = correct
	return m.feedbackErr
}

func (m *mockScorer) calls() (predict, feedback int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.predictCalls, m.feedbackCalls
}

type mockHistory struct {
	saved    []*model.Submission
	feedback map[int64]bool
	saveErr  error
	nextID   int64
}

func newMockHistory() *mockHistory {
	return &mockHistory{feedback: make(map[int64]bool)}
}

func (h *mockHistory) SaveSubmission(_ context.Context, sub *model.Submission) (int64, error) {
	if h.saveErr != nil {
		return 0, h.saveErr
	}
	h.nextID++
	sub.ID = h.nextID
	h.saved = append(h.saved, sub)
	return h.nextID, nil
}

func (h *mockHistory) RecordFeedback(_ context.Context, id int64, correct bool) error {
	h.feedback[id] = correct
	return nil
}

func (h *mockHistory) GetSubmission(_ context.Context, _ int64) (*model.Submission, error) {
	return nil, errors.New("not implemented")
}

func (h *mockHistory) GetLatestSubmission(_ context.Context) (*model.Submission, error) {
	return nil, errors.New("not implemented")
}

func (h *mockHistory) ListSubmissions(_ context.Context, _ int) ([]model.Submission, error) {
	return nil, nil
}

func (h *mockHistory) Migrate(_ context.Context) error { return nil }
func (h *mockHistory) Close() error                    { return nil }

func completeStore() *form.Store {
	s := form.NewStore()
	s.SetAmount("100.0")
	s.SetAge("34")
	s.SetHour("14")
	s.SetTransactionLocation(12.97, 77.59)
	s.SetMerchantLocation(12.90, 77.60)
	s.SetGender("M")
	return s
}

func fraudResult() model.PredictionResult {
	return model.PredictionResult{FraudProbability: 0.87, Label: model.LabelFraud}
}

func TestSubmitSuccess(t *testing.T) {
	scorer := &mockScorer{result: fraudResult()}
	history := newMockHistory()
	eng := New(completeStore(), scorer, history)

	result, err := eng.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fraudResult(), result)

	require.NotNil(t, eng.Result())
	assert.Equal(t, fraudResult(), *eng.Result())

	fb := eng.Feedback()
	require.NotNil(t, fb)
	assert.Equal(t, model.LabelFraud, fb.Label)
	assert.False(t, fb.Answered)

	require.Len(t, history.saved, 1)
	assert.Equal(t, model.ModeStructured, history.saved[0].Mode)
	assert.Contains(t, history.saved[0].Payload, "gender_M")
}

func TestSubmitValidationGapMakesNoNetworkCall(t *testing.T) {
	scorer := &mockScorer{result: fraudResult()}
	store := completeStore()
	store.SetAge("")
	eng := New(store, scorer, nil)

	_, err := eng.Submit(context.Background())

	var gap *payload.ValidationGapError
	require.ErrorAs(t, err, &gap)
	assert.Equal(t, validate.FieldAge, gap.Field)

	predicts, _ := scorer.calls()
	assert.Zero(t, predicts)
}

func TestSubmitMalformedOverrideMakesNoNetworkCall(t *testing.T) {
	scorer := &mockScorer{result: fraudResult()}
	store := form.NewStore()
	store.SetMode(model.ModeRaw)
	store.SetRawText("{broken")
	eng := New(store, scorer, nil)

	_, err := eng.Submit(context.Background())

	var malformed *payload.MalformedOverrideError
	require.ErrorAs(t, err, &malformed)

	predicts, _ := scorer.calls()
	assert.Zero(t, predicts)
}

func TestSubmitRawBypassesStructuredRequirements(t *testing.T) {
	// An empty structured draft with a valid override still reaches the
	// network.
	scorer := &mockScorer{result: fraudResult()}
	store := form.NewStore()
	store.SetMode(model.ModeRaw)
	store.SetRawText(`{"amt": 100.0}`)
	eng := New(store, scorer, nil)

	_, err := eng.Submit(context.Background())
	require.NoError(t, err)

	predicts, _ := scorer.calls()
	assert.Equal(t, 1, predicts)
	assert.Equal(t, 100.0, scorer.lastBody["amt"])
}

func TestSubmitClearsPriorResultBeforeRequest(t *testing.T) {
	scorer := &mockScorer{result: fraudResult()}
	store := completeStore()
	eng := New(store, scorer, nil)

	_, err := eng.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, eng.Result())

	// A failing attempt must not leave the old result visible.
	store.SetAmount("")
	_, err = eng.Submit(context.Background())
	require.Error(t, err)
	assert.Nil(t, eng.Result())
	assert.Nil(t, eng.Feedback())
}

func TestSubmitTransportFailure(t *testing.T) {
	scorer := &mockScorer{predictErr: errors.New("connection refused")}
	eng := New(completeStore(), scorer, nil)

	_, err := eng.Submit(context.Background())
	require.Error(t, err)
	assert.Nil(t, eng.Result())
}

func TestSubmitSerializedByBusyFlag(t *testing.T) {
	block := make(chan struct{})
	scorer := &mockScorer{result: fraudResult(), block: block}
	eng := New(completeStore(), scorer, nil)

	done := make(chan error, 1)
	go func() {
		_, err := eng.Submit(context.Background())
		done <- err
	}()

	// Wait for the first submission to reach the scorer.
	require.Eventually(t, func() bool {
		predicts, _ := scorer.calls()
		return predicts == 1
	}, time.Second, time.Millisecond)

	_, err := eng.Submit(context.Background())
	assert.ErrorIs(t, err, ErrBusy)

	close(block)
	require.NoError(t, <-done)

	// Once the in-flight request resolves, submissions are accepted again.
	_, err = eng.Submit(context.Background())
	require.NoError(t, err)
}

func TestFeedbackLifecycle(t *testing.T) {
	scorer := &mockScorer{result: fraudResult()}
	history := newMockHistory()
	eng := New(completeStore(), scorer, history)

	// No result yet.
	err := eng.SubmitFeedback(context.Background(), true)
	assert.ErrorIs(t, err, ErrNoResult)

	_, err = eng.Submit(context.Background())
	require.NoError(t, err)

	// First answer is accepted and recorded.
	require.NoError(t, eng.SubmitFeedback(context.Background(), true))
	assert.Equal(t, model.LabelFraud, scorer.lastLabel)
	assert.True(t, scorer.lastCorrect)
	assert.True(t, eng.Feedback().Answered)
	assert.Equal(t, map[int64]bool{1: true}, history.feedback)

	// Second answer is suppressed.
	err = eng.SubmitFeedback(context.Background(), false)
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
	_, feedbacks := scorer.calls()
	assert.Equal(t, 1, feedbacks)
}

func TestFeedbackFailureLeavesRecordUnanswered(t *testing.T) {
	scorer := &mockScorer{result: fraudResult(), feedbackErr: errors.New("timeout")}
	eng := New(completeStore(), scorer, nil)

	_, err := eng.Submit(context.Background())
	require.NoError(t, err)

	err = eng.SubmitFeedback(context.Background(), true)
	require.Error(t, err)
	assert.False(t, eng.Feedback().Answered)

	// The operator may answer again once the transport recovers.
	scorer.feedbackErr = nil
	require.NoError(t, eng.SubmitFeedback(context.Background(), true))
	assert.True(t, eng.Feedback().Answered)
}

func TestNewSubmissionDiscardsPendingFeedback(t *testing.T) {
	scorer := &mockScorer{result: fraudResult()}
	eng := New(completeStore(), scorer, nil)

	_, err := eng.Submit(context.Background())
	require.NoError(t, err)
	require.NoError(t, eng.SubmitFeedback(context.Background(), true))

	// A fresh submission replaces the result and re-enables answering.
	_, err = eng.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, eng.Feedback())
	assert.False(t, eng.Feedback().Answered)
	require.NoError(t, eng.SubmitFeedback(context.Background(), false))
}

func TestHistoryFailureDoesNotBlockResult(t *testing.T) {
	scorer := &mockScorer{result: fraudResult()}
	history := newMockHistory()
	history.saveErr = errors.New("disk full")
	eng := New(completeStore(), scorer, history)

	result, err := eng.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fraudResult(), result)
}

func TestDescribeLocalError(t *testing.T) {
	gap := &payload.ValidationGapError{Field: validate.FieldHour}
	assert.Equal(t, "missing required field: hour", DescribeLocalError(gap))

	malformed := &payload.MalformedOverrideError{Err: errors.New("bad")}
	assert.Equal(t, "Invalid JSON", DescribeLocalError(malformed))

	plain := errors.New("connection refused")
	assert.Equal(t, "connection refused", DescribeLocalError(plain))
}

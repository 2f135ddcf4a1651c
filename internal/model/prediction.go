package model

import "fmt"

// Label is the fraud verdict returned by the scoring model.
type Label string

// Labels the remote model may return. The label is authoritative as
// returned; this layer never re-derives it from the probability.
const (
	LabelFraud    Label = "fraud"
	LabelNotFraud Label = "not_fraud"
)

// PredictionResult is the outcome of one scoring submission.
type PredictionResult struct {
	FraudProbability float64
	Label            Label
}

// Validate rejects contract violations from the remote model. Out-of-range
// probabilities are errors, never clamped.
func (r PredictionResult) Validate() error {
	if r.FraudProbability < 0 || r.FraudProbability > 1 {
		return fmt.Errorf("fraud probability must be between 0.0 and 1.0, got %.4f", r.FraudProbability)
	}
	switch r.Label {
	case LabelFraud, LabelNotFraud:
		return nil
	default:
		return fmt.Errorf("unknown prediction label %q", r.Label)
	}
}

// FeedbackRecord ties an operator correctness verdict to the last result.
// Valid only while a PredictionResult exists; a new submission discards it.
type FeedbackRecord struct {
	Label    Label
	Correct  bool
	Answered bool
}

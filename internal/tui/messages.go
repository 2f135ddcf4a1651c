package tui

import "github.com/fraudlens/fraudlens/internal/model"

// predictionMsg carries the outcome of a scoring submission.
type predictionMsg struct {
	err    error
	result model.PredictionResult
}

// feedbackMsg carries the outcome of a feedback submission.
type feedbackMsg struct {
	err     error
	correct bool
}

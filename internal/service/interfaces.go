// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/fraudlens/fraudlens/internal/model"
)

// Scorer defines the contract with the remote fraud model.
type Scorer interface {
	Predict(ctx context.Context, body map[string]any) (model.PredictionResult, error)
	SubmitFeedback(ctx context.Context, label model.Label, correct bool) error
}

// History defines the contract for the local submission record.
type History interface {
	SaveSubmission(ctx context.Context, sub *model.Submission) (int64, error)
	RecordFeedback(ctx context.Context, id int64, correct bool) error
	GetSubmission(ctx context.Context, id int64) (*model.Submission, error)
	GetLatestSubmission(ctx context.Context) (*model.Submission, error)
	ListSubmissions(ctx context.Context, limit int) ([]model.Submission, error)

	Migrate(ctx context.Context) error
	Close() error
}

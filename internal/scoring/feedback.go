package scoring

import (
	"context"

	"github.com/fraudlens/fraudlens/internal/model"
)

// feedbackRequest mirrors the scoring service's /feedback body.
type feedbackRequest struct {
	Prediction string `json:"prediction"`
	Correct    bool   `json:"correct"`
}

// SubmitFeedback reports whether the last prediction's label was correct.
// The response body is opaque; only the status matters. Failures are the
// caller's to log, and are never retried.
func (c *Client) SubmitFeedback(ctx context.Context, label model.Label, correct bool) error {
	_, err := c.post(ctx, "/feedback", feedbackRequest{
		Prediction: string(label),
		Correct:    correct,
	})
	return err
}

package scoring

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fraudlens/fraudlens/internal/model"
)

// predictResponse mirrors the scoring service's /predict response.
type predictResponse struct {
	Prediction       string  `json:"prediction"`
	FraudProbability float64 `json:"fraud_probability"`
}

// Predict submits a completed payload and maps the response. A response
// with an out-of-range probability or an unknown label is rejected as a
// contract violation; probabilities are never clamped.
func (c *Client) Predict(ctx context.Context, body map[string]any) (model.PredictionResult, error) {
	respBody, err := c.post(ctx, "/predict", body)
	if err != nil {
		return model.PredictionResult{}, err
	}

	var resp predictResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return model.PredictionResult{}, fmt.Errorf("failed to parse response: %w", err)
	}

	result := model.PredictionResult{
		FraudProbability: resp.FraudProbability,
		Label:            model.Label(resp.Prediction),
	}
	if err := result.Validate(); err != nil {
		return model.PredictionResult{}, fmt.Errorf("scoring service returned invalid result: %w", err)
	}

	return result, nil
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainTables(t *testing.T) {
	tests := []struct {
		name   string
		domain Domain
		prefix string
		size   int
	}{
		{"merchant groups", MerchantGroups, "merchant_grouped_", 5},
		{"categories", Categories, "category_", 13},
		{"job groups", JobGroups, "job_grouped_", 13},
		{"regions", Regions, "region_", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.prefix, tt.domain.Prefix)
			assert.Len(t, tt.domain.Values, tt.size)
		})
	}
}

func TestDomainKey(t *testing.T) {
	assert.Equal(t, "merchant_grouped_Kuhn_LLC", MerchantGroups.Key("Kuhn_LLC"))
	assert.Equal(t, "region_West", Regions.Key("West"))
}

func TestDomainContains(t *testing.T) {
	assert.True(t, Categories.Contains("shopping_pos"))
	assert.False(t, Categories.Contains("Shopping_POS"))
	assert.False(t, Categories.Contains(""))
}

func TestExpectedFeatureCount(t *testing.T) {
	// 9 numeric passthroughs + gender_M + 5 + 13 + 13 + 3 one-hot keys.
	assert.Equal(t, 44, ExpectedFeatureCount())
}

func TestPredictionResultValidate(t *testing.T) {
	tests := []struct {
		name    string
		errMsg  string
		result  PredictionResult
		wantErr bool
	}{
		{
			name:   "valid fraud result",
			result: PredictionResult{FraudProbability: 0.92, Label: LabelFraud},
		},
		{
			name:   "valid not_fraud result",
			result: PredictionResult{FraudProbability: 0.03, Label: LabelNotFraud},
		},
		{
			name:   "boundary probabilities",
			result: PredictionResult{FraudProbability: 1.0, Label: LabelFraud},
		},
		{
			name:    "probability too high",
			result:  PredictionResult{FraudProbability: 1.2, Label: LabelFraud},
			wantErr: true,
			errMsg:  "must be between 0.0 and 1.0",
		},
		{
			name:    "probability negative",
			result:  PredictionResult{FraudProbability: -0.1, Label: LabelNotFraud},
			wantErr: true,
			errMsg:  "must be between 0.0 and 1.0",
		},
		{
			name:    "unknown label",
			result:  PredictionResult{FraudProbability: 0.5, Label: "maybe"},
			wantErr: true,
			errMsg:  "unknown prediction label",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

package payload

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudlens/fraudlens/internal/model"
	"github.com/fraudlens/fraudlens/internal/validate"
)

func completeDraft() *model.TransactionDraft {
	d := model.NewTransactionDraft()
	d.Amount = "100.0"
	d.Age = "34"
	d.Hour = "14"
	d.Transaction = &model.Coordinates{Lat: 12.97, Long: 77.59}
	d.Merchant = &model.Coordinates{Lat: 12.90, Long: 77.60}
	d.MerchantGroup = "Kuhn_LLC"
	return d
}

func TestBuildStructuredComplete(t *testing.T) {
	pl, err := Build(completeDraft())
	require.NoError(t, err)

	structured, ok := pl.(Structured)
	require.True(t, ok, "expected Structured, got %T", pl)
	assert.Len(t, structured.Features, model.ExpectedFeatureCount())
	assert.Equal(t, structured.Features, model.FeatureVector(pl.Body()))
}

func TestBuildStructuredIncomplete(t *testing.T) {
	d := completeDraft()
	d.Age = ""

	pl, err := Build(d)
	assert.Nil(t, pl)

	var gap *ValidationGapError
	require.ErrorAs(t, err, &gap)
	assert.Equal(t, validate.FieldAge, gap.Field)
}

func TestBuildRawBypassesStructuredChecks(t *testing.T) {
	// An otherwise empty draft still builds when a valid override exists.
	d := model.NewTransactionDraft()
	d.Mode = model.ModeRaw
	d.RawText = `{"amt": 100.0, "age": 34, "gender_M": true}`

	pl, err := Build(d)
	require.NoError(t, err)

	override, ok := pl.(Override)
	require.True(t, ok, "expected Override, got %T", pl)
	assert.Equal(t, 100.0, override.Fields["amt"])
	assert.Equal(t, true, override.Fields["gender_M"])
}

func TestBuildRawVerbatim(t *testing.T) {
	// The override is not checked against the closed domains.
	d := model.NewTransactionDraft()
	d.Mode = model.ModeRaw
	d.RawText = `{"definitely_not_a_feature": 1}`

	pl, err := Build(d)
	require.NoError(t, err)
	assert.Equal(t, 1.0, pl.Body()["definitely_not_a_feature"])
}

func TestBuildRawMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"truncated", `{"amt": 100`},
		{"plain text", "hello"},
		{"json array", `[1, 2, 3]`},
		{"json scalar", `42`},
		{"json null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := model.NewTransactionDraft()
			d.Mode = model.ModeRaw
			d.RawText = tt.raw

			pl, err := Build(d)
			assert.Nil(t, pl)

			var malformed *MalformedOverrideError
			require.ErrorAs(t, err, &malformed)
		})
	}
}

func TestBuildRawIgnoresStructuredGaps(t *testing.T) {
	// Structured gaps must not leak into raw mode: a draft that would fail
	// validation still parses its override independently.
	d := model.NewTransactionDraft()
	d.Mode = model.ModeRaw
	d.RawText = `{}`

	pl, err := Build(d)
	require.NoError(t, err)
	assert.Empty(t, pl.Body())
}

func TestLocalErrorsAreNotTransportErrors(t *testing.T) {
	d := model.NewTransactionDraft()
	_, err := Build(d)

	var gap *ValidationGapError
	assert.True(t, errors.As(err, &gap))
	assert.Contains(t, err.Error(), "amount")
}

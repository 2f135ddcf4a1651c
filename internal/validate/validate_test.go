package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fraudlens/fraudlens/internal/model"
)

func completeDraft() *model.TransactionDraft {
	d := model.NewTransactionDraft()
	d.Amount = "100.0"
	d.Age = "34"
	d.Hour = "14"
	d.Transaction = &model.Coordinates{Lat: 12.97, Long: 77.59}
	d.Merchant = &model.Coordinates{Lat: 12.90, Long: 77.60}
	return d
}

func TestCheckComplete(t *testing.T) {
	res := Check(completeDraft())
	assert.True(t, res.Complete)
	assert.Empty(t, res.Missing)
}

func TestCheckReportsFirstMissingField(t *testing.T) {
	tests := []struct {
		mutate  func(*model.TransactionDraft)
		name    string
		missing Field
	}{
		{
			name:    "missing amount",
			mutate:  func(d *model.TransactionDraft) { d.Amount = "" },
			missing: FieldAmount,
		},
		{
			name:    "missing age",
			mutate:  func(d *model.TransactionDraft) { d.Age = "" },
			missing: FieldAge,
		},
		{
			name:    "missing hour",
			mutate:  func(d *model.TransactionDraft) { d.Hour = "" },
			missing: FieldHour,
		},
		{
			name:    "missing transaction location",
			mutate:  func(d *model.TransactionDraft) { d.Transaction = nil },
			missing: FieldTransactionLocation,
		},
		{
			name:    "missing merchant location",
			mutate:  func(d *model.TransactionDraft) { d.Merchant = nil },
			missing: FieldMerchantLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := completeDraft()
			tt.mutate(d)
			res := Check(d)
			assert.False(t, res.Complete)
			assert.Equal(t, tt.missing, res.Missing)
		})
	}
}

func TestCheckPriorityOrder(t *testing.T) {
	// With several fields missing, only the highest-priority one is
	// reported so the operator is sent to one control at a time.
	d := model.NewTransactionDraft()
	d.Hour = "14"

	res := Check(d)
	assert.False(t, res.Complete)
	assert.Equal(t, FieldAmount, res.Missing)

	d.Amount = "10"
	res = Check(d)
	assert.Equal(t, FieldAge, res.Missing)

	d.Age = "34"
	res = Check(d)
	assert.Equal(t, FieldTransactionLocation, res.Missing)
}

func TestCheckCategoricalsNotRequired(t *testing.T) {
	// Empty dropdown selections do not block submission.
	d := completeDraft()
	d.MerchantGroup = ""
	d.Category = ""
	d.JobGroup = ""
	d.Region = ""
	d.Gender = ""

	assert.True(t, Check(d).Complete)
}

// Package validate gates structured submissions on draft completeness.
package validate

import "github.com/fraudlens/fraudlens/internal/model"

// Field identifies a required entry-form field for remediation.
type Field string

// Required fields, named for the controls the caller focuses on failure.
const (
	FieldAmount              Field = "amount"
	FieldAge                 Field = "age"
	FieldHour                Field = "hour"
	FieldTransactionLocation Field = "transaction_location"
	FieldMerchantLocation    Field = "merchant_location"
)

// Result is a local control value, never an error: an incomplete draft
// aborts submission before any network call and points the operator at the
// first missing field.
type Result struct {
	Missing  Field
	Complete bool
}

// Check walks the required fields in remediation priority order and fails
// fast on the first missing one. Categorical dropdowns are not required:
// an empty selection still encodes to a full, all-false one-hot group.
// Raw-mode drafts are never checked here; the override parse is the gate.
func Check(draft *model.TransactionDraft) Result {
	checks := []struct {
		field   Field
		present bool
	}{
		{FieldAmount, draft.Amount != ""},
		{FieldAge, draft.Age != ""},
		{FieldHour, draft.Hour != ""},
		{FieldTransactionLocation, draft.Transaction != nil},
		{FieldMerchantLocation, draft.Merchant != nil},
	}

	for _, c := range checks {
		if !c.present {
			return Result{Missing: c.field}
		}
	}
	return Result{Complete: true}
}

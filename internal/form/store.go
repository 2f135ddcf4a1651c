// Package form holds the operator's in-progress transaction draft.
package form

import "github.com/fraudlens/fraudlens/internal/model"

// Store owns the mutable draft behind the entry form. Writes never enforce
// cross-field invariants; completeness and coercion happen downstream at
// the validation and encoding boundaries. Not safe for concurrent use:
// mutation always happens between network suspensions, never during one.
type Store struct {
	draft *model.TransactionDraft
}

// NewStore creates a store with an empty structured-mode draft.
func NewStore() *Store {
	return &Store{draft: model.NewTransactionDraft()}
}

// Draft returns the live draft for reading.
func (s *Store) Draft() *model.TransactionDraft {
	return s.draft
}

// Reset discards everything and starts a fresh draft.
func (s *Store) Reset() {
	s.draft = model.NewTransactionDraft()
}

// SetAmount stores the amount text verbatim.
func (s *Store) SetAmount(v string) { s.draft.Amount = v }

// SetAge stores the age text verbatim.
func (s *Store) SetAge(v string) { s.draft.Age = v }

// SetHour stores the hour text verbatim. Out-of-range values are allowed
// here; the entry widget owns range limits.
func (s *Store) SetHour(v string) { s.draft.Hour = v }

// SetTransactionLocation records the transaction map pick.
func (s *Store) SetTransactionLocation(lat, long float64) {
	s.draft.Transaction = &model.Coordinates{Lat: lat, Long: long}
}

// SetMerchantLocation records the merchant map pick.
func (s *Store) SetMerchantLocation(lat, long float64) {
	s.draft.Merchant = &model.Coordinates{Lat: lat, Long: long}
}

// ClearTransactionLocation removes the transaction pick.
func (s *Store) ClearTransactionLocation() { s.draft.Transaction = nil }

// ClearMerchantLocation removes the merchant pick.
func (s *Store) ClearMerchantLocation() { s.draft.Merchant = nil }

// SetDayOfWeek stores the weekday selection (0-6).
func (s *Store) SetDayOfWeek(v int) { s.draft.DayOfWeek = v }

// SetMonth stores the month selection (1-12).
func (s *Store) SetMonth(v int) { s.draft.Month = v }

// SetMerchantGroup stores the merchant group selection.
func (s *Store) SetMerchantGroup(v string) { s.draft.MerchantGroup = v }

// SetCategory stores the category selection.
func (s *Store) SetCategory(v string) { s.draft.Category = v }

// SetJobGroup stores the job group selection.
func (s *Store) SetJobGroup(v string) { s.draft.JobGroup = v }

// SetRegion stores the region selection.
func (s *Store) SetRegion(v string) { s.draft.Region = v }

// SetGender stores the gender selection.
func (s *Store) SetGender(v string) { s.draft.Gender = v }

// SetMode switches between structured and raw entry. The other mode's
// buffer is preserved so the operator can toggle without losing input.
func (s *Store) SetMode(m model.Mode) { s.draft.Mode = m }

// SetRawText stores the raw override buffer.
func (s *Store) SetRawText(v string) { s.draft.RawText = v }

package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudlens/fraudlens/internal/model"
)

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore()
	d := s.Draft()

	assert.Equal(t, model.ModeStructured, d.Mode)
	assert.Equal(t, 0, d.DayOfWeek)
	assert.Equal(t, 1, d.Month)
	assert.Nil(t, d.Transaction)
	assert.Nil(t, d.Merchant)
}

func TestStoreAcceptsOutOfRangeWrites(t *testing.T) {
	// No cross-field invariants at write time; the widget or the encoder
	// boundary owns range checks.
	s := NewStore()
	s.SetHour("25")
	s.SetAge("-3")

	assert.Equal(t, "25", s.Draft().Hour)
	assert.Equal(t, "-3", s.Draft().Age)
}

func TestModeSwitchPreservesBuffers(t *testing.T) {
	s := NewStore()
	s.SetAmount("100.0")
	s.SetRawText(`{"amt": 1}`)

	s.SetMode(model.ModeRaw)
	assert.Equal(t, "100.0", s.Draft().Amount, "structured buffer survives switch to raw")

	s.SetMode(model.ModeStructured)
	assert.Equal(t, `{"amt": 1}`, s.Draft().RawText, "raw buffer survives switch back")
}

func TestCoordinateSetAndClear(t *testing.T) {
	s := NewStore()

	s.SetTransactionLocation(12.97, 77.59)
	require.NotNil(t, s.Draft().Transaction)
	assert.Equal(t, 12.97, s.Draft().Transaction.Lat)
	assert.Equal(t, 77.59, s.Draft().Transaction.Long)

	s.ClearTransactionLocation()
	assert.Nil(t, s.Draft().Transaction)
}

func TestReset(t *testing.T) {
	s := NewStore()
	s.SetAmount("50")
	s.SetMode(model.ModeRaw)
	s.SetRawText("{}")
	s.SetMerchantLocation(1, 2)

	s.Reset()
	d := s.Draft()
	assert.Empty(t, d.Amount)
	assert.Empty(t, d.RawText)
	assert.Equal(t, model.ModeStructured, d.Mode)
	assert.Nil(t, d.Merchant)
}

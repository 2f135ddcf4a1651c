// Package encode converts a validated draft into the remote model's
// feature vector.
package encode

import (
	"math"
	"strconv"

	"github.com/fraudlens/fraudlens/internal/model"
)

// Features flattens a draft into the fixed-schema feature vector: numeric
// passthroughs, the single gender_M boolean, and one boolean key per member
// of each closed domain. The key set never depends on the selections; only
// truth values change.
//
// No errors are raised here. Presence is the validator's job; numeric text
// that slipped past it encodes as NaN and is passed through uncorrected so
// the defect stays visible to the caller.
func Features(draft *model.TransactionDraft) model.FeatureVector {
	v := make(model.FeatureVector, model.ExpectedFeatureCount())

	v[model.KeyAmount] = coerceFloat(draft.Amount)
	v[model.KeyAge] = coerceInt(draft.Age)
	v[model.KeyLat], v[model.KeyLong] = coords(draft.Transaction)
	v[model.KeyMerchLat], v[model.KeyMerchLong] = coords(draft.Merchant)
	v[model.KeyHour] = coerceInt(draft.Hour)
	v[model.KeyDayOfWeek] = draft.DayOfWeek
	v[model.KeyMonth] = draft.Month

	// Gender is a single boolean, not a two-key one-hot group.
	v[model.KeyGenderM] = draft.Gender == model.GenderMale

	oneHot(v, model.MerchantGroups, draft.MerchantGroup)
	oneHot(v, model.Categories, draft.Category)
	oneHot(v, model.JobGroups, draft.JobGroup)
	oneHot(v, model.Regions, draft.Region)

	return v
}

// oneHot emits every key of the domain, true only for the selected member.
// An empty or foreign selection yields an all-false group with the same
// key set.
func oneHot(v model.FeatureVector, d model.Domain, selected string) {
	for _, value := range d.Values {
		v[d.Key(value)] = value == selected
	}
}

func coerceFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// coerceInt returns an int for clean input and NaN otherwise, mirroring
// coerceFloat for fields the schema types as integers.
func coerceInt(s string) any {
	n, err := strconv.Atoi(s)
	if err != nil {
		return math.NaN()
	}
	return n
}

func coords(c *model.Coordinates) (float64, float64) {
	if c == nil {
		return math.NaN(), math.NaN()
	}
	return c.Lat, c.Long
}

package model

// Remote-schema keys for the numeric passthrough features and the gender
// boolean. One-hot keys come from the Domain tables.
const (
	KeyAmount    = "amt"
	KeyAge       = "age"
	KeyLat       = "lat"
	KeyLong      = "long"
	KeyMerchLat  = "merch_lat"
	KeyMerchLong = "merch_long"
	KeyHour      = "tx_hour"
	KeyDayOfWeek = "tx_dayofweek"
	KeyMonth     = "tx_month"
	KeyGenderM   = "gender_M"
)

// FeatureVector is the flat mapping sent to the scoring model. Values are
// float64, int, or bool. The key set is fixed: for every one-hot domain the
// full set of prefix+value keys is present, exactly one of them true for a
// valid selection.
type FeatureVector map[string]any

// ExpectedFeatureCount returns the number of keys a well-formed vector
// always carries, independent of any selection.
func ExpectedFeatureCount() int {
	n := 10 // nine numeric passthroughs plus gender_M
	for _, d := range AllDomains {
		n += len(d.Values)
	}
	return n
}

package model

// Mode selects how the submission payload is constructed.
type Mode string

// Payload construction modes.
const (
	ModeStructured Mode = "structured"
	ModeRaw        Mode = "raw"
)

// Coordinates is a latitude/longitude pair picked by the operator.
type Coordinates struct {
	Lat  float64
	Long float64
}

// TransactionDraft is the mutable, session-scoped draft of a candidate
// transaction. Free-form numeric fields stay as entered text; presence is
// "non-empty", and coercion happens at the encoder boundary. No cross-field
// invariants are enforced at write time.
type TransactionDraft struct {
	// Free-form numeric input, kept verbatim.
	Amount string
	Age    string
	Hour   string

	// Map-picked locations; nil until the operator selects a point.
	Transaction *Coordinates
	Merchant    *Coordinates

	// Dropdown-backed time fields. Always present once the form renders.
	DayOfWeek int // 0-6, Monday = 0
	Month     int // 1-12

	// Categorical selections. Empty string means "no selection"; the
	// encoder still emits the full key set with every flag false.
	MerchantGroup string
	Category      string
	JobGroup      string
	Region        string
	Gender        string

	// Mode flag plus the raw-override buffer. Switching modes never
	// clears the other mode's input.
	Mode    Mode
	RawText string
}

// NewTransactionDraft returns an empty structured-mode draft with the
// dropdown defaults the form starts from.
func NewTransactionDraft() *TransactionDraft {
	return &TransactionDraft{
		DayOfWeek: 0,
		Month:     1,
		Mode:      ModeStructured,
	}
}

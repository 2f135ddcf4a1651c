// Package payload builds the body submitted to the scoring service.
//
// A submission is exactly one of two variants: a feature vector encoded
// from a complete structured draft, or a raw override supplied verbatim by
// the operator. There is never a partial or merged payload; a draft that
// satisfies neither variant produces no payload at all.
package payload

import (
	"encoding/json"
	"fmt"

	"github.com/fraudlens/fraudlens/internal/encode"
	"github.com/fraudlens/fraudlens/internal/model"
	"github.com/fraudlens/fraudlens/internal/validate"
)

// Payload is the tagged submission variant.
type Payload interface {
	// Body returns the JSON object posted to the scoring endpoint.
	Body() map[string]any
	isPayload()
}

// Structured wraps a feature vector encoded from a validated draft.
type Structured struct {
	Features model.FeatureVector
}

// Body returns the feature vector as the request object.
func (p Structured) Body() map[string]any { return p.Features }

func (Structured) isPayload() {}

// Override wraps an operator-supplied raw payload. It bypasses the encoder
// and is not checked against the closed domains; the operator is trusted to
// match the remote schema, and the remote model's own error response is the
// only signal for a mismatch.
type Override struct {
	Fields map[string]any
}

// Body returns the parsed override verbatim.
func (p Override) Body() map[string]any { return p.Fields }

func (Override) isPayload() {}

// ValidationGapError reports the first missing required field of a
// structured draft. It is a local control signal: the caller uses Field to
// focus the operator, and no network call is made.
type ValidationGapError struct {
	Field validate.Field
}

func (e *ValidationGapError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// MalformedOverrideError reports raw text that does not parse as a JSON
// object. Surfaced inline; no network call is made.
type MalformedOverrideError struct {
	Err error
}

func (e *MalformedOverrideError) Error() string {
	return fmt.Sprintf("invalid JSON override: %v", e.Err)
}

func (e *MalformedOverrideError) Unwrap() error { return e.Err }

// Build produces the payload for the draft's current mode, or one of the
// two local abort errors above.
func Build(draft *model.TransactionDraft) (Payload, error) {
	if draft.Mode == model.ModeRaw {
		return buildOverride(draft.RawText)
	}

	if res := validate.Check(draft); !res.Complete {
		return nil, &ValidationGapError{Field: res.Missing}
	}
	return Structured{Features: encode.Features(draft)}, nil
}

func buildOverride(raw string) (Payload, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, &MalformedOverrideError{Err: err}
	}
	if fields == nil {
		return nil, &MalformedOverrideError{Err: fmt.Errorf("override must be a JSON object")}
	}
	return Override{Fields: fields}, nil
}

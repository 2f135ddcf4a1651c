package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fraudlens/fraudlens/internal/model"
)

// Validation errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrNilParameter      = errors.New("parameter cannot be nil")
	ErrInvalidID         = errors.New("id must be positive")
	ErrInvalidSubmission = errors.New("invalid submission")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateID ensures a row id is usable.
func validateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return nil
}

// validateSubmission validates a submission before it is persisted.
func validateSubmission(sub *model.Submission) error {
	if sub == nil {
		return fmt.Errorf("%w: submission", ErrNilParameter)
	}
	if sub.Payload == "" {
		return fmt.Errorf("%w: payload is required", ErrInvalidSubmission)
	}
	if sub.Mode != model.ModeStructured && sub.Mode != model.ModeRaw {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidSubmission, sub.Mode)
	}
	if sub.Label != model.LabelFraud && sub.Label != model.LabelNotFraud {
		return fmt.Errorf("%w: unknown label %q", ErrInvalidSubmission, sub.Label)
	}
	return nil
}

package model

import "time"

// Submission is one scored request recorded in local history.
type Submission struct {
	CreatedAt        time.Time
	FeedbackCorrect  *bool // nil until the operator answers
	Payload          string
	Mode             Mode
	Label            Label
	ID               int64
	FraudProbability float64
}

// Answered reports whether feedback was recorded for this submission.
func (s *Submission) Answered() bool {
	return s.FeedbackCorrect != nil
}

// Package analytics contains the pure aggregation core of the teacher
// dashboard: outcome classification, per-question statistics, per-student
// summaries, and the snapshot filter. Every function is total over its
// input and never mutates the records it is given.
package analytics

import "strings"

// Outcome classifies one question's feedback text.
type Outcome int

const (
	// OutcomeIndeterminate covers missing, blank, or unrecognized feedback.
	OutcomeIndeterminate Outcome = iota
	// OutcomeCorrect means the feedback carries the O prefix.
	OutcomeCorrect
	// OutcomeIncorrect means the feedback carries the X prefix.
	OutcomeIncorrect
)

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "indeterminate"
	}
}

// Classify maps one question's feedback text onto an Outcome. Graders write
// feedback starting with a literal "O" or "X", with or without a following
// colon; the match is case-sensitive and runs after trimming surrounding
// whitespace. Anything else, nil and blank text included, is indeterminate.
func Classify(feedback *string) Outcome {
	if feedback == nil {
		return OutcomeIndeterminate
	}
	trimmed := strings.TrimSpace(*feedback)
	switch {
	case trimmed == "":
		return OutcomeIndeterminate
	case strings.HasPrefix(trimmed, "O"):
		return OutcomeCorrect
	case strings.HasPrefix(trimmed, "X"):
		return OutcomeIncorrect
	default:
		return OutcomeIndeterminate
	}
}

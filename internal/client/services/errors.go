package services

import (
	"fmt"
	"strings"
)

// ValidationError reports every required field missing from a submission in
// one pass, so the user sees all gaps at once instead of fixing them one by
// one. The draft is left untouched.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// AttachmentReadError means a selected photo could not be read and encoded.
// It aborts the submission before any network call is made.
type AttachmentReadError struct {
	Path string
	Err  error
}

func (e *AttachmentReadError) Error() string {
	return fmt.Sprintf("cannot read attachment %s: %v", e.Path, e.Err)
}

func (e *AttachmentReadError) Unwrap() error { return e.Err }

// PrimarySubmissionError means the dive-log write itself failed. It is fatal
// to the submission; the draft is preserved so the user can retry.
type PrimarySubmissionError struct {
	Err error
}

func (e *PrimarySubmissionError) Error() string {
	return fmt.Sprintf("dive log submission failed: %v", e.Err)
}

func (e *PrimarySubmissionError) Unwrap() error { return e.Err }

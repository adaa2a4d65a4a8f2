// Package entities contains core business entities.
package entities

import "github.com/benjidennett/lego-app/internal/scoresheet"

// ScoreSubmission is one judge interaction with the scoring workflow.
// The first pass carries the raw sheet; the confirming pass carries the
// token issued with the pending outcome.
type ScoreSubmission struct {
	TeamNumber   int
	Sheet        scoresheet.Sheet
	Confirm      bool
	ConfirmToken string
}

// SubmissionStatus enumerates outcomes of a score submission.
type SubmissionStatus string

const (
	// SubmissionRejected marks a submission refused before any write.
	SubmissionRejected SubmissionStatus = "rejected"
	// SubmissionPending marks a computed score awaiting confirmation.
	SubmissionPending SubmissionStatus = "pending_confirmation"
	// SubmissionCommitted marks a score written to an attempt slot.
	SubmissionCommitted SubmissionStatus = "committed"
)

// ScoreOutcome is the result of one pass through the scoring workflow.
// ConfirmToken is only set while the submission is pending confirmation;
// presenting it back with Confirm commits the held score exactly once.
type ScoreOutcome struct {
	Status       SubmissionStatus
	TeamNumber   int
	TeamName     string
	Score        int
	Attempt      int
	ConfirmToken string
	Message      string
}

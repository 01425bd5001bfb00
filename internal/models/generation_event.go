package models

import "time"

// Generation event types.
const (
	EventRunStart     = "RUN_START"
	EventCaseWritten  = "CASE_WRITTEN"
	EventCaseRejected = "CASE_REJECTED" // validation failure
	EventCaseFailed   = "CASE_FAILED"   // output failure
	EventRunFinish    = "RUN_FINISH"
)

// GenerationEvent is a single history entry of a generation run.
type GenerationEvent struct {
	EventID     string    `json:"event_id"`
	RunID       string    `json:"run_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}

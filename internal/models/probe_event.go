package models

import "time"

// ProbeEvent is a single audit log entry.
type ProbeEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // one of the Event* constants
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}

// Audit event types.
const (
	EventPrediction    = "PREDICTION"
	EventClean         = "CLEAN"
	EventETA           = "ETA"
	EventFit           = "FIT"
	EventFitFailed     = "FIT_FAILED"
	EventRecorderStart = "RECORDER_START"
	EventRecorderStop  = "RECORDER_STOP"
	EventRecorderError = "RECORDER_ERROR"
)

package models

import "time"

type RecorderStatus struct {
	ID             int       `json:"id"`
	SessionID      string    `json:"session_id,omitempty"`
	DeviceID       string    `json:"device_id,omitempty"`
	FilePath       string    `json:"file_path,omitempty"`
	SamplesWritten int       `json:"samples_written"`
	LastInternalC  *float64  `json:"last_internal_c,omitempty"` // nil when the probe reported nothing
	LastExternalC  *float64  `json:"last_external_c,omitempty"`
	LastError      string    `json:"last_error,omitempty"`
	IsRunning      bool      `json:"is_running"`
	StartedAt      time.Time `json:"started_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cooking_probe/internal/models"
)

type RecorderStatusSQLite struct {
	db *sql.DB
}

func NewRecorderStatusSQLite(db *sql.DB) *RecorderStatusSQLite {
	return &RecorderStatusSQLite{db: db}
}

const (
	recorderStatusRowID = 1

	upsertRecorderStatusSQL = `
		INSERT INTO recorder_status (id, session_id, device_id, file_path, samples_written,
			last_internal_c, last_external_c, last_error, running, started_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			session_id=excluded.session_id,
			device_id=excluded.device_id,
			file_path=excluded.file_path,
			samples_written=excluded.samples_written,
			last_internal_c=excluded.last_internal_c,
			last_external_c=excluded.last_external_c,
			last_error=excluded.last_error,
			running=excluded.running,
			started_at=excluded.started_at,
			updated_at=excluded.updated_at
	`

	selectRecorderStatusSQL = `
		SELECT id, session_id, device_id, file_path, samples_written,
			last_internal_c, last_external_c, last_error, running, started_at, updated_at
		FROM recorder_status WHERE id=?
	`
)

// Save upserts the status row. A zero UpdatedAt is stamped with now; times are stored in UTC.
func (r *RecorderStatusSQLite) Save(ctx context.Context, s models.RecorderStatus) error {
	updated := s.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}

	_, err := r.db.ExecContext(ctx, upsertRecorderStatusSQL,
		recorderStatusRowID,
		s.SessionID,
		s.DeviceID,
		s.FilePath,
		s.SamplesWritten,
		nullFloat(s.LastInternalC),
		nullFloat(s.LastExternalC),
		s.LastError,
		s.IsRunning,
		s.StartedAt.UTC(),
		updated.UTC(),
	)
	if err != nil {
		return fmt.Errorf("save recorder status: %w", err)
	}
	return nil
}

// Load returns the stored status, or the zero value when the recorder never ran.
func (r *RecorderStatusSQLite) Load(ctx context.Context) (models.RecorderStatus, error) {
	var (
		s                  models.RecorderStatus
		internal, external sql.NullFloat64
	)
	err := r.db.QueryRowContext(ctx, selectRecorderStatusSQL, recorderStatusRowID).Scan(
		&s.ID,
		&s.SessionID,
		&s.DeviceID,
		&s.FilePath,
		&s.SamplesWritten,
		&internal,
		&external,
		&s.LastError,
		&s.IsRunning,
		&s.StartedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RecorderStatus{}, nil
		}
		return models.RecorderStatus{}, fmt.Errorf("load recorder status: %w", err)
	}
	if internal.Valid {
		s.LastInternalC = &internal.Float64
	}
	if external.Valid {
		s.LastExternalC = &external.Float64
	}
	s.StartedAt = s.StartedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

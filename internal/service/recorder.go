package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"cooking_probe/internal/config"
	"cooking_probe/internal/logger"
	"cooking_probe/internal/models"
	"cooking_probe/internal/recorder"
	"cooking_probe/internal/repository"
)

var ErrRecorderUnavailable = errors.New("recorder is not configured: set recorder.email and recorder.password")

// sessionRunner is the part of *recorder.Recorder the service drives.
type sessionRunner interface {
	Start(ctx context.Context) (recorder.Session, error)
	Stop() (recorder.Session, error)
	Running() bool
}

// RecorderService persists the recorder's progress as a single status row
// and audits its lifecycle.
type RecorderService struct {
	statusRepo repository.RecorderStatusRepo
	eventRepo  repository.EventRepo
	runner     sessionRunner
	log        *logger.Logger

	mu     sync.Mutex
	status models.RecorderStatus
}

func NewRecorderService(statusRepo repository.RecorderStatusRepo, eventRepo repository.EventRepo, src recorder.Source, cfg config.RecorderConfig, log *logger.Logger) *RecorderService {
	s := &RecorderService{statusRepo: statusRepo, eventRepo: eventRepo, log: log}
	if src != nil {
		s.runner = recorder.New(src, cfg.Dir, cfg.Interval, log, recorder.Hooks{
			OnStart:  s.onStart,
			OnSample: s.onSample,
			OnError:  s.onError,
		})
	}
	return s
}

func (s *RecorderService) Start(ctx context.Context) (models.RecorderStatus, error) {
	if s.runner == nil {
		return models.RecorderStatus{}, ErrRecorderUnavailable
	}
	sess, err := s.runner.Start(ctx)
	if err != nil {
		if !errors.Is(err, recorder.ErrAlreadyRunning) {
			audit(ctx, s.eventRepo, s.log, models.EventRecorderError, err.Error(), nil)
		}
		return models.RecorderStatus{}, err
	}

	// the first poll may already have landed, so keep what onStart seeded
	s.mu.Lock()
	seeded := s.status.SessionID == sess.ID
	s.mu.Unlock()
	if !seeded {
		s.onStart(sess)
	}
	s.mu.Lock()
	st := s.status
	s.mu.Unlock()

	if err := s.statusRepo.Save(ctx, st); err != nil {
		return st, err
	}
	audit(ctx, s.eventRepo, s.log, models.EventRecorderStart, "recording "+sess.DeviceID+" to "+sess.FilePath, map[string]any{
		"session_id": sess.ID,
		"device_id":  sess.DeviceID,
		"file":       sess.FilePath,
	})
	return st, nil
}

func (s *RecorderService) Stop(ctx context.Context) (models.RecorderStatus, error) {
	if s.runner == nil {
		return models.RecorderStatus{}, ErrRecorderUnavailable
	}
	sess, stopErr := s.runner.Stop()
	if errors.Is(stopErr, recorder.ErrNotRunning) {
		return models.RecorderStatus{}, stopErr
	}

	s.mu.Lock()
	s.status.IsRunning = false
	s.status.UpdatedAt = time.Now().UTC()
	if stopErr != nil {
		s.status.LastError = stopErr.Error()
	}
	st := s.status
	s.mu.Unlock()

	if err := s.statusRepo.Save(ctx, st); err != nil {
		return st, err
	}
	audit(ctx, s.eventRepo, s.log, models.EventRecorderStop, "stopped recording "+sess.FilePath, map[string]any{
		"session_id":      sess.ID,
		"samples_written": st.SamplesWritten,
	})
	return st, stopErr
}

// Status returns the live status while recording and the persisted row otherwise.
func (s *RecorderService) Status(ctx context.Context) (models.RecorderStatus, error) {
	if s.runner != nil && s.runner.Running() {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.status, nil
	}
	return s.statusRepo.Load(ctx)
}

// onStart seeds the status before the first poll can report a sample.
func (s *RecorderService) onStart(sess recorder.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = models.RecorderStatus{
		ID:        1,
		SessionID: sess.ID,
		DeviceID:  sess.DeviceID,
		FilePath:  sess.FilePath,
		IsRunning: true,
		StartedAt: sess.StartedAt.UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func (s *RecorderService) onSample(sm recorder.Sample) {
	s.mu.Lock()
	if s.status.SessionID != sm.SessionID {
		s.mu.Unlock()
		return
	}
	s.status.SamplesWritten = sm.Written
	s.status.LastInternalC = sm.Internal
	s.status.LastExternalC = sm.External
	s.status.LastError = ""
	s.status.UpdatedAt = time.Now().UTC()
	st := s.status
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.statusRepo.Save(ctx, st); err != nil {
		s.log.Errorw("recorder_status_save_failed", "session_id", sm.SessionID, "err", err)
	}
}

func (s *RecorderService) onError(sessionID string, pollErr error) {
	s.mu.Lock()
	if s.status.SessionID != sessionID {
		s.mu.Unlock()
		return
	}
	s.status.LastError = pollErr.Error()
	s.status.UpdatedAt = time.Now().UTC()
	st := s.status
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.statusRepo.Save(ctx, st); err != nil {
		s.log.Errorw("recorder_status_save_failed", "session_id", sessionID, "err", err)
	}
	audit(ctx, s.eventRepo, s.log, models.EventRecorderError, pollErr.Error(), map[string]any{"session_id": sessionID})
}

package recorder

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"cooking_probe/internal/logger"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
)

var (
	ErrAlreadyRunning = errors.New("recorder is already running")
	ErrNotRunning     = errors.New("recorder is not running")
)

// Source supplies readings for one device. A nil reading means the probe did
// not report that channel.
type Source interface {
	FirstDevice(ctx context.Context) (string, error)
	Read(ctx context.Context, deviceID string) (internal, external *float64, err error)
}

// Session describes the active (or last) recording.
type Session struct {
	ID        string
	DeviceID  string
	FilePath  string
	StartedAt time.Time
}

// Sample is one line written to the session file.
type Sample struct {
	SessionID string
	Elapsed   int64
	Internal  *float64
	External  *float64
	Written   int // lines written so far in this session
}

// Hooks are invoked from the polling goroutine, except OnStart which runs
// inside Start before the first poll is scheduled. Hooks must not call back
// into the Recorder.
type Hooks struct {
	OnStart  func(Session)
	OnSample func(Sample)
	OnError  func(sessionID string, err error)
}

// Recorder polls a Source on a gocron schedule and appends each reading to
// a data<N>.dat file.
type Recorder struct {
	src      Source
	dir      string
	interval time.Duration
	log      *logger.Logger
	hooks    Hooks
	now      func() time.Time

	mu      sync.Mutex
	sched   *gocron.Scheduler
	file    *LogFile
	session Session
	written int
}

func New(src Source, dir string, interval time.Duration, log *logger.Logger, hooks Hooks) *Recorder {
	if log == nil {
		log = logger.Nop()
	}
	return &Recorder{
		src:      src,
		dir:      dir,
		interval: interval,
		log:      log,
		hooks:    hooks,
		now:      time.Now,
	}
}

// Running reports whether a session is active.
func (r *Recorder) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sched != nil
}

// Start resolves the first device, opens a new log file and starts polling.
func (r *Recorder) Start(ctx context.Context) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sched != nil {
		return r.session, ErrAlreadyRunning
	}

	device, err := r.src.FirstDevice(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("resolve device: %w", err)
	}

	started := r.now()
	file, err := CreateLogFile(r.dir, device, started)
	if err != nil {
		return Session{}, err
	}

	sched := gocron.NewScheduler(time.UTC)
	sched.SingletonModeAll()
	if _, err := sched.Every(r.interval).Do(r.poll); err != nil {
		_ = file.Close()
		return Session{}, fmt.Errorf("schedule poll: %w", err)
	}

	r.file = file
	r.written = 0
	r.session = Session{
		ID:        uuid.NewString(),
		DeviceID:  device,
		FilePath:  file.Path(),
		StartedAt: started,
	}
	r.sched = sched
	if r.hooks.OnStart != nil {
		r.hooks.OnStart(r.session)
	}
	sched.StartAsync()

	r.log.Infow("recorder_started", "session_id", r.session.ID, "device_id", device, "file", file.Path(), "interval", r.interval.String())
	return r.session, nil
}

// Stop halts polling and closes the file. It waits for an in-flight poll.
func (r *Recorder) Stop() (Session, error) {
	r.mu.Lock()
	sched, file, sess := r.sched, r.file, r.session
	r.sched, r.file = nil, nil
	r.mu.Unlock()

	if sched == nil {
		return Session{}, ErrNotRunning
	}
	sched.Stop()
	if err := file.Close(); err != nil {
		return sess, fmt.Errorf("close %s: %w", sess.FilePath, err)
	}
	r.log.Infow("recorder_stopped", "session_id", sess.ID, "file", sess.FilePath)
	return sess, nil
}

// poll reads the device once and appends the line.
func (r *Recorder) poll() {
	r.mu.Lock()
	sess := r.session
	active := r.file != nil
	r.mu.Unlock()
	if !active {
		return
	}

	timeout := r.interval
	if timeout < time.Second {
		timeout = time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	internal, external, err := r.src.Read(ctx, sess.DeviceID)
	if err != nil {
		r.fail(sess.ID, err)
		return
	}
	elapsed := int64(math.Floor(r.now().Sub(sess.StartedAt).Seconds()))

	r.mu.Lock()
	if r.file == nil || r.session.ID != sess.ID {
		r.mu.Unlock()
		return
	}
	err = r.file.Append(elapsed, internal, external)
	if err == nil {
		r.written++
	}
	written := r.written
	r.mu.Unlock()

	if err != nil {
		r.fail(sess.ID, err)
		return
	}
	if r.hooks.OnSample != nil {
		r.hooks.OnSample(Sample{SessionID: sess.ID, Elapsed: elapsed, Internal: internal, External: external, Written: written})
	}
}

func (r *Recorder) fail(sessionID string, err error) {
	r.log.Errorw("recorder_poll_failed", "session_id", sessionID, "err", err)
	if r.hooks.OnError != nil {
		r.hooks.OnError(sessionID, err)
	}
}

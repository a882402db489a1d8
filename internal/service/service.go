package service

import (
	"context"
	"io"

	"cooking_probe/internal/config"
	"cooking_probe/internal/logger"
	"cooking_probe/internal/models"
	"cooking_probe/internal/recorder"
	"cooking_probe/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Prediction serves the stateless short-horizon extrapolation.
type Prediction interface {
	Predict(ctx context.Context, p PredictParams) (models.Prediction, error)
}

// Analysis runs the offline pipeline over uploaded logs and series.
type Analysis interface {
	Clean(ctx context.Context, r io.Reader) (CleanResult, error)
	FitLog(ctx context.Context, r io.Reader, p FitParams) (FitReport, error)
	TimeToTarget(ctx context.Context, p TargetParams) (TargetEstimate, error)
}

// EventLog exposes the append-only audit trail with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ProbeEvent, error)
}

// Recorder controls the cloud polling session.
type Recorder interface {
	Start(ctx context.Context) (models.RecorderStatus, error)
	Stop(ctx context.Context) (models.RecorderStatus, error)
	Status(ctx context.Context) (models.RecorderStatus, error)
}

type Service struct {
	Prediction
	Analysis
	EventLog
	Recorder
	Authorization
}

// Deps carries what the services need beyond the repositories. Source may be
// nil when no cloud credentials are configured; the recorder then refuses to start.
type Deps struct {
	Config *config.Config
	Source recorder.Source
	Log    *logger.Logger
}

func NewService(repos *repository.Repository, deps Deps) *Service {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	cfg := deps.Config
	return &Service{
		Prediction:    NewPredictionService(repos.EventRepo, log),
		Analysis:      NewAnalysisService(cfg.Analysis, repos.EventRepo, log),
		EventLog:      NewEventLogService(repos.EventRepo),
		Recorder:      NewRecorderService(repos.RecorderStatus, repos.EventRepo, deps.Source, cfg.Recorder, log),
		Authorization: NewAuthService(repos.Auth, cfg.Auth),
	}
}

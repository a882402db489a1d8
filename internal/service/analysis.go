package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"cooking_probe/internal/config"
	"cooking_probe/internal/logger"
	"cooking_probe/internal/models"
	"cooking_probe/internal/repository"
	"cooking_probe/internal/thermal"
)

var (
	ErrInvalidUnit   = errors.New("unit must be C or F")
	ErrInvalidTarget = errors.New("target temperature must be a finite number")
)

type CleanResult struct {
	Series models.Series       `json:"series"`
	Report thermal.ParseReport `json:"report"`
}

// FitParams overrides the configured solver settings when non-zero.
type FitParams struct {
	Points       int
	InitialGuess float64
}

// Curve is the fitted model sampled on an even grid, for display.
type Curve struct {
	Time []float64 `json:"time"`
	Temp []float64 `json:"temp"`
}

type FitReport struct {
	Fit    thermal.FitResult   `json:"fit"`
	Report thermal.ParseReport `json:"report"`
	Curve  Curve               `json:"curve"`
}

type TargetParams struct {
	MeatType int
	Unit     string   // "C" (default) or "F"; applies to the series and the target
	Target   *float64 // nil means the category's doneness temperature
	Series   models.Series
	Live     bool // live-session estimates are not audited
}

type TargetEstimate struct {
	Category         string  `json:"category"`
	Unit             string  `json:"unit"`
	Target           float64 `json:"target_temp"`
	RemainingSeconds float64 `json:"remaining_seconds"`
	Done             bool    `json:"done"`
}

type AnalysisService struct {
	cfg       config.AnalysisConfig
	eventRepo repository.EventRepo
	log       *logger.Logger
}

func NewAnalysisService(cfg config.AnalysisConfig, eventRepo repository.EventRepo, log *logger.Logger) *AnalysisService {
	return &AnalysisService{cfg: cfg, eventRepo: eventRepo, log: log}
}

// Clean parses a log and drops stall rows.
func (s *AnalysisService) Clean(ctx context.Context, r io.Reader) (CleanResult, error) {
	series, rep, err := thermal.ParseLog(r, s.cfg.ParseOptions())
	if err != nil {
		return CleanResult{}, err
	}
	audit(ctx, s.eventRepo, s.log, models.EventClean, fmt.Sprintf("kept %d of %d rows", rep.Kept, rep.Total), map[string]any{
		"total":             rep.Total,
		"kept":              rep.Kept,
		"dropped_sentinel":  rep.Sentinel,
		"dropped_malformed": rep.Malformed,
		"dropped_stalls":    rep.Stalls,
	})
	return CleanResult{Series: series, Report: rep}, nil
}

// FitLog cleans a log, fits the rate constant and samples the fitted curve.
func (s *AnalysisService) FitLog(ctx context.Context, r io.Reader, p FitParams) (FitReport, error) {
	series, rep, err := thermal.ParseLog(r, s.cfg.ParseOptions())
	if err != nil {
		return FitReport{}, err
	}

	opts := s.cfg.FitOptions()
	if p.Points > 0 {
		opts.Points = p.Points
	}
	if p.InitialGuess != 0 {
		opts.InitialGuess = p.InitialGuess
	}

	fit, err := thermal.Fit(series, opts)
	if err != nil {
		s.log.Infow("fit_not_converged", "rows", series.Len(), "points", opts.Points, "err", err)
		audit(ctx, s.eventRepo, s.log, models.EventFitFailed, err.Error(), map[string]any{
			"rows":          series.Len(),
			"points":        opts.Points,
			"initial_guess": opts.InitialGuess,
		})
		return FitReport{}, err
	}

	end := s.cfg.CurveEnd
	if end <= 0 && series.Len() > 0 {
		end = series.Last().Time
	}
	grid := thermal.SmoothGrid(0, end, s.cfg.CurveSamples)

	audit(ctx, s.eventRepo, s.log, models.EventFit, fmt.Sprintf("fitted c=%g", fit.C), map[string]any{
		"c":          fit.C,
		"t0":         fit.T0,
		"text":       fit.Text,
		"points":     fit.Points,
		"iterations": fit.Iterations,
		"rmse":       fit.RMSE,
	})
	return FitReport{
		Fit:    fit,
		Report: rep,
		Curve:  Curve{Time: grid, Temp: fit.Curve(grid)},
	}, nil
}

// TimeToTarget estimates the remaining cook time for the series.
func (s *AnalysisService) TimeToTarget(ctx context.Context, p TargetParams) (TargetEstimate, error) {
	unit := strings.ToUpper(strings.TrimSpace(p.Unit))
	if unit == "" {
		unit = "C"
	}
	if unit != "C" && unit != "F" {
		return TargetEstimate{}, ErrInvalidUnit
	}
	cat := thermal.Category(p.MeatType)

	var target float64
	switch {
	case p.Target != nil:
		target = *p.Target
		if math.IsNaN(target) || math.IsInf(target, 0) {
			return TargetEstimate{}, ErrInvalidTarget
		}
	case unit == "C":
		target = cat.TargetC()
	case unit == "F":
		target = cat.TargetF()
	}

	remaining, err := thermal.TimeToTarget(p.Series, target)
	if err != nil {
		return TargetEstimate{}, err
	}
	est := TargetEstimate{
		Category:         cat.Name(),
		Unit:             unit,
		Target:           target,
		RemainingSeconds: remaining,
		Done:             remaining == 0,
	}
	if !p.Live {
		audit(ctx, s.eventRepo, s.log, models.EventETA, fmt.Sprintf("%s: %.0fs to %g%s", est.Category, remaining, target, unit), map[string]any{
			"meat_type":         p.MeatType,
			"category":          est.Category,
			"unit":              unit,
			"target":            target,
			"samples":           p.Series.Len(),
			"remaining_seconds": remaining,
		})
	}
	return est, nil
}

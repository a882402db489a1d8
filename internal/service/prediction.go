package service

import (
	"context"

	"cooking_probe/internal/logger"
	"cooking_probe/internal/models"
	"cooking_probe/internal/repository"
	"cooking_probe/internal/thermal"
)

type PredictParams struct {
	MeatType int
	Weight   float64
	Series   models.Series
	Live     bool // live-session readings are not audited one by one
}

type PredictionService struct {
	eventRepo repository.EventRepo
	log       *logger.Logger
}

func NewPredictionService(eventRepo repository.EventRepo, log *logger.Logger) *PredictionService {
	return &PredictionService{eventRepo: eventRepo, log: log}
}

// Predict extrapolates the series. Nothing from the request is kept.
func (s *PredictionService) Predict(ctx context.Context, p PredictParams) (models.Prediction, error) {
	cat := thermal.Category(p.MeatType)
	out, err := thermal.Extrapolate(cat, p.Weight, p.Series)
	if err != nil {
		return models.Prediction{}, err
	}

	if p.Live {
		return out, nil
	}
	audit(ctx, s.eventRepo, s.log, models.EventPrediction, "served "+cat.Name()+" prediction", map[string]any{
		"meat_type":  p.MeatType,
		"category":   cat.Name(),
		"weight":     p.Weight,
		"samples":    p.Series.Len(),
		"prediction": out.Predicted[0],
	})
	return out, nil
}

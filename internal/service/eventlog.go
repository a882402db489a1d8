package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"cooking_probe/internal/logger"
	"cooking_probe/internal/models"
	"cooking_probe/internal/repository"
)

// LogFilter narrows the audit listing. Zero times are open bounds.
type LogFilter struct {
	From time.Time
	To   time.Time
	Type string // one of the models.Event* constants, any case
}

var ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

func normalizeAndValidateFilter(f LogFilter) (LogFilter, error) {
	out := LogFilter{
		From: normalizeToUTC(f.From),
		To:   normalizeToUTC(f.To),
		Type: normalizeEventType(f.Type),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return LogFilter{}, ErrInvalidTimeRange
	}
	return out, nil
}

func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.ProbeEvent, error) {
	f, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, f.From, f.To, f.Type)
}

// audit appends an event and only logs a failure: losing an audit line must
// not fail the operation it describes.
func audit(ctx context.Context, repo repository.EventRepo, log *logger.Logger, typ, description string, meta map[string]any) {
	err := repo.Append(ctx, models.ProbeEvent{
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: description,
		Metadata:    meta,
	})
	if err != nil {
		log.Errorw("audit_append_failed", "type", typ, "err", err)
	}
}

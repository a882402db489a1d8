package repository

import (
	"context"
	"database/sql"
	"time"

	"cooking_probe/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// RecorderStatusRepo keeps the single recorder status row.
type RecorderStatusRepo interface {
	Save(ctx context.Context, s models.RecorderStatus) error
	Load(ctx context.Context) (models.RecorderStatus, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.ProbeEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ProbeEvent, error)
}

type Repository struct {
	RecorderStatus RecorderStatusRepo
	EventRepo      EventRepo
	Auth           Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		RecorderStatus: NewRecorderStatusSQLite(db),
		EventRepo:      NewEventSQLite(db),
		Auth:           NewUserRepository(db),
	}
}

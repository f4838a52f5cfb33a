package repository

import (
	"context"
	"database/sql"

	"go-scheduler-api/core/database"
	"go-scheduler-api/core/logger"
	"go-scheduler-api/modules/event/entity"

	"github.com/google/uuid"
)

// EventRepository handles event database operations
type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract
type EventRepositoryInterface interface {
	GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// ListByContainerWeek returns one week of a container's events in a
	// fixed order, so repeated repair runs over unchanged input produce
	// identical assignments.
	ListByContainerWeek(ctx context.Context, containerID uuid.UUID, year, month, weekOfMonth int) ([]entity.Event, error)

	// CountHostEvents counts a host's events in one (year, month,
	// week-of-month) bucket, excluding soft-deleted events.
	CountHostEvents(ctx context.Context, hostID uuid.UUID, year, month, weekOfMonth int) (int, error)

	// UpdateEventHost sets (or clears) the event's assigned host
	UpdateEventHost(ctx context.Context, eventID uuid.UUID, hostID *uuid.UUID) (*entity.Event, error)
}

const eventColumns = `
	id, container_id, host_id, venue_id, event_type_id, starts_at,
	duration_minutes, year, month, week_of_month, deleted_at, created_at, updated_at
`

func (r *EventRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) ListByContainerWeek(ctx context.Context, containerID uuid.UUID, year, month, weekOfMonth int) ([]entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE container_id = $1
		  AND year = $2 AND month = $3 AND week_of_month = $4
		  AND deleted_at IS NULL
		ORDER BY starts_at, id
	`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query, containerID, year, month, weekOfMonth)
	if err != nil {
		logger.Error("EventRepository:ListByContainerWeek", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) CountHostEvents(ctx context.Context, hostID uuid.UUID, year, month, weekOfMonth int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM events
		WHERE host_id = $1
		  AND year = $2 AND month = $3 AND week_of_month = $4
		  AND deleted_at IS NULL
	`

	var count int
	err := r.DB.GetContext(ctx, &count, query, hostID, year, month, weekOfMonth)
	if err != nil {
		logger.Error("EventRepository:CountHostEvents", err)
		return 0, err
	}
	return count, nil
}

func (r *EventRepository) UpdateEventHost(ctx context.Context, eventID uuid.UUID, hostID *uuid.UUID) (*entity.Event, error) {
	query := `
		UPDATE events
		SET host_id = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + eventColumns

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, eventID, hostID)
	if err != nil {
		logger.Error("EventRepository:UpdateEventHost", err)
		return nil, err
	}
	return &event, nil
}

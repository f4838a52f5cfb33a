package repository

import (
	"context"
	"time"

	"go-scheduler-api/core/database"
	"go-scheduler-api/core/logger"
	"go-scheduler-api/modules/timeslot/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TimeslotRepository handles timeslot unit database operations
type TimeslotRepository struct {
	DB database.IDatabase
}

func NewTimeslotRepository(db database.IDatabase) *TimeslotRepository {
	return &TimeslotRepository{DB: db}
}

// TimeslotRepositoryInterface defines the repository contract
type TimeslotRepositoryInterface interface {
	// QueryTimeslots returns every unit (free or reserved) of the given hosts
	// eligible for the venue and overlapping the window.
	QueryTimeslots(ctx context.Context, hostIDs []uuid.UUID, venueID uuid.UUID, windowStart, windowEnd time.Time) ([]entity.TimeslotUnit, error)

	// QueryByEvent returns the units currently reserved by the event
	QueryByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.TimeslotUnit, error)

	// ReserveUnits transitions the given units to reserved-by-event. The
	// transition is all-or-nothing: when any unit is held by a different
	// event, no unit is touched and the conflicting unit ids are returned.
	ReserveUnits(ctx context.Context, unitIDs []uuid.UUID, eventID uuid.UUID) ([]uuid.UUID, error)

	// ReleaseUnits frees every unit reserved by the event. No-op when the
	// event holds no reservations.
	ReleaseUnits(ctx context.Context, eventID uuid.UUID) error
}

func (r *TimeslotRepository) QueryTimeslots(ctx context.Context, hostIDs []uuid.UUID, venueID uuid.UUID, windowStart, windowEnd time.Time) ([]entity.TimeslotUnit, error) {
	query := `
		SELECT id, host_id, venue_ids::text[] AS venue_ids, starts_at, ends_at,
		       reserved_by_event_id, created_at, updated_at
		FROM timeslot_units
		WHERE host_id = ANY($1::uuid[])
		  AND $2 = ANY(venue_ids)
		  AND starts_at < $4
		  AND ends_at > $3
		ORDER BY host_id, starts_at
	`

	ids := make([]string, len(hostIDs))
	for i, id := range hostIDs {
		ids[i] = id.String()
	}

	var units []entity.TimeslotUnit
	err := r.DB.SelectContext(ctx, &units, query, pq.Array(ids), venueID, windowStart, windowEnd)
	if err != nil {
		logger.Error("TimeslotRepository:QueryTimeslots", err)
		return nil, err
	}
	return units, nil
}

func (r *TimeslotRepository) QueryByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.TimeslotUnit, error) {
	query := `
		SELECT id, host_id, venue_ids::text[] AS venue_ids, starts_at, ends_at,
		       reserved_by_event_id, created_at, updated_at
		FROM timeslot_units
		WHERE reserved_by_event_id = $1
		ORDER BY starts_at
	`

	var units []entity.TimeslotUnit
	err := r.DB.SelectContext(ctx, &units, query, eventID)
	if err != nil {
		logger.Error("TimeslotRepository:QueryByEvent", err)
		return nil, err
	}
	return units, nil
}

func (r *TimeslotRepository) ReserveUnits(ctx context.Context, unitIDs []uuid.UUID, eventID uuid.UUID) ([]uuid.UUID, error) {
	tx, err := r.DB.BeginTxx(ctx)
	if err != nil {
		logger.Error("TimeslotRepository:ReserveUnits:Begin", err)
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	ids := make([]string, len(unitIDs))
	for i, id := range unitIDs {
		ids[i] = id.String()
	}

	// Lock the rows first so a concurrent reserve on the same units blocks
	// here instead of double-booking.
	lockQuery := `
		SELECT id, reserved_by_event_id
		FROM timeslot_units
		WHERE id = ANY($1::uuid[])
		ORDER BY id
		FOR UPDATE
	`

	type lockedRow struct {
		ID                uuid.UUID  `db:"id"`
		ReservedByEventID *uuid.UUID `db:"reserved_by_event_id"`
	}

	var rows []lockedRow
	if err := tx.SelectContext(ctx, &rows, lockQuery, pq.Array(ids)); err != nil {
		logger.Error("TimeslotRepository:ReserveUnits:Lock", err)
		return nil, err
	}

	var conflicts []uuid.UUID
	for _, row := range rows {
		if row.ReservedByEventID != nil && *row.ReservedByEventID != eventID {
			conflicts = append(conflicts, row.ID)
		}
	}
	if len(conflicts) > 0 {
		// Rollback via the deferred call; no unit state changes.
		return conflicts, nil
	}

	updateQuery := `
		UPDATE timeslot_units
		SET reserved_by_event_id = $2, updated_at = NOW()
		WHERE id = ANY($1::uuid[])
	`
	if _, err := tx.ExecContext(ctx, updateQuery, pq.Array(ids), eventID); err != nil {
		logger.Error("TimeslotRepository:ReserveUnits:Update", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("TimeslotRepository:ReserveUnits:Commit", err)
		return nil, err
	}
	return nil, nil
}

func (r *TimeslotRepository) ReleaseUnits(ctx context.Context, eventID uuid.UUID) error {
	query := `
		UPDATE timeslot_units
		SET reserved_by_event_id = NULL, updated_at = NOW()
		WHERE reserved_by_event_id = $1
	`
	if err := r.DB.ExecContext(ctx, query, eventID); err != nil {
		logger.Error("TimeslotRepository:ReleaseUnits", err)
		return err
	}
	return nil
}

package entity

import (
	"time"

	tsentity "go-scheduler-api/modules/timeslot/entity"

	"github.com/google/uuid"
)

// Event is a single scheduled occurrence inside a container. When HostID is
// set, every timeslot unit covering the event window at that host must be
// reserved by this event.
type Event struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	ContainerID     uuid.UUID  `db:"container_id" json:"container_id"`
	HostID          *uuid.UUID `db:"host_id" json:"host_id,omitempty"`
	VenueID         uuid.UUID  `db:"venue_id" json:"venue_id"`
	EventTypeID     uuid.UUID  `db:"event_type_id" json:"event_type_id"`
	StartsAt        time.Time  `db:"starts_at" json:"starts_at"`
	DurationMinutes int        `db:"duration_minutes" json:"duration_minutes"`
	Year            int        `db:"year" json:"year"`
	Month           int        `db:"month" json:"month"`
	WeekOfMonth     int        `db:"week_of_month" json:"week_of_month"`
	DeletedAt       *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// Window returns the half-open time range covered by the event
func (e *Event) Window() tsentity.Window {
	return tsentity.NewWindow(e.StartsAt, e.DurationMinutes)
}

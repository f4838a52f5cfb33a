package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TimeslotUnit is the smallest indivisible block of a host's published
// availability. A unit is either free or reserved by exactly one event;
// units are never partially reserved.
type TimeslotUnit struct {
	ID                uuid.UUID      `db:"id" json:"id"`
	HostID            uuid.UUID      `db:"host_id" json:"host_id"`
	VenueIDs          pq.StringArray `db:"venue_ids" json:"venue_ids"`
	StartsAt          time.Time      `db:"starts_at" json:"starts_at"`
	EndsAt            time.Time      `db:"ends_at" json:"ends_at"`
	ReservedByEventID *uuid.UUID     `db:"reserved_by_event_id" json:"reserved_by_event_id,omitempty"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

// IsFree reports whether the unit is not reserved by any event
func (u *TimeslotUnit) IsFree() bool {
	return u.ReservedByEventID == nil
}

// IsReservedBy reports whether the unit is reserved by the given event
func (u *TimeslotUnit) IsReservedBy(eventID uuid.UUID) bool {
	return u.ReservedByEventID != nil && *u.ReservedByEventID == eventID
}

// AllowsVenue reports whether the unit is eligible for the given venue
func (u *TimeslotUnit) AllowsVenue(venueID uuid.UUID) bool {
	want := venueID.String()
	for _, v := range u.VenueIDs {
		if v == want {
			return true
		}
	}
	return false
}

// Within reports whether the unit's [StartsAt, EndsAt) falls entirely inside
// the given window.
func (u *TimeslotUnit) Within(w Window) bool {
	return !u.StartsAt.Before(w.Start) && !u.EndsAt.After(w.End)
}

// Window is a half-open [Start, End) time range
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow builds the window covering an event of the given duration
func NewWindow(start time.Time, durationMinutes int) Window {
	return Window{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Container groups one venue-period batch of events (e.g. one month's
// schedule). It is the unit of batch repair and carries the audit trail.
type Container struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	VenueID   uuid.UUID `db:"venue_id" json:"venue_id"`
	Year      int       `db:"year" json:"year"`
	Month     int       `db:"month" json:"month"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AuditNote is one entry in a container's repair audit trail
type AuditNote struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ContainerID uuid.UUID `db:"container_id" json:"container_id"`
	Note        string    `db:"note" json:"note"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

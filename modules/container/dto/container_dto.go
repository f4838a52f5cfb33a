package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateContainerRequest creates a new schedule container
type CreateContainerRequest struct {
	Name    string `json:"name"`
	VenueID string `json:"venue_id"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
}

// ContainerResponse is the API shape of a container
type ContainerResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	VenueID uuid.UUID `json:"venue_id"`
	Year    int       `json:"year"`
	Month   int       `json:"month"`
}

// AuditNoteResponse is one audit trail entry
type AuditNoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

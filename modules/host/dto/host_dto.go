package dto

import (
	"time"

	"go-scheduler-api/modules/host/entity"
)

// MatchHostsRequest asks for the ranked hosts able to run an event
type MatchHostsRequest struct {
	StartsAt        time.Time `json:"starts_at"`
	DurationMinutes int       `json:"duration_minutes"`
	VenueID         string    `json:"venue_id"`
	EventTypeID     string    `json:"event_type_id"`
	// WithQuotaLimit enforces the hard weekly ceiling; admin callers may
	// turn it off.
	WithQuotaLimit *bool `json:"with_quota_limit,omitempty"`
}

// MatchHostsResponse carries the ranked candidates, best first
type MatchHostsResponse struct {
	Candidates []entity.HostCandidate `json:"candidates"`
}

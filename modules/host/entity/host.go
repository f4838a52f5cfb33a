package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Host is a staff resource assignable to events. Quota fields express the
// host's preferred weekly load: min <= target <= max is assumed upstream,
// not enforced here.
type Host struct {
	ID                uuid.UUID      `db:"id" json:"id"`
	FullName          string         `db:"full_name" json:"full_name"`
	QualifiedVenueIDs pq.StringArray `db:"qualified_venue_ids" json:"qualified_venue_ids"`
	QualifiedTypeIDs  pq.StringArray `db:"qualified_type_ids" json:"qualified_type_ids"`
	QuotaTarget       int            `db:"quota_target" json:"quota_target"`
	QuotaMin          int            `db:"quota_min" json:"quota_min"`
	QuotaMax          int            `db:"quota_max" json:"quota_max"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

// QualifiedForVenue reports whether the host may run events at the venue
func (h *Host) QualifiedForVenue(venueID uuid.UUID) bool {
	return contains(h.QualifiedVenueIDs, venueID)
}

// QualifiedForType reports whether the host may run events of the type
func (h *Host) QualifiedForType(eventTypeID uuid.UUID) bool {
	return contains(h.QualifiedTypeIDs, eventTypeID)
}

func contains(ids pq.StringArray, id uuid.UUID) bool {
	want := id.String()
	for _, v := range ids {
		if v == want {
			return true
		}
	}
	return false
}

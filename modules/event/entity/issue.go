package entity

import (
	"time"

	"github.com/google/uuid"
)

// IssueKind classifies a structural defect detected on an event
type IssueKind string

const (
	IssueHostMissing             IssueKind = "HOST_MISSING"
	IssueHostNotQualifiedForType IssueKind = "HOST_NOT_QUALIFIED_FOR_TYPE"
	IssueHostNotQualifiedVenue   IssueKind = "HOST_NOT_QUALIFIED_FOR_VENUE"
	IssueHostNotAvailable        IssueKind = "HOST_NOT_AVAILABLE_FOR_WINDOW"
)

// HostIssueKinds lists the issue kinds the repair orchestrator can fix by
// reassigning a host.
var HostIssueKinds = []IssueKind{
	IssueHostMissing,
	IssueHostNotQualifiedForType,
	IssueHostNotQualifiedVenue,
	IssueHostNotAvailable,
}

// IsHostKind reports whether the kind is repairable by host reassignment
func (k IssueKind) IsHostKind() bool {
	for _, hk := range HostIssueKinds {
		if k == hk {
			return true
		}
	}
	return false
}

// IssueStatus is the repair state of a detected issue
type IssueStatus string

const (
	IssueStatusUnrepaired IssueStatus = "unrepaired"
	IssueStatusRepaired   IssueStatus = "repaired"
)

// EventIssue is a detected defect attached to an event
type EventIssue struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	EventID     uuid.UUID   `db:"event_id" json:"event_id"`
	Kind        IssueKind   `db:"kind" json:"kind"`
	Status      IssueStatus `db:"status" json:"status"`
	Description string      `db:"description" json:"description"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

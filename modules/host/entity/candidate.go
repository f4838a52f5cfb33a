package entity

import "github.com/google/uuid"

// HostCandidate is the value object the availability matcher ranks. Built
// once per matching call by the host pool; carries every field the ranking
// needs so the matcher never reaches back into storage.
type HostCandidate struct {
	HostID          uuid.UUID `json:"host_id"`
	FullName        string    `json:"full_name"`
	QuotaTarget     int       `json:"quota_target"`
	QuotaMin        int       `json:"quota_min"`
	QuotaMax        int       `json:"quota_max"`
	UsedThisWeek    int       `json:"used_this_week"`
	HasFullCoverage bool      `json:"has_full_coverage"`
}

// RemainingTarget is how far the host is below its weekly target
func (c HostCandidate) RemainingTarget() int {
	return c.QuotaTarget - c.UsedThisWeek
}

// RemainingMin is how far the host is below its minimum-preferred count
func (c HostCandidate) RemainingMin() int {
	return c.QuotaMin - c.UsedThisWeek
}

// RemainingMax is how far the host is below its hard weekly ceiling
func (c HostCandidate) RemainingMax() int {
	return c.QuotaMax - c.UsedThisWeek
}

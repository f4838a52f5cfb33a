package service

import (
	"sort"

	"go-scheduler-api/modules/host/entity"
)

// Rank orders candidates best-first under the graduated quota policy.
//
// Candidates without full window coverage are dropped; when enforceMaxQuota
// is set, candidates already at their hard weekly ceiling are dropped too.
// The survivors sort by a three-tier comparator:
//
//	tier 1: still under target, larger remainingTarget/quotaTarget first
//	tier 2: target met but under minimum-preferred, larger remainingMin/quotaMin first
//	tier 3: minimum met but under maximum-preferred, larger remainingMax/quotaMax first
//
// A candidate in an earlier tier always outranks one in a later tier,
// whatever the ratios. Ratios compare by integer cross-multiplication so the
// order never depends on floating-point rounding; candidates equal after all
// tiers keep their input order.
//
// With enforceMaxQuota off (the admin override path) hosts at or past their
// ceiling stay in the list as a final tier, least-loaded first.
func Rank(candidates []entity.HostCandidate, enforceMaxQuota bool) []entity.HostCandidate {
	eligible := make([]entity.HostCandidate, 0, len(candidates))
	for _, c := range candidates {
		if !c.HasFullCoverage {
			continue
		}
		if enforceMaxQuota && c.UsedThisWeek >= c.QuotaMax {
			continue
		}
		eligible = append(eligible, c)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return rankLess(eligible[i], eligible[j])
	})
	return eligible
}

// quotaTier buckets a candidate by which preference band it still has room
// in. Lower is better.
func quotaTier(c entity.HostCandidate) int {
	switch {
	case c.RemainingTarget() > 0:
		return 1
	case c.RemainingMin() > 0:
		return 2
	case c.RemainingMax() > 0:
		return 3
	default:
		return 4
	}
}

// rankLess is a strict ordering: it returns true only when a must precede b.
func rankLess(a, b entity.HostCandidate) bool {
	ta, tb := quotaTier(a), quotaTier(b)
	if ta != tb {
		return ta < tb
	}

	switch ta {
	case 1:
		// remainingTarget/quotaTarget, larger first. quotaTarget > 0 is
		// implied by remainingTarget > 0.
		return ratioGreater(a.RemainingTarget(), a.QuotaTarget, b.RemainingTarget(), b.QuotaTarget)
	case 2:
		return ratioGreater(a.RemainingMin(), a.QuotaMin, b.RemainingMin(), b.QuotaMin)
	case 3:
		return ratioGreater(a.RemainingMax(), a.QuotaMax, b.RemainingMax(), b.QuotaMax)
	default:
		// Past every band (only reachable without the quota ceiling
		// filter): spread load toward the least-used host.
		return a.UsedThisWeek < b.UsedThisWeek
	}
}

// ratioGreater reports numA/denA > numB/denB using cross-multiplication,
// avoiding float comparison entirely. Denominators are positive whenever a
// tier's ratio is consulted.
func ratioGreater(numA, denA, numB, denB int) bool {
	return numA*denB > numB*denA
}

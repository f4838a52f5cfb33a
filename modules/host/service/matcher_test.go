package service

import (
	"testing"

	"go-scheduler-api/modules/host/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(name string, target, min, max, used int) entity.HostCandidate {
	return entity.HostCandidate{
		HostID:          uuid.New(),
		FullName:        name,
		QuotaTarget:     target,
		QuotaMin:        min,
		QuotaMax:        max,
		UsedThisWeek:    used,
		HasFullCoverage: true,
	}
}

func names(ranked []entity.HostCandidate) []string {
	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.FullName
	}
	return out
}

func TestRankOrdersByTargetRatio(t *testing.T) {
	// Both hosts are under target. alice has 3/4 of her target remaining,
	// bob only 1/2, so alice ranks first.
	alice := candidate("alice", 4, 5, 6, 1)
	bob := candidate("bob", 2, 3, 4, 1)

	ranked := Rank([]entity.HostCandidate{bob, alice}, true)

	require.Len(t, ranked, 2)
	assert.Equal(t, []string{"alice", "bob"}, names(ranked))
}

func TestRankTierPrecedence(t *testing.T) {
	// A host still under target always outranks a host past target, even
	// when the later-tier host's ratio is larger.
	underTarget := candidate("under-target", 10, 10, 12, 9) // tier 1, ratio 1/10
	underMin := candidate("under-min", 1, 10, 12, 1)        // tier 2, ratio 9/10
	underMax := candidate("under-max", 1, 1, 12, 1)         // tier 3, ratio 11/12

	ranked := Rank([]entity.HostCandidate{underMax, underMin, underTarget}, true)

	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"under-target", "under-min", "under-max"}, names(ranked))
}

func TestRankPastTargetFallsBackToMaxBand(t *testing.T) {
	// Both hosts met their target and their minimum band. Remaining ceiling
	// room decides: 2/8 beats 1/8.
	h := candidate("h", 4, 6, 8, 6)
	k := candidate("k", 4, 6, 8, 7)

	ranked := Rank([]entity.HostCandidate{k, h}, true)

	require.Len(t, ranked, 2)
	assert.Equal(t, []string{"h", "k"}, names(ranked))
}

func TestRankDropsHostsWithoutCoverage(t *testing.T) {
	covered := candidate("covered", 4, 5, 6, 0)
	uncovered := candidate("uncovered", 4, 5, 6, 0)
	uncovered.HasFullCoverage = false

	ranked := Rank([]entity.HostCandidate{uncovered, covered}, true)

	require.Len(t, ranked, 1)
	assert.Equal(t, "covered", ranked[0].FullName)
}

func TestRankEnforcesQuotaCeiling(t *testing.T) {
	atCeiling := candidate("at-ceiling", 2, 3, 4, 4)
	pastCeiling := candidate("past-ceiling", 2, 3, 4, 5)
	open := candidate("open", 2, 3, 4, 3)

	ranked := Rank([]entity.HostCandidate{atCeiling, pastCeiling, open}, true)

	require.Len(t, ranked, 1)
	assert.Equal(t, "open", ranked[0].FullName)
}

func TestRankWithoutQuotaLimitKeepsCeilingHosts(t *testing.T) {
	// The admin override keeps over-ceiling hosts as a final tier ordered
	// least-used first.
	busy := candidate("busy", 2, 3, 4, 7)
	lessBusy := candidate("less-busy", 2, 3, 4, 5)
	open := candidate("open", 2, 3, 4, 1)

	ranked := Rank([]entity.HostCandidate{busy, lessBusy, open}, false)

	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"open", "less-busy", "busy"}, names(ranked))
}

func TestRankStableOnEqualRatios(t *testing.T) {
	// Exactly equal ratios keep their input order.
	first := candidate("first", 4, 5, 6, 2)
	second := candidate("second", 4, 5, 6, 2)

	ranked := Rank([]entity.HostCandidate{first, second}, true)

	require.Len(t, ranked, 2)
	assert.Equal(t, []string{"first", "second"}, names(ranked))
}

func TestRankIsDeterministic(t *testing.T) {
	input := []entity.HostCandidate{
		candidate("a", 4, 5, 8, 1),
		candidate("b", 3, 6, 8, 2),
		candidate("c", 5, 5, 8, 4),
		candidate("d", 2, 4, 8, 2),
	}

	want := names(Rank(input, true))
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, names(Rank(input, true)))
	}
}

func TestRankRatioAvoidsFloatRounding(t *testing.T) {
	// 1/3 versus 2/6 are exactly equal under cross-multiplication; input
	// order decides. A float comparison could tip either way.
	a := candidate("a", 3, 4, 5, 2) // remaining 1 of 3
	b := candidate("b", 6, 7, 8, 4) // remaining 2 of 6

	ranked := Rank([]entity.HostCandidate{a, b}, true)

	require.Len(t, ranked, 2)
	assert.Equal(t, []string{"a", "b"}, names(ranked))
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, true))
	assert.Empty(t, Rank([]entity.HostCandidate{}, false))
}

package service

import (
	"context"
	"testing"
	"time"

	"go-scheduler-api/modules/host/entity"
	tsentity "go-scheduler-api/modules/timeslot/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeHost(name string, target, min, max int) entity.Host {
	return entity.Host{
		ID:          uuid.New(),
		FullName:    name,
		QuotaTarget: target,
		QuotaMin:    min,
		QuotaMax:    max,
	}
}

// freeUnits builds n contiguous 30-minute free units for the host starting
// at start.
func freeUnits(hostID uuid.UUID, start time.Time, n int) []tsentity.TimeslotUnit {
	units := make([]tsentity.TimeslotUnit, n)
	for i := 0; i < n; i++ {
		s := start.Add(time.Duration(i*30) * time.Minute)
		units[i] = tsentity.TimeslotUnit{
			ID:       uuid.New(),
			HostID:   hostID,
			StartsAt: s,
			EndsAt:   s.Add(30 * time.Minute),
		}
	}
	return units
}

func TestHostPoolCandidatesAnnotatesCoverageAndUsage(t *testing.T) {
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	window := tsentity.NewWindow(start, 120) // needs 4 units of 30 minutes

	full := makeHost("full", 4, 5, 6)
	partial := makeHost("partial", 4, 5, 6)

	hostRepo := newMockHostRepository()
	hostRepo.qualified = []entity.Host{full, partial}

	tsRepo := &mockTimeslotRepository{}
	tsRepo.units = append(tsRepo.units, freeUnits(full.ID, start, 4)...)
	tsRepo.units = append(tsRepo.units, freeUnits(partial.ID, start, 3)...)

	counter := &mockEventCounter{counts: map[uuid.UUID]int{full.ID: 2, partial.ID: 1}}

	pool := NewHostPool(hostRepo, tsRepo, counter, 30)
	candidates, appErr := pool.Candidates(context.Background(), window, uuid.New(), uuid.New(), 120)
	require.Nil(t, appErr)
	require.Len(t, candidates, 2)

	byName := make(map[string]entity.HostCandidate, len(candidates))
	for _, c := range candidates {
		byName[c.FullName] = c
	}

	assert.True(t, byName["full"].HasFullCoverage)
	assert.Equal(t, 2, byName["full"].UsedThisWeek)
	assert.Equal(t, 4, byName["full"].QuotaTarget)

	assert.False(t, byName["partial"].HasFullCoverage)
	assert.Equal(t, 1, byName["partial"].UsedThisWeek)
}

func TestHostPoolCandidatesIgnoresReservedUnits(t *testing.T) {
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	window := tsentity.NewWindow(start, 60)

	host := makeHost("booked", 4, 5, 6)
	hostRepo := newMockHostRepository()
	hostRepo.qualified = []entity.Host{host}

	units := freeUnits(host.ID, start, 2)
	otherEvent := uuid.New()
	units[1].ReservedByEventID = &otherEvent

	tsRepo := &mockTimeslotRepository{units: units}
	counter := &mockEventCounter{counts: map[uuid.UUID]int{}}

	pool := NewHostPool(hostRepo, tsRepo, counter, 30)
	candidates, appErr := pool.Candidates(context.Background(), window, uuid.New(), uuid.New(), 60)
	require.Nil(t, appErr)
	require.Len(t, candidates, 1)

	// One of the two required units is held by another event, so the host
	// has no full coverage.
	assert.False(t, candidates[0].HasFullCoverage)
}

func TestHostPoolCandidatesEmptyWhenNoneQualified(t *testing.T) {
	pool := NewHostPool(newMockHostRepository(), &mockTimeslotRepository{}, &mockEventCounter{}, 30)

	window := tsentity.NewWindow(time.Now(), 60)
	candidates, appErr := pool.Candidates(context.Background(), window, uuid.New(), uuid.New(), 60)

	require.Nil(t, appErr)
	assert.Empty(t, candidates)
}

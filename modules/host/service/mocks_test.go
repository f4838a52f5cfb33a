package service

import (
	"context"
	"sync"
	"time"

	"go-scheduler-api/core/errors"
	"go-scheduler-api/modules/host/entity"
	tsentity "go-scheduler-api/modules/timeslot/entity"

	"github.com/google/uuid"
)

type mockHostRepository struct {
	mu        sync.Mutex
	hosts     map[uuid.UUID]*entity.Host
	qualified []entity.Host
	err       error
}

func newMockHostRepository() *mockHostRepository {
	return &mockHostRepository{hosts: make(map[uuid.UUID]*entity.Host)}
}

func (m *mockHostRepository) GetHostByID(ctx context.Context, id uuid.UUID) (*entity.Host, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.hosts[id], nil
}

func (m *mockHostRepository) ListHosts(ctx context.Context) ([]entity.Host, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]entity.Host, 0, len(m.hosts))
	for _, h := range m.hosts {
		out = append(out, *h)
	}
	return out, nil
}

func (m *mockHostRepository) GetQualifiedHosts(ctx context.Context, venueID, eventTypeID uuid.UUID) ([]entity.Host, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.qualified, nil
}

type mockTimeslotRepository struct {
	mu    sync.Mutex
	units []tsentity.TimeslotUnit
	err   error
}

func (m *mockTimeslotRepository) QueryTimeslots(ctx context.Context, hostIDs []uuid.UUID, venueID uuid.UUID, windowStart, windowEnd time.Time) ([]tsentity.TimeslotUnit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	wanted := make(map[uuid.UUID]bool, len(hostIDs))
	for _, id := range hostIDs {
		wanted[id] = true
	}
	var out []tsentity.TimeslotUnit
	for _, u := range m.units {
		if wanted[u.HostID] && u.StartsAt.Before(windowEnd) && u.EndsAt.After(windowStart) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockTimeslotRepository) QueryByEvent(ctx context.Context, eventID uuid.UUID) ([]tsentity.TimeslotUnit, error) {
	return nil, nil
}

func (m *mockTimeslotRepository) ReserveUnits(ctx context.Context, unitIDs []uuid.UUID, eventID uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func (m *mockTimeslotRepository) ReleaseUnits(ctx context.Context, eventID uuid.UUID) error {
	return nil
}

type mockEventCounter struct {
	mu     sync.Mutex
	counts map[uuid.UUID]int
	err    error
}

func (m *mockEventCounter) CountHostEvents(ctx context.Context, hostID uuid.UUID, year, month, weekOfMonth int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return m.counts[hostID], nil
}

type mockHostPool struct {
	candidates []entity.HostCandidate
	appErr     *errors.AppError
}

func (m *mockHostPool) Candidates(ctx context.Context, window tsentity.Window, venueID, eventTypeID uuid.UUID, durationMinutes int) ([]entity.HostCandidate, *errors.AppError) {
	return m.candidates, m.appErr
}

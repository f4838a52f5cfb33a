package service

import (
	"context"

	"go-scheduler-api/core/errors"
	"go-scheduler-api/core/logger"
	"go-scheduler-api/core/utils"
	"go-scheduler-api/modules/host/entity"
	"go-scheduler-api/modules/host/repository"
	tsentity "go-scheduler-api/modules/timeslot/entity"
	tsrepository "go-scheduler-api/modules/timeslot/repository"

	"github.com/google/uuid"
)

// EventCounter counts a host's already-assigned events in one quota bucket,
// excluding soft-deleted events. Satisfied by the event repository.
type EventCounter interface {
	CountHostEvents(ctx context.Context, hostID uuid.UUID, year, month, weekOfMonth int) (int, error)
}

// HostPool assembles annotated host candidates for one event window. Pure
// reads; the live quota counts come from the injected counter on every call,
// never from cached module state.
type HostPool struct {
	hostRepo        repository.HostRepositoryInterface
	timeslotRepo    tsrepository.TimeslotRepositoryInterface
	eventCounter    EventCounter
	slotUnitMinutes int
}

// HostPoolInterface defines the candidate-assembly contract
type HostPoolInterface interface {
	// Candidates returns every host qualified for (venueID, eventTypeID),
	// annotated with quota usage and window coverage. An empty list means no
	// qualified host exists; it is not an error.
	Candidates(ctx context.Context, window tsentity.Window, venueID, eventTypeID uuid.UUID, durationMinutes int) ([]entity.HostCandidate, *errors.AppError)
}

func NewHostPool(hostRepo repository.HostRepositoryInterface, timeslotRepo tsrepository.TimeslotRepositoryInterface, eventCounter EventCounter, slotUnitMinutes int) HostPoolInterface {
	return &HostPool{
		hostRepo:        hostRepo,
		timeslotRepo:    timeslotRepo,
		eventCounter:    eventCounter,
		slotUnitMinutes: slotUnitMinutes,
	}
}

func (p *HostPool) Candidates(ctx context.Context, window tsentity.Window, venueID, eventTypeID uuid.UUID, durationMinutes int) ([]entity.HostCandidate, *errors.AppError) {
	hosts, err := p.hostRepo.GetQualifiedHosts(ctx, venueID, eventTypeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load qualified hosts", err)
	}
	if len(hosts) == 0 {
		return []entity.HostCandidate{}, nil
	}

	hostIDs := make([]uuid.UUID, len(hosts))
	for i, h := range hosts {
		hostIDs[i] = h.ID
	}

	units, err := p.timeslotRepo.QueryTimeslots(ctx, hostIDs, venueID, window.Start, window.End)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to query timeslots", err)
	}

	// Free units fully inside the window, per host. Coverage holds when the
	// count equals the quantized unit requirement; any gap disqualifies.
	freeCount := make(map[uuid.UUID]int, len(hosts))
	for _, u := range units {
		if u.IsFree() && u.Within(window) {
			freeCount[u.HostID]++
		}
	}
	required := utils.RequiredUnits(durationMinutes, p.slotUnitMinutes)

	year, month := window.Start.Year(), int(window.Start.Month())
	weekOfMonth := utils.WeekOfMonth(window.Start)

	candidates := make([]entity.HostCandidate, 0, len(hosts))
	for _, h := range hosts {
		used, err := p.eventCounter.CountHostEvents(ctx, h.ID, year, month, weekOfMonth)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to count host events", err)
		}
		candidates = append(candidates, entity.HostCandidate{
			HostID:          h.ID,
			FullName:        h.FullName,
			QuotaTarget:     h.QuotaTarget,
			QuotaMin:        h.QuotaMin,
			QuotaMax:        h.QuotaMax,
			UsedThisWeek:    used,
			HasFullCoverage: freeCount[h.ID] == required,
		})
	}

	logger.Debug("HostPool:Candidates",
		"venue_id", venueID,
		"event_type_id", eventTypeID,
		"qualified", len(hosts),
		"required_units", required,
	)
	return candidates, nil
}

package service

import (
	"context"
	"fmt"

	"go-scheduler-api/core/errors"
	"go-scheduler-api/core/logger"
	"go-scheduler-api/core/utils"
	evententity "go-scheduler-api/modules/event/entity"
	"go-scheduler-api/modules/timeslot/entity"
	"go-scheduler-api/modules/timeslot/repository"

	"github.com/google/uuid"
)

// ReservationService implements the checkin/uncheckin protocol: it marks the
// run of timeslot units covering an event's window as consumed or free.
type ReservationService struct {
	repo            repository.TimeslotRepositoryInterface
	locker          HostLocker
	slotUnitMinutes int
}

// ReservationServiceInterface defines the service contract
type ReservationServiceInterface interface {
	// Reserve marks every free unit covering the event window as reserved by
	// the event. All-or-nothing; repeat calls for the same event are no-ops.
	Reserve(ctx context.Context, event *evententity.Event) *errors.AppError

	// Release frees every unit held by the event. Idempotent.
	Release(ctx context.Context, event *evententity.Event) *errors.AppError

	// WithReservation runs mutate between a release and a re-reserve of the
	// event. The only sanctioned way to change an event's host or window:
	// callers never sequence release/reserve by hand.
	WithReservation(ctx context.Context, event *evententity.Event, mutate func(ctx context.Context) *errors.AppError) *errors.AppError
}

func NewReservationService(repo repository.TimeslotRepositoryInterface, locker HostLocker, slotUnitMinutes int) ReservationServiceInterface {
	if locker == nil {
		locker = NewLocalHostLocker()
	}
	return &ReservationService{
		repo:            repo,
		locker:          locker,
		slotUnitMinutes: slotUnitMinutes,
	}
}

func (s *ReservationService) Reserve(ctx context.Context, event *evententity.Event) *errors.AppError {
	if event.HostID == nil {
		// Nothing to reserve for an unassigned event.
		return nil
	}
	hostID := *event.HostID

	unlock, err := s.locker.Lock(ctx, hostID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to lock host for reservation", err)
	}
	defer unlock()

	window := event.Window()
	units, err := s.repo.QueryTimeslots(ctx, []uuid.UUID{hostID}, event.VenueID, window.Start, window.End)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to query timeslots", err)
	}

	covering := make([]entity.TimeslotUnit, 0, len(units))
	for _, u := range units {
		if u.Within(window) {
			covering = append(covering, u)
		}
	}

	required := utils.RequiredUnits(event.DurationMinutes, s.slotUnitMinutes)
	if len(covering) < required {
		return errors.NewAppError(errors.ErrNoAvailableHost,
			fmt.Sprintf("Host has %d of %d units covering the event window", len(covering), required), nil)
	}

	unitIDs := make([]uuid.UUID, 0, len(covering))
	for _, u := range covering {
		if !u.IsFree() && !u.IsReservedBy(event.ID) {
			return errors.NewAppError(errors.ErrReservationConflict,
				fmt.Sprintf("Timeslot unit %s already reserved by another event", u.ID), nil)
		}
		unitIDs = append(unitIDs, u.ID)
	}

	conflicts, err := s.repo.ReserveUnits(ctx, unitIDs, event.ID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to reserve timeslot units", err)
	}
	if len(conflicts) > 0 {
		// Raced with a concurrent reserve outside our lock scope; nothing
		// was mutated.
		return errors.NewAppError(errors.ErrReservationConflict,
			fmt.Sprintf("%d timeslot units already reserved by another event", len(conflicts)), nil)
	}

	logger.Info("ReservationService:Reserve",
		"event_id", event.ID,
		"host_id", hostID,
		"units", len(unitIDs),
	)
	return nil
}

func (s *ReservationService) Release(ctx context.Context, event *evententity.Event) *errors.AppError {
	if err := s.repo.ReleaseUnits(ctx, event.ID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to release timeslot units", err)
	}
	return nil
}

func (s *ReservationService) WithReservation(ctx context.Context, event *evententity.Event, mutate func(ctx context.Context) *errors.AppError) *errors.AppError {
	// Release strictly before mutate so the window is never reported as
	// reserved for two hosts at once.
	if appErr := s.Release(ctx, event); appErr != nil {
		return appErr
	}

	if appErr := mutate(ctx); appErr != nil {
		// Best effort restore of the pre-mutation reservation.
		if restoreErr := s.Reserve(ctx, event); restoreErr != nil {
			logger.Warn("ReservationService:WithReservation:RestoreFailed",
				"event_id", event.ID,
				"error", restoreErr,
			)
		}
		return appErr
	}

	return s.Reserve(ctx, event)
}

package service

import (
	"context"

	"go-scheduler-api/core/errors"
	"go-scheduler-api/modules/host/entity"
	"go-scheduler-api/modules/host/repository"
	tsentity "go-scheduler-api/modules/timeslot/entity"

	"github.com/google/uuid"
)

// HostService exposes host matching to callers (HTTP layer, repair
// orchestrator).
type HostService struct {
	repo repository.HostRepositoryInterface
	pool HostPoolInterface
}

// HostServiceInterface defines the service contract
type HostServiceInterface interface {
	GetHost(ctx context.Context, id uuid.UUID) (*entity.Host, *errors.AppError)
	ListHosts(ctx context.Context) ([]entity.Host, *errors.AppError)

	// FindHostsForEvent returns the ranked eligible hosts for the window,
	// best candidate first. Distinguishes "no host matches venue/type"
	// (ErrNoQualifiedHost) from "qualified hosts exist but none is free
	// within quota" (ErrNoAvailableHost).
	FindHostsForEvent(ctx context.Context, window tsentity.Window, venueID, eventTypeID uuid.UUID, durationMinutes int, withQuotaLimit bool) ([]entity.HostCandidate, *errors.AppError)
}

func NewHostService(repo repository.HostRepositoryInterface, pool HostPoolInterface) HostServiceInterface {
	return &HostService{repo: repo, pool: pool}
}

func (s *HostService) GetHost(ctx context.Context, id uuid.UUID) (*entity.Host, *errors.AppError) {
	host, err := s.repo.GetHostByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get host", err)
	}
	if host == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Host not found", nil)
	}
	return host, nil
}

func (s *HostService) ListHosts(ctx context.Context) ([]entity.Host, *errors.AppError) {
	hosts, err := s.repo.ListHosts(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list hosts", err)
	}
	return hosts, nil
}

func (s *HostService) FindHostsForEvent(ctx context.Context, window tsentity.Window, venueID, eventTypeID uuid.UUID, durationMinutes int, withQuotaLimit bool) ([]entity.HostCandidate, *errors.AppError) {
	candidates, appErr := s.pool.Candidates(ctx, window, venueID, eventTypeID, durationMinutes)
	if appErr != nil {
		return nil, appErr
	}
	if len(candidates) == 0 {
		return nil, errors.NewAppError(errors.ErrNoQualifiedHost, "No host matches the event's venue and type", nil)
	}

	ranked := Rank(candidates, withQuotaLimit)
	if len(ranked) == 0 {
		return nil, errors.NewAppError(errors.ErrNoAvailableHost, "No qualified host is available for the event window", nil)
	}
	return ranked, nil
}

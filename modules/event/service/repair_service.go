package service

import (
	"context"
	"fmt"

	"go-scheduler-api/core/errors"
	"go-scheduler-api/core/logger"
	"go-scheduler-api/modules/event/dto"
	"go-scheduler-api/modules/event/entity"
	"go-scheduler-api/modules/event/repository"
	hostentity "go-scheduler-api/modules/host/entity"
	hostservice "go-scheduler-api/modules/host/service"
	tsservice "go-scheduler-api/modules/timeslot/service"

	"github.com/google/uuid"
)

// AuditTrail records repair notes against a container. Satisfied by the
// container repository.
type AuditTrail interface {
	AppendAuditNote(ctx context.Context, containerID uuid.UUID, text string) error
}

// RepairService drives the detect -> rank -> reassign -> re-reserve cycle
// over a batch of events.
type RepairService struct {
	eventRepo   repository.EventRepositoryInterface
	issueRepo   repository.IssueRepositoryInterface
	detector    IssueDetectorInterface
	hostService hostservice.HostServiceInterface
	reservation tsservice.ReservationServiceInterface
	audit       AuditTrail
}

// RepairServiceInterface defines the orchestration contract
type RepairServiceInterface interface {
	// RepairBatch repairs the given events one by one; a failure on one
	// event never aborts the rest of the batch.
	RepairBatch(ctx context.Context, events []entity.Event) (*dto.RepairReport, *errors.AppError)

	// RepairWeek detects and repairs every event in one week of a container
	RepairWeek(ctx context.Context, containerID uuid.UUID, year, month, weekOfMonth int) (*dto.RepairReport, *errors.AppError)
}

func NewRepairService(
	eventRepo repository.EventRepositoryInterface,
	issueRepo repository.IssueRepositoryInterface,
	detector IssueDetectorInterface,
	hostService hostservice.HostServiceInterface,
	reservation tsservice.ReservationServiceInterface,
	audit AuditTrail,
) RepairServiceInterface {
	return &RepairService{
		eventRepo:   eventRepo,
		issueRepo:   issueRepo,
		detector:    detector,
		hostService: hostService,
		reservation: reservation,
		audit:       audit,
	}
}

func (s *RepairService) RepairWeek(ctx context.Context, containerID uuid.UUID, year, month, weekOfMonth int) (*dto.RepairReport, *errors.AppError) {
	events, err := s.eventRepo.ListByContainerWeek(ctx, containerID, year, month, weekOfMonth)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list container events", err)
	}

	for i := range events {
		if _, appErr := s.detector.DetectAndRecord(ctx, &events[i]); appErr != nil {
			// Detection failure on one event must not starve the rest.
			logger.Error("RepairService:RepairWeek:DetectFailed",
				"event_id", events[i].ID,
				"error", appErr,
			)
		}
	}

	return s.RepairBatch(ctx, events)
}

func (s *RepairService) RepairBatch(ctx context.Context, events []entity.Event) (*dto.RepairReport, *errors.AppError) {
	report := &dto.RepairReport{Notes: []string{}}

	for i := range events {
		s.repairOne(ctx, &events[i], report)
	}

	logger.Info("RepairService:RepairBatch",
		"events", len(events),
		"repaired", report.RepairedCount,
		"unrepaired", report.UnrepairedCount,
		"failures", len(report.Failures),
	)
	return report, nil
}

// repairOne runs the full cycle for a single event. Any failure is recorded
// and swallowed so the caller's loop continues with the next event.
//
// The event's open host-kind issues are all closed by one reassignment: the
// ranked list is computed once and the event is reserved exactly once, under
// the final host, so a multi-issue event can never end the pass holding
// units on two hosts.
func (s *RepairService) repairOne(ctx context.Context, event *entity.Event, report *dto.RepairReport) {
	issues, err := s.issueRepo.ListUnrepairedByEventID(ctx, event.ID)
	if err != nil {
		// The existing reservation has not been touched yet; leave it
		// standing rather than releasing an event we cannot repair.
		logger.Error("RepairService:repairOne:ListIssuesFailed", "event_id", event.ID, "error", err)
		report.Failures = append(report.Failures,
			fmt.Sprintf("event %s: listing open issues failed", event.ID))
		return
	}

	hostIssues := make([]entity.EventIssue, 0, len(issues))
	for _, issue := range issues {
		if issue.Kind.IsHostKind() {
			hostIssues = append(hostIssues, issue)
		}
	}
	if len(hostIssues) == 0 {
		return
	}

	// Undo the existing reservation so the current host's own units count
	// as free when candidates are re-evaluated.
	if appErr := s.reservation.Release(ctx, event); appErr != nil {
		logger.Error("RepairService:repairOne:ReleaseFailed", "event_id", event.ID, "error", appErr)
		report.Failures = append(report.Failures,
			fmt.Sprintf("event %s: releasing reservation failed", event.ID))
		return
	}

	// The host before the repair; the audit note describes the transition
	// away from it.
	previousHost := event.HostID

	ranked, appErr := s.hostService.FindHostsForEvent(ctx, event.Window(), event.VenueID, event.EventTypeID, event.DurationMinutes, true)
	if appErr != nil {
		switch appErr.Code {
		case errors.ErrNoQualifiedHost, errors.ErrNoAvailableHost:
			// Expected outcome, not an error: the issues stay unrepaired
			// and no audit note is written.
			report.UnrepairedCount++
		default:
			report.Failures = append(report.Failures,
				fmt.Sprintf("event %s: host matching failed: %s", event.ID, appErr.Message))
		}
		s.restoreReservation(ctx, event)
		return
	}

	if s.applyCandidates(ctx, event, hostIssues, ranked, previousHost, report) {
		return
	}

	report.UnrepairedCount++
	s.restoreReservation(ctx, event)
}

// restoreReservation re-reserves the event's unchanged assignment after a
// repair attempt that went nowhere. A conflict here is a partial batch
// failure: log it and move on.
func (s *RepairService) restoreReservation(ctx context.Context, event *entity.Event) {
	if appErr := s.reservation.Reserve(ctx, event); appErr != nil {
		logger.Warn("RepairService:restoreReservation:ReserveFailed",
			"event_id", event.ID,
			"error", appErr,
		)
	}
}

// applyCandidates walks the ranked list best-first, reserving under the
// first candidate that does not conflict. A conflicting candidate is skipped
// rather than silently given different units. On success every open
// host-kind issue closes against the one reassignment and the event counts
// as repaired once.
func (s *RepairService) applyCandidates(ctx context.Context, event *entity.Event, issues []entity.EventIssue, ranked []hostentity.HostCandidate, previousHost *uuid.UUID, report *dto.RepairReport) bool {
	original := event.HostID

	for _, candidate := range ranked {
		hostID := candidate.HostID
		event.HostID = &hostID

		if appErr := s.reservation.Reserve(ctx, event); appErr != nil {
			if appErr.Code == errors.ErrReservationConflict || appErr.Code == errors.ErrNoAvailableHost {
				// Raced with a concurrent assignment; try the next host.
				// The failed reserve mutated nothing, so no release is
				// needed before the next attempt.
				continue
			}
			logger.Error("RepairService:applyCandidates:ReserveFailed",
				"event_id", event.ID,
				"host_id", hostID,
				"error", appErr,
			)
			break
		}

		if _, err := s.eventRepo.UpdateEventHost(ctx, event.ID, event.HostID); err != nil {
			logger.Error("RepairService:applyCandidates:UpdateHostFailed", "event_id", event.ID, "error", err)
			if relErr := s.reservation.Release(ctx, event); relErr != nil {
				logger.Error("RepairService:applyCandidates:RollbackReleaseFailed", "event_id", event.ID, "error", relErr)
			}
			break
		}

		for _, issue := range issues {
			if _, err := s.issueRepo.UpdateIssueStatus(ctx, issue.ID, entity.IssueStatusRepaired); err != nil {
				logger.Error("RepairService:applyCandidates:UpdateIssueFailed", "issue_id", issue.ID, "error", err)
			}
		}

		note := describeRepair(event.ID, previousHost, hostID)
		if err := s.audit.AppendAuditNote(ctx, event.ContainerID, note); err != nil {
			logger.Error("RepairService:applyCandidates:AuditFailed", "event_id", event.ID, "error", err)
		}

		report.Notes = append(report.Notes, note)
		report.RepairedCount++
		return true
	}

	event.HostID = original
	return false
}

// describeRepair builds the audit note text, differentiating "no host
// before" from "host X before".
func describeRepair(eventID uuid.UUID, previousHost *uuid.UUID, newHost uuid.UUID) string {
	if previousHost == nil {
		return fmt.Sprintf("Repaired event %s: assigned host %s (no host before)", eventID, newHost)
	}
	return fmt.Sprintf("Repaired event %s: host %s before, reassigned to %s", eventID, *previousHost, newHost)
}

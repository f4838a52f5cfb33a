package service

import (
	"context"
	"fmt"

	"go-scheduler-api/core/errors"
	"go-scheduler-api/core/logger"
	"go-scheduler-api/core/utils"
	"go-scheduler-api/modules/event/entity"
	"go-scheduler-api/modules/event/repository"
	hostrepository "go-scheduler-api/modules/host/repository"
	tsrepository "go-scheduler-api/modules/timeslot/repository"

	"github.com/google/uuid"
)

// IssueDetector classifies an event against the fixed taxonomy of structural
// problems. Detection is a pure read; persisting the findings is a separate
// entry point.
type IssueDetector struct {
	hostRepo        hostrepository.HostRepositoryInterface
	timeslotRepo    tsrepository.TimeslotRepositoryInterface
	issueRepo       repository.IssueRepositoryInterface
	slotUnitMinutes int
}

// IssueDetectorInterface defines the detection contract
type IssueDetectorInterface interface {
	// Detect classifies the event and returns the found issues, all with
	// status unrepaired. Mutates nothing.
	Detect(ctx context.Context, event *entity.Event) ([]entity.EventIssue, *errors.AppError)

	// DetectAndRecord runs Detect and persists each finding whose kind is
	// not already open on the event.
	DetectAndRecord(ctx context.Context, event *entity.Event) ([]entity.EventIssue, *errors.AppError)
}

func NewIssueDetector(hostRepo hostrepository.HostRepositoryInterface, timeslotRepo tsrepository.TimeslotRepositoryInterface, issueRepo repository.IssueRepositoryInterface, slotUnitMinutes int) IssueDetectorInterface {
	return &IssueDetector{
		hostRepo:        hostRepo,
		timeslotRepo:    timeslotRepo,
		issueRepo:       issueRepo,
		slotUnitMinutes: slotUnitMinutes,
	}
}

func (d *IssueDetector) Detect(ctx context.Context, event *entity.Event) ([]entity.EventIssue, *errors.AppError) {
	var issues []entity.EventIssue

	if event.HostID == nil {
		issues = append(issues, newIssue(event.ID, entity.IssueHostMissing, "Event has no assigned host"))
		return issues, nil
	}
	hostID := *event.HostID

	host, err := d.hostRepo.GetHostByID(ctx, hostID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load host", err)
	}

	qualified := true
	if host == nil || !host.QualifiedForType(event.EventTypeID) {
		qualified = false
		issues = append(issues, newIssue(event.ID, entity.IssueHostNotQualifiedForType,
			fmt.Sprintf("Host %s is not qualified for the event type", hostID)))
	}
	if host == nil || !host.QualifiedForVenue(event.VenueID) {
		qualified = false
		issues = append(issues, newIssue(event.ID, entity.IssueHostNotQualifiedVenue,
			fmt.Sprintf("Host %s is not qualified for the venue", hostID)))
	}
	if !qualified {
		return issues, nil
	}

	// Qualified host: verify the window is fully backed by units reserved
	// under this event.
	window := event.Window()
	units, err := d.timeslotRepo.QueryTimeslots(ctx, []uuid.UUID{hostID}, event.VenueID, window.Start, window.End)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to query timeslots", err)
	}

	reserved := 0
	for _, u := range units {
		if u.Within(window) && u.IsReservedBy(event.ID) {
			reserved++
		}
	}
	required := utils.RequiredUnits(event.DurationMinutes, d.slotUnitMinutes)
	if reserved != required {
		issues = append(issues, newIssue(event.ID, entity.IssueHostNotAvailable,
			fmt.Sprintf("Host %s holds %d of %d units for the event window", hostID, reserved, required)))
	}

	return issues, nil
}

func (d *IssueDetector) DetectAndRecord(ctx context.Context, event *entity.Event) ([]entity.EventIssue, *errors.AppError) {
	found, appErr := d.Detect(ctx, event)
	if appErr != nil {
		return nil, appErr
	}

	open, err := d.issueRepo.ListUnrepairedByEventID(ctx, event.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list open issues", err)
	}
	openKinds := make(map[entity.IssueKind]bool, len(open))
	for _, issue := range open {
		openKinds[issue.Kind] = true
	}

	recorded := make([]entity.EventIssue, 0, len(found))
	for _, issue := range found {
		if openKinds[issue.Kind] {
			continue
		}
		created, err := d.issueRepo.CreateIssue(ctx, issue.EventID, issue.Kind, issue.Description)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to record issue", err)
		}
		recorded = append(recorded, *created)
	}

	if len(recorded) > 0 {
		logger.Info("IssueDetector:DetectAndRecord",
			"event_id", event.ID,
			"new_issues", len(recorded),
		)
	}
	return recorded, nil
}

func newIssue(eventID uuid.UUID, kind entity.IssueKind, description string) entity.EventIssue {
	return entity.EventIssue{
		EventID:     eventID,
		Kind:        kind,
		Status:      entity.IssueStatusUnrepaired,
		Description: description,
	}
}

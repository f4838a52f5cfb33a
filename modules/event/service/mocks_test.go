package service

import (
	"context"
	"sync"
	"time"

	"go-scheduler-api/core/errors"
	"go-scheduler-api/modules/event/entity"
	hostentity "go-scheduler-api/modules/host/entity"
	tsentity "go-scheduler-api/modules/timeslot/entity"

	"github.com/google/uuid"
)

type stubHostRepo struct {
	mu    sync.Mutex
	hosts map[uuid.UUID]*hostentity.Host
}

func newStubHostRepo(hosts ...*hostentity.Host) *stubHostRepo {
	r := &stubHostRepo{hosts: make(map[uuid.UUID]*hostentity.Host, len(hosts))}
	for _, h := range hosts {
		r.hosts[h.ID] = h
	}
	return r
}

func (r *stubHostRepo) GetHostByID(ctx context.Context, id uuid.UUID) (*hostentity.Host, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hosts[id], nil
}

func (r *stubHostRepo) ListHosts(ctx context.Context) ([]hostentity.Host, error) {
	return nil, nil
}

func (r *stubHostRepo) GetQualifiedHosts(ctx context.Context, venueID, eventTypeID uuid.UUID) ([]hostentity.Host, error) {
	return nil, nil
}

type stubTimeslotRepo struct {
	mu      sync.Mutex
	units   []tsentity.TimeslotUnit
	queries int
}

func (r *stubTimeslotRepo) QueryTimeslots(ctx context.Context, hostIDs []uuid.UUID, venueID uuid.UUID, windowStart, windowEnd time.Time) ([]tsentity.TimeslotUnit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries++
	return r.units, nil
}

func (r *stubTimeslotRepo) QueryByEvent(ctx context.Context, eventID uuid.UUID) ([]tsentity.TimeslotUnit, error) {
	return nil, nil
}

func (r *stubTimeslotRepo) ReserveUnits(ctx context.Context, unitIDs []uuid.UUID, eventID uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func (r *stubTimeslotRepo) ReleaseUnits(ctx context.Context, eventID uuid.UUID) error {
	return nil
}

// memIssueRepo keeps issues in memory with auto-assigned ids.
type memIssueRepo struct {
	mu      sync.Mutex
	issues  map[uuid.UUID]*entity.EventIssue
	listErr error
}

func newMemIssueRepo() *memIssueRepo {
	return &memIssueRepo{issues: make(map[uuid.UUID]*entity.EventIssue)}
}

func (r *memIssueRepo) CreateIssue(ctx context.Context, eventID uuid.UUID, kind entity.IssueKind, description string) (*entity.EventIssue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	issue := &entity.EventIssue{
		ID:          uuid.New(),
		EventID:     eventID,
		Kind:        kind,
		Status:      entity.IssueStatusUnrepaired,
		Description: description,
	}
	r.issues[issue.ID] = issue
	return issue, nil
}

func (r *memIssueRepo) UpdateIssueStatus(ctx context.Context, issueID uuid.UUID, status entity.IssueStatus) (*entity.EventIssue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	issue := r.issues[issueID]
	if issue != nil {
		issue.Status = status
	}
	return issue, nil
}

func (r *memIssueRepo) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.EventIssue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.EventIssue
	for _, issue := range r.issues {
		if issue.EventID == eventID {
			out = append(out, *issue)
		}
	}
	return out, nil
}

func (r *memIssueRepo) ListUnrepairedByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.EventIssue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []entity.EventIssue
	for _, issue := range r.issues {
		if issue.EventID == eventID && issue.Status == entity.IssueStatusUnrepaired {
			out = append(out, *issue)
		}
	}
	return out, nil
}

type stubEventRepo struct {
	mu          sync.Mutex
	events      []entity.Event
	hostUpdates map[uuid.UUID]*uuid.UUID
}

func newStubEventRepo(events ...entity.Event) *stubEventRepo {
	return &stubEventRepo{events: events, hostUpdates: make(map[uuid.UUID]*uuid.UUID)}
}

func (r *stubEventRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == id {
			ev := r.events[i]
			return &ev, nil
		}
	}
	return nil, nil
}

func (r *stubEventRepo) ListByContainerWeek(ctx context.Context, containerID uuid.UUID, year, month, weekOfMonth int) ([]entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Event{}, r.events...), nil
}

func (r *stubEventRepo) CountHostEvents(ctx context.Context, hostID uuid.UUID, year, month, weekOfMonth int) (int, error) {
	return 0, nil
}

func (r *stubEventRepo) UpdateEventHost(ctx context.Context, eventID uuid.UUID, hostID *uuid.UUID) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hostUpdates[eventID] = hostID
	return &entity.Event{ID: eventID, HostID: hostID}, nil
}

type hostServiceResponse struct {
	ranked []hostentity.HostCandidate
	appErr *errors.AppError
}

// stubHostService replays a fixed response, or a queue of per-call responses
// when queue is set.
type stubHostService struct {
	mu     sync.Mutex
	ranked []hostentity.HostCandidate
	appErr *errors.AppError
	queue  []hostServiceResponse
	calls  int
}

func (s *stubHostService) GetHost(ctx context.Context, id uuid.UUID) (*hostentity.Host, *errors.AppError) {
	return nil, nil
}

func (s *stubHostService) ListHosts(ctx context.Context) ([]hostentity.Host, *errors.AppError) {
	return nil, nil
}

func (s *stubHostService) FindHostsForEvent(ctx context.Context, window tsentity.Window, venueID, eventTypeID uuid.UUID, durationMinutes int, withQuotaLimit bool) ([]hostentity.HostCandidate, *errors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.queue) > 0 {
		resp := s.queue[0]
		s.queue = s.queue[1:]
		return resp.ranked, resp.appErr
	}
	if s.appErr != nil {
		return nil, s.appErr
	}
	return s.ranked, nil
}

// stubReservation records reserve/release calls, simulates conflicts for a
// configurable set of hosts, and tracks which hosts each event currently
// holds units at so tests can assert an event never ends up reserved on two
// hosts at once.
type stubReservation struct {
	mu            sync.Mutex
	conflictHosts map[uuid.UUID]bool
	reserves      []uuid.UUID                      // host ids, in call order
	releases      []uuid.UUID                      // event ids, in call order
	held          map[uuid.UUID]map[uuid.UUID]bool // event id -> host ids holding units
}

func newStubReservation() *stubReservation {
	return &stubReservation{
		conflictHosts: make(map[uuid.UUID]bool),
		held:          make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (s *stubReservation) Reserve(ctx context.Context, event *entity.Event) *errors.AppError {
	s.mu.Lock()
	defer s.mu.Unlock()
	if event.HostID == nil {
		return nil
	}
	if s.conflictHosts[*event.HostID] {
		return errors.NewAppError(errors.ErrReservationConflict, "unit already reserved by another event", nil)
	}
	s.reserves = append(s.reserves, *event.HostID)
	if s.held[event.ID] == nil {
		s.held[event.ID] = make(map[uuid.UUID]bool)
	}
	s.held[event.ID][*event.HostID] = true
	return nil
}

func (s *stubReservation) Release(ctx context.Context, event *entity.Event) *errors.AppError {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releases = append(s.releases, event.ID)
	delete(s.held, event.ID)
	return nil
}

// hostsHolding returns how many distinct hosts currently hold units for the
// event.
func (s *stubReservation) hostsHolding(eventID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.held[eventID])
}

func (s *stubReservation) WithReservation(ctx context.Context, event *entity.Event, mutate func(ctx context.Context) *errors.AppError) *errors.AppError {
	if appErr := s.Release(ctx, event); appErr != nil {
		return appErr
	}
	if appErr := mutate(ctx); appErr != nil {
		return appErr
	}
	return s.Reserve(ctx, event)
}

type memAudit struct {
	mu    sync.Mutex
	notes []string
}

func (a *memAudit) AppendAuditNote(ctx context.Context, containerID uuid.UUID, text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notes = append(a.notes, text)
	return nil
}

type stubDetector struct {
	mu     sync.Mutex
	byKind map[uuid.UUID][]entity.EventIssue
	calls  int
}

func (d *stubDetector) Detect(ctx context.Context, event *entity.Event) ([]entity.EventIssue, *errors.AppError) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.byKind[event.ID], nil
}

func (d *stubDetector) DetectAndRecord(ctx context.Context, event *entity.Event) ([]entity.EventIssue, *errors.AppError) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	return d.byKind[event.ID], nil
}

package store

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"pilgrimpath/types"

	"github.com/google/uuid"
)

var (
	// ErrReportNotFound is returned when an admin operation names a report
	// id that does not exist. Store state is left untouched.
	ErrReportNotFound = errors.New("report not found")

	// ErrInvalidInput is returned when a submission carries a value outside
	// the defined enumerations.
	ErrInvalidInput = errors.New("invalid input")
)

// Store owns all report, action, and metrics state and is the only source
// of change notifications. All mutations are serialized behind a single
// mutex; events are dispatched after the lock is released so listeners may
// call back into the store.
type Store struct {
	mu      sync.Mutex
	reports []types.Report // newest first
	actions []types.AdminAction
	metrics types.LiveMetrics
	subs    map[int]func(types.Event)
	nextSub int
	seq     int64
}

// NewStore builds an empty store around an initial metrics snapshot. The
// areas map is copied; the caller keeps no handle into store state.
func NewStore(initial types.LiveMetrics) *Store {
	return &Store{
		metrics: initial.Clone(),
		subs:    make(map[int]func(types.Event)),
	}
}

// SubmitInput carries the caller-supplied report fields. ID, timestamp, and
// the initial open status are assigned by the store.
type SubmitInput struct {
	Type        types.ReportType `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	Priority    types.Priority   `json:"priority"`
	Reporter    types.Reporter   `json:"reporter"`
	Attachments []string         `json:"attachments,omitempty"`
}

// SubmitReport validates the submission, assigns a fresh id and timestamp,
// inserts the report at the front of the ordering, and emits newReport.
func (s *Store) SubmitReport(in SubmitInput) (types.Report, error) {
	if !in.Type.Valid() {
		return types.Report{}, fmt.Errorf("%w: report type %q", ErrInvalidInput, in.Type)
	}
	if !in.Priority.Valid() {
		return types.Report{}, fmt.Errorf("%w: priority %q", ErrInvalidInput, in.Priority)
	}
	if !in.Reporter.Role.Valid() {
		return types.Report{}, fmt.Errorf("%w: reporter role %q", ErrInvalidInput, in.Reporter.Role)
	}

	s.mu.Lock()
	now := time.Now()
	s.seq++
	report := types.Report{
		ID:          fmt.Sprintf("%d-%d", now.UnixMilli(), s.seq),
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Priority:    in.Priority,
		Status:      types.StatusOpen,
		Timestamp:   now,
		Reporter:    in.Reporter,
		Attachments: append([]string(nil), in.Attachments...),
	}
	s.reports = append([]types.Report{report}, s.reports...)
	s.metrics.ActiveIncidents = s.countActiveLocked()
	s.mu.Unlock()

	s.publish(types.NewReportEvent{Report: report})
	return report, nil
}

// UpdateReportStatus sets the report's status and appends the paired audit
// action: resolved when the new status is resolved, acknowledged otherwise.
// Emits reportUpdated. Returns ErrReportNotFound for an unknown id.
func (s *Store) UpdateReportStatus(reportID string, status types.ReportStatus, notes string) error {
	if !status.Valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidInput, status)
	}

	s.mu.Lock()
	idx := s.findLocked(reportID)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrReportNotFound, reportID)
	}
	s.reports[idx].Status = status

	actionType := types.ActionAcknowledged
	if status == types.StatusResolved {
		actionType = types.ActionResolved
	}
	action := types.AdminAction{
		ID:        uuid.NewString(),
		ReportID:  reportID,
		Action:    actionType,
		Notes:     notes,
		Timestamp: time.Now(),
	}
	s.actions = append(s.actions, action)
	s.metrics.ActiveIncidents = s.countActiveLocked()
	report := s.reports[idx]
	s.mu.Unlock()

	s.publish(types.ReportUpdatedEvent{Report: report, Action: action})
	return nil
}

// AssignReport forces the report to in-progress regardless of its prior
// status; assigning a resolved report reopens it. Appends an assigned action
// and emits reportAssigned. Returns ErrReportNotFound for an unknown id.
func (s *Store) AssignReport(reportID, assignedTo, notes string) error {
	s.mu.Lock()
	idx := s.findLocked(reportID)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrReportNotFound, reportID)
	}
	s.reports[idx].Status = types.StatusInProgress

	action := types.AdminAction{
		ID:         uuid.NewString(),
		ReportID:   reportID,
		Action:     types.ActionAssigned,
		Notes:      notes,
		AssignedTo: assignedTo,
		Timestamp:  time.Now(),
	}
	s.actions = append(s.actions, action)
	s.metrics.ActiveIncidents = s.countActiveLocked()
	report := s.reports[idx]
	s.mu.Unlock()

	s.publish(types.ReportAssignedEvent{Report: report, Action: action})
	return nil
}

// Filter narrows a report listing. Nil fields impose no constraint; set
// fields must all match.
type Filter struct {
	Status   types.ReportStatus
	Type     types.ReportType
	Priority types.Priority
}

// Reports returns a filtered snapshot sorted newest first. The returned
// slice and its contents are copies.
func (s *Store) Reports(filter Filter) []types.Report {
	s.mu.Lock()
	out := make([]types.Report, 0, len(s.reports))
	for _, r := range s.reports {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.Type != "" && r.Type != filter.Type {
			continue
		}
		if filter.Priority != "" && r.Priority != filter.Priority {
			continue
		}
		r.Attachments = append([]string(nil), r.Attachments...)
		out = append(out, r)
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Metrics returns a deep copy of the current snapshot.
func (s *Store) Metrics() types.LiveMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics.Clone()
}

// RecentActions returns up to limit actions, newest first. A non-positive
// limit defaults to 10.
func (s *Store) RecentActions(limit int) []types.AdminAction {
	if limit <= 0 {
		limit = 10
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.AdminAction, 0, limit)
	for i := len(s.actions) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.actions[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// BroadcastEmergencyAlert constructs an alert record and emits it. Report
// and action state are untouched.
func (s *Store) BroadcastEmergencyAlert(message, area string) types.EmergencyAlert {
	alert := types.EmergencyAlert{
		ID:        uuid.NewString(),
		Type:      "emergency-broadcast",
		Message:   message,
		Area:      area,
		Timestamp: time.Now(),
	}
	s.publish(types.EmergencyAlertEvent{Alert: alert})
	return alert
}

// RedirectCrowdFlow constructs a redirection record and emits it. The areas
// table is not touched; occupancy is driven by the telemetry feed.
func (s *Store) RedirectCrowdFlow(fromArea, toArea, reason string) types.CrowdRedirection {
	redirection := types.CrowdRedirection{
		ID:        uuid.NewString(),
		Type:      "crowd-redirection",
		FromArea:  fromArea,
		ToArea:    toArea,
		Reason:    reason,
		Timestamp: time.Now(),
	}
	s.publish(types.CrowdRedirectionEvent{Redirection: redirection})
	return redirection
}

// Subscribe registers a listener for every store event and returns its
// unsubscribe function. Unsubscribing twice is harmless.
func (s *Store) Subscribe(listener func(types.Event)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// RefreshMetrics advances the snapshot from the telemetry feed: crowd count
// random walk (floored at zero), area counts clamped to capacity with their
// levels recomputed, active incidents recounted. Emits metricsUpdate.
func (s *Store) RefreshMetrics(feed TelemetryFeed) types.LiveMetrics {
	s.mu.Lock()
	s.metrics.CrowdCount += feed.CrowdDelta()
	if s.metrics.CrowdCount < 0 {
		s.metrics.CrowdCount = 0
	}
	s.metrics.ActiveIncidents = s.countActiveLocked()

	for name, area := range s.metrics.AreasStatus {
		area.Count += feed.AreaDelta(name)
		if area.Count < 0 {
			area.Count = 0
		}
		if area.Count > area.Capacity {
			area.Count = area.Capacity
		}
		if area.Capacity > 0 {
			area.Status = types.LevelForRatio(float64(area.Count) / float64(area.Capacity))
		}
		s.metrics.AreasStatus[name] = area
	}
	snapshot := s.metrics.Clone()
	s.mu.Unlock()

	s.publish(types.MetricsUpdateEvent{Metrics: snapshot})
	return snapshot
}

func (s *Store) findLocked(reportID string) int {
	for i := range s.reports {
		if s.reports[i].ID == reportID {
			return i
		}
	}
	return -1
}

func (s *Store) countActiveLocked() int {
	n := 0
	for i := range s.reports {
		if s.reports[i].Status != types.StatusResolved {
			n++
		}
	}
	return n
}

// publish delivers the event to a snapshot of the registry in registration
// order. A panicking listener is logged and skipped; the rest still run.
func (s *Store) publish(ev types.Event) {
	s.mu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]func(types.Event), 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.subs[id])
	}
	s.mu.Unlock()

	for _, listener := range listeners {
		notify(listener, ev)
	}
}

func notify(listener func(types.Event), ev types.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("store: listener panic on %s event: %v", ev.Kind(), r)
		}
	}()
	listener(ev)
}

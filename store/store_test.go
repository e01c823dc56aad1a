package store

import (
	"errors"
	"testing"

	"pilgrimpath/types"
)

func testMetrics() types.LiveMetrics {
	return types.LiveMetrics{
		CrowdCount: 1000,
		AreasStatus: map[string]types.AreaStatus{
			"ram-ghat":      {Count: 500, Capacity: 1000, Status: types.OccupancyMedium},
			"main-entrance": {Count: 100, Capacity: 1000, Status: types.OccupancyLow},
		},
	}
}

func submitInput(t types.ReportType, p types.Priority) SubmitInput {
	return SubmitInput{
		Type:        t,
		Title:       "title",
		Description: "description",
		Location:    "Ram Ghat",
		Priority:    p,
		Reporter:    types.Reporter{ID: "user1", Role: types.RoleVisitor},
	}
}

func TestSubmitReportAssignsUniqueIDs(t *testing.T) {
	s := NewStore(testMetrics())
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		report, err := s.SubmitReport(submitInput(types.ReportIncident, types.PriorityLow))
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if report.ID == "" {
			t.Fatalf("empty id")
		}
		if seen[report.ID] {
			t.Fatalf("duplicate id %s", report.ID)
		}
		seen[report.ID] = true
	}
}

func TestSubmitReportAppearsFirstAndOpen(t *testing.T) {
	s := NewStore(testMetrics())
	if _, err := s.SubmitReport(submitInput(types.ReportFeedback, types.PriorityLow)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	latest, err := s.SubmitReport(submitInput(types.ReportIncident, types.PriorityHigh))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	reports := s.Reports(Filter{})
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].ID != latest.ID {
		t.Fatalf("newest report not first")
	}
	if reports[0].Status != types.StatusOpen {
		t.Fatalf("new report status = %s, want open", reports[0].Status)
	}
}

func TestSubmitReportRejectsInvalidEnums(t *testing.T) {
	s := NewStore(testMetrics())

	bad := submitInput("party", types.PriorityLow)
	if _, err := s.SubmitReport(bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for type, got %v", err)
	}

	bad = submitInput(types.ReportIncident, "urgent")
	if _, err := s.SubmitReport(bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for priority, got %v", err)
	}

	bad = submitInput(types.ReportIncident, types.PriorityLow)
	bad.Reporter.Role = "stranger"
	if _, err := s.SubmitReport(bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for role, got %v", err)
	}

	if got := len(s.Reports(Filter{})); got != 0 {
		t.Fatalf("invalid submissions stored: %d", got)
	}
}

func TestActiveIncidentsTracksNonResolved(t *testing.T) {
	s := NewStore(testMetrics())

	a, _ := s.SubmitReport(submitInput(types.ReportIncident, types.PriorityHigh))
	b, _ := s.SubmitReport(submitInput(types.ReportEmergency, types.PriorityCritical))
	if got := s.Metrics().ActiveIncidents; got != 2 {
		t.Fatalf("active = %d, want 2", got)
	}

	if err := s.UpdateReportStatus(a.ID, types.StatusResolved, ""); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got := s.Metrics().ActiveIncidents; got != 1 {
		t.Fatalf("active after resolve = %d, want 1", got)
	}

	// Reopening by assignment counts again.
	if err := s.AssignReport(a.ID, "team-1", ""); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if got := s.Metrics().ActiveIncidents; got != 2 {
		t.Fatalf("active after reopen = %d, want 2", got)
	}
	_ = b
}

func TestUpdateReportStatusResolved(t *testing.T) {
	s := NewStore(testMetrics())
	report, _ := s.SubmitReport(submitInput(types.ReportIncident, types.PriorityMedium))

	if err := s.UpdateReportStatus(report.ID, types.StatusResolved, "handled"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	reports := s.Reports(Filter{})
	if reports[0].Status != types.StatusResolved {
		t.Fatalf("status = %s, want resolved", reports[0].Status)
	}

	actions := s.RecentActions(10)
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	if actions[0].Action != types.ActionResolved {
		t.Fatalf("action = %s, want resolved", actions[0].Action)
	}
	if actions[0].ReportID != report.ID {
		t.Fatalf("action reportId = %s, want %s", actions[0].ReportID, report.ID)
	}
}

func TestUpdateReportStatusNonResolvedAcknowledges(t *testing.T) {
	s := NewStore(testMetrics())
	report, _ := s.SubmitReport(submitInput(types.ReportIncident, types.PriorityMedium))

	if err := s.UpdateReportStatus(report.ID, types.StatusInProgress, ""); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	actions := s.RecentActions(10)
	if len(actions) != 1 || actions[0].Action != types.ActionAcknowledged {
		t.Fatalf("expected one acknowledged action, got %+v", actions)
	}
}

func TestUnknownReportIDLeavesStateUntouched(t *testing.T) {
	s := NewStore(testMetrics())
	s.SubmitReport(submitInput(types.ReportIncident, types.PriorityLow))

	if err := s.UpdateReportStatus("nope", types.StatusResolved, ""); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
	if err := s.AssignReport("nope", "team-1", ""); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}

	if got := len(s.RecentActions(10)); got != 0 {
		t.Fatalf("actions appended for unknown id: %d", got)
	}
	reports := s.Reports(Filter{})
	if len(reports) != 1 || reports[0].Status != types.StatusOpen {
		t.Fatalf("report list changed: %+v", reports)
	}
}

func TestAssignReopensResolvedReport(t *testing.T) {
	s := NewStore(testMetrics())
	report, _ := s.SubmitReport(submitInput(types.ReportIncident, types.PriorityHigh))
	if err := s.UpdateReportStatus(report.ID, types.StatusResolved, ""); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if err := s.AssignReport(report.ID, "team-1", "back to work"); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	reports := s.Reports(Filter{})
	if reports[0].Status != types.StatusInProgress {
		t.Fatalf("status = %s, want in-progress", reports[0].Status)
	}
	actions := s.RecentActions(10)
	if actions[0].Action != types.ActionAssigned || actions[0].AssignedTo != "team-1" {
		t.Fatalf("unexpected latest action: %+v", actions[0])
	}
}

func TestReportsFilterConjunction(t *testing.T) {
	s := NewStore(testMetrics())

	mk := func(rt types.ReportType, p types.Priority, status types.ReportStatus) types.Report {
		r, err := s.SubmitReport(submitInput(rt, p))
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if status != types.StatusOpen {
			if err := s.UpdateReportStatus(r.ID, status, ""); err != nil {
				t.Fatalf("update failed: %v", err)
			}
		}
		return r
	}

	mk(types.ReportIncident, types.PriorityLow, types.StatusResolved)
	mk(types.ReportIncident, types.PriorityHigh, types.StatusOpen)
	mk(types.ReportFeedback, types.PriorityLow, types.StatusResolved)
	mk(types.ReportEmergency, types.PriorityCritical, types.StatusInProgress)
	want := mk(types.ReportIncident, types.PriorityMedium, types.StatusResolved)
	mk(types.ReportBooking, types.PriorityLow, types.StatusOpen)

	got := s.Reports(Filter{Status: types.StatusResolved, Type: types.ReportIncident})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	for _, r := range got {
		if r.Status != types.StatusResolved || r.Type != types.ReportIncident {
			t.Fatalf("filter leaked report %+v", r)
		}
	}
	// Newest of the two matches first.
	if got[0].ID != want.ID {
		t.Fatalf("expected %s first, got %s", want.ID, got[0].ID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Timestamp.After(got[i-1].Timestamp) {
			t.Fatalf("reports not sorted newest first")
		}
	}
}

func TestReportsReturnsCopies(t *testing.T) {
	s := NewStore(testMetrics())
	in := submitInput(types.ReportIncident, types.PriorityLow)
	in.Attachments = []string{"photo-1"}
	report, _ := s.SubmitReport(in)

	out := s.Reports(Filter{})
	out[0].Status = types.StatusResolved
	out[0].Attachments[0] = "tampered"

	fresh := s.Reports(Filter{})
	if fresh[0].Status != types.StatusOpen {
		t.Fatalf("caller mutated store status")
	}
	if fresh[0].Attachments[0] != "photo-1" {
		t.Fatalf("caller mutated store attachments")
	}

	m := s.Metrics()
	m.AreasStatus["ram-ghat"] = types.AreaStatus{Count: 0, Capacity: 1, Status: types.OccupancyLow}
	if s.Metrics().AreasStatus["ram-ghat"].Capacity != 1000 {
		t.Fatalf("caller mutated store metrics map")
	}
	_ = report
}

func TestRecentActionsLimit(t *testing.T) {
	s := NewStore(testMetrics())
	report, _ := s.SubmitReport(submitInput(types.ReportIncident, types.PriorityLow))
	for i := 0; i < 15; i++ {
		if err := s.UpdateReportStatus(report.ID, types.StatusInProgress, ""); err != nil {
			t.Fatalf("update failed: %v", err)
		}
	}

	if got := len(s.RecentActions(0)); got != 10 {
		t.Fatalf("default limit: got %d, want 10", got)
	}
	if got := len(s.RecentActions(5)); got != 5 {
		t.Fatalf("limit 5: got %d", got)
	}
	actions := s.RecentActions(15)
	for i := 1; i < len(actions); i++ {
		if actions[i].Timestamp.After(actions[i-1].Timestamp) {
			t.Fatalf("actions not newest first")
		}
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	s := NewStore(testMetrics())

	var first, second []types.EventKind
	unsubFirst := s.Subscribe(func(ev types.Event) { first = append(first, ev.Kind()) })
	unsubSecond := s.Subscribe(func(ev types.Event) { second = append(second, ev.Kind()) })

	s.SubmitReport(submitInput(types.ReportIncident, types.PriorityLow))
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("both listeners should have one event: %d, %d", len(first), len(second))
	}

	unsubFirst()
	unsubFirst() // idempotent

	s.BroadcastEmergencyAlert("evacuate", "ram-ghat")
	if len(first) != 1 {
		t.Fatalf("unsubscribed listener still notified")
	}
	if len(second) != 2 {
		t.Fatalf("remaining listener missed event: %d", len(second))
	}
	if second[1] != types.EventEmergencyAlert {
		t.Fatalf("event kind = %s, want emergencyAlert", second[1])
	}
	unsubSecond()
}

func TestPanickingListenerDoesNotBlockOthers(t *testing.T) {
	s := NewStore(testMetrics())

	s.Subscribe(func(types.Event) { panic("bad listener") })
	var got int
	s.Subscribe(func(types.Event) { got++ })

	if _, err := s.SubmitReport(submitInput(types.ReportIncident, types.PriorityLow)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if got != 1 {
		t.Fatalf("second listener not notified after panic: %d", got)
	}

	// Store state survived the panic.
	if len(s.Reports(Filter{})) != 1 {
		t.Fatalf("report lost")
	}
}

func TestBroadcastAndRedirectDoNotMutateState(t *testing.T) {
	s := NewStore(testMetrics())
	s.SubmitReport(submitInput(types.ReportIncident, types.PriorityLow))
	before := s.Metrics()

	alert := s.BroadcastEmergencyAlert("stampede risk", "parking-areas")
	if alert.Type != "emergency-broadcast" || alert.ID == "" {
		t.Fatalf("bad alert record: %+v", alert)
	}

	redirection := s.RedirectCrowdFlow("ram-ghat", "main-entrance", "congestion")
	if redirection.Type != "crowd-redirection" || redirection.FromArea != "ram-ghat" {
		t.Fatalf("bad redirection record: %+v", redirection)
	}

	if len(s.Reports(Filter{})) != 1 || len(s.RecentActions(10)) != 0 {
		t.Fatalf("broadcast/redirect touched report state")
	}
	after := s.Metrics()
	if after.AreasStatus["ram-ghat"] != before.AreasStatus["ram-ghat"] {
		t.Fatalf("redirect touched area table")
	}
}

func TestAssignmentScenario(t *testing.T) {
	s := NewStore(testMetrics())

	var events []types.Event
	unsub := s.Subscribe(func(ev types.Event) { events = append(events, ev) })
	defer unsub()

	a, err := s.SubmitReport(submitInput(types.ReportEmergency, types.PriorityCritical))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := s.AssignReport(a.ID, "team-1", ""); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	assigned, ok := events[len(events)-1].(types.ReportAssignedEvent)
	if !ok {
		t.Fatalf("expected ReportAssignedEvent, got %T", events[len(events)-1])
	}
	if assigned.Report.ID != a.ID || assigned.Report.Status != types.StatusInProgress {
		t.Fatalf("assigned event carries %+v", assigned.Report)
	}
	if assigned.Action.Action != types.ActionAssigned || assigned.Action.AssignedTo != "team-1" {
		t.Fatalf("assigned event action: %+v", assigned.Action)
	}

	activeBefore := s.Metrics().ActiveIncidents
	if err := s.UpdateReportStatus(a.ID, types.StatusResolved, "done"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got := s.Metrics().ActiveIncidents; got != activeBefore-1 {
		t.Fatalf("active incidents = %d, want %d", got, activeBefore-1)
	}
	if got := len(s.RecentActions(10)); got != 2 {
		t.Fatalf("expected 2 actions, got %d", got)
	}
}

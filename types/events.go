package types

// EventKind discriminates the store's outbound events.
type EventKind string

const (
	EventNewReport        EventKind = "newReport"
	EventReportUpdated    EventKind = "reportUpdated"
	EventReportAssigned   EventKind = "reportAssigned"
	EventMetricsUpdate    EventKind = "metricsUpdate"
	EventEmergencyAlert   EventKind = "emergencyAlert"
	EventCrowdRedirection EventKind = "crowdRedirection"
)

// Event is the tagged union of everything the store emits. Each concrete
// payload carries copies of store state, safe to retain.
type Event interface {
	Kind() EventKind
}

type NewReportEvent struct {
	Report Report `json:"report"`
}

type ReportUpdatedEvent struct {
	Report Report      `json:"report"`
	Action AdminAction `json:"action"`
}

type ReportAssignedEvent struct {
	Report Report      `json:"report"`
	Action AdminAction `json:"action"`
}

type MetricsUpdateEvent struct {
	Metrics LiveMetrics `json:"metrics"`
}

type EmergencyAlertEvent struct {
	Alert EmergencyAlert `json:"alert"`
}

type CrowdRedirectionEvent struct {
	Redirection CrowdRedirection `json:"redirection"`
}

func (NewReportEvent) Kind() EventKind        { return EventNewReport }
func (ReportUpdatedEvent) Kind() EventKind    { return EventReportUpdated }
func (ReportAssignedEvent) Kind() EventKind   { return EventReportAssigned }
func (MetricsUpdateEvent) Kind() EventKind    { return EventMetricsUpdate }
func (EmergencyAlertEvent) Kind() EventKind   { return EventEmergencyAlert }
func (CrowdRedirectionEvent) Kind() EventKind { return EventCrowdRedirection }

package types

import "time"

type ReportType string

const (
	ReportIncident  ReportType = "incident"
	ReportBooking   ReportType = "booking"
	ReportEmergency ReportType = "emergency"
	ReportFeedback  ReportType = "feedback"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type ReportStatus string

const (
	StatusOpen       ReportStatus = "open"
	StatusInProgress ReportStatus = "in-progress"
	StatusResolved   ReportStatus = "resolved"
)

type Role string

const (
	RoleVisitor   Role = "visitor"
	RoleSecurity  Role = "security"
	RoleVolunteer Role = "volunteer"
	RoleMedical   Role = "medical"
	RoleVendor    Role = "vendor"
)

// Reporter identifies who filed a report.
type Reporter struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// Report is a single field-submitted record. ID and Timestamp are assigned
// by the store at submission and never change afterwards.
type Report struct {
	ID          string       `json:"id"`
	Type        ReportType   `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Priority    Priority     `json:"priority"`
	Status      ReportStatus `json:"status"`
	Timestamp   time.Time    `json:"timestamp"`
	Reporter    Reporter     `json:"reporter"`
	Attachments []string     `json:"attachments,omitempty"`
}

type ActionType string

const (
	ActionAcknowledged ActionType = "acknowledged"
	ActionAssigned     ActionType = "assigned"
	ActionResolved     ActionType = "resolved"
	ActionEscalated    ActionType = "escalated"
)

// AdminAction is an append-only audit entry. Every status change on a report
// is paired with exactly one action recording it.
type AdminAction struct {
	ID         string     `json:"id"`
	ReportID   string     `json:"reportId"`
	Action     ActionType `json:"action"`
	Notes      string     `json:"notes"`
	AssignedTo string     `json:"assignedTo,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// EmergencyAlert is the record returned and broadcast by an emergency
// broadcast. It does not touch report or action state.
type EmergencyAlert struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // always "emergency-broadcast"
	Message   string    `json:"message"`
	Area      string    `json:"area,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// CrowdRedirection is the record returned and broadcast by a crowd-flow
// redirect. Informational only; area occupancy is driven by telemetry.
type CrowdRedirection struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // always "crowd-redirection"
	FromArea  string    `json:"fromArea"`
	ToArea    string    `json:"toArea"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

func (t ReportType) Valid() bool {
	switch t {
	case ReportIncident, ReportBooking, ReportEmergency, ReportFeedback:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

func (r Role) Valid() bool {
	switch r {
	case RoleVisitor, RoleSecurity, RoleVolunteer, RoleMedical, RoleVendor:
		return true
	}
	return false
}

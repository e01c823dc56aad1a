package store

import (
	"fmt"
	"time"

	"pilgrimpath/types"
)

// DemoMetrics is the launch snapshot for the Ujjain gathering: the five
// monitored zones with their counts and capacities, plus the headline
// scalars shown on the dashboard.
func DemoMetrics() types.LiveMetrics {
	return types.LiveMetrics{
		CrowdCount:       12450,
		ActiveIncidents:  0,
		ResponseTime:     4.2,
		ResolutionRate:   94,
		UserSatisfaction: 4.8,
		AreasStatus: map[string]types.AreaStatus{
			"mahakaleshwar-temple": {Count: 15000, Capacity: 20000, Status: types.OccupancyHigh},
			"ram-ghat":             {Count: 8500, Capacity: 12000, Status: types.OccupancyMedium},
			"main-entrance":        {Count: 3200, Capacity: 8000, Status: types.OccupancyLow},
			"food-courts":          {Count: 12000, Capacity: 15000, Status: types.OccupancyHigh},
			"parking-areas":        {Count: 18000, Capacity: 20000, Status: types.OccupancyCritical},
		},
	}
}

// SeedDemoReports loads a handful of sample reports so the dashboard is not
// empty on a fresh start. Timestamps are backdated; no events are emitted.
func (s *Store) SeedDemoReports() {
	now := time.Now()
	samples := []types.Report{
		{
			Type:        types.ReportEmergency,
			Title:       "Medical Emergency",
			Description: "Person collapsed near temple entrance",
			Location:    "Mahakaleshwar Temple - Main Gate",
			Priority:    types.PriorityCritical,
			Status:      types.StatusInProgress,
			Timestamp:   now.Add(-10 * time.Minute),
			Reporter:    types.Reporter{ID: "user123", Role: types.RoleVisitor},
		},
		{
			Type:        types.ReportIncident,
			Title:       "Lost Child",
			Description: "8-year-old child separated from family",
			Location:    "Ram Ghat Area",
			Priority:    types.PriorityHigh,
			Status:      types.StatusOpen,
			Timestamp:   now.Add(-25 * time.Minute),
			Reporter:    types.Reporter{ID: "security456", Role: types.RoleSecurity},
		},
		{
			Type:        types.ReportIncident,
			Title:       "Crowd Control Needed",
			Description: "Heavy congestion at Gate 2",
			Location:    "Gate 2 - Main Entrance",
			Priority:    types.PriorityMedium,
			Status:      types.StatusResolved,
			Timestamp:   now.Add(-time.Hour),
			Reporter:    types.Reporter{ID: "volunteer789", Role: types.RoleVolunteer},
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range samples {
		s.seq++
		samples[i].ID = fmt.Sprintf("%d-%d", samples[i].Timestamp.UnixMilli(), s.seq)
	}
	s.reports = append(samples, s.reports...)
	s.metrics.ActiveIncidents = s.countActiveLocked()
}

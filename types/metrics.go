package types

// Area occupancy thresholds as a fraction of capacity.
const (
	criticalRatio = 0.9
	highRatio     = 0.7
	mediumRatio   = 0.4
)

type OccupancyLevel string

const (
	OccupancyLow      OccupancyLevel = "low"
	OccupancyMedium   OccupancyLevel = "medium"
	OccupancyHigh     OccupancyLevel = "high"
	OccupancyCritical OccupancyLevel = "critical"
)

// AreaStatus is the live occupancy picture for one named zone.
type AreaStatus struct {
	Count    int            `json:"count"`
	Capacity int            `json:"capacity"`
	Status   OccupancyLevel `json:"status"`
}

// LiveMetrics is the derived operational snapshot. ActiveIncidents is always
// recomputed from report state, never set directly.
type LiveMetrics struct {
	CrowdCount       int                   `json:"crowdCount"`
	ActiveIncidents  int                   `json:"activeIncidents"`
	ResponseTime     float64               `json:"responseTime"`
	ResolutionRate   float64               `json:"resolutionRate"`
	UserSatisfaction float64               `json:"userSatisfaction"`
	AreasStatus      map[string]AreaStatus `json:"areasStatus"`
}

// LevelForRatio maps occupancy ratio to a level: >0.9 critical, >0.7 high,
// >0.4 medium, else low.
func LevelForRatio(ratio float64) OccupancyLevel {
	switch {
	case ratio > criticalRatio:
		return OccupancyCritical
	case ratio > highRatio:
		return OccupancyHigh
	case ratio > mediumRatio:
		return OccupancyMedium
	default:
		return OccupancyLow
	}
}

// Clone returns a deep copy so callers cannot reach the store's map.
func (m LiveMetrics) Clone() LiveMetrics {
	out := m
	out.AreasStatus = make(map[string]AreaStatus, len(m.AreasStatus))
	for name, area := range m.AreasStatus {
		out.AreasStatus[name] = area
	}
	return out
}

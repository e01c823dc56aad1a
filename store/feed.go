package store

import "math/rand"

// Random-walk step ranges for the simulated feed.
const (
	crowdWalkSpan = 20  // crowd delta drawn from [-10, +9]
	areaWalkSpan  = 100 // area delta drawn from [-50, +49]
)

// TelemetryFeed supplies occupancy deltas for a metrics refresh. The
// simulation below stands in for a real sensor/ticketing ingestion feed;
// swapping in a real source changes nothing for consumers.
type TelemetryFeed interface {
	CrowdDelta() int
	AreaDelta(area string) int
}

// SimulatedFeed drives the metrics random walk.
type SimulatedFeed struct {
	rnd *rand.Rand
}

// NewSimulatedFeed seeds the walk. Intended for use from a single goroutine
// (the refresh job).
func NewSimulatedFeed(seed int64) *SimulatedFeed {
	return &SimulatedFeed{rnd: rand.New(rand.NewSource(seed))}
}

func (f *SimulatedFeed) CrowdDelta() int {
	return f.rnd.Intn(crowdWalkSpan) - crowdWalkSpan/2
}

func (f *SimulatedFeed) AreaDelta(string) int {
	return f.rnd.Intn(areaWalkSpan) - areaWalkSpan/2
}

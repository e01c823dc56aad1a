package cronjobs

import (
	"fmt"
	"log"
	"time"

	"pilgrimpath/store"

	"github.com/robfig/cron/v3"
)

// InitCronJobs schedules the periodic metrics refresh. The telemetry feed
// stands in for real sensor ingestion; the job runs until process exit.
func InitCronJobs(s *store.Store, feed store.TelemetryFeed, interval time.Duration) *cron.Cron {
	log.Println("Starting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	if interval <= 0 {
		interval = 5 * time.Second
	}

	spec := fmt.Sprintf("@every %s", interval)
	_, err := c.AddFunc(spec, func() {
		metrics := s.RefreshMetrics(feed)
		log.Printf("CronJob: metrics refresh, crowd=%d active=%d", metrics.CrowdCount, metrics.ActiveIncidents)
	})
	if err != nil {
		log.Println("Error scheduling metrics refresh:", err)
	}

	c.Start()
	return c
}

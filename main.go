package main

import (
	"fmt"
	"log"
	"time"

	"pilgrimpath/config"
	"pilgrimpath/cronjobs"
	"pilgrimpath/routes"
	"pilgrimpath/store"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	if cfg.OpenAIAPIKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	} else {
		fmt.Println("No OPENAI_API_KEY set, assistant running in demo mode")
	}

	// Dev setups carry a plain admin password; hash it once so login always
	// compares against a bcrypt hash.
	if cfg.AdminPasswordHash == "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		cfg.AdminPasswordHash = string(hashed)
	}

	// Build the report store with the launch metrics and demo reports.
	s := store.NewStore(store.DemoMetrics())
	s.SeedDemoReports()

	// Initialize cron jobs: the telemetry simulation driving metricsUpdate.
	feed := store.NewSimulatedFeed(time.Now().UnixNano())
	cronjobs.InitCronJobs(s, feed, cfg.MetricsInterval)

	r := routes.SetupRouter(s, cfg)
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

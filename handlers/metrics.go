package handlers

import (
	"net/http"

	"pilgrimpath/store"

	"github.com/gin-gonic/gin"
)

// GetMetrics returns the current derived metrics snapshot.
func GetMetrics(c *gin.Context, s *store.Store) {
	c.JSON(http.StatusOK, gin.H{"metrics": s.Metrics()})
}

// GetAreas returns just the per-area occupancy table, which is what the
// navigation page polls for crowd levels.
func GetAreas(c *gin.Context, s *store.Store) {
	metrics := s.Metrics()
	c.JSON(http.StatusOK, gin.H{"areas": metrics.AreasStatus})
}

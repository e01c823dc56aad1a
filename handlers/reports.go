package handlers

import (
	"errors"
	"net/http"

	"pilgrimpath/store"
	"pilgrimpath/types"

	"github.com/gin-gonic/gin"
)

// SubmitReport accepts a user report and returns the stored record with its
// assigned id.
func SubmitReport(c *gin.Context, s *store.Store) {
	var in store.SubmitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := s.SubmitReport(in)
	if err != nil {
		if errors.Is(err, store.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     report.ID,
		"report": report,
	})
}

// ListReports returns reports newest first, optionally narrowed by the
// status, type, and priority query parameters.
func ListReports(c *gin.Context, s *store.Store) {
	filter := store.Filter{
		Status:   types.ReportStatus(c.Query("status")),
		Type:     types.ReportType(c.Query("type")),
		Priority: types.Priority(c.Query("priority")),
	}

	reports := s.Reports(filter)
	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"count":   len(reports),
	})
}

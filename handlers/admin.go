package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"pilgrimpath/store"
	"pilgrimpath/types"

	"github.com/gin-gonic/gin"
)

// UpdateReportStatus moves a report through its status machine and records
// the paired audit action.
func UpdateReportStatus(c *gin.Context, s *store.Store) {
	var request struct {
		Status types.ReportStatus `json:"status"`
		Notes  string             `json:"notes"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.UpdateReportStatus(c.Param("id"), request.Status, request.Notes)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrReportNotFound) {
			status = http.StatusNotFound
		} else if errors.Is(err, store.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// AssignReport assigns a report to a responder. Assignment always advances
// the report to in-progress, reopening it if it was resolved.
func AssignReport(c *gin.Context, s *store.Store) {
	var request struct {
		AssignedTo string `json:"assignedTo"`
		Notes      string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.AssignReport(c.Param("id"), request.AssignedTo, request.Notes)
	if err != nil {
		if errors.Is(err, store.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report assigned"})
}

// RecentActions returns the audit tail, newest first.
func RecentActions(c *gin.Context, s *store.Store) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	actions := s.RecentActions(limit)
	c.JSON(http.StatusOK, gin.H{
		"actions": actions,
		"count":   len(actions),
	})
}

// BroadcastEmergencyAlert pushes an alert to every subscriber and returns
// the alert record.
func BroadcastEmergencyAlert(c *gin.Context, s *store.Store) {
	var request struct {
		Message string `json:"message" binding:"required"`
		Area    string `json:"area"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert := s.BroadcastEmergencyAlert(request.Message, request.Area)
	c.JSON(http.StatusOK, gin.H{"alert": alert})
}

// RedirectCrowdFlow announces a crowd redirection between two areas.
func RedirectCrowdFlow(c *gin.Context, s *store.Store) {
	var request struct {
		FromArea string `json:"fromArea" binding:"required"`
		ToArea   string `json:"toArea" binding:"required"`
		Reason   string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	redirection := s.RedirectCrowdFlow(request.FromArea, request.ToArea, request.Reason)
	c.JSON(http.StatusOK, gin.H{"redirection": redirection})
}

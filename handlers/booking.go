package handlers

import (
	"errors"
	"net/http"

	"pilgrimpath/booking"
	"pilgrimpath/store"

	"github.com/gin-gonic/gin"
)

// ListTransport returns the transport catalog.
func ListTransport(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"options": booking.TransportOptions()})
}

// ListStays returns the accommodation catalog.
func ListStays(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"options": booking.StayOptions()})
}

// ConfirmBooking books an option and files the matching booking report.
func ConfirmBooking(c *gin.Context, s *store.Store) {
	var req booking.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := booking.Confirm(s, req)
	if err != nil {
		if errors.Is(err, booking.ErrUnknownOption) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": confirmation})
}

package routes

import (
	"pilgrimpath/config"
	"pilgrimpath/handlers"
	"pilgrimpath/store"

	"github.com/gin-gonic/gin"
)

func SetupRouter(s *store.Store, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to PilgrimPath!",
		})
	})

	// api routes
	api := r.Group("/api")
	{
		api.POST("/reports", func(c *gin.Context) { handlers.SubmitReport(c, s) })
		api.GET("/reports", func(c *gin.Context) { handlers.ListReports(c, s) })
		api.GET("/metrics", func(c *gin.Context) { handlers.GetMetrics(c, s) })
		api.GET("/areas", func(c *gin.Context) { handlers.GetAreas(c, s) })
		api.POST("/assistant", func(c *gin.Context) { handlers.AskAssistant(c, cfg) })

		api.GET("/booking/transport", handlers.ListTransport)
		api.GET("/booking/stays", handlers.ListStays)
		api.POST("/booking", func(c *gin.Context) { handlers.ConfirmBooking(c, s) })
	}

	admin := r.Group("/api/admin")
	{
		admin.POST("/login", func(c *gin.Context) { handlers.Login(c, cfg) })
		admin.PATCH("/reports/:id/status", func(c *gin.Context) { handlers.UpdateReportStatus(c, s) })
		admin.POST("/reports/:id/assign", func(c *gin.Context) { handlers.AssignReport(c, s) })
		admin.GET("/actions", func(c *gin.Context) { handlers.RecentActions(c, s) })
		admin.POST("/broadcast", func(c *gin.Context) { handlers.BroadcastEmergencyAlert(c, s) })
		admin.POST("/redirect", func(c *gin.Context) { handlers.RedirectCrowdFlow(c, s) })
		admin.GET("/stream", func(c *gin.Context) { handlers.StreamEvents(c, s) })
	}

	return r
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/unischedule/internal/app/controllers"
)

// SetupRouter registers the API routes on router
func SetupRouter(
	router *gin.Engine,
	professorController *controllers.ProfessorController,
	roomController *controllers.RoomController,
	healthController *controllers.HealthController,
) {
	api := router.Group("/api")

	api.GET("/health", healthController.Check)

	professors := api.Group("/professors")
	{
		professors.GET("/workload", professorController.GetWorkload)
		professors.GET("/:id/schedule", professorController.GetSchedule)
	}

	rooms := api.Group("/rooms")
	{
		rooms.GET("/occupancy", roomController.GetOccupancy)
		rooms.GET("/analysis", roomController.GetAnalysis)
		rooms.GET("/schedule", roomController.GetSchedules)
		rooms.GET("/available", roomController.GetAvailable)
	}
}

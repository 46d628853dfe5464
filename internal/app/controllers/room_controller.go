package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unischedule/internal/app/models/dto"
	"github.com/yigit/unischedule/internal/app/services"
	"github.com/yigit/unischedule/internal/middleware"
	"github.com/yigit/unischedule/internal/pkg/apperrors"
)

// RoomController handles room occupancy and availability endpoints
type RoomController struct {
	roomService services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService services.RoomService) *RoomController {
	return &RoomController{
		roomService: roomService,
	}
}

// GetOccupancy returns the raw room/slot listing
// @Summary Room occupancy
// @Description One row per room and schedule slot; rooms without slots appear once as FREE
// @Tags rooms
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.RoomOccupancy} "Occupancy retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/occupancy [get]
func (c *RoomController) GetOccupancy(ctx *gin.Context) {
	occupancy, err := c.roomService.GetOccupancy(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(occupancy))
}

// GetAnalysis returns the per-room schedule with occupancy rates
// @Summary Room schedule analysis
// @Description Occupied slots grouped by building and room id, with the share of a 60-hour week in use
// @Tags rooms
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.RoomAnalysis} "Analysis retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/analysis [get]
func (c *RoomController) GetAnalysis(ctx *gin.Context) {
	analysis, err := c.roomService.GetScheduleAnalysis(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(analysis))
}

// GetSchedules returns occupied slots grouped by building and room number
// @Summary Room schedules
// @Description Occupied slots grouped by building and room number
// @Tags rooms
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.RoomSchedule} "Schedules retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/schedule [get]
func (c *RoomController) GetSchedules(ctx *gin.Context) {
	schedules, err := c.roomService.GetRoomSchedules(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(schedules))
}

// GetAvailable searches rooms free during a window
// @Summary Available rooms
// @Description Rooms with no booking on the given day overlapping [start_time, end_time)
// @Tags rooms
// @Produce json
// @Param day_of_week query int true "Day of week, 1 = Monday"
// @Param start_time query string true "Window start, HH:MM or HH:MM:SS"
// @Param end_time query string true "Window end, HH:MM or HH:MM:SS"
// @Success 200 {object} dto.AvailabilityResponse{data=[]models.AvailableRoom} "Available rooms retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/available [get]
func (c *RoomController) GetAvailable(ctx *gin.Context) {
	var req dto.AvailabilityRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		verr := apperrors.NewValidationError(apperrors.ErrMissingAvailabilityParams).(*apperrors.CustomError)
		middleware.HandleAPIError(ctx, verr.WithDetails(middleware.ValidationDetails(err)))
		return
	}

	rooms, err := c.roomService.GetAvailableRooms(ctx.Request.Context(), req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AvailabilityResponse{
		APIResponse:     dto.NewSuccessResponse(rooms),
		QueryParameters: req,
	})
}

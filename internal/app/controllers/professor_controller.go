package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unischedule/internal/app/models/dto"
	"github.com/yigit/unischedule/internal/app/services"
	"github.com/yigit/unischedule/internal/middleware"
	"github.com/yigit/unischedule/internal/pkg/apperrors"
)

// ProfessorController handles professor reporting endpoints
type ProfessorController struct {
	professorService services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// GetWorkload returns weekly hours per professor
// @Summary Professor workload
// @Description Weekly scheduled hours and class count for every professor, highest load first
// @Tags professors
// @Produce json
// @Success 200 {object} dto.WorkloadResponse{data=[]models.ProfessorWorkload} "Workload retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/workload [get]
func (c *ProfessorController) GetWorkload(ctx *gin.Context) {
	report, err := c.professorService.GetWorkload(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.WorkloadResponse{
		APIResponse: dto.NewSuccessResponse(report.Professors),
		Summary:     report.Summary,
	})
}

// GetSchedule returns the weekly slots of one professor
// @Summary Professor schedule
// @Description Every weekly slot taught by the professor, ordered by day then start time
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ProfessorScheduleEntry} "Schedule retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id}/schedule [get]
func (c *ProfessorController) GetSchedule(ctx *gin.Context) {
	var uri dto.ProfessorURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		verr := apperrors.NewValidationError(apperrors.ErrInvalidProfessorID).(*apperrors.CustomError)
		middleware.HandleAPIError(ctx, verr.WithDetails(middleware.ValidationDetails(err)))
		return
	}

	entries, err := c.professorService.GetSchedule(ctx.Request.Context(), uri.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

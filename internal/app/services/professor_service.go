package services

import (
	"context"
	"fmt"

	"github.com/yigit/unischedule/internal/app/models"
	"github.com/yigit/unischedule/internal/pkg/apperrors"
)

// ProfessorService defines the interface for professor reporting operations
type ProfessorService interface {
	GetWorkload(ctx context.Context) (*models.WorkloadReport, error)
	GetSchedule(ctx context.Context, professorID int64) ([]*models.ProfessorScheduleEntry, error)
}

// professorServiceImpl implements the ProfessorService interface
type professorServiceImpl struct {
	professorRepo ProfessorStore
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(professorRepo ProfessorStore) ProfessorService {
	return &professorServiceImpl{
		professorRepo: professorRepo,
	}
}

// GetWorkload returns the workload listing and its summary
func (s *professorServiceImpl) GetWorkload(ctx context.Context) (*models.WorkloadReport, error) {
	workload, err := s.professorRepo.GetWorkload(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor workload: %w", err)
	}

	return &models.WorkloadReport{
		Professors: workload,
		Summary:    summarizeWorkload(workload),
	}, nil
}

// summarizeWorkload counts professors and averages their weekly hours; an empty list averages to 0
func summarizeWorkload(workload []*models.ProfessorWorkload) models.WorkloadSummary {
	summary := models.WorkloadSummary{TotalProfessors: len(workload)}
	if len(workload) == 0 {
		return summary
	}

	var total float64
	for _, w := range workload {
		total += w.TotalHoursPerWeek
	}
	summary.AverageHours = total / float64(len(workload))
	return summary
}

// GetSchedule returns the weekly slots of one professor
func (s *professorServiceImpl) GetSchedule(ctx context.Context, professorID int64) ([]*models.ProfessorScheduleEntry, error) {
	if professorID <= 0 {
		return nil, apperrors.NewValidationError(apperrors.ErrInvalidProfessorID)
	}

	entries, err := s.professorRepo.GetSchedule(ctx, professorID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor schedule: %w", err)
	}
	return entries, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/missiontracker/core/internal/domain/entities"
	"github.com/missiontracker/core/internal/infrastructure/logger"
	"github.com/missiontracker/core/internal/ports"
)

// DailyMissionService handles daily mission operations
type DailyMissionService struct {
	dailyRepo   ports.DailyMissionRepository
	missionRepo ports.MissionRepository
	clock       ports.Clock
	logger      *logger.Logger
}

// NewDailyMissionService creates a new daily mission service
func NewDailyMissionService(dailyRepo ports.DailyMissionRepository, missionRepo ports.MissionRepository, clock ports.Clock, logger *logger.Logger) *DailyMissionService {
	return &DailyMissionService{
		dailyRepo:   dailyRepo,
		missionRepo: missionRepo,
		clock:       clock,
		logger:      logger.WithComponent("daily_missions"),
	}
}

// ListDailyMissions returns every daily mission of the owner with its mission title
func (s *DailyMissionService) ListDailyMissions(ctx context.Context, owner string) ([]*entities.DailyMissionDetail, error) {
	items, err := s.dailyRepo.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily missions: %w", err)
	}
	return items, nil
}

// ListByMission returns the daily missions under one mission. A foreign or
// absent mission yields an empty list.
func (s *DailyMissionService) ListByMission(ctx context.Context, missionID, owner string) ([]*entities.DailyMission, error) {
	items, err := s.dailyRepo.ListByMission(ctx, missionID, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily missions: %w", err)
	}
	return items, nil
}

// GetDailyMission retrieves a daily mission by ID
func (s *DailyMissionService) GetDailyMission(ctx context.Context, id, owner string) (*entities.DailyMission, error) {
	dm, err := s.dailyRepo.GetByID(ctx, id, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily mission: %w", err)
	}
	return dm, nil
}

// CreateDailyMission creates a pending daily mission under a mission the owner holds
func (s *DailyMissionService) CreateDailyMission(ctx context.Context, owner string, req ports.CreateDailyMissionRequest) (*entities.DailyMission, error) {
	priority := entities.DefaultPriority
	if req.Priority != nil {
		priority = *req.Priority
	}
	if !priority.IsValid() {
		return nil, entities.ErrInvalidPriority
	}

	if _, err := s.missionRepo.GetByID(ctx, req.MissionID, owner); err != nil {
		return nil, fmt.Errorf("failed to get parent mission: %w", err)
	}

	dm := &entities.DailyMission{
		ID:          uuid.NewString(),
		MissionID:   req.MissionID,
		Title:       req.Title,
		Description: req.Description,
		Status:      entities.DailyMissionStatusPending,
		Priority:    priority,
		DueDate:     nonZeroDate(req.DueDate),
		CreatedAt:   storedNow(s.clock),
		UserID:      owner,
	}

	if err := s.dailyRepo.Create(ctx, dm); err != nil {
		return nil, fmt.Errorf("failed to create daily mission: %w", err)
	}

	s.logger.LogUserAction(owner, "daily_mission_created", map[string]interface{}{
		"daily_mission_id": dm.ID,
		"mission_id":       dm.MissionID,
	})

	return dm, nil
}

// UpdateDailyMission replaces a daily mission's mutable fields. An omitted
// priority keeps the stored one.
func (s *DailyMissionService) UpdateDailyMission(ctx context.Context, id, owner string, req ports.UpdateDailyMissionRequest) (*entities.DailyMission, error) {
	if !req.Status.IsValid() {
		return nil, entities.ErrInvalidStatus
	}
	if req.Priority != nil && !req.Priority.IsValid() {
		return nil, entities.ErrInvalidPriority
	}

	dm, err := s.dailyRepo.GetByID(ctx, id, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily mission: %w", err)
	}

	dm.Title = req.Title
	dm.Description = req.Description
	dm.DueDate = nonZeroDate(req.DueDate)
	if req.Priority != nil {
		dm.Priority = *req.Priority
	}
	dm.ApplyStatus(req.Status, storedNow(s.clock))

	if err := s.dailyRepo.Update(ctx, dm); err != nil {
		return nil, fmt.Errorf("failed to update daily mission: %w", err)
	}

	s.logger.LogUserAction(owner, "daily_mission_updated", map[string]interface{}{
		"daily_mission_id": dm.ID,
		"status":           dm.Status,
	})

	return dm, nil
}

// DeleteDailyMission deletes a daily mission
func (s *DailyMissionService) DeleteDailyMission(ctx context.Context, id, owner string) error {
	if err := s.dailyRepo.Delete(ctx, id, owner); err != nil {
		return fmt.Errorf("failed to delete daily mission: %w", err)
	}

	s.logger.LogUserAction(owner, "daily_mission_deleted", map[string]interface{}{"daily_mission_id": id})

	return nil
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/missiontracker/core/internal/domain/entities"
	"github.com/missiontracker/core/internal/infrastructure/logger"
	"github.com/missiontracker/core/internal/ports"
)

// MissionService handles mission-related operations
type MissionService struct {
	missionRepo ports.MissionRepository
	clock       ports.Clock
	logger      *logger.Logger
}

// NewMissionService creates a new mission service
func NewMissionService(missionRepo ports.MissionRepository, clock ports.Clock, logger *logger.Logger) *MissionService {
	return &MissionService{
		missionRepo: missionRepo,
		clock:       clock,
		logger:      logger.WithComponent("missions"),
	}
}

// ListMissions returns the owner's missions, newest first
func (s *MissionService) ListMissions(ctx context.Context, owner string) ([]*entities.Mission, error) {
	missions, err := s.missionRepo.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return missions, nil
}

// GetMission retrieves a mission by ID
func (s *MissionService) GetMission(ctx context.Context, id, owner string) (*entities.Mission, error) {
	mission, err := s.missionRepo.GetByID(ctx, id, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return mission, nil
}

// CreateMission creates a new active mission
func (s *MissionService) CreateMission(ctx context.Context, owner string, req ports.CreateMissionRequest) (*entities.Mission, error) {
	mission := &entities.Mission{
		ID:                   uuid.NewString(),
		Title:                req.Title,
		Description:          req.Description,
		Status:               entities.MissionStatusActive,
		CreatedAt:            storedNow(s.clock),
		TargetCompletionDate: nonZeroDate(req.TargetCompletionDate),
		UserID:               owner,
	}

	if err := s.missionRepo.Create(ctx, mission); err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}

	s.logger.LogUserAction(owner, "mission_created", map[string]interface{}{"mission_id": mission.ID})

	return mission, nil
}

// UpdateMission replaces a mission's mutable fields
func (s *MissionService) UpdateMission(ctx context.Context, id, owner string, req ports.UpdateMissionRequest) (*entities.Mission, error) {
	if !req.Status.IsValid() {
		return nil, entities.ErrInvalidStatus
	}

	mission, err := s.missionRepo.GetByID(ctx, id, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}

	mission.Title = req.Title
	mission.Description = req.Description
	mission.TargetCompletionDate = nonZeroDate(req.TargetCompletionDate)
	mission.ApplyStatus(req.Status, storedNow(s.clock))

	if err := s.missionRepo.Update(ctx, mission); err != nil {
		return nil, fmt.Errorf("failed to update mission: %w", err)
	}

	s.logger.LogUserAction(owner, "mission_updated", map[string]interface{}{
		"mission_id": mission.ID,
		"status":     mission.Status,
	})

	return mission, nil
}

// DeleteMission deletes a mission together with its daily missions
func (s *MissionService) DeleteMission(ctx context.Context, id, owner string) error {
	if err := s.missionRepo.Delete(ctx, id, owner); err != nil {
		return fmt.Errorf("failed to delete mission: %w", err)
	}

	s.logger.LogUserAction(owner, "mission_deleted", map[string]interface{}{"mission_id": id})

	return nil
}

// nonZeroDate folds an explicit empty date into nil.
func nonZeroDate(d *entities.Date) *entities.Date {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}

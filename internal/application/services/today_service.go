package services

import (
	"context"
	"fmt"
	"time"

	"github.com/missiontracker/core/internal/domain/entities"
	"github.com/missiontracker/core/internal/domain/today"
	"github.com/missiontracker/core/internal/infrastructure/logger"
	"github.com/missiontracker/core/internal/ports"
)

// TodayService builds the today dashboard
type TodayService struct {
	dailyRepo ports.DailyMissionRepository
	dailies   *DailyMissionService
	clock     ports.Clock
	location  *time.Location
	logger    *logger.Logger
}

// NewTodayService creates a new today service. loc defines the calendar day.
func NewTodayService(dailyRepo ports.DailyMissionRepository, dailies *DailyMissionService, clock ports.Clock, loc *time.Location, logger *logger.Logger) *TodayService {
	if loc == nil {
		loc = time.Local
	}
	return &TodayService{
		dailyRepo: dailyRepo,
		dailies:   dailies,
		clock:     clock,
		location:  loc,
		logger:    logger.WithComponent("today"),
	}
}

// Today returns the current calendar date in the configured location.
func (s *TodayService) Today() entities.Date {
	date, _, _ := today.DayBounds(s.clock.Now(), s.location)
	return date
}

// ListToday returns the owner's actionable items in display order
func (s *TodayService) ListToday(ctx context.Context, owner string) ([]today.Item, error) {
	all, err := s.dailyRepo.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily missions: %w", err)
	}

	return today.Select(derefDetails(all), s.Today()), nil
}

// ListCompletedToday returns items completed since local midnight, newest first
func (s *TodayService) ListCompletedToday(ctx context.Context, owner string) ([]*entities.DailyMissionDetail, error) {
	_, start, end := today.DayBounds(s.clock.Now(), s.location)

	items, err := s.dailyRepo.ListCompletedBetween(ctx, owner, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed daily missions: %w", err)
	}
	return items, nil
}

// Summary counts the dashboard header figures for owner
func (s *TodayService) Summary(ctx context.Context, owner string) (today.Summary, error) {
	items, err := s.ListToday(ctx, owner)
	if err != nil {
		return today.Summary{}, err
	}

	completed, err := s.ListCompletedToday(ctx, owner)
	if err != nil {
		return today.Summary{}, err
	}

	return today.Summarize(items, len(completed)), nil
}

// QuickAdd creates a daily mission due today with an empty description
func (s *TodayService) QuickAdd(ctx context.Context, owner string, req ports.QuickAddRequest) (*entities.DailyMission, error) {
	due := s.Today()
	empty := ""

	return s.dailies.CreateDailyMission(ctx, owner, ports.CreateDailyMissionRequest{
		MissionID:   req.MissionID,
		Title:       req.Title,
		Description: &empty,
		DueDate:     &due,
		Priority:    req.Priority,
	})
}

func derefDetails(in []*entities.DailyMissionDetail) []entities.DailyMissionDetail {
	out := make([]entities.DailyMissionDetail, 0, len(in))
	for _, d := range in {
		out = append(out, *d)
	}
	return out
}

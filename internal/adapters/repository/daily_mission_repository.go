package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/missiontracker/core/internal/domain/entities"
	"github.com/missiontracker/core/internal/infrastructure/database"
	"github.com/missiontracker/core/internal/ports"
)

const dailyMissionColumns = `id, mission_id, title, description, status, priority, due_date, created_at, completed_at, user_id`

const dailyMissionDetailSelect = `
		SELECT dm.id, dm.mission_id, dm.title, dm.description, dm.status, dm.priority,
			dm.due_date, dm.created_at, dm.completed_at, dm.user_id,
			m.title AS mission_title, m.status AS mission_status
		FROM daily_missions dm
		JOIN missions m ON m.id = dm.mission_id AND m.user_id = dm.user_id`

// DailyMissionRepositoryImpl implements the DailyMissionRepository interface
type DailyMissionRepositoryImpl struct {
	db *database.DB
}

// NewDailyMissionRepository creates a new daily mission repository
func NewDailyMissionRepository(db *database.DB) ports.DailyMissionRepository {
	return &DailyMissionRepositoryImpl{db: db}
}

func (r *DailyMissionRepositoryImpl) Create(ctx context.Context, dm *entities.DailyMission) error {
	query := r.db.Rebind(`
		INSERT INTO daily_missions (` + dailyMissionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		dm.ID, dm.MissionID, dm.Title, dm.Description, dm.Status, dm.Priority,
		dm.DueDate, dm.CreatedAt, dm.CompletedAt, dm.UserID,
	)
	if err != nil {
		return fmt.Errorf("create daily mission: %w", err)
	}

	return nil
}

func (r *DailyMissionRepositoryImpl) GetByID(ctx context.Context, id, owner string) (*entities.DailyMission, error) {
	query := r.db.Rebind(`
		SELECT ` + dailyMissionColumns + `
		FROM daily_missions
		WHERE id = ? AND user_id = ?`)

	var dm entities.DailyMission
	err := r.db.GetContext(ctx, &dm, query, id, owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrDailyMissionNotFound
		}
		return nil, fmt.Errorf("get daily mission by id: %w", err)
	}

	return &dm, nil
}

func (r *DailyMissionRepositoryImpl) Update(ctx context.Context, dm *entities.DailyMission) error {
	query := r.db.Rebind(`
		UPDATE daily_missions
		SET title = ?, description = ?, status = ?, priority = ?, due_date = ?, completed_at = ?
		WHERE id = ? AND user_id = ?`)

	result, err := r.db.ExecContext(ctx, query,
		dm.Title, dm.Description, dm.Status, dm.Priority, dm.DueDate, dm.CompletedAt,
		dm.ID, dm.UserID,
	)
	if err != nil {
		return fmt.Errorf("update daily mission: %w", err)
	}

	return expectOne(result, entities.ErrDailyMissionNotFound)
}

func (r *DailyMissionRepositoryImpl) Delete(ctx context.Context, id, owner string) error {
	query := r.db.Rebind(`DELETE FROM daily_missions WHERE id = ? AND user_id = ?`)

	result, err := r.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("delete daily mission: %w", err)
	}

	return expectOne(result, entities.ErrDailyMissionNotFound)
}

func (r *DailyMissionRepositoryImpl) List(ctx context.Context, owner string) ([]*entities.DailyMissionDetail, error) {
	query := r.db.Rebind(dailyMissionDetailSelect + `
		WHERE dm.user_id = ?
		ORDER BY dm.priority ASC, dm.created_at DESC`)

	items := []*entities.DailyMissionDetail{}
	if err := r.db.SelectContext(ctx, &items, query, owner); err != nil {
		return nil, fmt.Errorf("list daily missions: %w", err)
	}

	return items, nil
}

func (r *DailyMissionRepositoryImpl) ListByMission(ctx context.Context, missionID, owner string) ([]*entities.DailyMission, error) {
	query := r.db.Rebind(`
		SELECT ` + dailyMissionColumns + `
		FROM daily_missions
		WHERE mission_id = ? AND user_id = ?
		ORDER BY priority ASC, created_at DESC`)

	items := []*entities.DailyMission{}
	if err := r.db.SelectContext(ctx, &items, query, missionID, owner); err != nil {
		return nil, fmt.Errorf("list daily missions by mission: %w", err)
	}

	return items, nil
}

// ListCompletedBetween returns completed items with completed_at in [start, end),
// newest completion first.
func (r *DailyMissionRepositoryImpl) ListCompletedBetween(ctx context.Context, owner string, start, end time.Time) ([]*entities.DailyMissionDetail, error) {
	query := r.db.Rebind(dailyMissionDetailSelect + `
		WHERE dm.user_id = ? AND dm.status = ? AND dm.completed_at >= ? AND dm.completed_at < ?
		ORDER BY dm.completed_at DESC`)

	items := []*entities.DailyMissionDetail{}
	err := r.db.SelectContext(ctx, &items, query,
		owner, entities.DailyMissionStatusCompleted, start.UTC(), end.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("list completed daily missions: %w", err)
	}

	return items, nil
}

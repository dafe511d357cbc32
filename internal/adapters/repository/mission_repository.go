package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/missiontracker/core/internal/domain/entities"
	"github.com/missiontracker/core/internal/infrastructure/database"
	"github.com/missiontracker/core/internal/ports"
)

const missionColumns = `id, title, description, status, created_at, completed_at, target_completion_date, user_id`

// MissionRepositoryImpl implements the MissionRepository interface
type MissionRepositoryImpl struct {
	db *database.DB
}

// NewMissionRepository creates a new mission repository
func NewMissionRepository(db *database.DB) ports.MissionRepository {
	return &MissionRepositoryImpl{db: db}
}

func (r *MissionRepositoryImpl) Create(ctx context.Context, mission *entities.Mission) error {
	query := r.db.Rebind(`
		INSERT INTO missions (` + missionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		mission.ID, mission.Title, mission.Description, mission.Status,
		mission.CreatedAt, mission.CompletedAt, mission.TargetCompletionDate, mission.UserID,
	)
	if err != nil {
		return fmt.Errorf("create mission: %w", err)
	}

	return nil
}

func (r *MissionRepositoryImpl) GetByID(ctx context.Context, id, owner string) (*entities.Mission, error) {
	query := r.db.Rebind(`
		SELECT ` + missionColumns + `
		FROM missions
		WHERE id = ? AND user_id = ?`)

	var mission entities.Mission
	err := r.db.GetContext(ctx, &mission, query, id, owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrMissionNotFound
		}
		return nil, fmt.Errorf("get mission by id: %w", err)
	}

	return &mission, nil
}

func (r *MissionRepositoryImpl) Update(ctx context.Context, mission *entities.Mission) error {
	query := r.db.Rebind(`
		UPDATE missions
		SET title = ?, description = ?, status = ?, completed_at = ?, target_completion_date = ?
		WHERE id = ? AND user_id = ?`)

	result, err := r.db.ExecContext(ctx, query,
		mission.Title, mission.Description, mission.Status, mission.CompletedAt,
		mission.TargetCompletionDate, mission.ID, mission.UserID,
	)
	if err != nil {
		return fmt.Errorf("update mission: %w", err)
	}

	return expectOne(result, entities.ErrMissionNotFound)
}

// Delete removes the mission and its daily missions in one transaction. The
// explicit child delete keeps the cascade when foreign keys are not enforced.
func (r *MissionRepositoryImpl) Delete(ctx context.Context, id, owner string) error {
	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		children := tx.Rebind(`DELETE FROM daily_missions WHERE mission_id = ? AND user_id = ?`)
		if _, err := tx.ExecContext(ctx, children, id, owner); err != nil {
			return fmt.Errorf("delete daily missions of mission: %w", err)
		}

		query := tx.Rebind(`DELETE FROM missions WHERE id = ? AND user_id = ?`)
		result, err := tx.ExecContext(ctx, query, id, owner)
		if err != nil {
			return fmt.Errorf("delete mission: %w", err)
		}

		return expectOne(result, entities.ErrMissionNotFound)
	})
}

func (r *MissionRepositoryImpl) List(ctx context.Context, owner string) ([]*entities.Mission, error) {
	query := r.db.Rebind(`
		SELECT ` + missionColumns + `
		FROM missions
		WHERE user_id = ?
		ORDER BY created_at DESC`)

	missions := []*entities.Mission{}
	if err := r.db.SelectContext(ctx, &missions, query, owner); err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}

	return missions, nil
}

// expectOne maps a zero-row write to notFound.
func expectOne(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

package ports

import (
	"context"
	"time"

	"github.com/missiontracker/core/internal/domain/entities"
)

// MissionRepository defines the interface for mission data operations.
// Every method is scoped by the owner's username.
type MissionRepository interface {
	Create(ctx context.Context, mission *entities.Mission) error
	GetByID(ctx context.Context, id, owner string) (*entities.Mission, error)
	Update(ctx context.Context, mission *entities.Mission) error
	Delete(ctx context.Context, id, owner string) error
	List(ctx context.Context, owner string) ([]*entities.Mission, error)
}

// DailyMissionRepository defines the interface for daily mission data operations.
// Every method is scoped by the owner's username.
type DailyMissionRepository interface {
	Create(ctx context.Context, dm *entities.DailyMission) error
	GetByID(ctx context.Context, id, owner string) (*entities.DailyMission, error)
	Update(ctx context.Context, dm *entities.DailyMission) error
	Delete(ctx context.Context, id, owner string) error
	List(ctx context.Context, owner string) ([]*entities.DailyMissionDetail, error)
	ListByMission(ctx context.Context, missionID, owner string) ([]*entities.DailyMission, error)
	ListCompletedBetween(ctx context.Context, owner string, start, end time.Time) ([]*entities.DailyMissionDetail, error)
}

// CredentialStore answers identity questions without ever revealing secrets.
type CredentialStore interface {
	// Verify reports whether password is the secret for username.
	Verify(username, password string) bool
	// Exists reports whether username is a known account.
	Exists(username string) bool
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

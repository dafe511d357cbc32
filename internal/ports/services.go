package ports

import (
	"time"

	"github.com/missiontracker/core/internal/domain/entities"
)

// Request/Response Types

// Auth related types

// LoginRequest carries no required tags: empty fields are ordinary bad
// credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"max=100"`
	Password string `json:"password" validate:"max=200"`
}

// UserInfo is the only account data ever returned to a client.
type UserInfo struct {
	Username string `json:"username"`
}

type LoginResponse struct {
	Success   bool      `json:"success"`
	User      UserInfo  `json:"user"`
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	Message   string    `json:"message"`
}

// Claims is what a validated session token resolves to.
type Claims struct {
	Username  string
	ExpiresAt time.Time
}

// Mission related types
type CreateMissionRequest struct {
	Title                string         `json:"title" validate:"required,max=255"`
	Description          *string        `json:"description" validate:"omitempty,max=5000"`
	TargetCompletionDate *entities.Date `json:"target_completion_date"`
}

// UpdateMissionRequest replaces every mutable field.
type UpdateMissionRequest struct {
	Title                string                 `json:"title" validate:"required,max=255"`
	Description          *string                `json:"description" validate:"omitempty,max=5000"`
	Status               entities.MissionStatus `json:"status" validate:"required,oneof=active completed paused"`
	TargetCompletionDate *entities.Date         `json:"target_completion_date"`
}

// Daily mission related types
type CreateDailyMissionRequest struct {
	MissionID   string             `json:"mission_id" validate:"required,max=64"`
	Title       string             `json:"title" validate:"required,max=255"`
	Description *string            `json:"description" validate:"omitempty,max=5000"`
	DueDate     *entities.Date     `json:"due_date"`
	Priority    *entities.Priority `json:"priority" validate:"omitempty,min=1,max=3"`
}

// UpdateDailyMissionRequest replaces every mutable field except Priority,
// which is left unchanged when omitted.
type UpdateDailyMissionRequest struct {
	Title       string                      `json:"title" validate:"required,max=255"`
	Description *string                     `json:"description" validate:"omitempty,max=5000"`
	Status      entities.DailyMissionStatus `json:"status" validate:"required,oneof=pending completed skipped"`
	DueDate     *entities.Date              `json:"due_date"`
	Priority    *entities.Priority          `json:"priority" validate:"omitempty,min=1,max=3"`
}

type QuickAddRequest struct {
	MissionID string             `json:"mission_id" validate:"required,max=64"`
	Title     string             `json:"title" validate:"required,max=255"`
	Priority  *entities.Priority `json:"priority" validate:"omitempty,min=1,max=3"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

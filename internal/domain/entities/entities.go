package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrMissionNotFound      = errors.New("mission not found")
	ErrDailyMissionNotFound = errors.New("daily mission not found")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthenticated      = errors.New("authentication required")
)

// Enums and types
type MissionStatus string

const (
	MissionStatusActive    MissionStatus = "active"
	MissionStatusCompleted MissionStatus = "completed"
	MissionStatusPaused    MissionStatus = "paused"
)

// IsValid reports whether s is a known mission status.
func (s MissionStatus) IsValid() bool {
	switch s {
	case MissionStatusActive, MissionStatusCompleted, MissionStatusPaused:
		return true
	}
	return false
}

type DailyMissionStatus string

const (
	DailyMissionStatusPending   DailyMissionStatus = "pending"
	DailyMissionStatusCompleted DailyMissionStatus = "completed"
	DailyMissionStatusSkipped   DailyMissionStatus = "skipped"
)

// IsValid reports whether s is a known daily mission status.
func (s DailyMissionStatus) IsValid() bool {
	switch s {
	case DailyMissionStatusPending, DailyMissionStatusCompleted, DailyMissionStatusSkipped:
		return true
	}
	return false
}

// Priority orders daily missions; lower is more urgent.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3

	DefaultPriority = PriorityMedium
)

// IsValid reports whether p is within the high..low range.
func (p Priority) IsValid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// Mission represents a long-term goal owned by one user
type Mission struct {
	ID                   string        `json:"id" db:"id"`
	Title                string        `json:"title" db:"title"`
	Description          *string       `json:"description" db:"description"`
	Status               MissionStatus `json:"status" db:"status"`
	CreatedAt            time.Time     `json:"created_at" db:"created_at"`
	CompletedAt          *time.Time    `json:"completed_at" db:"completed_at"`
	TargetCompletionDate *Date         `json:"target_completion_date" db:"target_completion_date"`
	UserID               string        `json:"user_id" db:"user_id"`
}

// DailyMission represents a concrete, dated task under a mission
type DailyMission struct {
	ID          string             `json:"id" db:"id"`
	MissionID   string             `json:"mission_id" db:"mission_id"`
	Title       string             `json:"title" db:"title"`
	Description *string            `json:"description" db:"description"`
	Status      DailyMissionStatus `json:"status" db:"status"`
	Priority    Priority           `json:"priority" db:"priority"`
	DueDate     *Date              `json:"due_date" db:"due_date"`
	CreatedAt   time.Time          `json:"created_at" db:"created_at"`
	CompletedAt *time.Time         `json:"completed_at" db:"completed_at"`
	UserID      string             `json:"user_id" db:"user_id"`
}

// DailyMissionDetail is a daily mission joined with its parent mission
type DailyMissionDetail struct {
	DailyMission
	MissionTitle  string        `json:"mission_title" db:"mission_title"`
	MissionStatus MissionStatus `json:"mission_status" db:"mission_status"`
}

// Business logic methods for Mission

// ApplyStatus stamps the completion time on the first transition to completed
// and clears it for every other status.
func (m *Mission) ApplyStatus(status MissionStatus, now time.Time) {
	m.Status = status
	if status != MissionStatusCompleted {
		m.CompletedAt = nil
		return
	}
	if m.CompletedAt == nil {
		t := now
		m.CompletedAt = &t
	}
}

// Business logic methods for DailyMission

// ApplyStatus keeps CompletedAt non-nil exactly when the status is completed.
func (d *DailyMission) ApplyStatus(status DailyMissionStatus, now time.Time) {
	d.Status = status
	if status != DailyMissionStatusCompleted {
		d.CompletedAt = nil
		return
	}
	if d.CompletedAt == nil {
		t := now
		d.CompletedAt = &t
	}
}

// IsCompleted reports whether the daily mission is done.
func (d *DailyMission) IsCompleted() bool {
	return d.Status == DailyMissionStatusCompleted
}

// Package today selects, classifies and orders the daily missions shown on
// the today dashboard. Everything here is a pure function of the items and
// the calendar date treated as "today".
package today

import (
	"cmp"
	"slices"
	"time"

	"github.com/missiontracker/core/internal/domain/entities"
)

// TaskStatus places a due date relative to today.
type TaskStatus string

const (
	TaskStatusOverdue TaskStatus = "overdue"
	TaskStatusToday   TaskStatus = "today"
	TaskStatusFuture  TaskStatus = "future"
)

// Urgency tiers how far past due an item is.
type Urgency string

const (
	UrgencyNone     Urgency = "none"
	UrgencyWarning  Urgency = "warning"
	UrgencyCritical Urgency = "critical"
)

const (
	warningAfterDays  = 1
	criticalAfterDays = 3
)

// Item is a daily mission annotated for the dashboard.
type Item struct {
	entities.DailyMissionDetail
	TaskStatus  TaskStatus `json:"task_status"`
	DaysOverdue int        `json:"days_overdue"`
	Urgency     Urgency    `json:"urgency"`
}

// Classification is the overdue verdict for a single due date.
type Classification struct {
	TaskStatus  TaskStatus
	DaysOverdue int
	Urgency     Urgency
}

// Classify is total over all due dates. An undated item is actionable today.
func Classify(due *entities.Date, today entities.Date) Classification {
	if due == nil || due.IsZero() {
		return Classification{TaskStatus: TaskStatusToday, Urgency: UrgencyNone}
	}

	switch {
	case due.Before(today):
		days := today.DaysSince(*due)
		return Classification{
			TaskStatus:  TaskStatusOverdue,
			DaysOverdue: days,
			Urgency:     UrgencyFor(days),
		}
	case due.Equal(today):
		return Classification{TaskStatus: TaskStatusToday, Urgency: UrgencyNone}
	default:
		return Classification{TaskStatus: TaskStatusFuture, Urgency: UrgencyNone}
	}
}

// UrgencyFor maps a day count past due to its tier.
func UrgencyFor(daysOverdue int) Urgency {
	switch {
	case daysOverdue >= criticalAfterDays:
		return UrgencyCritical
	case daysOverdue >= warningAfterDays:
		return UrgencyWarning
	default:
		return UrgencyNone
	}
}

// IsCandidate reports whether d belongs on the today list: due today, overdue
// or undated, not yet completed, and under an active mission.
func IsCandidate(d entities.DailyMissionDetail, today entities.Date) bool {
	if d.IsCompleted() {
		return false
	}
	if d.MissionStatus != entities.MissionStatusActive {
		return false
	}
	if d.DueDate == nil || d.DueDate.IsZero() {
		return true
	}
	return !d.DueDate.After(today)
}

// Select filters the candidates out of all the owner's daily missions,
// classifies them and returns them in display order.
func Select(all []entities.DailyMissionDetail, today entities.Date) []Item {
	items := make([]Item, 0, len(all))
	for _, d := range all {
		if !IsCandidate(d, today) {
			continue
		}
		c := Classify(d.DueDate, today)
		items = append(items, Item{
			DailyMissionDetail: d,
			TaskStatus:         c.TaskStatus,
			DaysOverdue:        c.DaysOverdue,
			Urgency:            c.Urgency,
		})
	}
	Sort(items)
	return items
}

// Sort orders items by priority, then overdue first, then due date with
// undated last, then newest first.
func Sort(items []Item) {
	slices.SortStableFunc(items, compare)
}

func compare(a, b Item) int {
	if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
		return c
	}

	aOverdue, bOverdue := a.TaskStatus == TaskStatusOverdue, b.TaskStatus == TaskStatusOverdue
	if aOverdue != bOverdue {
		if aOverdue {
			return -1
		}
		return 1
	}

	if c := compareDue(a.DueDate, b.DueDate); c != 0 {
		return c
	}

	return b.CreatedAt.Compare(a.CreatedAt)
}

func compareDue(a, b *entities.Date) int {
	aNull := a == nil || a.IsZero()
	bNull := b == nil || b.IsZero()
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return 1
	case bNull:
		return -1
	}
	return a.DaysSince(*b)
}

// Summary counts what the dashboard header shows.
type Summary struct {
	Pending        int `json:"pending"`
	Overdue        int `json:"overdue"`
	Warning        int `json:"warning"`
	Critical       int `json:"critical"`
	CompletedToday int `json:"completed_today"`
}

// Summarize folds selected items and the completed-today count into a Summary.
func Summarize(items []Item, completedToday int) Summary {
	s := Summary{Pending: len(items), CompletedToday: completedToday}
	for _, it := range items {
		if it.TaskStatus == TaskStatusOverdue {
			s.Overdue++
		}
		switch it.Urgency {
		case UrgencyWarning:
			s.Warning++
		case UrgencyCritical:
			s.Critical++
		}
	}
	return s
}

// DayBounds returns [midnight, next midnight) of now's calendar day in loc
// together with that calendar date. The day may be 23 or 25 hours long.
func DayBounds(now time.Time, loc *time.Location) (entities.Date, time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return entities.DateOf(local), start, start.AddDate(0, 0, 1)
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missiontracker/core/internal/adapters/credentials"
	"github.com/missiontracker/core/internal/adapters/repository"
	"github.com/missiontracker/core/internal/domain/entities"
	"github.com/missiontracker/core/internal/domain/today"
	"github.com/missiontracker/core/internal/infrastructure/config"
	"github.com/missiontracker/core/internal/infrastructure/logger"
	"github.com/missiontracker/core/internal/ports"
	fixtures "github.com/missiontracker/core/internal/testutil"
)

type env struct {
	clock    *fixtures.Clock
	missions *MissionService
	dailies  *DailyMissionService
	today    *TodayService
}

func newEnv(t *testing.T, loc *time.Location) *env {
	t.Helper()
	db := fixtures.NewSQLiteDB(t)
	clock := &fixtures.Clock{T: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
	log := logger.NewNop()

	missionRepo := repository.NewMissionRepository(db)
	dailyRepo := repository.NewDailyMissionRepository(db)
	dailies := NewDailyMissionService(dailyRepo, missionRepo, clock, log)

	return &env{
		clock:    clock,
		missions: NewMissionService(missionRepo, clock, log),
		dailies:  dailies,
		today:    NewTodayService(dailyRepo, dailies, clock, loc, log),
	}
}

func priority(p entities.Priority) *entities.Priority { return &p }

func dateOf(s string) *entities.Date {
	d, err := entities.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func (e *env) mission(t *testing.T, owner, title string) *entities.Mission {
	t.Helper()
	m, err := e.missions.CreateMission(context.Background(), owner, ports.CreateMissionRequest{Title: title})
	require.NoError(t, err)
	return m
}

func (e *env) daily(t *testing.T, owner string, m *entities.Mission, title string, p entities.Priority, due *entities.Date) *entities.DailyMission {
	t.Helper()
	dm, err := e.dailies.CreateDailyMission(context.Background(), owner, ports.CreateDailyMissionRequest{
		MissionID: m.ID,
		Title:     title,
		Priority:  &p,
		DueDate:   due,
	})
	require.NoError(t, err)
	e.clock.Advance(time.Second)
	return dm
}

func TestAuthService_Login(t *testing.T) {
	clock := &fixtures.Clock{T: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
	reg := prometheus.NewRegistry()
	store := credentials.NewStaticStore(map[string]string{"ufaq": "one", "zia": "two", "sweta": "three"})
	svc := NewAuthService(store, config.JWTConfig{
		Secret:    "0123456789abcdef0123",
		ExpiresIn: time.Hour,
		Issuer:    "missiontracker-test",
	}, clock, logger.NewNop(), reg)

	for user, secret := range map[string]string{"ufaq": "one", "zia": "two", "sweta": "three"} {
		resp, err := svc.Login(context.Background(), ports.LoginRequest{Username: user, Password: secret}, "127.0.0.1")
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, user, resp.User.Username)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.True(t, resp.ExpiresAt.Equal(clock.T.Add(time.Hour)))

		claims, err := svc.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, user, claims.Username)
	}

	for _, req := range []ports.LoginRequest{
		{Username: "ufaq", Password: "wrong"},
		{Username: "ufaq", Password: "ONE"},
		{Username: "nobody", Password: "one"},
		{Username: "", Password: ""},
	} {
		_, err := svc.Login(context.Background(), req, "127.0.0.1")
		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(svc.loginAttempts.WithLabelValues("success")))
	assert.Equal(t, 4.0, testutil.ToFloat64(svc.loginAttempts.WithLabelValues("failure")))
}

func TestAuthService_ValidateToken(t *testing.T) {
	clock := &fixtures.Clock{T: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
	cfg := config.JWTConfig{Secret: "0123456789abcdef0123", ExpiresIn: time.Hour, Issuer: "missiontracker-test"}
	store := credentials.NewStaticStore(map[string]string{"ufaq": "one"})
	svc := NewAuthService(store, cfg, clock, logger.NewNop(), nil)

	resp, err := svc.Login(context.Background(), ports.LoginRequest{Username: "ufaq", Password: "one"}, "")
	require.NoError(t, err)

	t.Run("tampered token", func(t *testing.T) {
		_, err := svc.ValidateToken(resp.Token + "x")
		assert.ErrorIs(t, err, entities.ErrUnauthenticated)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewAuthService(store, config.JWTConfig{Secret: "another-secret-of-length", ExpiresIn: time.Hour, Issuer: cfg.Issuer}, clock, logger.NewNop(), nil)
		_, err := other.ValidateToken(resp.Token)
		assert.ErrorIs(t, err, entities.ErrUnauthenticated)
	})

	t.Run("account removed", func(t *testing.T) {
		shrunk := NewAuthService(credentials.NewStaticStore(map[string]string{"zia": "two"}), cfg, clock, logger.NewNop(), nil)
		_, err := shrunk.ValidateToken(resp.Token)
		assert.ErrorIs(t, err, entities.ErrUnauthenticated)
	})

	t.Run("expired", func(t *testing.T) {
		later := &fixtures.Clock{T: clock.T.Add(2 * time.Hour)}
		expired := NewAuthService(store, cfg, later, logger.NewNop(), nil)
		_, err := expired.ValidateToken(resp.Token)
		assert.ErrorIs(t, err, entities.ErrUnauthenticated)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, entities.ErrUnauthenticated)
	})
}

func TestAuthService_Authorize(t *testing.T) {
	svc := NewAuthService(credentials.NewStaticStore(map[string]string{"ufaq": "one"}), config.JWTConfig{}, SystemClock{}, logger.NewNop(), nil)

	assert.NoError(t, svc.Authorize("ufaq"))
	assert.ErrorIs(t, svc.Authorize(""), entities.ErrUnauthenticated)
	assert.ErrorIs(t, svc.Authorize("Ufaq"), entities.ErrUnauthenticated)
	assert.ErrorIs(t, svc.Authorize("stranger"), entities.ErrUnauthenticated)
}

func TestMissionService_Lifecycle(t *testing.T) {
	e := newEnv(t, time.UTC)
	ctx := context.Background()

	m := e.mission(t, "ufaq", "Learn Go")
	assert.Equal(t, entities.MissionStatusActive, m.Status)
	assert.Equal(t, "ufaq", m.UserID)
	assert.Nil(t, m.CompletedAt)

	e.clock.Advance(time.Hour)
	done, err := e.missions.UpdateMission(ctx, m.ID, "ufaq", ports.UpdateMissionRequest{
		Title:  "Learn Go",
		Status: entities.MissionStatusCompleted,
	})
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	firstStamp := *done.CompletedAt

	e.clock.Advance(time.Hour)
	again, err := e.missions.UpdateMission(ctx, m.ID, "ufaq", ports.UpdateMissionRequest{
		Title:  "Learn Go deeply",
		Status: entities.MissionStatusCompleted,
	})
	require.NoError(t, err)
	assert.True(t, again.CompletedAt.Equal(firstStamp))

	paused, err := e.missions.UpdateMission(ctx, m.ID, "ufaq", ports.UpdateMissionRequest{
		Title:  "Learn Go deeply",
		Status: entities.MissionStatusPaused,
	})
	require.NoError(t, err)
	assert.Nil(t, paused.CompletedAt)

	_, err = e.missions.UpdateMission(ctx, m.ID, "ufaq", ports.UpdateMissionRequest{Title: "x", Status: "archived"})
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)

	_, err = e.missions.UpdateMission(ctx, m.ID, "zia", ports.UpdateMissionRequest{Title: "x", Status: entities.MissionStatusActive})
	assert.ErrorIs(t, err, entities.ErrMissionNotFound)

	assert.ErrorIs(t, e.missions.DeleteMission(ctx, m.ID, "zia"), entities.ErrMissionNotFound)
	require.NoError(t, e.missions.DeleteMission(ctx, m.ID, "ufaq"))
	_, err = e.missions.GetMission(ctx, m.ID, "ufaq")
	assert.ErrorIs(t, err, entities.ErrMissionNotFound)
}

func TestDailyMissionService_Create(t *testing.T) {
	e := newEnv(t, time.UTC)
	ctx := context.Background()
	m := e.mission(t, "ufaq", "Parent")

	t.Run("defaults priority to medium", func(t *testing.T) {
		dm, err := e.dailies.CreateDailyMission(ctx, "ufaq", ports.CreateDailyMissionRequest{MissionID: m.ID, Title: "a"})
		require.NoError(t, err)
		assert.Equal(t, entities.PriorityMedium, dm.Priority)
		assert.Equal(t, entities.DailyMissionStatusPending, dm.Status)
		assert.Nil(t, dm.DueDate)
	})

	t.Run("foreign parent is not found", func(t *testing.T) {
		_, err := e.dailies.CreateDailyMission(ctx, "zia", ports.CreateDailyMissionRequest{MissionID: m.ID, Title: "a"})
		assert.ErrorIs(t, err, entities.ErrMissionNotFound)
	})

	t.Run("absent parent is not found", func(t *testing.T) {
		_, err := e.dailies.CreateDailyMission(ctx, "ufaq", ports.CreateDailyMissionRequest{MissionID: "nope", Title: "a"})
		assert.ErrorIs(t, err, entities.ErrMissionNotFound)
	})

	t.Run("rejects priority out of range", func(t *testing.T) {
		_, err := e.dailies.CreateDailyMission(ctx, "ufaq", ports.CreateDailyMissionRequest{MissionID: m.ID, Title: "a", Priority: priority(0)})
		assert.ErrorIs(t, err, entities.ErrInvalidPriority)
	})
}

func TestDailyMissionService_Update(t *testing.T) {
	e := newEnv(t, time.UTC)
	ctx := context.Background()
	m := e.mission(t, "ufaq", "Parent")
	dm := e.daily(t, "ufaq", m, "task", entities.PriorityHigh, dateOf("2026-10-14"))

	t.Run("omitted priority keeps the stored one", func(t *testing.T) {
		got, err := e.dailies.UpdateDailyMission(ctx, dm.ID, "ufaq", ports.UpdateDailyMissionRequest{
			Title:  "renamed",
			Status: entities.DailyMissionStatusPending,
		})
		require.NoError(t, err)
		assert.Equal(t, entities.PriorityHigh, got.Priority)
		assert.Nil(t, got.DueDate)

		stored, err := e.dailies.GetDailyMission(ctx, dm.ID, "ufaq")
		require.NoError(t, err)
		assert.Equal(t, entities.PriorityHigh, stored.Priority)
		assert.Equal(t, "renamed", stored.Title)
	})

	t.Run("explicit priority replaces it", func(t *testing.T) {
		got, err := e.dailies.UpdateDailyMission(ctx, dm.ID, "ufaq", ports.UpdateDailyMissionRequest{
			Title:    "renamed",
			Status:   entities.DailyMissionStatusPending,
			Priority: priority(entities.PriorityLow),
		})
		require.NoError(t, err)
		assert.Equal(t, entities.PriorityLow, got.Priority)
	})

	t.Run("completed_at follows status", func(t *testing.T) {
		got, err := e.dailies.UpdateDailyMission(ctx, dm.ID, "ufaq", ports.UpdateDailyMissionRequest{
			Title:  "renamed",
			Status: entities.DailyMissionStatusCompleted,
		})
		require.NoError(t, err)
		require.NotNil(t, got.CompletedAt)

		skipped, err := e.dailies.UpdateDailyMission(ctx, dm.ID, "ufaq", ports.UpdateDailyMissionRequest{
			Title:  "renamed",
			Status: entities.DailyMissionStatusSkipped,
		})
		require.NoError(t, err)
		assert.Nil(t, skipped.CompletedAt)

		stored, err := e.dailies.GetDailyMission(ctx, dm.ID, "ufaq")
		require.NoError(t, err)
		assert.Nil(t, stored.CompletedAt)
	})

	t.Run("foreign item is not found", func(t *testing.T) {
		_, err := e.dailies.UpdateDailyMission(ctx, dm.ID, "zia", ports.UpdateDailyMissionRequest{
			Title:  "x",
			Status: entities.DailyMissionStatusPending,
		})
		assert.ErrorIs(t, err, entities.ErrDailyMissionNotFound)
	})
}

func TestTodayService_ListToday(t *testing.T) {
	e := newEnv(t, time.UTC)
	ctx := context.Background()

	active := e.mission(t, "ufaq", "Active")
	paused := e.mission(t, "ufaq", "Paused")
	_, err := e.missions.UpdateMission(ctx, paused.ID, "ufaq", ports.UpdateMissionRequest{Title: "Paused", Status: entities.MissionStatusPaused})
	require.NoError(t, err)

	e.daily(t, "ufaq", active, "medium-today", 2, dateOf("2026-10-14"))
	e.daily(t, "ufaq", active, "high-today", 1, dateOf("2026-10-14"))
	e.daily(t, "ufaq", active, "low-today", 3, dateOf("2026-10-14"))
	e.daily(t, "ufaq", active, "medium-late", 2, dateOf("2026-10-10"))
	e.daily(t, "ufaq", active, "future", 1, dateOf("2026-10-15"))
	e.daily(t, "ufaq", paused, "paused-today", 1, dateOf("2026-10-14"))
	done := e.daily(t, "ufaq", active, "done", 1, dateOf("2026-10-14"))
	_, err = e.dailies.UpdateDailyMission(ctx, done.ID, "ufaq", ports.UpdateDailyMissionRequest{Title: "done", Status: entities.DailyMissionStatusCompleted})
	require.NoError(t, err)

	other := e.mission(t, "zia", "Foreign")
	e.daily(t, "zia", other, "foreign", 1, dateOf("2026-10-14"))

	items, err := e.today.ListToday(ctx, "ufaq")
	require.NoError(t, err)

	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	assert.Equal(t, []string{"high-today", "medium-late", "medium-today", "low-today"}, titles)

	assert.Equal(t, today.TaskStatusOverdue, items[1].TaskStatus)
	assert.Equal(t, 4, items[1].DaysOverdue)
	assert.Equal(t, today.UrgencyCritical, items[1].Urgency)
	assert.Equal(t, "Active", items[0].MissionTitle)

	empty, err := e.today.ListToday(ctx, "sweta")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTodayService_CompletedAndSummary(t *testing.T) {
	// UTC+5: local midnight of the 14th is 19:00 UTC on the 13th.
	loc := time.FixedZone("UTC+5", 5*60*60)
	e := newEnv(t, loc)
	ctx := context.Background()
	m := e.mission(t, "ufaq", "Parent")

	complete := func(title string, at time.Time) {
		e.clock.T = at
		dm := e.daily(t, "ufaq", m, title, 2, nil)
		_, err := e.dailies.UpdateDailyMission(ctx, dm.ID, "ufaq", ports.UpdateDailyMissionRequest{Title: title, Status: entities.DailyMissionStatusCompleted})
		require.NoError(t, err)
	}
	complete("before-local-midnight", time.Date(2026, 10, 13, 18, 59, 0, 0, time.UTC))
	complete("after-local-midnight", time.Date(2026, 10, 13, 19, 30, 0, 0, time.UTC))
	complete("morning", time.Date(2026, 10, 14, 4, 0, 0, 0, time.UTC))

	e.clock.T = time.Date(2026, 10, 14, 6, 0, 0, 0, time.UTC)
	e.daily(t, "ufaq", m, "pending-late", 1, dateOf("2026-10-12"))
	e.daily(t, "ufaq", m, "pending-undated", 2, nil)

	completed, err := e.today.ListCompletedToday(ctx, "ufaq")
	require.NoError(t, err)
	require.Len(t, completed, 2)
	assert.Equal(t, "morning", completed[0].Title)
	assert.Equal(t, "after-local-midnight", completed[1].Title)
	for _, c := range completed {
		require.NotNil(t, c.CompletedAt)
	}

	s, err := e.today.Summary(ctx, "ufaq")
	require.NoError(t, err)
	assert.Equal(t, today.Summary{Pending: 2, Overdue: 1, Warning: 1, Critical: 0, CompletedToday: 2}, s)
}

func TestTodayService_QuickAdd(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	e := newEnv(t, loc)
	ctx := context.Background()
	m := e.mission(t, "ufaq", "Parent")

	// 21:00 UTC on the 13th is already the 14th locally.
	e.clock.T = time.Date(2026, 10, 13, 21, 0, 0, 0, time.UTC)

	dm, err := e.today.QuickAdd(ctx, "ufaq", ports.QuickAddRequest{MissionID: m.ID, Title: "quick"})
	require.NoError(t, err)
	assert.Equal(t, entities.PriorityMedium, dm.Priority)
	require.NotNil(t, dm.DueDate)
	assert.Equal(t, "2026-10-14", dm.DueDate.String())
	require.NotNil(t, dm.Description)
	assert.Equal(t, "", *dm.Description)

	high, err := e.today.QuickAdd(ctx, "ufaq", ports.QuickAddRequest{MissionID: m.ID, Title: "urgent", Priority: priority(entities.PriorityHigh)})
	require.NoError(t, err)
	assert.Equal(t, entities.PriorityHigh, high.Priority)

	_, err = e.today.QuickAdd(ctx, "zia", ports.QuickAddRequest{MissionID: m.ID, Title: "x"})
	assert.ErrorIs(t, err, entities.ErrMissionNotFound)

	items, err := e.today.ListToday(ctx, "ufaq")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "urgent", items[0].Title)
	assert.Equal(t, today.TaskStatusToday, items[1].TaskStatus)
}

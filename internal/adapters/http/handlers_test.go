package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missiontracker/core/internal/domain/entities"
	"github.com/missiontracker/core/internal/ports"
)

type structValidator struct{ v *validator.Validate }

func (sv structValidator) Validate(i interface{}) error { return sv.v.Struct(i) }

func TestMapError(t *testing.T) {
	tests := []struct {
		err     error
		code    int
		message string
	}{
		{fmt.Errorf("failed to get mission: %w", entities.ErrMissionNotFound), http.StatusNotFound, "Mission not found"},
		{fmt.Errorf("failed to get daily mission: %w", entities.ErrDailyMissionNotFound), http.StatusNotFound, "Daily mission not found"},
		{entities.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
		{entities.ErrInvalidPriority, http.StatusBadRequest, "Priority must be 1, 2 or 3"},
		{entities.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{errors.Join(entities.ErrUnauthenticated, errors.New("token is expired")), http.StatusUnauthorized, "Authentication required"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			var he *echo.HTTPError
			require.ErrorAs(t, mapError(tt.err), &he)
			assert.Equal(t, tt.code, he.Code)
			assert.Equal(t, tt.message, he.Message)
		})
	}

	storage := errors.New("disk I/O error")
	assert.Same(t, storage, mapError(storage))
}

func newTestEcho() *echo.Echo {
	v := validator.New()
	v.RegisterTagNameFunc(JSONTagName)
	e := echo.New()
	e.Validator = structValidator{v: v}
	return e
}

func TestBindAndValidate(t *testing.T) {
	e := newTestEcho()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"valid", `{"mission_id":"m1","title":"t","priority":3}`, ""},
		{"malformed", `{"mission_id":`, "Invalid request format"},
		{"missing title", `{"mission_id":"m1"}`, "title is required"},
		{"missing both", `{}`, "mission_id is required; title is required"},
		{"priority out of range", `{"mission_id":"m1","title":"t","priority":7}`, "priority must be at most 3"},
		{"title too long", `{"mission_id":"m1","title":"` + strings.Repeat("x", 256) + `"}`, "title must be at most 255 characters"},
		{"bad due date", `{"mission_id":"m1","title":"t","due_date":"14/10/2026"}`, "Invalid request format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			c := e.NewContext(req, httptest.NewRecorder())

			var dst ports.CreateDailyMissionRequest
			err := bindAndValidate(c, &dst)
			if tt.message == "" {
				require.NoError(t, err)
				assert.Equal(t, entities.PriorityLow, *dst.Priority)
				return
			}
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Equal(t, tt.message, he.Message)
			assert.NotContains(t, fmt.Sprint(he.Message), "CreateDailyMissionRequest")
		})
	}
}

func TestBindAndValidate_OneOf(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"title":"t","status":"archived"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var dst ports.UpdateMissionRequest
	var he *echo.HTTPError
	require.ErrorAs(t, bindAndValidate(c, &dst), &he)
	assert.Equal(t, "status must be one of: active, completed, paused", he.Message)
}

func TestCurrentUser(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, "", currentUser(c))

	c.Set(ContextKeyUser, "zia")
	assert.Equal(t, "zia", currentUser(c))
}

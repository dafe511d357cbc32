package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/missiontracker/core/internal/application/services"
	"github.com/missiontracker/core/internal/ports"
)

// TodayHandler serves the today dashboard
type TodayHandler struct {
	todayService *services.TodayService
}

// NewTodayHandler creates a new today handler
func NewTodayHandler(todayService *services.TodayService) *TodayHandler {
	return &TodayHandler{
		todayService: todayService,
	}
}

// ListToday godoc
// @Summary Actionable items for today
// @Description Pending items due today, overdue or undated under active missions, by priority then overdue first
// @Tags today
// @Produce json
// @Success 200 {array} today.Item
// @Security BearerAuth
// @Router /today [get]
// @Router /today/enhanced [get]
func (h *TodayHandler) ListToday(c echo.Context) error {
	items, err := h.todayService.ListToday(c.Request().Context(), currentUser(c))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// ListCompleted godoc
// @Summary Items completed today
// @Tags today
// @Produce json
// @Success 200 {array} entities.DailyMissionDetail
// @Security BearerAuth
// @Router /today/completed [get]
func (h *TodayHandler) ListCompleted(c echo.Context) error {
	items, err := h.todayService.ListCompletedToday(c.Request().Context(), currentUser(c))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// Summary godoc
// @Summary Today counters
// @Tags today
// @Produce json
// @Success 200 {object} today.Summary
// @Security BearerAuth
// @Router /today/summary [get]
func (h *TodayHandler) Summary(c echo.Context) error {
	summary, err := h.todayService.Summary(c.Request().Context(), currentUser(c))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// QuickAdd godoc
// @Summary Add a daily mission due today
// @Tags today
// @Accept json
// @Produce json
// @Param request body ports.QuickAddRequest true "Quick add"
// @Success 201 {object} entities.DailyMission
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /today/quick-add [post]
func (h *TodayHandler) QuickAdd(c echo.Context) error {
	var req ports.QuickAddRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	dm, err := h.todayService.QuickAdd(c.Request().Context(), currentUser(c), req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, dm)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/missiontracker/core/internal/application/services"
	"github.com/missiontracker/core/internal/ports"
)

// DailyMissionHandler handles daily mission requests
type DailyMissionHandler struct {
	dailyService *services.DailyMissionService
}

// NewDailyMissionHandler creates a new daily mission handler
func NewDailyMissionHandler(dailyService *services.DailyMissionService) *DailyMissionHandler {
	return &DailyMissionHandler{
		dailyService: dailyService,
	}
}

// ListDailyMissions godoc
// @Summary List daily missions
// @Tags daily-missions
// @Produce json
// @Success 200 {array} entities.DailyMissionDetail
// @Security BearerAuth
// @Router /daily-missions [get]
func (h *DailyMissionHandler) ListDailyMissions(c echo.Context) error {
	items, err := h.dailyService.ListDailyMissions(c.Request().Context(), currentUser(c))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// ListByMission godoc
// @Summary List daily missions of a mission
// @Tags daily-missions
// @Produce json
// @Param missionId path string true "Mission ID"
// @Success 200 {array} entities.DailyMission
// @Security BearerAuth
// @Router /daily-missions/mission/{missionId} [get]
func (h *DailyMissionHandler) ListByMission(c echo.Context) error {
	items, err := h.dailyService.ListByMission(c.Request().Context(), c.Param("missionId"), currentUser(c))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetDailyMission godoc
// @Summary Get a daily mission
// @Tags daily-missions
// @Produce json
// @Param id path string true "Daily mission ID"
// @Success 200 {object} entities.DailyMission
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /daily-missions/{id} [get]
func (h *DailyMissionHandler) GetDailyMission(c echo.Context) error {
	dm, err := h.dailyService.GetDailyMission(c.Request().Context(), c.Param("id"), currentUser(c))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, dm)
}

// CreateDailyMission godoc
// @Summary Create a daily mission
// @Description Priority defaults to 2. The parent mission must belong to the caller.
// @Tags daily-missions
// @Accept json
// @Produce json
// @Param request body ports.CreateDailyMissionRequest true "Daily mission"
// @Success 201 {object} entities.DailyMission
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /daily-missions [post]
func (h *DailyMissionHandler) CreateDailyMission(c echo.Context) error {
	var req ports.CreateDailyMissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	dm, err := h.dailyService.CreateDailyMission(c.Request().Context(), currentUser(c), req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, dm)
}

// UpdateDailyMission godoc
// @Summary Replace a daily mission
// @Description An omitted priority keeps the stored value
// @Tags daily-missions
// @Accept json
// @Produce json
// @Param id path string true "Daily mission ID"
// @Param request body ports.UpdateDailyMissionRequest true "Daily mission"
// @Success 200 {object} entities.DailyMission
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /daily-missions/{id} [put]
func (h *DailyMissionHandler) UpdateDailyMission(c echo.Context) error {
	var req ports.UpdateDailyMissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	dm, err := h.dailyService.UpdateDailyMission(c.Request().Context(), c.Param("id"), currentUser(c), req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, dm)
}

// DeleteDailyMission godoc
// @Summary Delete a daily mission
// @Tags daily-missions
// @Produce json
// @Param id path string true "Daily mission ID"
// @Success 200 {object} ports.DeleteResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /daily-missions/{id} [delete]
func (h *DailyMissionHandler) DeleteDailyMission(c echo.Context) error {
	if err := h.dailyService.DeleteDailyMission(c.Request().Context(), c.Param("id"), currentUser(c)); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, ports.DeleteResponse{Deleted: true})
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/missiontracker/core/internal/application/services"
	"github.com/missiontracker/core/internal/ports"
)

// MissionHandler handles mission requests
type MissionHandler struct {
	missionService *services.MissionService
}

// NewMissionHandler creates a new mission handler
func NewMissionHandler(missionService *services.MissionService) *MissionHandler {
	return &MissionHandler{
		missionService: missionService,
	}
}

// ListMissions godoc
// @Summary List missions
// @Description Missions of the caller, newest first
// @Tags missions
// @Produce json
// @Success 200 {array} entities.Mission
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions [get]
func (h *MissionHandler) ListMissions(c echo.Context) error {
	missions, err := h.missionService.ListMissions(c.Request().Context(), currentUser(c))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, missions)
}

// GetMission godoc
// @Summary Get a mission
// @Tags missions
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {object} entities.Mission
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions/{id} [get]
func (h *MissionHandler) GetMission(c echo.Context) error {
	mission, err := h.missionService.GetMission(c.Request().Context(), c.Param("id"), currentUser(c))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, mission)
}

// CreateMission godoc
// @Summary Create a mission
// @Tags missions
// @Accept json
// @Produce json
// @Param request body ports.CreateMissionRequest true "Mission"
// @Success 201 {object} entities.Mission
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions [post]
func (h *MissionHandler) CreateMission(c echo.Context) error {
	var req ports.CreateMissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	mission, err := h.missionService.CreateMission(c.Request().Context(), currentUser(c), req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, mission)
}

// UpdateMission godoc
// @Summary Replace a mission
// @Description Completing a mission stamps completed_at; any other status clears it
// @Tags missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID"
// @Param request body ports.UpdateMissionRequest true "Mission"
// @Success 200 {object} entities.Mission
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions/{id} [put]
func (h *MissionHandler) UpdateMission(c echo.Context) error {
	var req ports.UpdateMissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	mission, err := h.missionService.UpdateMission(c.Request().Context(), c.Param("id"), currentUser(c), req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, mission)
}

// DeleteMission godoc
// @Summary Delete a mission and its daily missions
// @Tags missions
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {object} ports.DeleteResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions/{id} [delete]
func (h *MissionHandler) DeleteMission(c echo.Context) error {
	if err := h.missionService.DeleteMission(c.Request().Context(), c.Param("id"), currentUser(c)); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, ports.DeleteResponse{Deleted: true})
}

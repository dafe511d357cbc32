package http

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/missiontracker/core/internal/application/services"
	"github.com/missiontracker/core/internal/domain/entities"
	"github.com/missiontracker/core/internal/ports"
)

// ContextKeyUser is the echo context key holding the authenticated username.
const ContextKeyUser = "user"

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MeResponse describes the caller
type MeResponse struct {
	Success bool           `json:"success"`
	User    ports.UserInfo `json:"user"`
}

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
// @Summary Log in
// @Description Exchange a username and password for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ports.LoginRequest true "Credentials"
// @Success 200 {object} ports.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return mapError(entities.ErrInvalidCredentials)
	}

	response, err := h.authService.Login(c.Request().Context(), req, c.RealIP())
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, response)
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, MeResponse{
		Success: true,
		User:    ports.UserInfo{Username: currentUser(c)},
	})
}

// currentUser returns the username the identity middleware resolved.
func currentUser(c echo.Context) string {
	user, _ := c.Get(ContextKeyUser).(string)
	return user
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}

	return nil
}

// JSONTagName reports struct fields by their JSON name in validation errors.
// Register it with validator.RegisterTagNameFunc.
func JSONTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// validationMessage renders validator errors as "field rule" phrases.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", fe.Field(), fe.Param(), unit)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", fe.Field(), fe.Param(), unit)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// mapError turns domain errors into HTTP errors. Anything else is a storage
// failure and is left for the error handler to render as 500.
func mapError(err error) error {
	switch {
	case errors.Is(err, entities.ErrMissionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Mission not found")
	case errors.Is(err, entities.ErrDailyMissionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Daily mission not found")
	case errors.Is(err, entities.ErrInvalidStatus):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
	case errors.Is(err, entities.ErrInvalidPriority):
		return echo.NewHTTPError(http.StatusBadRequest, "Priority must be 1, 2 or 3")
	case errors.Is(err, entities.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, entities.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return err
}

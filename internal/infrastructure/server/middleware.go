package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	httpHandlers "github.com/missiontracker/core/internal/adapters/http"
	"github.com/missiontracker/core/internal/application/services"
)

const bearerPrefix = "Bearer "

// identityMiddleware resolves the caller to a configured username or stops
// the request with 401. A bearer token wins over the identity header; an
// invalid token never falls back to the header.
func (s *Server) identityMiddleware(authService *services.AuthService) echo.MiddlewareFunc {
	unauthenticated := echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
				tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
				if !ok {
					return unauthenticated
				}

				claims, err := authService.ValidateToken(tokenString)
				if err != nil {
					s.logger.LogSecurityEvent("invalid_token", "", c.RealIP(), map[string]interface{}{
						"error":    err.Error(),
						"endpoint": c.Request().URL.Path,
					})
					return unauthenticated
				}

				c.Set(httpHandlers.ContextKeyUser, claims.Username)
				return next(c)
			}

			if s.config.Auth.AllowHeaderIdentity {
				username := c.Request().Header.Get(s.config.Auth.IdentityHeader)
				if err := authService.Authorize(username); err == nil {
					c.Set(httpHandlers.ContextKeyUser, username)
					return next(c)
				}
				if username != "" {
					s.logger.LogSecurityEvent("unknown_identity", username, c.RealIP(), map[string]interface{}{
						"endpoint": c.Request().URL.Path,
					})
				}
			}

			return unauthenticated
		}
	}
}

// rateLimiter limits every route per client IP. Nil when disabled.
func (s *Server) rateLimiter() echo.MiddlewareFunc {
	requests := s.config.Security.RateLimitRequests
	window := s.config.Security.RateLimitWindow
	if requests <= 0 || window <= 0 {
		return nil
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(float64(requests) / window.Seconds()),
				Burst:     requests,
				ExpiresIn: window,
			},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Rate limit exceeded")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded")
		},
	})
}

// loginRateLimiter throttles password guessing per client IP. Nil when disabled.
func (s *Server) loginRateLimiter() echo.MiddlewareFunc {
	perMinute := s.config.Security.LoginRatePerMinute
	if perMinute <= 0 {
		return nil
	}
	burst := s.config.Security.LoginBurst
	if burst <= 0 {
		burst = 1
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Every(time.Minute / time.Duration(perMinute)),
				Burst:     burst,
				ExpiresIn: 10 * time.Minute,
			},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			s.logger.LogSecurityEvent("login_rate_limited", "", identifier, nil)
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts")
		},
	})
}

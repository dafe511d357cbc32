package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/missiontracker/core/internal/domain/entities"
	"github.com/missiontracker/core/internal/infrastructure/config"
	"github.com/missiontracker/core/internal/infrastructure/logger"
	"github.com/missiontracker/core/internal/ports"
)

const tokenType = "Bearer"

// AuthService handles authentication operations
type AuthService struct {
	credentials   ports.CredentialStore
	jwtConfig     config.JWTConfig
	clock         ports.Clock
	logger        *logger.Logger
	loginAttempts *prometheus.CounterVec
}

// NewAuthService creates a new auth service. The login counter is registered
// with reg when reg is non-nil.
func NewAuthService(credentials ports.CredentialStore, jwtConfig config.JWTConfig, clock ports.Clock, logger *logger.Logger, reg prometheus.Registerer) *AuthService {
	attempts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "missiontracker_login_attempts_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)
	if reg != nil {
		reg.MustRegister(attempts)
	}

	return &AuthService{
		credentials:   credentials,
		jwtConfig:     jwtConfig,
		clock:         clock,
		logger:        logger.WithComponent("auth"),
		loginAttempts: attempts,
	}
}

// Login checks the credentials and issues a session token. Any mismatch
// yields ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req ports.LoginRequest, clientIP string) (*ports.LoginResponse, error) {
	if !s.credentials.Verify(req.Username, req.Password) {
		s.loginAttempts.WithLabelValues("failure").Inc()
		s.logger.LogSecurityEvent("login_failed", req.Username, clientIP, map[string]interface{}{
			"reason": "invalid_credentials",
		})
		return nil, entities.ErrInvalidCredentials
	}

	token, expiresAt, err := s.generateToken(req.Username)
	if err != nil {
		s.loginAttempts.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.loginAttempts.WithLabelValues("success").Inc()
	s.logger.Infow("User logged in", "user", req.Username, "ip", clientIP)

	return &ports.LoginResponse{
		Success:   true,
		User:      ports.UserInfo{Username: req.Username},
		Token:     token,
		TokenType: tokenType,
		ExpiresAt: expiresAt,
		Message:   "Login successful",
	}, nil
}

// Authorize accepts username only if it names a configured account.
func (s *AuthService) Authorize(username string) error {
	if !s.credentials.Exists(username) {
		return entities.ErrUnauthenticated
	}
	return nil
}

// ValidateToken verifies a session token and that its subject is still a
// configured account.
func (s *AuthService) ValidateToken(tokenString string) (*ports.Claims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(s.jwtConfig.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.jwtConfig.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, errors.Join(entities.ErrUnauthenticated, err)
	}

	if err := s.Authorize(claims.Subject); err != nil {
		return nil, err
	}

	return &ports.Claims{
		Username:  claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *AuthService) generateToken(username string) (string, time.Time, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.jwtConfig.ExpiresIn)

	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    s.jwtConfig.Issuer,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt.UTC().Truncate(time.Second), nil
}

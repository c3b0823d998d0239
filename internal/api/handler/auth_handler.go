package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/recipebook/recipe-api/internal/api/metrics"
	"github.com/recipebook/recipe-api/internal/core/ports"
)

// RegisterLimiter abstracts the fixed-window rate limiter (Redis) guarding the
// registration endpoint.
type RegisterLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// AuthHandler handles registration and login.
type AuthHandler struct {
	users   ports.UserService
	limiter RegisterLimiter
	logger  zerolog.Logger
}

func NewAuthHandler(users ports.UserService, limiter RegisterLimiter, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{users: users, limiter: limiter, logger: logger}
}

// Register handles POST /api/register. A taken username is a 400, matching
// the rest of the validation failures on this endpoint. Success is a bare 200.
func (h *AuthHandler) Register(c echo.Context) error {
	if h.limiter != nil {
		ok, err := h.limiter.Allow(c.Request().Context(), c.RealIP())
		if err != nil {
			// Limiter trouble must not take registration down with it.
			h.logger.Warn().Err(err).Msg("register rate limit check failed, allowing request")
		} else if !ok {
			metrics.AuthRejectionsTotal.WithLabelValues("rate_limited").Inc()
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "too many registration attempts"})
		}
	}

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	taken, err := h.users.Exists(c.Request().Context(), req.UserName)
	if err != nil {
		return err
	}
	if taken {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "username already taken"})
	}

	if err := h.users.Register(c.Request().Context(), req.UserName, req.Password); err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	h.logger.Info().Str("username", req.UserName).Msg("user registered")
	return c.NoContent(http.StatusOK)
}

// Login handles POST /api/auth/login and returns a Bearer token usable in
// place of Basic credentials.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, _, err := h.users.Login(c.Request().Context(), req.UserName, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

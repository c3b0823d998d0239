package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// AdminHandler handles admin-only operations.
type AdminHandler struct {
	shutdown func()
	logger   zerolog.Logger
}

// NewAdminHandler creates an AdminHandler. shutdown is invoked asynchronously
// when the shutdown endpoint is hit; the process wiring decides what it does.
func NewAdminHandler(shutdown func(), logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{shutdown: shutdown, logger: logger}
}

// Shutdown handles POST /api/admin/shutdown. Responds 202 and then triggers a
// graceful stop, so the caller gets its response before the listener closes.
func (h *AdminHandler) Shutdown(c echo.Context) error {
	userName, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	h.logger.Warn().Str("username", userName).Msg("shutdown requested")
	if h.shutdown != nil {
		go h.shutdown()
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "shutting down"})
}

package pathcheck

import (
	"strings"

	"sitemap-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for path checks.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, logger: service.logger}
}

// RegisterRoutes registers the path check routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/check-path", h.HandleCheckPath)
}

// HandleCheckPath reports how the edge worker handles a path.
// @Summary Check Path
// @Description Returns whether a request path passes through or is redirected to its canonical form.
// @Tags pathcheck
// @Produce json
// @Param path query string true "Request path, e.g. /blog"
// @Success 200 {object} Decision "Decision"
// @Failure 400 {object} map[string]interface{} "Invalid Path"
// @Router /check-path [get]
func (h *Handler) HandleCheckPath(c *fiber.Ctx) error {
	p := c.Query("path")
	if !strings.HasPrefix(p, "/") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "path must start with /",
		})
	}

	d := h.service.Check(c.Context(), p)
	logger.WithRayID(h.logger, c).Debug("Path checked",
		zap.String("path", p),
		zap.String("action", string(d.Action)),
		zap.String("reason", d.Reason))

	return c.JSON(d)
}

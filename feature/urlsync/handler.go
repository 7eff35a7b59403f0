package urlsync

import (
	"time"

	"sitemap-sync/core/logger"
	"sitemap-sync/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for URL list syncs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/sync-urls", h.HandleSync)
	app.Get("/get-metadata", h.HandleGetMetadata)
	app.Get("/sync-history", h.HandleHistory)
}

// HandleSync runs a sync.
// @Summary Sync URL List
// @Description Merges the sitemap and redirect list paths and rewrites the stored URL list when its fingerprint changed.
// @Tags sync
// @Produce json
// @Param dry_run query boolean false "Plan the writes without executing them"
// @Success 200 {object} map[string]interface{} "Sync Result"
// @Failure 500 {object} map[string]interface{} "Sync Failed"
// @Router /sync-urls [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	opts := reconcile.Options{DryRun: c.QueryBool("dry_run")}

	result, err := h.service.SyncWithOptions(c.Context(), opts)
	if err != nil {
		l.Error("URL sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success":   false,
			"error":     err.Error(),
			"timestamp": time.Now().Format(time.RFC3339Nano),
		})
	}

	if result.Status == reconcile.StatusUnchanged {
		l.Info("URL list already up to date")
		return c.JSON(fiber.Map{
			"success":  true,
			"status":   result.Status,
			"metadata": result.PreviousMetadata,
			"message":  "URLs are already up to date",
		})
	}

	l.Info("URL list updated", zap.Int("urls_added", result.URLsAdded), zap.Bool("dry_run", result.DryRun))
	body := fiber.Map{
		"success":           true,
		"status":            result.Status,
		"previous_metadata": result.PreviousMetadata,
		"new_metadata":      result.NewMetadata,
		"changes": fiber.Map{
			"urls_added": result.URLsAdded,
		},
	}
	if result.DryRun {
		body["dry_run"] = true
	}
	return c.JSON(body)
}

// HandleGetMetadata returns the stored metadata.
// @Summary Get Metadata
// @Description Returns the metadata of the stored URL list.
// @Tags sync
// @Produce json
// @Success 200 {object} map[string]interface{} "Metadata"
// @Failure 404 {object} map[string]interface{} "No Metadata"
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /get-metadata [get]
func (h *Handler) HandleGetMetadata(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	metadata, err := h.service.Metadata(c.Context())
	if err != nil {
		l.Error("Failed to read metadata", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	if metadata == nil {
		l.Warn("No metadata found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "No metadata found",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"metadata": metadata,
	})
}

// HandleHistory lists recent sync runs.
// @Summary Sync History
// @Description Lists the most recent sync runs, newest first.
// @Tags sync
// @Produce json
// @Param limit query int false "Number of runs (default 20, max 100)"
// @Success 200 {object} map[string]interface{} "Runs"
// @Failure 503 {object} map[string]interface{} "History Disabled"
// @Router /sync-history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	if !h.service.HistoryEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"error":   "sync history is disabled",
		})
	}

	runs, err := h.service.History(c.Context(), c.QueryInt("limit", DefaultHistoryLimit))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to read sync history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"runs":    runs,
	})
}

package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cv-folio/internal/domain"
	"cv-folio/internal/usecase"
)

// Exporter produces the CV PDF for a language and lists past exports.
type Exporter interface {
	Export(ctx context.Context, rawLang string) (*usecase.ExportResult, error)
	History(ctx context.Context, n int) ([]domain.ExportJob, error)
}

type Handler struct {
	exporter Exporter
	log      *zap.Logger
}

func NewHandler(e Exporter, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{exporter: e, log: log}
}

// ExportCV serves GET /export/cv.pdf?lang=de|en.
func (h *Handler) ExportCV(c *fiber.Ctx) error {
	res, err := h.exporter.Export(c.UserContext(), c.Query("lang"))
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, usecase.ErrBrowserUnavailable) {
			status = fiber.StatusServiceUnavailable
		}
		h.log.Warn("export request failed", zap.Int("status", status), zap.Error(err))
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(status).SendString(err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(fiber.StatusOK).Send(res.PDF)
}

// ExportHistory serves GET /export/history?limit=n.
func (h *Handler) ExportHistory(c *fiber.Ctx) error {
	jobs, err := h.exporter.History(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		h.log.Warn("export history failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"exports": jobs})
}

// Health serves GET /healthz.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Register mounts the export routes and serves siteDir as the static site.
func Register(app *fiber.App, h *Handler, siteDir string) {
	app.Get("/healthz", h.Health)
	app.Get("/export/cv.pdf", h.ExportCV)
	app.Get("/export/history", h.ExportHistory)
	if siteDir != "" {
		app.Static("/", siteDir, fiber.Static{Index: "cv.html"})
	}
}

// NewApp builds the fiber app with routes registered.
func NewApp(h *Handler, siteDir string) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	Register(app, h, siteDir)
	return app
}

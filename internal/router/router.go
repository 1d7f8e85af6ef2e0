package router

import (
	"time"

	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/handler"
	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Radar  *handler.RadarHandler
	Health *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	app.Get("/ping", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":      true,
			"ts":      time.Now().UTC().Format(time.RFC3339),
			"service": "influencer-radar",
		})
	})

	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// API routes
	api := app.Group("/api")
	api.Use(middleware.NewReportRateLimiter().Handler())

	api.Get("/top100", h.Radar.Top100)
}

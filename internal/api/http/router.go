package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/insightfulai/platform/internal/api/http/handlers"
	"github.com/insightfulai/platform/internal/auth"
	"github.com/insightfulai/platform/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Data           *handlers.DataHandler
	Analysis       *handlers.AnalysisHandler
	Competitors    *handlers.CompetitorsHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.Middleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Everything under /api/v1 except the login
// and the auth scaffold endpoints requires a valid bearer token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/debug/metrics", func(c *fiber.Ctx) error {
		requests, errCounts := cfg.Metrics.Snapshot()
		return c.JSON(fiber.Map{"requests": requests, "errors": errCounts})
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/password-recovery/:email", cfg.Auth.RecoverPassword)
	authGroup.Post("/reset-password", cfg.Auth.ResetPassword)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	users := v1.Group("/users", cfg.AuthMiddleware.Handle)
	users.Get("/me", cfg.Users.Me)

	data := v1.Group("/data", cfg.AuthMiddleware.Handle)
	data.Post("/web-scrape", cfg.Data.WebScrape)
	data.Post("/social-media", cfg.Data.SocialMedia)
	data.Post("/news", cfg.Data.News)
	data.Get("/sources", cfg.Data.Sources)
	data.Get("/jobs", cfg.Data.Jobs)
	data.Delete("/jobs/:id", cfg.Data.CancelJob)
	data.Get("/data", cfg.Data.CollectedData)

	analysis := v1.Group("/analysis", cfg.AuthMiddleware.Handle)
	analysis.Post("/sentiment", cfg.Analysis.Sentiment)
	analysis.Post("/batch-sentiment", cfg.Analysis.BatchSentiment)
	analysis.Get("/trends", cfg.Analysis.Trends)
	analysis.Get("/entities", cfg.Analysis.Entities)
	analysis.Get("/topics", cfg.Analysis.Topics)
	analysis.Get("/comparison", cfg.Analysis.Comparison)

	competitors := v1.Group("/competitors", cfg.AuthMiddleware.Handle)
	competitors.Post("/", cfg.Competitors.Create)
	competitors.Get("/", cfg.Competitors.List)
	// Registered before /:id so "comparison" is not captured as an ID.
	competitors.Get("/comparison", cfg.Competitors.Comparison)
	competitors.Get("/:id", cfg.Competitors.Get)
	competitors.Put("/:id", cfg.Competitors.Update)
	competitors.Delete("/:id", cfg.Competitors.Delete)
	competitors.Get("/:id/activity", cfg.Competitors.Activity)
	competitors.Get("/:id/products", cfg.Competitors.Products)

	reports := v1.Group("/reports", cfg.AuthMiddleware.Handle)
	reports.Post("/generate", cfg.Reports.Generate)
	reports.Get("/", cfg.Reports.List)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/navigation"
	"github.com/spec-kit/helpdesk/internal/repository"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Users             *handlers.UsersHandler
	Tickets           *handlers.TicketsHandler
	DepartmentTickets *handlers.DepartmentTicketsHandler
	Uploads           *handlers.UploadsHandler
	Navigation        *handlers.NavigationHandler
	Reports           *handlers.ReportsHandler
	AuthMiddleware    *auth.AuthMiddleware
	UserRepo          repository.UserRepository
	// UploadsDir is served statically under /uploads when set.
	UploadsDir string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	if cfg.UploadsDir != "" {
		app.Static("/uploads", cfg.UploadsDir)
	}

	api := app.Group("/api")
	api.Post("/auth/login", cfg.Users.Login)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	withUser := auth.LoadUser(cfg.UserRepo)

	protected.Get("/users", auth.RequireAdmin(), cfg.Users.ListUsers)
	protected.Post("/users", auth.RequireAdmin(), cfg.Users.CreateUser)
	protected.Post("/uploads", cfg.Uploads.Upload)
	protected.Get("/navigation", withUser, cfg.Navigation.Navigate)

	reports := protected.Group("/reports", auth.RequireScreen(cfg.UserRepo, navigation.ScreenReports))
	reports.Get("", cfg.Reports.Summary)
	reports.Get("/export", cfg.Reports.Export)

	tickets := protected.Group("/tickets")
	tickets.Get("", cfg.Tickets.ListTickets)
	tickets.Post("", withUser, cfg.Tickets.CreateTicket)
	tickets.Get("/departamento", withUser, cfg.DepartmentTickets.ListOpen)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Patch("/:id/status", withUser, cfg.Tickets.UpdateStatus)
	tickets.Post("/:id/respostas", withUser, cfg.Tickets.AddMessage)
	tickets.Post("/:id/atribuir", withUser, cfg.DepartmentTickets.Assign)
	tickets.Post("/:id/finalizar", withUser, cfg.DepartmentTickets.Finish)
}

package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/web/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Dashboard     *handlers.DashboardHandler
	Settings      *handlers.SettingsHandler
	Models        *handlers.ModelsHandler
	Tickets       *handlers.TicketsHandler
	Notes         *handlers.NotesHandler
	Roles         *handlers.RolesHandler
	Notifications *handlers.NotificationsHandler
	Warranty      *handlers.WarrantyHandler
	Assistant     *handlers.AssistantHandler
}

// RegisterRoutes wires the screen routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/login", cfg.Auth.LoginForm)
	app.Post("/login", cfg.Auth.Login)
	app.Post("/logout", cfg.Auth.Logout)

	app.Get("/", cfg.Dashboard.Show)

	settings := app.Group("/settings")
	settings.Get("/models", cfg.Models.List)
	settings.Get("/models/new", cfg.Models.NewForm)
	settings.Post("/models", cfg.Models.Create)
	settings.Get("/models/:id/edit", cfg.Models.EditForm)
	settings.Post("/models/:id", cfg.Models.Update)
	settings.Get("/models/:id/delete", cfg.Models.ConfirmDelete)
	settings.Post("/models/:id/delete", cfg.Models.Delete)

	settings.Get("/:resource", cfg.Settings.List)
	settings.Get("/:resource/new", cfg.Settings.NewForm)
	settings.Post("/:resource", cfg.Settings.Create)
	settings.Get("/:resource/:id/edit", cfg.Settings.EditForm)
	settings.Post("/:resource/:id", cfg.Settings.Update)
	settings.Get("/:resource/:id/delete", cfg.Settings.ConfirmDelete)
	settings.Post("/:resource/:id/delete", cfg.Settings.Delete)

	tickets := app.Group("/tickets")
	tickets.Get("/", cfg.Tickets.List)
	tickets.Get("/new", cfg.Tickets.NewForm)
	tickets.Post("/", cfg.Tickets.Create)
	tickets.Get("/:id", cfg.Tickets.Detail)
	tickets.Post("/:id/assign", cfg.Tickets.Assign)
	tickets.Post("/:id/priority", cfg.Tickets.SetPriority)
	tickets.Post("/:id/transfer", cfg.Tickets.Transfer)
	tickets.Post("/:id/cancel", cfg.Tickets.Cancel)
	tickets.Get("/:id/solution", cfg.Tickets.Solution)

	tickets.Post("/:id/notes", cfg.Notes.Create)
	tickets.Get("/:id/notes/attachments/:attachmentId/download", cfg.Notes.Download)
	tickets.Post("/:id/notes/attachments/:attachmentId/delete", cfg.Notes.DeleteAttachment)

	roles := app.Group("/roles")
	roles.Get("/", cfg.Roles.List)
	roles.Get("/new", cfg.Roles.NewForm)
	roles.Post("/", cfg.Roles.Create)
	roles.Get("/:id/edit", cfg.Roles.EditForm)
	roles.Post("/:id", cfg.Roles.Update)
	roles.Post("/:id/delete", cfg.Roles.Delete)

	app.Get("/notifications", cfg.Notifications.List)
	app.Post("/notifications/:id/read", cfg.Notifications.MarkRead)
	app.Post("/notifications/:id/delete", cfg.Notifications.Delete)

	app.Get("/warranty", cfg.Warranty.Report)

	app.Get("/assistant", cfg.Assistant.Show)
	app.Post("/assistant", cfg.Assistant.Ask)
}

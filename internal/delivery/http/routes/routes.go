package routes

import (
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Health *handler.HealthHandler
	Auth   *handler.AuthHandler
	Jobs   *handler.JobsHandler
	Match  *handler.MatchHandler

	AuthMW *middleware.AuthMiddleware
}

// Register wires the public surface. Matches and interactions require a
// bearer token; job listing and auth do not.
func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	d.Health.RegisterRoutes(app)

	v1 := app.Group("/api/v1")
	d.Auth.RegisterRoutes(v1)
	v1.Get("/jobs", d.Jobs.ListJobs)

	protected := v1.Group("", d.AuthMW.Middleware())
	protected.Get("/matches", d.Match.GetMatches)
	protected.Post("/jobs/:job_id/interactions", d.Jobs.RecordInteraction)
}

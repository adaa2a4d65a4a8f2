package handlers_fiber

import (
	"github.com/benjidennett/lego-app/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Register wires all routes. Public routes stay open; judge and admin
// groups authenticate with Basic credentials and enforce the role once
// at group entry.
func Register(app *fiber.App, log *zap.SugaredLogger, h *Handler, auth middleware.Authenticator) {
	app.Get("/scoreboard", h.GetScoreboard)
	app.Get("/teams", h.GetTeams)
	app.Get("/stage", h.GetStage)

	authn := middleware.BasicAuth(log, auth)

	judges := app.Group("/judges", authn, middleware.RequireScoring())
	judges.Post("/score", h.PostScore)

	admin := app.Group("/admin", authn, middleware.RequireAdmin())
	admin.Put("/stage", h.PutStage)
	admin.Post("/teams", h.PostTeam)
	admin.Post("/teams/reset", h.PostTeamsReset)
	admin.Delete("/teams/:number", h.DeleteTeam)
	admin.Post("/users", h.PostUser)
	admin.Get("/users", h.GetUsers)
	admin.Delete("/users/:username", h.DeleteUser)
}

package handlers_fiber

import (
	"net/http"
	"strconv"

	"github.com/benjidennett/lego-app/internal/api"
	"github.com/benjidennett/lego-app/internal/entities"
	"github.com/benjidennett/lego-app/internal/mapper"
	"github.com/benjidennett/lego-app/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetTeams lists teams. Query flags mirror the admin CLI filters.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	filter := entities.TeamFilter{
		ExcludePractice: c.QueryBool("no_practice"),
		ActiveOnly:      c.QueryBool("active"),
	}

	teams, err := h.uc.Teams(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Teams []api.Team `json:"teams"`
	}{Teams: mapper.ToAPITeamList(teams)})
}

// PostTeam registers a competing team.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body api.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	actor := middleware.ActingUser(c)
	team, err := h.uc.CreateTeam(c.Context(), actor, body.Number, body.Name)
	if err != nil {
		h.log.Errorw("failed to create team", "error", err.Error(), "number", body.Number)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Team api.Team `json:"team"`
	}{Team: mapper.ToAPITeam(*team)})
}

// DeleteTeam removes a team by number.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid team number"))
	}

	actor := middleware.ActingUser(c)
	if err := h.uc.DeleteTeam(c.Context(), actor, number); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostTeamsReset removes all non-practice teams between events.
func (h *Handler) PostTeamsReset(c *fiber.Ctx) error {
	actor := middleware.ActingUser(c)
	removed, err := h.uc.ResetTeams(c.Context(), actor)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Removed int `json:"removed"`
	}{Removed: removed})
}

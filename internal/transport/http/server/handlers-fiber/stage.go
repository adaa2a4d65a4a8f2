package handlers_fiber

import (
	"net/http"

	"github.com/benjidennett/lego-app/internal/api"
	"github.com/benjidennett/lego-app/internal/mapper"
	"github.com/benjidennett/lego-app/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetStage returns the current stage ordinal and name.
func (h *Handler) GetStage(c *fiber.Ctx) error {
	stage, err := h.uc.Stage(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.StageResponse{Stage: int(stage), Name: stage.String()})
}

// PutStage advances the competition stage and recomputes active teams.
func (h *Handler) PutStage(c *fiber.Ctx) error {
	var body api.SetStageRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	actor := middleware.ActingUser(c)
	stage, err := h.uc.SetStage(c.Context(), actor, body.Stage)
	if err != nil {
		h.log.Errorw("failed to set stage", "error", err.Error(), "stage", body.Stage)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.StageResponse{Stage: int(stage), Name: stage.String()})
}

// GetScoreboard returns the ranked view for the current stage.
func (h *Handler) GetScoreboard(c *fiber.Ctx) error {
	view, err := h.uc.Scoreboard(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIScoreboard(view))
}

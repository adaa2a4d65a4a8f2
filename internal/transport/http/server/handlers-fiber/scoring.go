package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/benjidennett/lego-app/internal/api"
	"github.com/benjidennett/lego-app/internal/entities"
	"github.com/benjidennett/lego-app/internal/mapper"
	"github.com/benjidennett/lego-app/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostScore runs one pass of the scoring workflow for the acting judge.
func (h *Handler) PostScore(c *fiber.Ctx) error {
	var body api.ScoreSubmission
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	actor := middleware.ActingUser(c)
	outcome, err := h.uc.SubmitScore(c.Context(), actor, mapper.FromAPISubmission(body))
	if err != nil {
		if errors.Is(err, entities.ErrAttemptsExhausted) {
			return c.Status(http.StatusConflict).JSON(api.ScoreOutcome{
				Status:     string(entities.SubmissionRejected),
				TeamNumber: body.TeamNumber,
				Message:    "Team has no more attempts remaining",
			})
		}
		h.log.Errorw("failed to submit score", "error", err.Error(), "team", body.TeamNumber)
		return writeError(c, err)
	}

	status := http.StatusOK
	if outcome.Status == entities.SubmissionCommitted {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(mapper.ToAPIOutcome(outcome))
}

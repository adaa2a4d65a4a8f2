package handlers_fiber

import (
	"net/http"

	"github.com/benjidennett/lego-app/internal/api"
	"github.com/benjidennett/lego-app/internal/mapper"
	"github.com/benjidennett/lego-app/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostUser registers an account.
func (h *Handler) PostUser(c *fiber.Ctx) error {
	var body api.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	actor := middleware.ActingUser(c)
	user, err := h.uc.CreateUser(c.Context(), actor, body.Username, body.Password, body.IsJudge, body.IsAdmin)
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error(), "username", body.Username)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)})
}

// GetUsers lists accounts.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	actor := middleware.ActingUser(c)
	users, err := h.uc.Users(c.Context(), actor)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Users []api.User `json:"users"`
	}{Users: mapper.ToAPIUserList(users)})
}

// DeleteUser removes an account by username.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	actor := middleware.ActingUser(c)
	if err := h.uc.DeleteUser(c.Context(), actor, c.Params("username")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/benjidennett/lego-app/internal/api"
	"github.com/benjidennett/lego-app/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrValidation):
		status = http.StatusBadRequest
		code = api.VALIDATION
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		code = api.UNAUTHORIZED
		msg = "invalid credentials"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = api.FORBIDDEN
		msg = "insufficient role"
	case errors.Is(err, entities.ErrTeamNotFound), errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrAttemptsExhausted):
		status = http.StatusConflict
		code = api.NOATTEMPTS
		msg = "team has no more attempts remaining"
	case errors.Is(err, entities.ErrStageUnsupported):
		status = http.StatusConflict
		code = api.STAGEUNSUPPORTED
		msg = err.Error()
	case errors.Is(err, entities.ErrConfirmationExpired):
		status = http.StatusConflict
		code = api.CONFIRMEXPIRED
		msg = "confirmation expired, recalculate the score"
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusConflict
		code = api.CONFLICT
		msg = "team number or name already exists"
	case errors.Is(err, entities.ErrPracticeTeamExists):
		status = http.StatusConflict
		code = api.CONFLICT
		msg = "practice team already exists"
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusConflict
		code = api.CONFLICT
		msg = "username already exists"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	var body api.ErrorResponse
	body.Error.Code = code
	body.Error.Message = msg
	return body
}

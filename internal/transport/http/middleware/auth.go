package middleware

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/benjidennett/lego-app/internal/api"
	"github.com/benjidennett/lego-app/internal/entities"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// userKey is the fiber locals slot holding the authenticated user.
const userKey = "acting_user"

// Authenticator resolves credentials to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*entities.User, error)
}

// BasicAuth authenticates every request on the group with HTTP Basic
// credentials and stores the resolved user for the handlers.
func BasicAuth(log *zap.SugaredLogger, auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, password, ok := basicCredentials(c.Get(fiber.HeaderAuthorization))
		if !ok {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="restricted"`)
			return unauthorized(c, "credentials required")
		}

		user, err := auth.Authenticate(c.Context(), username, password)
		if err != nil {
			log.Infow("authentication failed", "username", username)
			return unauthorized(c, "invalid credentials")
		}

		c.Locals(userKey, *user)
		return c.Next()
	}
}

// RequireScoring rejects users without the judge or admin role.
func RequireScoring() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !ActingUser(c).CanScore() {
			return forbidden(c)
		}
		return c.Next()
	}
}

// RequireAdmin rejects users without the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !ActingUser(c).IsAdmin {
			return forbidden(c)
		}
		return c.Next()
	}
}

// ActingUser returns the authenticated user stored by BasicAuth.
func ActingUser(c *fiber.Ctx) entities.User {
	u, _ := c.Locals(userKey).(entities.User)
	return u
}

func basicCredentials(header string) (username, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	username, password, ok = strings.Cut(string(raw), ":")
	return username, password, ok
}

func unauthorized(c *fiber.Ctx, msg string) error {
	var body api.ErrorResponse
	body.Error.Code = api.UNAUTHORIZED
	body.Error.Message = msg
	return c.Status(fiber.StatusUnauthorized).JSON(body)
}

func forbidden(c *fiber.Ctx) error {
	var body api.ErrorResponse
	body.Error.Code = api.FORBIDDEN
	body.Error.Message = "insufficient role"
	return c.Status(fiber.StatusForbidden).JSON(body)
}

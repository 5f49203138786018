package jwt

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/urbanfood/usersvc/pkg/users"
)

// CurrentUserKey is the fiber.Ctx locals key under which NewAuthMiddleware
// stores the resolved users.User.
const CurrentUserKey = "currentUser"

// NewAuthMiddleware returns a Fiber middleware that validates a Bearer JWT
// and resolves its subject to a stored user. On success the full user record
// is available via CurrentUser. A bad token or a subject deleted after
// issuance yields 401; a storage failure yields 500 without detail.
func NewAuthMiddleware(gen *Generator, repo users.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := bearerToken(c.Get("Authorization"))
		if tokenStr == "" {
			return unauthenticated(c)
		}
		subject, err := gen.ParseSubject(tokenStr)
		if err != nil {
			return unauthenticated(c)
		}
		id, err := strconv.ParseInt(subject, 10, 64)
		if err != nil {
			return unauthenticated(c)
		}
		user, err := repo.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				// Subject deleted after issuance: unauthenticated.
				return unauthenticated(c)
			}
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
		}
		c.Locals(CurrentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by NewAuthMiddleware.
func CurrentUser(c *fiber.Ctx) (users.User, bool) {
	user, ok := c.Locals(CurrentUserKey).(users.User)
	return user, ok
}

// bearerToken extracts the token from an Authorization header value.
// Supports both "Bearer <token>" and "<token>" (no prefix).
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if strings.Contains(header, " ") {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return header
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
}

package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"github.com/guimashan/platfrom-sub000/internal/db"
	"github.com/guimashan/platfrom-sub000/internal/models"
)

// AuthMiddleware handles administrator authentication via sessions.
type AuthMiddleware struct {
	db *db.DB
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(database *db.DB) *AuthMiddleware {
	return &AuthMiddleware{db: database}
}

// RequireAuth ensures the user is authenticated, redirecting to /login if not.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return c.Redirect().To("/login")
	}

	userSub := sess.Get("user_sub")
	if userSub == nil {
		return c.Redirect().To("/login")
	}

	user, err := m.db.GetUserBySub(c.Context(), userSub.(string))
	if err != nil {
		sess.Destroy()
		return c.Redirect().To("/login")
	}

	c.Locals("user", user)
	return c.Next()
}

// RequireEditor allows only editors and admins past. Must run after
// RequireAuth.
func (m *AuthMiddleware) RequireEditor(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)
	if user == nil || !user.IsEditor() {
		return fiber.NewError(fiber.StatusForbidden, "editor access required")
	}
	return c.Next()
}

// RequireAdmin allows only admins past. The consistency pipeline endpoints
// sit behind this. Must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)
	if user == nil || !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "admin access required")
	}
	return c.Next()
}

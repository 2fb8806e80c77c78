package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/guimashan/platfrom-sub000/internal/db"
	"github.com/guimashan/platfrom-sub000/internal/models"
)

// UserHandler handles administrator account management.
type UserHandler struct {
	db *db.DB
}

// NewUserHandler creates a new user handler.
func NewUserHandler(database *db.DB) *UserHandler {
	return &UserHandler{db: database}
}

// ListUsers returns every administrator account (admin only).
func (h *UserHandler) ListUsers(c fiber.Ctx) error {
	users, err := h.db.ListUsers(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to list users")
	}
	return jsonSuccess(c, users)
}

// UpdateUserRole changes an administrator's role (admin only).
func (h *UserHandler) UpdateUserRole(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	switch body.Role {
	case models.RoleViewer, models.RoleEditor, models.RoleAdmin:
	default:
		return jsonError(c, fiber.StatusBadRequest, "role must be viewer, editor or admin")
	}

	if err := h.db.UpdateUserRole(c.Context(), userID, body.Role); err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return jsonError(c, fiber.StatusNotFound, "user not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update role")
	}

	return jsonSuccess(c, fiber.Map{"id": userID, "role": body.Role})
}

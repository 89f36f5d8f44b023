package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrsuite/personnel-system/internal/core/domain"
	"github.com/hrsuite/personnel-system/internal/core/ports"
)

// UserRoleHandler exposes the role-management use case. Routes are mounted
// behind the write guard; the handler itself only orchestrates.
type UserRoleHandler struct {
	roleService ports.UserRoleService
	audit       AuditSink
}

func NewUserRoleHandler(roleService ports.UserRoleService, audit AuditSink) *UserRoleHandler {
	return &UserRoleHandler{roleService: roleService, audit: audit}
}

type roleAssignmentRequest struct {
	Roles []string `json:"roles" validate:"required,min=1"`
}

// Assign adds the named roles to a user. Unknown role names are skipped.
//
// @Summary      Assign roles to a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "User id"
// @Param        body  body      roleAssignmentRequest  true  "Role names"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id}/roles [post]
func (h *UserRoleHandler) Assign(c echo.Context) error {
	return h.mutate(c, "assign_roles", h.roleService.AssignRoles)
}

// Replace swaps a user's whole role set for the named roles.
//
// @Summary      Replace a user's roles
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "User id"
// @Param        body  body      roleAssignmentRequest  true  "Role names"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id}/roles [put]
func (h *UserRoleHandler) Replace(c echo.Context) error {
	return h.mutate(c, "replace_roles", h.roleService.ReplaceRoles)
}

// Remove drops a single role association; removing an absent role succeeds.
//
// @Summary      Remove a role from a user
// @Tags         users
// @Produce      json
// @Param        id       path      string  true  "User id"
// @Param        role_id  path      string  true  "Role id"
// @Success      200      {object}  domain.User
// @Failure      404      {object}  map[string]string
// @Router       /users/{id}/roles/{role_id} [delete]
func (h *UserRoleHandler) Remove(c echo.Context) error {
	userID := c.Param("id")
	user, err := h.roleService.RemoveRole(c.Request().Context(), userID, c.Param("role_id"))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return err
	}

	h.recordAudit(c, "remove_role", userID)
	return c.JSON(http.StatusOK, user)
}

func (h *UserRoleHandler) mutate(
	c echo.Context,
	action string,
	op func(ctx context.Context, userID string, roleNames []string) (*domain.User, error),
) error {
	var req roleAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	userID := c.Param("id")
	user, err := op(c.Request().Context(), userID, req.Roles)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return err
	}

	h.recordAudit(c, action, userID)
	return c.JSON(http.StatusOK, user)
}

func (h *UserRoleHandler) recordAudit(c echo.Context, action, target string) {
	if h.audit == nil {
		return
	}
	actor := "unknown"
	if p, err := ctxPrincipal(c); err == nil {
		actor = p.Username
	}
	h.audit.Enqueue(ports.AuditEvent{
		Actor:   actor,
		Action:  action,
		Target:  strings.TrimSpace(target),
		Outcome: "success",
		At:      time.Now().UTC(),
	})
}

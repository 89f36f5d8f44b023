package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrsuite/personnel-system/internal/api/metrics"
	"github.com/hrsuite/personnel-system/internal/core/domain"
	"github.com/hrsuite/personnel-system/internal/core/ports"
)

// AuditSink accepts audit events without blocking the request path.
type AuditSink interface {
	Enqueue(event ports.AuditEvent)
}

type AuthHandler struct {
	authService ports.AuthService
	audit       AuditSink
}

func NewAuthHandler(authService ports.AuthService, audit AuditSink) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials (username or email)"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		result := loginResult(err)
		metrics.LoginsTotal.WithLabelValues(result).Inc()
		h.recordAudit(req.Identifier, "login", result)
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.recordAudit(user.Username, "login", "success")
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	h.recordAudit(user.Username, "register", "success")
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Me returns the resolved principal for the current request.
//
// @Summary      Current principal
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Principal
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AuthHandler) recordAudit(actor, action, outcome string) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(ports.AuditEvent{
		Actor:   actor,
		Action:  action,
		Outcome: outcome,
		At:      time.Now().UTC(),
	})
}

// loginResult labels a failed login for metrics and auditing. The HTTP error
// handler owns status codes and response bodies; anything it does not
// recognize collapses to a logged, generic 500, so store diagnostics never
// reach the client.
func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrAccountInactive):
		return "inactive"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	}
	return "error"
}

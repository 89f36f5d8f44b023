package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hrsuite/personnel-system/internal/core/domain"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, identifier, password string) (string, *domain.User, error)
	registerFn func(ctx context.Context, username, email, password string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, identifier, password)
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, email, password)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, *domain.User, error) {
			if identifier != "alice" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", identifier, password)
			}
			return "tok123", &domain.User{ID: "u1", Username: "alice", Active: true}, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login", `{"identifier":"alice","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok123" {
		t.Fatalf("token missing from response: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login", `{"identifier":"alice","password":"bad"}`)
	err := h.Login(c)

	// Failures surface to the central error handler, which owns the status
	// code and the response body.
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("handler wrote its own error body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Inactive(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrAccountInactive
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/login", `{"identifier":"erin","password":"s3cret"}`)

	// Inactive must be distinguishable from invalid credentials.
	if err := h.Login(c); !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrTooManyAttempts
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/login", `{"identifier":"frank","password":"x"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthHandler_Login_UnexpectedErrorNotSerialized(t *testing.T) {
	storeErr := errors.New("find user: connection to db-internal:27017 refused")
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, *domain.User, error) {
			return "", nil, storeErr
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login", `{"identifier":"alice","password":"s3cret"}`)
	err := h.Login(c)

	// Store diagnostics pass through untouched for the error handler to log
	// and collapse; the handler must never render them itself.
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the store error back, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("store diagnostics written to the response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, *domain.User, error) {
			t.Fatalf("service should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login", `{"identifier":"alice"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			return &domain.User{ID: "u1", Username: username, Email: email, Active: true}, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cret"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cret"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_UnexpectedErrorNotSerialized(t *testing.T) {
	storeErr := errors.New("insert user: server selection timeout")
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			return nil, storeErr
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cret"}`)
	err := h.Register(c)

	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the store error back, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("store diagnostics written to the response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Anonymous request is rejected.
	if err := h.Me(c); err == nil {
		t.Fatalf("expected 401 for anonymous request")
	}

	// Authenticated request echoes the principal.
	p := &domain.Principal{UserID: "u1", Username: "alice", Authorities: []string{"ROLE_ADMIN"}}
	c.Set("principal", p)
	if err := h.Me(c); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ROLE_ADMIN") {
		t.Fatalf("principal not rendered: %s", rec.Body.String())
	}
}

package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/hrsuite/personnel-system/internal/core/domain"
)

type fakeHasher struct{}

func (fakeHasher) Hash(raw string) (string, error) { return "hashed:" + raw, nil }
func (fakeHasher) Matches(raw, hash string) bool   { return hash == "hashed:"+raw }

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]domain.UserRole(nil), u.Roles...)
	clone.ResolvedRoles = append([]domain.Role(nil), u.ResolvedRoles...)
	return &clone
}

type stubUserStore struct {
	users   map[string]*domain.User // keyed by id
	nextID  int
	saveErr error
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[string]*domain.User)}
}

func (s *stubUserStore) add(u *domain.User) *domain.User {
	if u.ID == "" {
		s.nextID++
		u.ID = "u" + strconv.Itoa(s.nextID)
	}
	s.users[u.ID] = cloneUser(u)
	return cloneUser(u)
}

func (s *stubUserStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, user.Username) {
			return nil, domain.ErrUserExists
		}
	}
	return s.add(cloneUser(user)), nil
}

func (s *stubUserStore) FindByUsernameOrEmail(_ context.Context, q string) (*domain.User, error) {
	q = strings.ToLower(q)
	for _, u := range s.users {
		if strings.ToLower(u.Username) == q || (u.Email != "" && strings.ToLower(u.Email) == q) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserStore) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	if _, ok := s.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	s.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

type stubRoleStore struct {
	roles map[string]*domain.Role // keyed by id
	err   error
}

func newStubRoleStore(roles ...*domain.Role) *stubRoleStore {
	s := &stubRoleStore{roles: make(map[string]*domain.Role)}
	for _, r := range roles {
		s.roles[r.ID] = r
	}
	return s
}

func (s *stubRoleStore) FindByID(_ context.Context, id string) (*domain.Role, error) {
	if s.err != nil {
		return nil, s.err
	}
	if r, ok := s.roles[id]; ok {
		clone := *r
		return &clone, nil
	}
	return nil, domain.ErrRoleNotFound
}

func (s *stubRoleStore) FindByName(_ context.Context, name string) (*domain.Role, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.roles {
		if strings.EqualFold(r.Name, name) {
			clone := *r
			return &clone, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

type stubPersonDirectory struct {
	byUserID  map[string]*domain.Person
	employees map[string]string // employee id -> person id
	clients   map[string]string
	err       error
}

func newStubPersonDirectory() *stubPersonDirectory {
	return &stubPersonDirectory{
		byUserID:  make(map[string]*domain.Person),
		employees: make(map[string]string),
		clients:   make(map[string]string),
	}
}

func (s *stubPersonDirectory) FindByUserID(_ context.Context, userID string) (*domain.Person, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byUserID[userID], nil
}

func (s *stubPersonDirectory) FindByID(_ context.Context, id string) (*domain.Person, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.byUserID {
		if p != nil && p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubPersonDirectory) PersonIDForEmployee(_ context.Context, id string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.employees[id], nil
}

func (s *stubPersonDirectory) PersonIDForClient(_ context.Context, id string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.clients[id], nil
}

type stubThrottle struct {
	failures map[string]int
	max      int
	err      error
}

func newStubThrottle(max int) *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), max: max}
}

func (s *stubThrottle) Blocked(_ context.Context, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.failures[id] >= s.max, nil
}

func (s *stubThrottle) RecordFailure(_ context.Context, id string) error {
	s.failures[id]++
	return nil
}

func (s *stubThrottle) Reset(_ context.Context, id string) error {
	delete(s.failures, id)
	return nil
}

type stubTokens struct {
	generated string
	err       error
}

func (s *stubTokens) Generate(userID string, _ time.Time) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.generated = "token-for-" + userID
	return s.generated, nil
}

func (s *stubTokens) Validate(tok string) bool {
	return strings.HasPrefix(tok, "token-for-")
}

func (s *stubTokens) ExtractUserID(tok string) (string, error) {
	if !s.Validate(tok) {
		return "", errors.New("invalid token")
	}
	return strings.TrimPrefix(tok, "token-for-"), nil
}

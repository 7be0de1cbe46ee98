package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/auth"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
)

type mockUserRepo struct {
	byEmail map[string]*domain.User
	getErr  error
}

func (m *mockUserRepo) Create(_ context.Context, _ *domain.User) (*domain.SignupResult, error) {
	return &domain.SignupResult{}, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.byEmail[email], nil
}

func (m *mockUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(m.byEmail))
	for _, u := range m.byEmail {
		users = append(users, *u)
	}
	return users, nil
}

func (m *mockUserRepo) PromoteToAdmin(_ context.Context, _ primitive.ObjectID) error { return nil }

func (m *mockUserRepo) Delete(_ context.Context, _ primitive.ObjectID) error { return nil }

func (m *mockUserRepo) EstimatedCount(_ context.Context) (int64, error) {
	return int64(len(m.byEmail)), nil
}

func newTestApp(users *mockUserRepo) *application {
	return &application{
		logger:        zap.NewNop().Sugar(),
		authenticator: auth.NewAuthenticator("test-secret", "food-paradise", "food-paradise"),
		userRepo:      users,
	}
}

func issueToken(t *testing.T, app *application, email string) string {
	t.Helper()
	token, err := app.authenticator.IssueToken(email)
	require.NoError(t, err)
	return token
}

func doRequest(app *application, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	app.mount().ServeHTTP(rr, req)
	return rr
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := newTestApp(&mockUserRepo{})

	rr := doRequest(app, http.MethodGet, "/api/v1/carts", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := newTestApp(&mockUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/carts", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()
	app.mount().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := newTestApp(&mockUserRepo{})

	rr := doRequest(app, http.MethodGet, "/api/v1/carts", "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminMiddleware_NonAdminForbidden(t *testing.T) {
	users := &mockUserRepo{byEmail: map[string]*domain.User{
		"bob@example.com": {Name: "Bob", Email: "bob@example.com"},
	}}
	app := newTestApp(users)
	token := issueToken(t, app, "bob@example.com")

	rr := doRequest(app, http.MethodGet, "/api/v1/users", token)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAdminMiddleware_UnknownUserForbidden(t *testing.T) {
	// a valid token whose user has been deleted since issuance
	app := newTestApp(&mockUserRepo{})
	token := issueToken(t, app, "ghost@example.com")

	rr := doRequest(app, http.MethodGet, "/api/v1/users", token)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAdminMiddleware_AdminAllowed(t *testing.T) {
	users := &mockUserRepo{byEmail: map[string]*domain.User{
		"root@example.com": {Name: "Root", Email: "root@example.com", Role: domain.RoleAdmin},
	}}
	app := newTestApp(users)
	token := issueToken(t, app, "root@example.com")

	rr := doRequest(app, http.MethodGet, "/api/v1/users", token)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAdminMiddleware_RoleRefetchedPerRequest(t *testing.T) {
	users := &mockUserRepo{byEmail: map[string]*domain.User{
		"root@example.com": {Name: "Root", Email: "root@example.com", Role: domain.RoleAdmin},
	}}
	app := newTestApp(users)
	token := issueToken(t, app, "root@example.com")

	rr := doRequest(app, http.MethodGet, "/api/v1/users", token)
	require.Equal(t, http.StatusOK, rr.Code)

	// demote between requests: the same token no longer grants access
	users.byEmail["root@example.com"].Role = ""

	rr = doRequest(app, http.MethodGet, "/api/v1/users", token)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCheckAdmin_SelfAccess(t *testing.T) {
	users := &mockUserRepo{byEmail: map[string]*domain.User{
		"bob@example.com": {Name: "Bob", Email: "bob@example.com"},
	}}
	app := newTestApp(users)
	token := issueToken(t, app, "bob@example.com")

	rr := doRequest(app, http.MethodGet, "/api/v1/users/admin/bob@example.com", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"admin":false}}`, rr.Body.String())
}

func TestCheckAdmin_OtherUserForbidden(t *testing.T) {
	users := &mockUserRepo{byEmail: map[string]*domain.User{
		"bob@example.com":   {Name: "Bob", Email: "bob@example.com"},
		"alice@example.com": {Name: "Alice", Email: "alice@example.com", Role: domain.RoleAdmin},
	}}
	app := newTestApp(users)
	token := issueToken(t, app, "bob@example.com")

	rr := doRequest(app, http.MethodGet, "/api/v1/users/admin/alice@example.com", token)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCreateToken(t *testing.T) {
	app := newTestApp(&mockUserRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", nil)
	rr := httptest.NewRecorder()
	app.mount().ServeHTTP(rr, req)

	// empty body is a bad request
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

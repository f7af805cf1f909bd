package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/workvine/crm-backend/internal/entity"
)

const testSecret = "test-secret"

type stubUserLoader struct {
	users map[string]*entity.User
}

func (s *stubUserLoader) FindByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return user, nil
}

func signToken(t *testing.T, secret, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func authFixture() *Auth {
	users := &stubUserLoader{users: map[string]*entity.User{
		"user-1":  {ID: "user-1", Name: "Jane", Role: entity.RoleEmployee},
		"admin-1": {ID: "admin-1", Name: "Boss", Role: entity.RoleAdmin},
		"blocked": {ID: "blocked", Name: "Gone", Role: entity.RoleEmployee, IsBlocked: true},
	}}
	return NewAuth(testSecret, users)
}

func okHandler(t *testing.T, wantUserID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, wantUserID, user.ID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateMissingToken(t *testing.T) {
	auth := authFixture()

	req := httptest.NewRequest(http.MethodGet, "/client", nil)
	rec := httptest.NewRecorder()

	auth.Authenticate(okHandler(t, "")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token missing")
}

func TestAuthenticateCookieToken(t *testing.T) {
	auth := authFixture()

	req := httptest.NewRequest(http.MethodGet, "/client", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, testSecret, "user-1")})
	rec := httptest.NewRecorder()

	auth.Authenticate(okHandler(t, "user-1")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateBearerToken(t *testing.T) {
	auth := authFixture()

	req := httptest.NewRequest(http.MethodGet, "/client", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-1"))
	rec := httptest.NewRecorder()

	auth.Authenticate(okHandler(t, "user-1")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateBadSignature(t *testing.T) {
	auth := authFixture()

	req := httptest.NewRequest(http.MethodGet, "/client", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret", "user-1"))
	rec := httptest.NewRecorder()

	auth.Authenticate(okHandler(t, "user-1")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	auth := authFixture()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/client", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	auth.Authenticate(okHandler(t, "user-1")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	auth := authFixture()

	req := httptest.NewRequest(http.MethodGet, "/client", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "ghost"))
	rec := httptest.NewRecorder()

	auth.Authenticate(okHandler(t, "ghost")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateBlockedUser(t *testing.T) {
	auth := authFixture()

	req := httptest.NewRequest(http.MethodGet, "/client", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "blocked"))
	rec := httptest.NewRecorder()

	auth.Authenticate(okHandler(t, "blocked")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "blocked")
}

func TestRequireAdminRejectsEmployee(t *testing.T) {
	auth := authFixture()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/admin", nil)
	req = req.WithContext(ContextWithUser(req.Context(),
		&entity.User{ID: "user-1", Role: entity.RoleEmployee}))
	rec := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	auth.RequireAdmin(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	auth := authFixture()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/admin", nil)
	req = req.WithContext(ContextWithUser(req.Context(),
		&entity.User{ID: "admin-1", Role: entity.RoleAdmin}))
	rec := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	auth.RequireAdmin(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

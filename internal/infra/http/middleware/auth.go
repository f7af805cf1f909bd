package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/workvine/crm-backend/internal/entity"
)

type UserLoader interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

type contextKey string

const userContextKey contextKey = "authUser"

type Auth struct {
	Secret []byte
	Users  UserLoader
}

func NewAuth(secret string, users UserLoader) *Auth {
	return &Auth{
		Secret: []byte(secret),
		Users:  users,
	}
}

// Authenticate accepts the token from the "token" cookie or a bearer
// Authorization header, verifies it against the shared secret, and loads
// the principal onto the request context.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := tokenFromRequest(r)
		if tokenStr == "" {
			authError(w, http.StatusUnauthorized, "Not authorized, token missing")
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return a.Secret, nil
		})
		if err != nil || !token.Valid {
			authError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			authError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}
		userID, _ := claims["id"].(string)
		if userID == "" {
			authError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		user, err := a.Users.FindByID(r.Context(), userID)
		if err != nil {
			authError(w, http.StatusUnauthorized, "Not authorized, unknown user")
			return
		}

		if user.IsBlocked {
			authError(w, http.StatusForbidden, "Your account has been blocked. Please contact the administrator.")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates admin-only routes. It must run after Authenticate.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || !user.IsAdmin() {
			authError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userContextKey).(*entity.User)
	return user, ok
}

// ContextWithUser is a test hook for handlers behind the auth middleware.
func ContextWithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func authError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

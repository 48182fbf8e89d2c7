package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"loopcart/models"
	"loopcart/store"
	"loopcart/utils"
)

// Key type for context values.
type contextKey string

// UserContextKey holds the *utils.Claims of the authenticated user.
const UserContextKey = contextKey("user")

// ClaimsFrom extracts the authenticated claims placed by AuthMiddleware.
func ClaimsFrom(r *http.Request) (*utils.Claims, bool) {
	claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
	return claims, ok
}

// AuthMiddleware verifies the bearer token and attaches its claims to the
// request context. Missing, malformed and invalid tokens all yield 401.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.RespondError(w, http.StatusUnauthorized, "No token provided")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware loads the caller's role from the store and rejects everyone
// but admins. The role is deliberately not carried in the token, so a demoted
// admin loses access on the next request.
func AdminMiddleware(users store.UserStore) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r)
			if !ok {
				utils.RespondError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()

			user, err := users.FindByID(ctx, claims.UserID)
			if err != nil {
				if err == store.ErrNotFound {
					utils.RespondError(w, http.StatusForbidden, "Admin only")
					return
				}
				utils.RespondError(w, http.StatusInternalServerError, "Failed to verify admin")
				return
			}
			if user.Role != models.RoleAdmin {
				utils.RespondError(w, http.StatusForbidden, "Admin only")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware allows the SPA frontend to call the API from another origin.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

package middlewares

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/mannancrackers/shop/app/utils/sessions"
)

// AuthSessionMiddleware resolves the logged-in user for every request:
// session first, then the remember-me cookie. The user lands in the
// request context; downstream handlers never touch the session directly.
func AuthSessionMiddleware(sessionStore sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)

			if userID == "" {
				if token, err := helpers.GetCookie(r, helpers.RememberMeCookieName); err == nil && token != "" {
					user, err := userRepo.FindByRememberToken(r.Context(), token)
					if err == nil && user != nil {
						userID = user.ID
						if saveErr := sessionStore.SetUserID(w, r, userID); saveErr != nil {
							log.Printf("AuthSessionMiddleware: failed to restore session for %s: %v", user.Email, saveErr)
						} else {
							log.Printf("AuthSessionMiddleware: restored session for %s from remember-me cookie", user.Email)
						}
					} else {
						helpers.ClearCookie(w, helpers.RememberMeCookieName)
					}
				}
			}

			if userID != "" {
				user, err := userRepo.FindByID(r.Context(), userID)
				if err != nil || user == nil {
					// Stale session pointing at a deleted account.
					log.Printf("AuthSessionMiddleware: session user %s no longer exists", userID)
					next.ServeHTTP(w, r)
					return
				}

				ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, userID)
				ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserFromRequest returns the resolved user, or nil for guests.
func UserFromRequest(r *http.Request) *models.User {
	if userVal := r.Context().Value(helpers.ContextKeyUser); userVal != nil {
		if user, ok := userVal.(*models.User); ok {
			return user
		}
	}
	return nil
}

// UserIDFromRequest returns the logged-in user's ID, or "" for guests.
func UserIDFromRequest(r *http.Request) string {
	if idVal := r.Context().Value(helpers.ContextKeyUserID); idVal != nil {
		if id, ok := idVal.(string); ok {
			return id
		}
	}
	return ""
}

func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			override := r.Form.Get("_method")
			if override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RecoveryMiddleware turns panics into the themed 500 page instead of a
// dropped connection.
func RecoveryMiddleware(serverError http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("RecoveryMiddleware: ❌ panic serving %s %s: %v", r.Method, r.URL.Path, rec)
					serverError(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// MaintenanceMiddleware serves the maintenance page for everything except
// static assets while the flag is up. The flag comes from the environment,
// so flipping it means a restart.
func MaintenanceMiddleware(enabled bool, maintenancePage http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/static/") || strings.HasPrefix(r.URL.Path, "/media/") {
				next.ServeHTTP(w, r)
				return
			}
			maintenancePage(w, r)
		})
	}
}

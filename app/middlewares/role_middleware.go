package middlewares

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/mannancrackers/shop/app/models"
)

func roleAllowed(user *models.User, roles []models.Role) bool {
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}

// staffPending reports whether a staff account is still waiting for an
// admin to approve it. Admins are always approved, customers shop without
// approval.
func staffPending(user *models.User) bool {
	return user.Role == models.RoleStaff && !user.IsApproved
}

// RequireRoles gates HTML routes: guests get bounced to the login page,
// logged-in users outside the allowed roles get the 403 page.
func RequireRoles(forbidden http.HandlerFunc, roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromRequest(r)
			if user == nil {
				http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Please log in to access this page."), http.StatusFound)
				return
			}

			if !roleAllowed(user, roles) {
				log.Printf("RequireRoles: user %s (%s) denied access to %s", user.ID, user.Email, r.URL.Path)
				forbidden(w, r)
				return
			}

			if staffPending(user) {
				log.Printf("RequireRoles: staff account %s is awaiting approval, denied %s", user.Email, r.URL.Path)
				forbidden(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRolesJSON is the API flavour of the gate: 401 for guests, 403
// for the wrong role, both as JSON envelopes.
func RequireRolesJSON(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromRequest(r)
			if user == nil {
				writeJSONError(w, http.StatusUnauthorized, "Please log in to access this page.")
				return
			}

			if !roleAllowed(user, roles) || staffPending(user) {
				log.Printf("RequireRolesJSON: user %s (%s) denied access to %s", user.ID, user.Email, r.URL.Path)
				writeJSONError(w, http.StatusForbidden, "You do not have permission to access this page.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

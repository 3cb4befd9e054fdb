package admin

import (
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/middlewares"
	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/utils/breadcrumb"
)

func redirectUsers(w http.ResponseWriter, r *http.Request, status, message string) {
	http.Redirect(w, r, fmt.Sprintf("/admin/users?status=%s&message=%s", status, url.QueryEscape(message)), http.StatusSeeOther)
}

// UsersPageHandler lists every account with its role and approval state.
func (h *AdminHandler) UsersPageHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.FindAll(r.Context())
	if err != nil {
		log.Printf("UsersPageHandler: failed to load users: %v", err)
		http.Error(w, "Failed to load users", http.StatusInternalServerError)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin Dashboard", URL: "/admin/dashboard"},
		{Name: "Users", URL: "/admin/users"},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "User Management",
		"Breadcrumbs": breadcrumbs,
		"Users":       users,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/users", data)
}

// ApproveUserHandler flips an account's approval. Staff accounts need
// approval before the inventory screen opens up for them; admins cannot be
// unapproved.
func (h *AdminHandler) ApproveUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	approved := r.FormValue("approved") == "true"

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		redirectUsers(w, r, "error", "User not found.")
		return
	}

	if user.Role == models.RoleAdmin && !approved {
		redirectUsers(w, r, "error", "Admin accounts cannot be unapproved.")
		return
	}

	if err := h.userRepo.SetApproval(r.Context(), user.ID, approved); err != nil {
		log.Printf("ApproveUserHandler: failed to update approval for user %s: %v", user.ID, err)
		redirectUsers(w, r, "error", "Failed to update approval.")
		return
	}

	if approved {
		log.Printf("ApproveUserHandler: ✅ User %s approved", user.Email)
		redirectUsers(w, r, "success", fmt.Sprintf("%s has been approved.", user.Email))
	} else {
		log.Printf("ApproveUserHandler: ⚠️ Approval revoked for user %s", user.Email)
		redirectUsers(w, r, "success", fmt.Sprintf("Approval revoked for %s.", user.Email))
	}
}

// UpdateUserRoleHandler changes an account's role. Promoting to admin
// approves the account at the same time.
func (h *AdminHandler) UpdateUserRoleHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	role, ok := models.ParseRole(r.FormValue("role"))
	if !ok {
		redirectUsers(w, r, "error", "Invalid role.")
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		redirectUsers(w, r, "error", "User not found.")
		return
	}

	// Demoting yourself locks you out of this very page.
	if actor := middlewares.UserFromRequest(r); actor != nil && actor.ID == user.ID && role != models.RoleAdmin {
		redirectUsers(w, r, "error", "You cannot change your own role.")
		return
	}

	if err := h.userRepo.UpdateRole(r.Context(), user.ID, role); err != nil {
		log.Printf("UpdateUserRoleHandler: failed to update role for user %s: %v", user.ID, err)
		redirectUsers(w, r, "error", "Failed to update role.")
		return
	}

	log.Printf("UpdateUserRoleHandler: ✅ User %s is now %s", user.Email, role)
	redirectUsers(w, r, "success", fmt.Sprintf("%s is now %s.", user.Email, role))
}

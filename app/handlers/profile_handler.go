package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/middlewares"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/mannancrackers/shop/app/utils/breadcrumb"
	"github.com/unrolled/render"
)

type ProfileHandler struct {
	render   *render.Render
	userRepo repositories.UserRepositoryImpl
}

func NewProfileHandler(r *render.Render, userRepo repositories.UserRepositoryImpl) *ProfileHandler {
	return &ProfileHandler{
		render:   r,
		userRepo: userRepo,
	}
}

func (h *ProfileHandler) ProfileGetHandler(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromRequest(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "My Profile", URL: "/profile"},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "My Profile",
		"Breadcrumbs": breadcrumbs,
	})
	_ = h.render.HTML(w, http.StatusOK, "auth/profile", data)
}

// ProfilePostHandler updates the contact fields. Email and role never
// change here.
func (h *ProfileHandler) ProfilePostHandler(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromRequest(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("ProfilePostHandler: Error parsing form: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/profile?status=error&message=%s", url.QueryEscape("Something went wrong while processing your request.")), http.StatusSeeOther)
		return
	}

	if firstName := strings.TrimSpace(r.FormValue("firstname")); firstName != "" {
		user.FirstName = firstName
	}
	user.LastName = strings.TrimSpace(r.FormValue("lastname"))
	user.Phone = strings.TrimSpace(r.FormValue("phone"))
	user.Address = strings.TrimSpace(r.FormValue("address"))

	// Blank password fields mean "keep the current one". OAuth-only accounts
	// can set their first password here.
	if newPassword := r.FormValue("new_password"); newPassword != "" {
		if len(newPassword) < 6 {
			http.Redirect(w, r, fmt.Sprintf("/profile?status=error&message=%s", url.QueryEscape("Password must be at least 6 characters.")), http.StatusSeeOther)
			return
		}
		if newPassword != r.FormValue("confirm_password") {
			http.Redirect(w, r, fmt.Sprintf("/profile?status=error&message=%s", url.QueryEscape("Password confirmation does not match.")), http.StatusSeeOther)
			return
		}
		hashed := helpers.HashPassword(newPassword)
		if hashed == "" {
			http.Redirect(w, r, fmt.Sprintf("/profile?status=error&message=%s", url.QueryEscape("Failed to update your profile. Please try again.")), http.StatusSeeOther)
			return
		}
		user.Password = hashed
	}

	if err := h.userRepo.Update(r.Context(), user); err != nil {
		log.Printf("ProfilePostHandler: Failed to update profile for user %s: %v", user.ID, err)
		http.Redirect(w, r, fmt.Sprintf("/profile?status=error&message=%s", url.QueryEscape("Failed to update your profile. Please try again.")), http.StatusSeeOther)
		return
	}

	log.Printf("ProfilePostHandler: ✅ Profile updated for user %s", user.Email)
	http.Redirect(w, r, fmt.Sprintf("/profile?status=success&message=%s", url.QueryEscape("Your profile has been updated successfully!")), http.StatusSeeOther)
}

package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/middlewares"
	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/mannancrackers/shop/app/utils/breadcrumb"
	"github.com/mannancrackers/shop/app/utils/sessions"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"
)

const rememberMeDuration = 30 * 24 * time.Hour

type AuthHandler struct {
	render       *render.Render
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
	validator    *validator.Validate
}

func NewAuthHandler(r *render.Render, userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		render:       r,
		userRepo:     userRepo,
		sessionStore: sessionStore,
		validator:    validator,
	}
}

type RegisterForm struct {
	FirstName string `validate:"required,min=2,max=100"`
	LastName  string `validate:"max=100"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=6"`
}

// RoleRedirectPath is where each role lands after logging in.
func RoleRedirectPath(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "/admin/dashboard"
	case models.RoleStaff:
		return "/staff/inventory"
	}
	return "/"
}

func (h *AuthHandler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	if user := middlewares.UserFromRequest(r); user != nil {
		http.Redirect(w, r, RoleRedirectPath(user.Role), http.StatusSeeOther)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Login", URL: "/login"},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Login",
		"Breadcrumbs": breadcrumbs,
		"IsAuthPage":  true,
	})
	_ = h.render.HTML(w, http.StatusOK, "auth/login", data)
}

func (h *AuthHandler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("LoginPostHandler: Error parsing form: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/login?status=error&message=%s", url.QueryEscape("Something went wrong while processing your request.")), http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	rememberMe := r.FormValue("remember_me") == "on"

	user, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("LoginPostHandler: Error getting user by email '%s': %v", email, err)
		http.Redirect(w, r, fmt.Sprintf("/login?status=error&message=%s", url.QueryEscape("A server error occurred. Please try again.")), http.StatusSeeOther)
		return
	}
	if user == nil || user.Password == "" {
		// Provider-only accounts have no password, same message either way.
		log.Printf("LoginPostHandler: No password login available for email: %s", email)
		http.Redirect(w, r, fmt.Sprintf("/login?status=error&message=%s", url.QueryEscape("Invalid email or password.")), http.StatusSeeOther)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("LoginPostHandler: Password mismatch for email: %s", email)
		http.Redirect(w, r, fmt.Sprintf("/login?status=error&message=%s", url.QueryEscape("Invalid email or password.")), http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("LoginPostHandler: Error setting user session: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/login?status=error&message=%s", url.QueryEscape("Failed to create a login session.")), http.StatusSeeOther)
		return
	}

	if rememberMe {
		h.issueRememberToken(w, r, user)
	} else {
		if err := h.userRepo.UpdateRememberToken(r.Context(), user.ID, "", ""); err != nil {
			log.Printf("LoginPostHandler: Failed to clear remember token for user %s: %v", user.ID, err)
		}
	}

	log.Printf("LoginPostHandler: ✅ User %s logged in (role %s)", user.Email, user.Role)
	h.redirectAfterLogin(w, r, user)
}

// issueRememberToken stores a hashed verifier and hands the raw
// selector.verifier pair to the browser.
func (h *AuthHandler) issueRememberToken(w http.ResponseWriter, r *http.Request, user *models.User) {
	selector, verifier, tokenString, err := helpers.GenerateRememberTokenParts()
	if err != nil {
		log.Printf("issueRememberToken: Failed to generate token parts: %v", err)
		return
	}

	hashedVerifier, err := bcrypt.GenerateFromPassword([]byte(verifier), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("issueRememberToken: Failed to hash verifier: %v", err)
		return
	}

	if err := h.userRepo.UpdateRememberToken(r.Context(), user.ID, selector, string(hashedVerifier)); err != nil {
		log.Printf("issueRememberToken: Failed to persist remember token for user %s: %v", user.ID, err)
		return
	}

	helpers.SetCookie(w, helpers.RememberMeCookieName, tokenString, rememberMeDuration)
}

func (h *AuthHandler) redirectAfterLogin(w http.ResponseWriter, r *http.Request, user *models.User) {
	if user.Role == models.RoleStaff && !user.IsApproved {
		http.Redirect(w, r, fmt.Sprintf("/?status=warning&message=%s", url.QueryEscape("Your staff account is awaiting approval by an administrator.")), http.StatusSeeOther)
		return
	}

	target := RoleRedirectPath(user.Role)
	http.Redirect(w, r, fmt.Sprintf("%s?status=success&message=%s", target, url.QueryEscape(fmt.Sprintf("Welcome back, %s!", user.FirstName))), http.StatusSeeOther)
}

// RoleRedirectHandler serves /redirect, which OAuth and login flows use as
// a common landing point.
func (h *AuthHandler) RoleRedirectHandler(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromRequest(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, RoleRedirectPath(user.Role), http.StatusSeeOther)
}

func (h *AuthHandler) RegisterGetHandler(w http.ResponseWriter, r *http.Request) {
	if user := middlewares.UserFromRequest(r); user != nil {
		http.Redirect(w, r, RoleRedirectPath(user.Role), http.StatusSeeOther)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Register", URL: "/register"},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Create Account",
		"Breadcrumbs": breadcrumbs,
		"IsAuthPage":  true,
	})
	_ = h.render.HTML(w, http.StatusOK, "auth/register", data)
}

func (h *AuthHandler) RegisterPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("RegisterPostHandler: Error parsing form: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/register?status=error&message=%s", url.QueryEscape("Something went wrong while processing your request.")), http.StatusSeeOther)
		return
	}

	form := RegisterForm{
		FirstName: strings.TrimSpace(r.FormValue("firstname")),
		LastName:  strings.TrimSpace(r.FormValue("lastname")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Password:  r.FormValue("password"),
	}
	confirmPassword := r.FormValue("confirm_password")

	if err := h.validator.Struct(form); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			messages := helpers.FormatValidationErrors(validationErrs)
			for _, msg := range messages {
				http.Redirect(w, r, fmt.Sprintf("/register?status=error&message=%s", url.QueryEscape(msg)), http.StatusSeeOther)
				return
			}
		}
		http.Redirect(w, r, fmt.Sprintf("/register?status=error&message=%s", url.QueryEscape("Please fill in all required fields.")), http.StatusSeeOther)
		return
	}

	if form.Password != confirmPassword {
		http.Redirect(w, r, fmt.Sprintf("/register?status=error&message=%s", url.QueryEscape("Password confirmation does not match.")), http.StatusSeeOther)
		return
	}

	existingUser, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("RegisterPostHandler: Error checking existing user: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/register?status=error&message=%s", url.QueryEscape("A server error occurred while registering.")), http.StatusSeeOther)
		return
	}
	if existingUser != nil {
		http.Redirect(w, r, fmt.Sprintf("/register?status=error&message=%s", url.QueryEscape("Email already registered. Please log in or use a different email.")), http.StatusSeeOther)
		return
	}

	user := &models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
		Role:      models.RoleCustomer,
	}

	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("RegisterPostHandler: Error creating user: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/register?status=error&message=%s", url.QueryEscape("Failed to register. Please try again.")), http.StatusSeeOther)
		return
	}

	log.Printf("RegisterPostHandler: ✅ User %s (%s) registered successfully.", user.Email, user.ID)
	http.Redirect(w, r, fmt.Sprintf("/login?status=success&message=%s", url.QueryEscape("Your account has been created! Please log in.")), http.StatusSeeOther)
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if userID := middlewares.UserIDFromRequest(r); userID != "" {
		if err := h.userRepo.UpdateRememberToken(r.Context(), userID, "", ""); err != nil {
			log.Printf("LogoutHandler: Failed to clear remember token in DB for user %s: %v", userID, err)
		}
	}

	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("LogoutHandler: Error clearing session: %v", err)
	}
	helpers.ClearCookie(w, helpers.RememberMeCookieName)

	http.Redirect(w, r, fmt.Sprintf("/login?status=success&message=%s", url.QueryEscape("You have been logged out.")), http.StatusSeeOther)
}

package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/mannancrackers/shop/app/utils/sessions"
	"golang.org/x/oauth2"
)

const googleProvider = "google"

// OAuthHandler runs the Google sign-in flow: existing accounts are linked
// by email, new ones become auto-approved customers.
type OAuthHandler struct {
	oauthConfig  *oauth2.Config
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
	userInfoURL  string
}

func NewOAuthHandler(oauthConfig *oauth2.Config, userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore) *OAuthHandler {
	return &OAuthHandler{
		oauthConfig:  oauthConfig,
		userRepo:     userRepo,
		sessionStore: sessionStore,
		userInfoURL:  "https://www.googleapis.com/oauth2/v2/userinfo",
	}
}

type googleUserInfo struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

func (h *OAuthHandler) loginError(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, fmt.Sprintf("/login?status=error&message=%s", url.QueryEscape(message)), http.StatusSeeOther)
}

func (h *OAuthHandler) GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	if h.oauthConfig == nil {
		h.loginError(w, r, "Google sign-in is not configured.")
		return
	}

	stateBytes := make([]byte, 16)
	if _, err := rand.Read(stateBytes); err != nil {
		log.Printf("GoogleLoginHandler: Failed to generate state: %v", err)
		h.loginError(w, r, "Failed to start Google sign-in. Please try again.")
		return
	}
	state := base64.URLEncoding.EncodeToString(stateBytes)

	if err := h.sessionStore.SetOAuthState(w, r, state); err != nil {
		log.Printf("GoogleLoginHandler: Failed to store state in session: %v", err)
		h.loginError(w, r, "Failed to start Google sign-in. Please try again.")
		return
	}

	http.Redirect(w, r, h.oauthConfig.AuthCodeURL(state), http.StatusSeeOther)
}

func (h *OAuthHandler) GoogleCallbackHandler(w http.ResponseWriter, r *http.Request) {
	if h.oauthConfig == nil {
		h.loginError(w, r, "Google sign-in is not configured.")
		return
	}

	expectedState := h.sessionStore.GetOAuthState(r)
	_ = h.sessionStore.ClearOAuthState(w, r)
	if expectedState == "" || r.URL.Query().Get("state") != expectedState {
		log.Printf("GoogleCallbackHandler: State mismatch for callback from %s", r.RemoteAddr)
		h.loginError(w, r, "Google sign-in session expired. Please try again.")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		h.loginError(w, r, "Google sign-in was cancelled.")
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		log.Printf("GoogleCallbackHandler: Code exchange failed: %v", err)
		h.loginError(w, r, "Google sign-in failed. Please try again.")
		return
	}

	info, err := h.fetchUserInfo(r, token)
	if err != nil {
		log.Printf("GoogleCallbackHandler: Failed to fetch userinfo: %v", err)
		h.loginError(w, r, "Could not read your Google profile. Please try again.")
		return
	}
	if info.Email == "" {
		h.loginError(w, r, "Your Google account did not share an email address.")
		return
	}

	user, err := h.resolveUser(r, info)
	if err != nil {
		log.Printf("GoogleCallbackHandler: Failed to resolve user for %s: %v", info.Email, err)
		h.loginError(w, r, "A server error occurred during Google sign-in.")
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("GoogleCallbackHandler: Failed to set session for user %s: %v", user.ID, err)
		h.loginError(w, r, "Failed to create a login session.")
		return
	}

	log.Printf("GoogleCallbackHandler: ✅ User %s signed in via Google", user.Email)
	http.Redirect(w, r, "/redirect", http.StatusSeeOther)
}

func (h *OAuthHandler) fetchUserInfo(r *http.Request, token *oauth2.Token) (*googleUserInfo, error) {
	client := h.oauthConfig.Client(r.Context(), token)
	resp, err := client.Get(h.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	return &info, nil
}

// resolveUser links the Google identity to an account: by provider ID
// first, then by email, otherwise a fresh customer account.
func (h *OAuthHandler) resolveUser(r *http.Request, info *googleUserInfo) (*models.User, error) {
	user, err := h.userRepo.FindByProvider(r.Context(), googleProvider, info.ID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = h.userRepo.FindByEmail(r.Context(), info.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		user.Provider = googleProvider
		user.ProviderID = info.ID
		if err := h.userRepo.Update(r.Context(), user); err != nil {
			return nil, fmt.Errorf("failed to link Google account: %w", err)
		}
		log.Printf("resolveUser: Linked Google account to existing user %s", user.Email)
		return user, nil
	}

	firstName, lastName := splitGoogleName(info)
	user = &models.User{
		FirstName:  firstName,
		LastName:   lastName,
		Email:      strings.ToLower(info.Email),
		Role:       models.RoleCustomer,
		IsApproved: true,
		Provider:   googleProvider,
		ProviderID: info.ID,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	log.Printf("resolveUser: Created new customer account for %s via Google", user.Email)
	return user, nil
}

func splitGoogleName(info *googleUserInfo) (string, string) {
	if info.GivenName != "" {
		return info.GivenName, info.FamilyName
	}
	parts := strings.SplitN(strings.TrimSpace(info.Name), " ", 2)
	if parts[0] == "" {
		return "Customer", ""
	}
	if len(parts) > 1 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}

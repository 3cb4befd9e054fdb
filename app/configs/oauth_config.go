package configs

import (
	"log"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// LoadGoogleOAuth builds the OAuth2 config for Google sign-in. Returns nil
// when the credentials are not configured, which disables the login button.
func LoadGoogleOAuth(env ENV) *oauth2.Config {
	if env.GoogleClientID == "" || env.GoogleClientSecret == "" {
		log.Println("Warning: Google OAuth credentials not set, provider login disabled")
		return nil
	}

	return &oauth2.Config{
		ClientID:     env.GoogleClientID,
		ClientSecret: env.GoogleClientSecret,
		RedirectURL:  env.APP_URL + "/auth/google/callback",
		Scopes:       []string{"profile", "email"},
		Endpoint:     endpoints.Google,
	}
}

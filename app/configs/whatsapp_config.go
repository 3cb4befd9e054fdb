package configs

// WhatsAppConfig carries everything the WhatsApp client and notifier need.
// It is built once at startup and injected; nothing reads the environment
// at send time.
type WhatsAppConfig struct {
	PhoneNumberID      string
	AccessToken        string
	APIVersion         string
	DryRun             bool
	AdminPhone         string
	DefaultCountryCode string
	Enabled            bool

	// BaseURL overrides the Graph API host, used by tests.
	BaseURL string
}

const (
	defaultWhatsAppAPIVersion  = "v18.0"
	defaultWhatsAppCountryCode = "+91"
	defaultWhatsAppBaseURL     = "https://graph.facebook.com"
)

func LoadWhatsAppConfig(env ENV) WhatsAppConfig {
	cfg := WhatsAppConfig{
		PhoneNumberID:      env.WhatsAppPhoneNumberID,
		AccessToken:        env.WhatsAppAccessToken,
		APIVersion:         env.WhatsAppAPIVersion,
		DryRun:             env.WhatsAppDryRun,
		AdminPhone:         env.WhatsAppAdminNumber,
		DefaultCountryCode: env.WhatsAppCountryCode,
		Enabled:            env.WhatsAppNotificationsOn,
		BaseURL:            defaultWhatsAppBaseURL,
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultWhatsAppAPIVersion
	}
	if cfg.DefaultCountryCode == "" {
		cfg.DefaultCountryCode = defaultWhatsAppCountryCode
	}
	return cfg
}

package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	SESSION_KEY string
	AppAuthKey  string
	AppEncKey   string
	CSRFKey     string

	APP_URL         string
	APP_ENV         string
	MaintenanceMode bool

	EmailHost     string
	EmailPort     string
	EmailUsername string
	EmailPassword string
	EmailFrom     string

	WhatsAppPhoneNumberID   string
	WhatsAppAccessToken     string
	WhatsAppAPIVersion      string
	WhatsAppDryRun          bool
	WhatsAppAdminNumber     string
	WhatsAppCountryCode     string
	WhatsAppNotificationsOn bool

	GoogleClientID     string
	GoogleClientSecret string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       os.Getenv("APP_PORT"),

		SESSION_KEY: os.Getenv("SESSION_KEY"),
		AppAuthKey:  os.Getenv("APP_AUTH_KEY"),
		AppEncKey:   os.Getenv("APP_ENC_KEY"),
		CSRFKey:     os.Getenv("CSRF_KEY"),

		APP_URL:         os.Getenv("APP_URL"),
		APP_ENV:         os.Getenv("APP_ENV"),
		MaintenanceMode: envBool("MAINTENANCE_MODE", false),

		EmailHost:     os.Getenv("EMAIL_HOST"),
		EmailPort:     os.Getenv("EMAIL_PORT"),
		EmailUsername: os.Getenv("EMAIL_USERNAME"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:     os.Getenv("EMAIL_USERNAME"),

		WhatsAppPhoneNumberID:   os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
		WhatsAppAccessToken:     os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		WhatsAppAPIVersion:      os.Getenv("WHATSAPP_API_VERSION"),
		WhatsAppDryRun:          envBool("WHATSAPP_DRY_RUN", true),
		WhatsAppAdminNumber:     os.Getenv("WHATSAPP_ADMIN_NUMBER"),
		WhatsAppCountryCode:     os.Getenv("WHATSAPP_DEFAULT_COUNTRY_CODE"),
		WhatsAppNotificationsOn: envBool("WHATSAPP_NOTIFICATIONS_ENABLED", true),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
	}

}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Warning: invalid boolean for %s: %q, using %v", key, raw, fallback)
		return fallback
	}
	return val
}

var LoadENV = LoadEnv()

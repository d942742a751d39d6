package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ResendKeyPlaceholder is the value shipped in .env.example. A key equal to
// this sentinel is treated the same as no key at all: the dispatcher runs in
// simulated mode and nothing leaves the process.
const ResendKeyPlaceholder = "re_your_resend_api_key_here"

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	AuthSecret  string
	// Resend configuration
	ResendAPIKey     string
	MeetingEmailFrom string // must be a verified sender in Resend
	MeetingEmailTo   string // operator inbox receiving all meeting requests
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production where no .env exists.
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DBUrl:            getEnv("DATABASE_URL", getEnv("POSTGRES_URL", "")),
		FrontendURL:      strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AuthSecret:       getEnv("AUTH_SECRET", ""),
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		MeetingEmailFrom: getEnv("MEETING_EMAIL_FROM", "Ajans 99 <onboarding@resend.dev>"),
		MeetingEmailTo:   getEnv("MEETING_EMAIL_TO", "info@ajans99.com"),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	return cfg, nil
}

// MailConfigured reports whether a usable Resend key is present.
func (c *Config) MailConfigured() bool {
	return c.ResendAPIKey != "" && c.ResendAPIKey != ResendKeyPlaceholder
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	StorePath string

	APIBaseURL    string        // Course platform REST backend
	APITimeout    time.Duration // Per-request timeout on the backend client
	PushURL       string        // Push-update channel (websocket)
	PollInterval  time.Duration // Approval monitor poll interval
	NewFlagWindow time.Duration // How long a freshly seen enrollment stays flagged

	CertFontPath    string // TTF used for certificate rendering; empty uses the built-in face
	PassingScorePct int    // Reported quiz pass threshold (does not gate progression)

	SendgridKey string
	EmailSender string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "4000"),
		StorePath: getEnv("STORE_PATH", "clinigoal.db"),

		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:5000"),
		APITimeout:    time.Duration(getEnvInt("API_TIMEOUT_SEC", 300)) * time.Second,
		PushURL:       getEnv("PUSH_URL", "ws://localhost:5000/socket"),
		PollInterval:  time.Duration(getEnvInt("POLL_INTERVAL_SEC", 7)) * time.Second,
		NewFlagWindow: time.Duration(getEnvInt("NEW_FLAG_WINDOW_SEC", 8)) * time.Second,

		CertFontPath:    getEnv("CERT_FONT_PATH", ""),
		PassingScorePct: getEnvInt("PASSING_SCORE_PCT", 60),

		SendgridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("EMAIL_SENDER", "noreply@clinigoal.com"),
	}

	// Validate critical configuration
	if AppConfig.APIBaseURL == "http://localhost:5000" {
		log.Println("Warning: Using default API_BASE_URL. Update it in your environment.")
	}
	if AppConfig.SendgridKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Certificate email sharing disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

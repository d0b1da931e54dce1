package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Mail account. EmailUser is both the sender identity and, unless
	// ContactEmailTo overrides it, the owner address notifications go to.
	EmailUser      string
	EmailPass      string
	ContactEmailTo string
	OwnerName      string
	// Mail provider selection: "smtp" or "ses"
	MailProvider       string
	SMTPHost           string
	SMTPPort           int
	AWSRegion          string
	MailTimeoutSeconds int
	// HTTP
	CORSAllowedOrigins []string
	// Logging
	LogLevel string
	LogFile  string
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development
	_ = godotenv.Load()

	emailUser := getEnv("EMAIL_USER", "")

	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		EmailUser:          emailUser,
		EmailPass:          getEnv("EMAIL_PASS", ""),
		ContactEmailTo:     getEnv("CONTACT_EMAIL_TO", emailUser),
		OwnerName:          getEnv("OWNER_NAME", emailUser),
		MailProvider:       strings.ToLower(getEnv("MAIL_PROVIDER", "smtp")),
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		MailTimeoutSeconds: getEnvInt("MAIL_TIMEOUT_SECONDS", 30),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFile:            getEnv("LOG_FILE", ""),
	}

	if cfg.EmailUser == "" {
		log.Println("WARNING: EMAIL_USER is missing. Contact submissions will fail to deliver.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated environment variable, dropping blanks
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

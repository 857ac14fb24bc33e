package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	TLSMode       string // "", "tls", "starttls"
	SkipVerifyTLS bool
	FromName      string
	FromAddr      string
}

type Config struct {
	Addr string
	Env  string // "dev" | "prod"

	DBDSN string

	CookieSecret  string
	SecureCookies bool
	SessionTTL    time.Duration

	SMTP SMTPConfig
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Load reads the environment (plus .env in development) into Config.
// DB_DSN is the only required value; main fails fast when it is empty.
func Load() Config {
	_ = godotenv.Load() // ignore error if not found - prod uses real env vars

	env := getenv("APP_ENV", "dev")
	return Config{
		Addr:          getenv("HTTP_ADDR", ":8080"),
		Env:           env,
		DBDSN:         os.Getenv("DB_DSN"),
		CookieSecret:  getenv("COOKIE_SECRET", "dev-only-secret-change-me"),
		SecureCookies: getbool("SECURE_COOKIES", env == "prod"),
		SessionTTL:    30 * 24 * time.Hour,
		SMTP: SMTPConfig{
			Host:          getenv("SMTP_HOST", "localhost"),
			Port:          getenv("SMTP_PORT", "1025"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: getbool("SMTP_SKIP_VERIFY_TLS", false),
			FromName:      getenv("MAIL_FROM_NAME", "Reverse"),
			FromAddr:      getenv("MAIL_FROM_ADDR", "no-reply@reverse-eg.com"),
		},
	}
}

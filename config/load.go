package config

import (
	"log/slog"
	"os"
	"strconv"
)

func Load() App {
	cfg := App{
		Port:       getenv("APP_PORT", "8080"),
		JWTSecret:  getenv("JWT_SECRET", "local_dev_secret"),
		RosterFile: getenv("ROSTER_FILE", "roster.yaml"),
		AppURL:     getenv("APP_URL", "http://localhost:8080"),
		Env:        getenv("APP_ENV", "dev"),

		SMTPHost:     getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getenvInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		EmailFrom:    getenv("EMAIL_FROM", "Vacation Home Bookings <bookings@localhost>"),
		AdminEmail:   os.Getenv("ADMIN_EMAIL"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("bad integer env, using default", "key", k, "value", v)
		return def
	}
	return n
}

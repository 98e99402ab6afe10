package config

type App struct {
	Port       string `env:"APP_PORT" default:"8080"`
	JWTSecret  string `env:"JWT_SECRET,required"`
	RosterFile string `env:"ROSTER_FILE" default:"roster.yaml"`
	AppURL     string `env:"APP_URL" default:"http://localhost:8080"`
	Env        string `env:"APP_ENV" default:"dev"`

	// SMTP settings for the notification mailer.
	SMTPHost     string `env:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT" default:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	EmailFrom    string `env:"EMAIL_FROM"`
	AdminEmail   string `env:"ADMIN_EMAIL"`
}

package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr  string `env:"LISTEN_ADDR" envDefault:":8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	JWTSecret string `env:"JWT_KEY,required"`

	RabbitUser string `env:"RABBITMQ_USER" envDefault:"guest"`
	RabbitPass string `env:"RABBITMQ_PASS" envDefault:"guest"`
	RabbitHost string `env:"RABBITMQ_HOST" envDefault:"localhost"`
	RabbitPort string `env:"RABBITMQ_PORT" envDefault:"5672"`

	MailHost string `env:"MAIL_HOST"`
	MailPort int    `env:"MAIL_PORT" envDefault:"587"`
	MailUser string `env:"MAIL_USER"`
	MailPass string `env:"MAIL_PASS"`
	MailFrom string `env:"MAIL_FROM" envDefault:"no-reply@workvine.io"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// Both zone strings appear in historical data; neither is dropped.
	IndianTimezones []string `env:"INDIAN_TIMEZONES" envSeparator:"," envDefault:"Asia/Kolkata,Asia/Delhi"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env when present, then parses the environment.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string `validate:"required"`
	DBDriver             string `validate:"oneof=postgres sqlite memory"`
	DatabaseURL          string `validate:"required_unless=DBDriver memory"`
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	JWTSecret string `validate:"required,min=16"`
	LogMode   string `validate:"oneof=dev prod"`
	WorkerID  string `validate:"required"`

	Timezone             string  `validate:"required"`
	WeekStart            string  `validate:"oneof=sunday monday"`
	DefaultTargetHours   float64 `validate:"gte=0"`
	WeeklyHoursGoal      float64 `validate:"gt=0"`
	ActiveSubjectsWindow string  `validate:"oneof=all week"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DBDriver:             strings.ToLower(getenv("DB_DRIVER", "postgres")),
		DatabaseURL:          getenv("DATABASE_URL", ""),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		JWTSecret:            getenv("JWT_SECRET", ""),
		LogMode:              strings.ToLower(getenv("LOG_MODE", "dev")),
		WorkerID:             getenv("WORKER_ID", "worker-1"),
		Timezone:             getenv("TIMEZONE", "UTC"),
		WeekStart:            strings.ToLower(getenv("WEEK_START", "sunday")),
		ActiveSubjectsWindow: strings.ToLower(getenv("ACTIVE_SUBJECTS_WINDOW", "all")),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	var err error
	if cfg.DefaultTargetHours, err = getenvFloat("DEFAULT_TARGET_HOURS", 5); err != nil {
		return Config{}, err
	}
	if cfg.WeeklyHoursGoal, err = getenvFloat("WEEKLY_HOURS_GOAL", 10); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints and that the configured timezone exists.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid config: TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the configured timezone. Validate has already checked it loads.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FirstWeekday maps WeekStart onto time.Weekday.
func (c Config) FirstWeekday() time.Weekday {
	if c.WeekStart == "monday" {
		return time.Monday
	}
	return time.Sunday
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvFloat(key string, def float64) (float64, error) {
	v := getenv(key, "")
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid config: %s=%q is not a number", key, v)
	}
	return f, nil
}

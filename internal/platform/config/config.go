package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr              string        `envconfig:"APP_ADDR" default:":8080"`
	Environment       string        `envconfig:"APP_ENV" default:"development"`
	DatabaseURL       string        `envconfig:"DATABASE_URL"`
	JWTSecret         string        `envconfig:"JWT_SECRET"`
	TokenTTL          time.Duration `envconfig:"TOKEN_TTL" default:"12h"`
	PayslipDir        string        `envconfig:"PAYSLIP_DIR" default:"storage/payslips"`
	MigrationsDir     string        `envconfig:"MIGRATIONS_DIR" default:"migrations"`
	RunMigrations     bool          `envconfig:"RUN_MIGRATIONS" default:"true"`
	RunSeed           bool          `envconfig:"RUN_SEED" default:"true"`
	SeedHREmail       string        `envconfig:"SEED_HR_EMAIL"`
	SeedHRPassword    string        `envconfig:"SEED_HR_PASSWORD"`
	DefaultLeaveDays  int           `envconfig:"DEFAULT_LEAVE_DAYS" default:"25"`
	CORSAllowedOrigin string        `envconfig:"CORS_ALLOWED_ORIGIN" default:"*"`
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.DefaultLeaveDays < 0 {
		return fmt.Errorf("DEFAULT_LEAVE_DAYS must not be negative")
	}
	return nil
}

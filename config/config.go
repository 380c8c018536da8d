package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/expensex/expensex-api/services"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port    string
	GinMode string

	// Database
	DatabaseDriver string
	DatabaseURL    string

	// HTTP
	FrontendURL    string
	AllowedOrigins []string
	RateLimit      int
	RateWindow     time.Duration

	// Directory roles
	AdminEmails        []string
	AdminUserIDs       []int64
	DirectoryAdminOnly bool

	// Session store
	SessionSigningKey string
	SlotEncryptionKey string
	LoginDelay        time.Duration

	LogLevel string
}

func setDefaults() {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATABASE_DRIVER", DriverSQLite)
	viper.SetDefault("DATABASE_URL", "./data/expensex.db")
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("CORS_ORIGINS", "")
	viper.SetDefault("RATE_LIMIT", 100)
	viper.SetDefault("RATE_WINDOW", time.Minute)
	viper.SetDefault("ADMIN_EMAILS", "admin@example.com")
	viper.SetDefault("ADMIN_USER_IDS", "")
	viper.SetDefault("DIRECTORY_ADMIN_ONLY", false)
	viper.SetDefault("SESSION_SIGNING_KEY", "")
	viper.SetDefault("SLOT_ENCRYPTION_KEY", "")
	viper.SetDefault("LOGIN_DELAY", 500*time.Millisecond)
	viper.SetDefault("LOG_LEVEL", "INFO")
}

// Load reads envFile (if present) into the environment, then resolves every
// key through viper: flags, environment, defaults.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No %s file found, using environment variables", envFile)
	}

	setDefaults()
	viper.AutomaticEnv()

	cfg := &Config{
		Port:               viper.GetString("PORT"),
		GinMode:            viper.GetString("GIN_MODE"),
		DatabaseDriver:     strings.ToLower(viper.GetString("DATABASE_DRIVER")),
		DatabaseURL:        viper.GetString("DATABASE_URL"),
		FrontendURL:        viper.GetString("FRONTEND_URL"),
		RateLimit:          viper.GetInt("RATE_LIMIT"),
		RateWindow:         viper.GetDuration("RATE_WINDOW"),
		AdminEmails:        splitList(viper.GetString("ADMIN_EMAILS")),
		DirectoryAdminOnly: viper.GetBool("DIRECTORY_ADMIN_ONLY"),
		SessionSigningKey:  viper.GetString("SESSION_SIGNING_KEY"),
		SlotEncryptionKey:  viper.GetString("SLOT_ENCRYPTION_KEY"),
		LoginDelay:         viper.GetDuration("LOGIN_DELAY"),
		LogLevel:           viper.GetString("LOG_LEVEL"),
	}

	cfg.AllowedOrigins = append([]string{cfg.FrontendURL}, splitList(viper.GetString("CORS_ORIGINS"))...)

	var problems []string
	for _, raw := range splitList(viper.GetString("ADMIN_USER_IDS")) {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			problems = append(problems, fmt.Sprintf("invalid admin user id %q", raw))
			continue
		}
		cfg.AdminUserIDs = append(cfg.AdminUserIDs, id)
	}

	problems = append(problems, cfg.problems()...)
	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	if problems := c.problems(); len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) problems() []string {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DatabaseDriver {
	case DriverPostgres, DriverSQLite:
	default:
		problems = append(problems, fmt.Sprintf("unsupported database driver %q (want postgres or sqlite)", c.DatabaseDriver))
	}

	if c.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL is required")
	}
	if c.RateLimit < 1 {
		problems = append(problems, "RATE_LIMIT must be positive")
	}
	if c.RateWindow <= 0 {
		problems = append(problems, "RATE_WINDOW must be positive")
	}
	if c.LoginDelay < 0 {
		problems = append(problems, "LOGIN_DELAY cannot be negative")
	}
	if c.SlotEncryptionKey != "" && len(c.SlotEncryptionKey) != 32 {
		problems = append(problems, "SLOT_ENCRYPTION_KEY must be exactly 32 characters")
	}

	return problems
}

// Roles returns the admin allow-lists for directory role classification.
func (c *Config) Roles() services.RoleConfig {
	return services.RoleConfig{
		AdminEmails:  c.AdminEmails,
		AdminUserIDs: c.AdminUserIDs,
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"league-history/chart"
	"league-history/logging"
	"league-history/stats"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "change-me-league-history-secret"

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig `json:"server"`

	// League data source configuration
	Data DataConfig `json:"data"`

	// Database configuration, used by the mongo data source and imports
	Database DatabaseConfig `json:"database"`

	// Logging configuration
	Logging LoggingConfig `json:"logging"`

	// Admin authentication configuration
	Auth AuthConfig `json:"auth"`

	// Chart rendering configuration
	Chart ChartConfig `json:"chart"`

	// League presentation configuration
	League LeagueConfig `json:"league"`

	// Rules vote ballot forwarding
	Mail MailConfig `json:"mail"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port        string `json:"port"`
	Host        string `json:"host"`
	UseTLS      bool   `json:"use_tls"`
	BehindProxy bool   `json:"behind_proxy"`
	CertFile    string `json:"cert_file"`
	KeyFile     string `json:"key_file"`
	Environment string `json:"environment"`
}

// DataConfig selects where matches.json and managers.json come from
type DataConfig struct {
	Source       string        `json:"source"` // file, http or mongo
	Dir          string        `json:"dir"`
	BaseURL      string        `json:"base_url"`
	FetchTimeout time.Duration `json:"fetch_timeout"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string        `json:"host"`
	Port     string        `json:"port"`
	Username string        `json:"username"`
	Password string        `json:"password"`
	Database string        `json:"database"`
	Timeout  time.Duration `json:"timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level       string `json:"level"`
	Prefix      string `json:"prefix"`
	EnableColor bool   `json:"enable_color"`
	LogDir      string `json:"log_dir"`
	EnableFile  bool   `json:"enable_file"`
}

// AuthConfig holds admin authentication configuration
type AuthConfig struct {
	AdminPasswordHash string        `json:"-"`
	JWTSecret         string        `json:"-"`
	TokenTTL          time.Duration `json:"token_ttl"`
	LoginRate         float64       `json:"login_rate"` // attempts per minute per client
	LoginBurst        int           `json:"login_burst"`
}

// ChartConfig holds the averages chart geometry and palette
type ChartConfig struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Padding int    `json:"padding"`
	Colors  string `json:"colors"`
}

// LeagueConfig holds league presentation settings
type LeagueConfig struct {
	Name              string `json:"name"`
	PlayoffPlacements string `json:"playoff_placements"`
}

// MailConfig holds SMTP settings for forwarding rules vote ballots
type MailConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"-"`
	From      string `json:"from"`
	FromName  string `json:"from_name"`
	Recipient string `json:"recipient"`
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logging.Debugf("No .env file loaded: %v", err)
	}

	environment := getEnv("ENVIRONMENT", "development")

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			Host:        getEnv("SERVER_HOST", "0.0.0.0"),
			UseTLS:      getBoolEnv("USE_TLS", false),
			BehindProxy: getBoolEnv("BEHIND_PROXY", false),
			CertFile:    getEnv("TLS_CERT_FILE", "server.crt"),
			KeyFile:     getEnv("TLS_KEY_FILE", "server.key"),
			Environment: environment,
		},
		Data: DataConfig{
			Source:       strings.ToLower(getEnv("DATA_SOURCE", "file")),
			Dir:          getEnv("DATA_DIR", "."),
			BaseURL:      getEnv("DATA_BASE_URL", ""),
			FetchTimeout: getDurationEnv("FETCH_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "27017"),
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "league_history"),
			Timeout:  getDurationEnv("DB_TIMEOUT", 10*time.Second),
		},
		Logging: LoggingConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Prefix:      getEnv("LOG_PREFIX", ""),
			EnableColor: getBoolEnv("LOG_COLOR", true),
			LogDir:      getEnv("LOG_DIR", "./logs"),
			EnableFile:  getBoolEnv("LOG_FILE", false),
		},
		Auth: AuthConfig{
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:         getEnv("JWT_SECRET", defaultJWTSecret),
			TokenTTL:          getDurationEnv("ADMIN_TOKEN_TTL", time.Hour),
			LoginRate:         getFloatEnv("ADMIN_LOGIN_RATE", 5),
			LoginBurst:        getIntEnv("ADMIN_LOGIN_BURST", 3),
		},
		Chart: ChartConfig{
			Width:   getIntEnv("CHART_WIDTH", chart.DefaultWidth),
			Height:  getIntEnv("CHART_HEIGHT", chart.DefaultHeight),
			Padding: getIntEnv("CHART_PADDING", chart.DefaultPadding),
			Colors:  getEnv("CHART_COLORS", ""),
		},
		League: LeagueConfig{
			Name:              getEnv("LEAGUE_NAME", "League History"),
			PlayoffPlacements: getEnv("PLAYOFF_PLACEMENTS", ""),
		},
		Mail: MailConfig{
			Host:      getEnv("SMTP_HOST", ""),
			Port:      getIntEnv("SMTP_PORT", 587),
			Username:  getEnv("SMTP_USERNAME", ""),
			Password:  getEnv("SMTP_PASSWORD", ""),
			From:      getEnv("SMTP_FROM", ""),
			FromName:  getEnv("SMTP_FROM_NAME", "League History"),
			Recipient: getEnv("VOTE_RECIPIENT", ""),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields and sensible values
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if c.Server.UseTLS && !c.Server.BehindProxy {
		if c.Server.CertFile == "" || c.Server.KeyFile == "" {
			return fmt.Errorf("TLS certificate and key files are required when USE_TLS=true")
		}
		if _, err := os.Stat(c.Server.CertFile); os.IsNotExist(err) {
			return fmt.Errorf("TLS certificate file not found: %s", c.Server.CertFile)
		}
		if _, err := os.Stat(c.Server.KeyFile); os.IsNotExist(err) {
			return fmt.Errorf("TLS key file not found: %s", c.Server.KeyFile)
		}
	}

	switch c.Data.Source {
	case "file":
		if c.Data.Dir == "" {
			return fmt.Errorf("DATA_DIR is required when DATA_SOURCE=file")
		}
	case "http":
		u, err := url.Parse(c.Data.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("DATA_BASE_URL must be an absolute URL when DATA_SOURCE=http, got %q", c.Data.BaseURL)
		}
	case "mongo":
		if c.Database.Host == "" || c.Database.Port == "" || c.Database.Database == "" {
			return fmt.Errorf("database host, port and name are required when DATA_SOURCE=mongo")
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q: expected file, http or mongo", c.Data.Source)
	}
	if c.Data.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Auth.JWTSecret == defaultJWTSecret && !c.IsDevelopment() && c.AdminEnabled() {
		return fmt.Errorf("JWT secret must be changed in production")
	}
	if c.Auth.LoginRate <= 0 || c.Auth.LoginBurst <= 0 {
		return fmt.Errorf("admin login rate and burst must be positive")
	}

	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	if c.Chart.Padding < 0 || 2*c.Chart.Padding >= c.Chart.Width || 2*c.Chart.Padding >= c.Chart.Height {
		return fmt.Errorf("chart padding %d does not fit a %dx%d chart", c.Chart.Padding, c.Chart.Width, c.Chart.Height)
	}
	if _, err := chart.ParsePalette(c.Chart.Colors); err != nil {
		return fmt.Errorf("invalid CHART_COLORS: %w", err)
	}

	if c.League.PlayoffPlacements != "" {
		if _, err := stats.ParsePlacementRules(c.League.PlayoffPlacements); err != nil {
			return fmt.Errorf("invalid PLAYOFF_PLACEMENTS: %w", err)
		}
	}

	if c.Mail.Host != "" {
		if c.Mail.Port <= 0 {
			return fmt.Errorf("SMTP_PORT must be positive")
		}
		if c.Mail.From == "" || c.Mail.Recipient == "" {
			return fmt.Errorf("SMTP_FROM and VOTE_RECIPIENT are required when SMTP_HOST is set")
		}
	}

	return nil
}

// IsDevelopment returns true when running in the development environment
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Environment, "development")
}

// AdminEnabled returns true when an admin password hash is configured
func (c *Config) AdminEnabled() bool {
	return c.Auth.AdminPasswordHash != ""
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

// LogConfiguration logs the current configuration (without sensitive data)
func (c *Config) LogConfiguration() {
	logging.Info("=== Application Configuration ===")
	logging.Infof("Server: %s (TLS: %t, Behind Proxy: %t, Environment: %s)",
		c.GetServerAddress(), c.Server.UseTLS, c.Server.BehindProxy, c.Server.Environment)
	switch c.Data.Source {
	case "http":
		logging.Infof("Data: source=http base=%s timeout=%s", c.Data.BaseURL, c.Data.FetchTimeout)
	case "mongo":
		logging.Infof("Data: source=mongo %s:%s/%s (Auth: %t)",
			c.Database.Host, c.Database.Port, c.Database.Database, c.Database.Password != "")
	default:
		logging.Infof("Data: source=file dir=%s", c.Data.Dir)
	}
	logging.Infof("Logging: Level=%s, Prefix=%s, Color=%t, File=%t",
		c.Logging.Level, c.Logging.Prefix, c.Logging.EnableColor, c.Logging.EnableFile)
	logging.Infof("Admin: Enabled=%t, TokenTTL=%s, LoginRate=%.1f/min",
		c.AdminEnabled(), c.Auth.TokenTTL, c.Auth.LoginRate)
	logging.Infof("Chart: %dx%d padding=%d", c.Chart.Width, c.Chart.Height, c.Chart.Padding)
	logging.Infof("League: %s", c.League.Name)
	logging.Infof("Vote mail: Enabled=%t", c.Mail.Host != "")
	logging.Info("================================")
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

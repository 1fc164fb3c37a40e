package config

import (
	"os"

	"league-history/chart"
	"league-history/database"
	"league-history/logging"
	"league-history/services"
	"league-history/stats"
)

// ToDatabaseConfig converts Config to database.Config
func (c *Config) ToDatabaseConfig() database.Config {
	return database.Config{
		Host:     c.Database.Host,
		Port:     c.Database.Port,
		Username: c.Database.Username,
		Password: c.Database.Password,
		Database: c.Database.Database,
		Timeout:  c.Database.Timeout,
	}
}

// ToLoggingConfig converts Config to logging.Config
func (c *Config) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:       c.Logging.Level,
		Output:      os.Stdout,
		Prefix:      c.Logging.Prefix,
		EnableColor: c.Logging.EnableColor,
	}
}

// ToLogFileConfig converts Config to logging.FileConfig
func (c *Config) ToLogFileConfig() logging.FileConfig {
	return logging.FileConfig{
		Enabled: c.Logging.EnableFile,
		Dir:     c.Logging.LogDir,
		Name:    "league-history",
	}
}

// ToSourceConfig converts Config to services.SourceConfig
func (c *Config) ToSourceConfig() services.SourceConfig {
	return services.SourceConfig{
		Kind:    c.Data.Source,
		DataDir: c.Data.Dir,
		BaseURL: c.Data.BaseURL,
		Timeout: c.Data.FetchTimeout,
	}
}

// ToMailConfig converts Config to services.MailConfig
func (c *Config) ToMailConfig() services.MailConfig {
	return services.MailConfig{
		Host:     c.Mail.Host,
		Port:     c.Mail.Port,
		Username: c.Mail.Username,
		Password: c.Mail.Password,
		From:     c.Mail.From,
		FromName: c.Mail.FromName,
		To:       c.Mail.Recipient,
		Timeout:  c.Data.FetchTimeout,
	}
}

// UsesMongo returns true when league data is read from MongoDB
func (c *Config) UsesMongo() bool {
	return c.Data.Source == services.SourceMongo
}

// ToChartOptions converts Config to chart.Options. Validate has already
// checked the palette.
func (c *Config) ToChartOptions() chart.Options {
	colors, _ := chart.ParsePalette(c.Chart.Colors)
	return chart.Options{
		Width:   float64(c.Chart.Width),
		Height:  float64(c.Chart.Height),
		Padding: float64(c.Chart.Padding),
		Colors:  colors,
	}
}

// ToPlacementRules returns the configured playoff placement rules, or the defaults
func (c *Config) ToPlacementRules() []stats.PlacementRule {
	if c.League.PlayoffPlacements == "" {
		return stats.DefaultPlacementRules()
	}
	rules, err := stats.ParsePlacementRules(c.League.PlayoffPlacements)
	if err != nil {
		return stats.DefaultPlacementRules()
	}
	return rules
}

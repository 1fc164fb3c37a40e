package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"league-history/chart"
	"league-history/models"
	"league-history/services"
	"league-history/stats"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
	assert.Equal(t, services.SourceFile, cfg.Data.Source)
	assert.Equal(t, 10*time.Second, cfg.Data.FetchTimeout)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.AdminEnabled())
	assert.False(t, cfg.UsesMongo())
	assert.Equal(t, chart.DefaultWidth, cfg.Chart.Width)
	assert.Equal(t, stats.DefaultPlacementRules(), cfg.ToPlacementRules())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATA_SOURCE", "HTTP")
	t.Setenv("DATA_BASE_URL", "https://league.example.com/")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("CHART_WIDTH", "640")
	t.Setenv("CHART_HEIGHT", "320")
	t.Setenv("CHART_PADDING", "40")
	t.Setenv("CHART_COLORS", "red, #00ff00")
	t.Setenv("PLAYOFF_PLACEMENTS", "championship:1:2,third place:3:4")
	t.Setenv("LOG_FILE", "yes")
	t.Setenv("DB_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Database.Timeout)

	source := cfg.ToSourceConfig()
	assert.Equal(t, services.SourceHTTP, source.Kind)
	assert.Equal(t, 3*time.Second, source.Timeout)

	opts := cfg.ToChartOptions()
	assert.Equal(t, 640.0, opts.Width)
	assert.Equal(t, 40.0, opts.Padding)
	require.Len(t, opts.Colors, 2)
	assert.Equal(t, uint8(255), opts.Colors[0].R)
	assert.Equal(t, uint8(255), opts.Colors[1].G)

	rules := cfg.ToPlacementRules()
	require.Len(t, rules, 2)
	assert.Equal(t, models.WeekTypeThirdPlace, rules[1].WeekType)

	assert.True(t, cfg.ToLogFileConfig().Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown source", map[string]string{"DATA_SOURCE": "ftp"}},
		{"http without url", map[string]string{"DATA_SOURCE": "http"}},
		{"zero fetch timeout", map[string]string{"FETCH_TIMEOUT": "0s"}},
		{"padding too large", map[string]string{"CHART_WIDTH": "100", "CHART_PADDING": "50"}},
		{"bad color", map[string]string{"CHART_COLORS": "not-a-color"}},
		{"bad placements", map[string]string{"PLAYOFF_PLACEMENTS": "championship:first:2"}},
		{"smtp without recipient", map[string]string{"SMTP_HOST": "smtp.example.com", "SMTP_FROM": "league@example.com"}},
		{"default secret in production", map[string]string{"ENVIRONMENT": "production", "ADMIN_PASSWORD_HASH": "$2a$10$x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestToDatabaseConfig(t *testing.T) {
	t.Setenv("DB_HOST", "mongo")
	t.Setenv("DB_USERNAME", "league")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	db := cfg.ToDatabaseConfig()
	assert.Equal(t, "mongo", db.Host)
	assert.Equal(t, "league_history", db.Database)
	assert.Contains(t, db.URI(), "league:secret@mongo:27017")
}

func TestToMailConfig(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.ToMailConfig().Enabled())

	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "league@example.com")
	t.Setenv("VOTE_RECIPIENT", "commish@example.com")
	cfg, err = Load()
	require.NoError(t, err)

	mail := cfg.ToMailConfig()
	assert.True(t, mail.Enabled())
	assert.Equal(t, 587, mail.Port)
	assert.Equal(t, "commish@example.com", mail.To)
}

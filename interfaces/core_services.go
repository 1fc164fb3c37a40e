package interfaces

import (
	"context"
	"time"

	"league-history/chart"
	"league-history/models"
	"league-history/services"
)

// LeagueServiceInterface defines the league views used by handlers
// This replaces the concrete *services.LeagueService dependency
type LeagueServiceInterface interface {
	LeagueName() string
	League(ctx context.Context) (*models.League, error)
	Seasons(ctx context.Context) ([]string, error)
	HallOfFame(ctx context.Context) (*services.HallOfFame, error)
	Averages(ctx context.Context) (*services.AveragesView, error)
	Compare(ctx context.Context, manager1, manager2 string) (*services.CompareView, error)
	Managers(ctx context.Context) (*services.ManagersView, error)
	ManagerProfile(ctx context.Context, name string) (*services.ManagerProfile, error)
}

// ChartServiceInterface renders the averages chart
type ChartServiceInterface interface {
	RenderAverages(ctx context.Context, format chart.Format) ([]byte, error)
}

// AdminAuthInterface defines admin authentication used by handlers and middleware
// This replaces the concrete *services.AdminAuthService dependency
type AdminAuthInterface interface {
	Enabled() bool
	Login(password string) (string, time.Time, error)
	ValidateToken(tokenString string) (*services.AdminClaims, error)
}

// BallotNotifierInterface forwards accepted rules vote ballots
type BallotNotifierInterface interface {
	Enabled() bool
	Send(ballot services.Ballot) error
}

// ImportServiceInterface re-imports league data into the database
type ImportServiceInterface interface {
	ImportFrom(ctx context.Context, source services.LeagueSource) (*services.ImportResult, error)
}

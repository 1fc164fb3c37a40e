package services

import (
	"context"
	"fmt"
	"time"

	"league-history/logging"
)

// ImportResult reports what an import wrote
type ImportResult struct {
	Matches  int           `json:"matches"`
	Managers int           `json:"managers"`
	Source   string        `json:"source"`
	Duration time.Duration `json:"duration"`
}

// LeagueImportService copies league JSON into the Mongo collections
type LeagueImportService struct {
	matches  MatchStore
	managers ManagerStore
	logger   *logging.Logger
}

func NewLeagueImportService(matches MatchStore, managers ManagerStore) *LeagueImportService {
	return &LeagueImportService{
		matches:  matches,
		managers: managers,
		logger:   logging.WithPrefix("LeagueImport"),
	}
}

// ImportFrom loads both collections from source and replaces the stored
// copies. Nothing is written unless both loads succeed.
func (s *LeagueImportService) ImportFrom(ctx context.Context, source LeagueSource) (*ImportResult, error) {
	if s.matches == nil || s.managers == nil {
		return nil, fmt.Errorf("import requires a database connection: %w", ErrSourceUnsupported)
	}

	start := time.Now()
	s.logger.Infof("Starting import from %s", source.Name())

	league, err := NewLeagueLoader(source).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read league data: %w", err)
	}

	matchCount, err := s.matches.ReplaceAll(ctx, league.Matches)
	if err != nil {
		return nil, fmt.Errorf("failed to import matches: %w", err)
	}
	managerCount, err := s.managers.ReplaceAll(ctx, league.Managers)
	if err != nil {
		return nil, fmt.Errorf("failed to import managers: %w", err)
	}

	result := &ImportResult{
		Matches:  matchCount,
		Managers: managerCount,
		Source:   source.Name(),
		Duration: time.Since(start),
	}
	s.logger.Infof("Imported %d matches and %d managers from %s in %s",
		result.Matches, result.Managers, result.Source, result.Duration)
	return result, nil
}

// ImportDir imports data/matches.json and data/managers.json under dir
func (s *LeagueImportService) ImportDir(ctx context.Context, dir string) (*ImportResult, error) {
	return s.ImportFrom(ctx, NewFileSource(dir))
}

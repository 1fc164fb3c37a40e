package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"league-history/logging"
)

// ExportResult describes a written snapshot
type ExportResult struct {
	Dir      string `json:"dir"`
	Matches  int    `json:"matches"`
	Managers int    `json:"managers"`
}

type exportMetadata struct {
	Source     string    `json:"source"`
	ExportedAt time.Time `json:"exported_at"`
	Matches    int       `json:"matches"`
	Managers   int       `json:"managers"`
}

// LeagueExportService writes a league snapshot in the layout FileSource reads,
// so a snapshot can be served directly or imported again
type LeagueExportService struct {
	baseDir string
	now     func() time.Time
	logger  *logging.Logger
}

func NewLeagueExportService(baseDir string) *LeagueExportService {
	return &LeagueExportService{
		baseDir: baseDir,
		now:     time.Now,
		logger:  logging.WithPrefix("LeagueExport"),
	}
}

// Export loads source and writes it to <baseDir>/league_<timestamp>
func (s *LeagueExportService) Export(ctx context.Context, source LeagueSource) (*ExportResult, error) {
	league, err := NewLeagueLoader(source).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read league data: %w", err)
	}

	exportedAt := s.now()
	dir := filepath.Join(s.baseDir, "league_"+exportedAt.Format("2006-01-02_15-04-05"))
	s.logger.Infof("Starting export of %s to %s", source.Name(), dir)

	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := writeJSONFile(filepath.Join(dir, filepath.FromSlash(MatchesPath)), league.Matches); err != nil {
		return nil, err
	}
	if err := writeJSONFile(filepath.Join(dir, filepath.FromSlash(ManagersPath)), league.Managers); err != nil {
		return nil, err
	}

	metadata := exportMetadata{
		Source:     source.Name(),
		ExportedAt: exportedAt.UTC(),
		Matches:    len(league.Matches),
		Managers:   len(league.Managers),
	}
	if err := writeJSONFile(filepath.Join(dir, "metadata.json"), metadata); err != nil {
		s.logger.Warnf("Failed to write export metadata: %v", err)
	}

	s.logger.Infof("Exported %d matches and %d managers to %s", metadata.Matches, metadata.Managers, dir)
	return &ExportResult{Dir: dir, Matches: metadata.Matches, Managers: metadata.Managers}, nil
}

func writeJSONFile(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

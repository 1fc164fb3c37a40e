package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"league-history/models"
)

// Paths of the two league collections, relative to the data dir or base URL
const (
	MatchesPath  = "data/matches.json"
	ManagersPath = "data/managers.json"
)

// Supported values of SourceConfig.Kind
const (
	SourceFile  = "file"
	SourceHTTP  = "http"
	SourceMongo = "mongo"
)

// LeagueSource provides the two read-only league collections
type LeagueSource interface {
	Name() string
	LoadMatches(ctx context.Context) ([]models.MatchRecord, error)
	LoadManagers(ctx context.Context) ([]models.ManagerRecord, error)
}

// MatchStore is the match persistence used by the mongo source and imports
type MatchStore interface {
	AllMatches(ctx context.Context) ([]models.MatchRecord, error)
	ReplaceAll(ctx context.Context, matches []models.MatchRecord) (int, error)
}

// ManagerStore is the manager persistence used by the mongo source and imports
type ManagerStore interface {
	AllManagers(ctx context.Context) ([]models.ManagerRecord, error)
	ReplaceAll(ctx context.Context, managers []models.ManagerRecord) (int, error)
}

// SourceConfig selects and configures a LeagueSource
type SourceConfig struct {
	Kind    string
	DataDir string
	BaseURL string
	Timeout time.Duration
}

// NewLeagueSource builds the configured source. Mongo sources need both stores.
func NewLeagueSource(cfg SourceConfig, matches MatchStore, managers ManagerStore) (LeagueSource, error) {
	switch cfg.Kind {
	case SourceFile, "":
		return NewFileSource(cfg.DataDir), nil
	case SourceHTTP:
		return NewHTTPSource(cfg.BaseURL, cfg.Timeout)
	case SourceMongo:
		if matches == nil || managers == nil {
			return nil, fmt.Errorf("mongo source requires a database connection: %w", ErrSourceUnsupported)
		}
		return NewMongoSource(matches, managers), nil
	}
	return nil, fmt.Errorf("%q: %w", cfg.Kind, ErrSourceUnsupported)
}

func decodeMatches(r io.Reader, origin string) ([]models.MatchRecord, error) {
	var matches []models.MatchRecord
	if err := json.NewDecoder(r).Decode(&matches); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", origin, err)
	}
	return matches, nil
}

func decodeManagers(r io.Reader, origin string) ([]models.ManagerRecord, error) {
	var managers []models.ManagerRecord
	if err := json.NewDecoder(r).Decode(&managers); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", origin, err)
	}
	return managers, nil
}

// FileSource reads the collections from a directory on disk
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) Name() string { return "file:" + s.dir }

func (s *FileSource) open(ctx context.Context, rel string) (*os.File, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	path := filepath.Join(s.dir, filepath.FromSlash(rel))
	f, err := os.Open(path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, path, nil
}

func (s *FileSource) LoadMatches(ctx context.Context) ([]models.MatchRecord, error) {
	f, path, err := s.open(ctx, MatchesPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeMatches(f, path)
}

func (s *FileSource) LoadManagers(ctx context.Context) ([]models.ManagerRecord, error) {
	f, path, err := s.open(ctx, ManagersPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeManagers(f, path)
}

// HTTPSource fetches the collections from a static site
type HTTPSource struct {
	client  *http.Client
	baseURL string
}

func NewHTTPSource(baseURL string, timeout time.Duration) (*HTTPSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid data base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid data base URL %q: scheme and host are required", baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}, nil
}

func (s *HTTPSource) Name() string { return "http:" + s.baseURL }

func (s *HTTPSource) fetch(ctx context.Context, rel string, decode func(io.Reader, string) error) error {
	target, err := url.JoinPath(s.baseURL, rel)
	if err != nil {
		return fmt.Errorf("failed to build URL for %s: %w", rel, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", target, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch %s: unexpected status %d", target, resp.StatusCode)
	}
	return decode(resp.Body, target)
}

func (s *HTTPSource) LoadMatches(ctx context.Context) ([]models.MatchRecord, error) {
	var matches []models.MatchRecord
	err := s.fetch(ctx, MatchesPath, func(r io.Reader, origin string) (err error) {
		matches, err = decodeMatches(r, origin)
		return err
	})
	return matches, err
}

func (s *HTTPSource) LoadManagers(ctx context.Context) ([]models.ManagerRecord, error) {
	var managers []models.ManagerRecord
	err := s.fetch(ctx, ManagersPath, func(r io.Reader, origin string) (err error) {
		managers, err = decodeManagers(r, origin)
		return err
	})
	return managers, err
}

// MongoSource reads collections previously imported into MongoDB
type MongoSource struct {
	matches  MatchStore
	managers ManagerStore
}

func NewMongoSource(matches MatchStore, managers ManagerStore) *MongoSource {
	return &MongoSource{matches: matches, managers: managers}
}

func (s *MongoSource) Name() string { return SourceMongo }

func (s *MongoSource) LoadMatches(ctx context.Context) ([]models.MatchRecord, error) {
	return s.matches.AllMatches(ctx)
}

func (s *MongoSource) LoadManagers(ctx context.Context) ([]models.ManagerRecord, error) {
	return s.managers.AllManagers(ctx)
}

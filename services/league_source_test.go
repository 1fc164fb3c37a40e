package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	matchesJSON  = `[{"season": 2020, "week": "1", "week_type": "regular_season", "manager_a_id": "alice", "manager_b_id": "bob", "score_a": "101.5", "score_b": 99, "winner_id": "alice"}]`
	managersJSON = `[{"name": "alice", "active": true, "joined_season": 2015}]`
)

func writeDataDir(t *testing.T, matches, managers string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	if matches != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "matches.json"), []byte(matches), 0o644))
	}
	if managers != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "managers.json"), []byte(managers), 0o644))
	}
	return dir
}

func TestFileSource(t *testing.T) {
	source := NewFileSource(writeDataDir(t, matchesJSON, managersJSON))

	matches, err := source.LoadMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "2020", matches[0].Season)
	assert.Equal(t, 1, matches[0].Week)
	assert.Equal(t, 101.5, matches[0].ScoreA)

	managers, err := source.LoadManagers(context.Background())
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, "2015", managers[0].JoinedSeason)
}

func TestFileSourceErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		source := NewFileSource(writeDataDir(t, "", managersJSON))
		_, err := source.LoadMatches(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed json", func(t *testing.T) {
		source := NewFileSource(writeDataDir(t, "[{", managersJSON))
		_, err := source.LoadMatches(context.Background())
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		source := NewFileSource(writeDataDir(t, matchesJSON, managersJSON))
		_, err := source.LoadManagers(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestHTTPSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/league/data/matches.json":
			w.Write([]byte(matchesJSON))
		case "/league/data/managers.json":
			w.Write([]byte(managersJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	source, err := NewHTTPSource(server.URL+"/league/", time.Second)
	require.NoError(t, err)

	matches, err := source.LoadMatches(context.Background())
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	managers, err := source.LoadManagers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", managers[0].Name)

	missing, err := NewHTTPSource(server.URL+"/elsewhere", time.Second)
	require.NoError(t, err)
	_, err = missing.LoadMatches(context.Background())
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestNewLeagueSource(t *testing.T) {
	source, err := NewLeagueSource(SourceConfig{Kind: SourceFile, DataDir: "."}, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, source)

	source, err = NewLeagueSource(SourceConfig{Kind: SourceHTTP, BaseURL: "https://example.com/league"}, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, source)

	_, err = NewLeagueSource(SourceConfig{Kind: SourceHTTP, BaseURL: "not a url"}, nil, nil)
	assert.Error(t, err)

	_, err = NewLeagueSource(SourceConfig{Kind: SourceMongo}, nil, nil)
	assert.ErrorIs(t, err, ErrSourceUnsupported)

	source, err = NewLeagueSource(SourceConfig{Kind: SourceMongo}, &fakeMatchStore{}, &fakeManagerStore{})
	require.NoError(t, err)
	assert.Equal(t, SourceMongo, source.Name())

	_, err = NewLeagueSource(SourceConfig{Kind: "ftp"}, nil, nil)
	assert.ErrorIs(t, err, ErrSourceUnsupported)
}

func TestNewHTTPSourceRejectsBadURL(t *testing.T) {
	_, err := NewHTTPSource("http://[::1", time.Second)
	require.Error(t, err)
	var urlErr *url.Error
	assert.ErrorAs(t, err, &urlErr)

	_, err = NewHTTPSource("/relative/path", time.Second)
	assert.ErrorContains(t, err, "scheme and host are required")
}

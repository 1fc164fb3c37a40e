package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testMatches = `[
  {"season": "2020", "week": 1, "week_type": "regular_season", "manager_a_id": "alice", "manager_b_id": "bob", "score_a": 100, "score_b": 80, "winner_id": "alice"},
  {"season": "2020", "week": 15, "week_type": "championship", "manager_a_id": "alice", "manager_b_id": "bob", "score_a": 120, "score_b": 110, "winner_id": "alice"},
  {"season": "2021", "week": 1, "week_type": "regular_season", "manager_a_id": "bob", "manager_b_id": "alice", "score_a": 130, "score_b": 90, "winner_id": "bob"}
]`
	testManagers = `[{"name": "alice", "active": true}, {"name": "bob", "active": true}]`
)

func setupDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "matches.json"), []byte(testMatches), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "managers.json"), []byte(testManagers), 0o644))
	t.Setenv("DATA_SOURCE", "file")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("LEAGUE_NAME", "Test League")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"leaguectl"}, args...))
	return out.String(), err
}

func TestHallOfFameCommand(t *testing.T) {
	setupDataDir(t)

	out, err := run(t, "hall-of-fame")
	require.NoError(t, err)
	assert.Contains(t, out, "Test League Hall of Fame")
	assert.Contains(t, out, "Season 2021\n  Champion: Unknown")
	assert.Contains(t, out, "Season 2020\n  Champion: alice")
	assert.Contains(t, out, "Highest Single Game: bob (130 pts, Season 2021, Week 1)")
	assert.Less(t, strings.Index(out, "Season 2021"), strings.Index(out, "Season 2020"))

	out, err = run(t, "hall-of-fame", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"league_name": "Test League"`)
}

func TestChartCommand(t *testing.T) {
	dir := setupDataDir(t)
	target := filepath.Join(dir, "averages.svg")

	_, err := run(t, "chart", "--out", target, "--width", "640", "--height", "320")
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	out, err := run(t, "chart", "--out", "-", "--format", "png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\x89PNG"))

	_, err = run(t, "chart", "--out", "-", "--format", "gif")
	assert.Error(t, err)

	_, err = run(t, "chart", "--out", "-", "--width", "60")
	assert.Error(t, err)
}

func TestHashPasswordCommand(t *testing.T) {
	out, err := run(t, "hash-password", "s3cret")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))

	app := newApp()
	var buf bytes.Buffer
	app.Writer = &buf
	app.Reader = strings.NewReader("from-stdin\n")
	require.NoError(t, app.Run([]string{"leaguectl", "hash-password"}))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(buf.String())), []byte("from-stdin")))
}

func TestExportCommand(t *testing.T) {
	setupDataDir(t)
	outDir := t.TempDir()

	out, err := run(t, "export", "--out-dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 3 matches and 2 managers")

	snapshots, err := filepath.Glob(filepath.Join(outDir, "league_*", "data", "matches.json"))
	require.NoError(t, err)
	require.Len(t, snapshots, 1)

	t.Setenv("DATA_DIR", filepath.Dir(filepath.Dir(snapshots[0])))
	out, err = run(t, "hall-of-fame")
	require.NoError(t, err)
	assert.Contains(t, out, "Highest Single Game: bob (130 pts, Season 2021, Week 1)")
}

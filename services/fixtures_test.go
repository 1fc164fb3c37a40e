package services

import (
	"context"
	"errors"
	"sync"

	"league-history/models"
)

func match(season string, week int, weekType models.WeekType, a, b string, scoreA, scoreB float64, winner string) models.MatchRecord {
	return models.MatchRecord{
		Season:     season,
		Week:       week,
		WeekType:   weekType,
		ManagerAID: a,
		ManagerBID: b,
		ScoreA:     scoreA,
		ScoreB:     scoreB,
		WinnerID:   winner,
	}
}

func testLeague() *models.League {
	regular := models.WeekTypeRegularSeason
	return &models.League{
		Matches: []models.MatchRecord{
			match("2020", 1, regular, "alice", "bob", 100, 80, "alice"),
			match("2020", 2, regular, "carol", "alice", 90, 110, "alice"),
			match("2020", 3, regular, "bob", "carol", 120, 70, "bob"),
			match("2020", 4, regular, "alice", "bye", 95, 0, ""),
			match("2020", 15, models.WeekTypeChampionship, "alice", "bob", 130, 125, "alice"),
			match("2021", 1, regular, "bob", "alice", 140, 90, "bob"),
			match("2021", 2, regular, "carol", "bob", 100, 99, "carol"),
			match("2021", 3, regular, "alice", "carol", 85, 85, ""),
			match("2021", 15, models.WeekTypeChampionship, "carol", "bob", 111, 101, "carol"),
			match("2021", 15, models.WeekTypeThirdPlace, "alice", "dave", 90, 60, "alice"),
		},
		Managers: []models.ManagerRecord{
			{Name: "bob", Active: true, TeamName: "Bob's Burgers"},
			{Name: "alice", Active: true, TeamName: "Alice Army", PreviousTeamNames: []string{"Wonderland"}},
			{Name: "carol", Active: false},
		},
	}
}

type fakeSource struct {
	matches      []models.MatchRecord
	managers     []models.ManagerRecord
	matchErr     error
	managerErr   error
	mu           sync.Mutex
	matchCalls   int
	managerCalls int
}

func newFakeSource(league *models.League) *fakeSource {
	return &fakeSource{matches: league.Matches, managers: league.Managers}
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) LoadMatches(ctx context.Context) ([]models.MatchRecord, error) {
	f.mu.Lock()
	f.matchCalls++
	f.mu.Unlock()
	if f.matchErr != nil {
		return nil, f.matchErr
	}
	return f.matches, nil
}

func (f *fakeSource) LoadManagers(ctx context.Context) ([]models.ManagerRecord, error) {
	f.mu.Lock()
	f.managerCalls++
	f.mu.Unlock()
	if f.managerErr != nil {
		return nil, f.managerErr
	}
	return f.managers, nil
}

type fakeLoader struct {
	league *models.League
	err    error
}

func (f fakeLoader) Load(ctx context.Context) (*models.League, error) {
	return f.league, f.err
}

type fakeMatchStore struct {
	stored []models.MatchRecord
	err    error
}

func (s *fakeMatchStore) AllMatches(ctx context.Context) ([]models.MatchRecord, error) {
	return s.stored, s.err
}

func (s *fakeMatchStore) ReplaceAll(ctx context.Context, matches []models.MatchRecord) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.stored = matches
	return len(matches), nil
}

type fakeManagerStore struct {
	stored []models.ManagerRecord
	err    error
}

func (s *fakeManagerStore) AllManagers(ctx context.Context) ([]models.ManagerRecord, error) {
	return s.stored, s.err
}

func (s *fakeManagerStore) ReplaceAll(ctx context.Context, managers []models.ManagerRecord) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.stored = managers
	return len(managers), nil
}

var errBoom = errors.New("boom")

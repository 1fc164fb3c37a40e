package services

import (
	"context"
	"fmt"
	"strings"

	"league-history/chart"
	"league-history/logging"
	"league-history/models"
	"league-history/stats"
)

// Loader produces a fresh League per call
type Loader interface {
	Load(ctx context.Context) (*models.League, error)
}

// SeasonSummary is one season's row on the hall of fame
type SeasonSummary struct {
	Season        string                    `json:"season"`
	Accolades     stats.Accolades           `json:"accolades"`
	RegularSeason stats.RegularSeasonRecord `json:"regular_season"`
	BestAverage   stats.BestAverage         `json:"best_average"`
}

// HallOfFame is every season's accolades plus the all-time records
type HallOfFame struct {
	LeagueName     string            `json:"league_name"`
	Seasons        []SeasonSummary   `json:"seasons"` // most recent first
	AllTime        stats.AllTime     `json:"all_time"`
	HighestAverage stats.BestAverage `json:"highest_average"`
	LongestStreak  *stats.WinStreak  `json:"longest_streak"`
	Labels         map[string]string `json:"labels"`
}

// AverageCell is one manager's average in one season of the averages table
type AverageCell struct {
	Season  string
	Average float64
	Present bool
}

// AverageRow is one manager's line of the averages table
type AverageRow struct {
	ManagerID string
	Cells     []AverageCell
}

// AveragesView holds the per-season averages in chart order
type AveragesView struct {
	Seasons []string // ascending
	Series  []chart.Series
	Rows    []AverageRow
	Labels  map[string]string
}

// CompareView is the head-to-head page between two managers
type CompareView struct {
	Managers []string
	Manager1 string
	Manager2 string
	Summary  *stats.HeadToHeadSummary // nil until two different managers are selected
	Labels   map[string]string
}

// Selected returns true when two different managers were chosen
func (v *CompareView) Selected() bool {
	return v.Summary != nil
}

// ManagersView lists managers split by activity, alphabetically
type ManagersView struct {
	Active   []models.ManagerRecord
	Inactive []models.ManagerRecord
}

// CareerRecord totals a manager's regular season games
type CareerRecord struct {
	Wins    int
	Losses  int
	Ties    int
	Average float64
}

// ManagerProfile is a single manager's page
type ManagerProfile struct {
	Manager    models.ManagerRecord
	Career     CareerRecord
	Finishes   []stats.SeasonFinish
	Placements []stats.Placement
	BestSeason stats.BestAverage
}

// LeagueService turns a freshly loaded league into page view models.
// Nothing is cached; every call reloads and recomputes.
type LeagueService struct {
	loader     Loader
	rules      []stats.PlacementRule
	leagueName string
	logger     *logging.Logger
}

func NewLeagueService(loader Loader, rules []stats.PlacementRule, leagueName string) *LeagueService {
	if len(rules) == 0 {
		rules = stats.DefaultPlacementRules()
	}
	return &LeagueService{
		loader:     loader,
		rules:      rules,
		leagueName: leagueName,
		logger:     logging.WithPrefix("LeagueService"),
	}
}

// LeagueName returns the configured league display name
func (s *LeagueService) LeagueName() string {
	return s.leagueName
}

// League loads the raw league
func (s *LeagueService) League(ctx context.Context) (*models.League, error) {
	return s.loader.Load(ctx)
}

// Seasons returns every season with matches, most recent first
func (s *LeagueService) Seasons(ctx context.Context) ([]string, error) {
	league, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return league.Seasons(true), nil
}

// HallOfFame computes the per-season accolades and the all-time records
func (s *LeagueService) HallOfFame(ctx context.Context) (*HallOfFame, error) {
	league, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	bestPerSeason := stats.HighestAveragePerSeason(league.Matches)
	seasons := league.Seasons(true)
	summaries := make([]SeasonSummary, 0, len(seasons))
	for _, season := range seasons {
		inSeason := league.MatchesInSeason(season)
		summaries = append(summaries, SeasonSummary{
			Season:        season,
			Accolades:     stats.SeasonAccolades(inSeason),
			RegularSeason: stats.MostWinsRegularSeason(inSeason),
			BestAverage:   bestPerSeason[season],
		})
	}

	return &HallOfFame{
		LeagueName:     s.leagueName,
		Seasons:        summaries,
		AllTime:        stats.AllTimeStats(league.Matches),
		HighestAverage: stats.HighestSeasonAverage(league.Matches),
		LongestStreak:  stats.LongestWinningStreak(league.Matches),
		Labels:         league.LabelMap(),
	}, nil
}

// Averages computes every manager's season averages as chart series. Series
// follow the order managers first appear in the matches.
func (s *LeagueService) Averages(ctx context.Context) (*AveragesView, error) {
	league, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return buildAverages(league), nil
}

func buildAverages(league *models.League) *AveragesView {
	averages := stats.SeasonAverages(league.Matches)
	seasons := league.Seasons(false)

	view := &AveragesView{
		Seasons: seasons,
		Series:  make([]chart.Series, 0, len(averages)),
		Rows:    make([]AverageRow, 0, len(averages)),
		Labels:  league.LabelMap(),
	}
	for _, id := range firstAppearance(league.Matches) {
		values, ok := averages[id]
		if !ok {
			continue
		}
		view.Series = append(view.Series, chart.Series{ID: id, Values: values})

		row := AverageRow{ManagerID: id, Cells: make([]AverageCell, 0, len(seasons))}
		for _, season := range seasons {
			avg, present := values[season]
			row.Cells = append(row.Cells, AverageCell{Season: season, Average: avg, Present: present})
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// firstAppearance lists real manager ids in the order they first appear
func firstAppearance(matches []models.MatchRecord) []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, match := range matches {
		for _, id := range []string{match.ManagerAID, match.ManagerBID} {
			if id == "" || models.IsByeID(id) || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// Compare builds the head-to-head page. The summary is only computed when two
// different managers are given.
func (s *LeagueService) Compare(ctx context.Context, manager1, manager2 string) (*CompareView, error) {
	league, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	view := &CompareView{
		Managers: league.ParticipantIDs(),
		Manager1: strings.TrimSpace(manager1),
		Manager2: strings.TrimSpace(manager2),
		Labels:   league.LabelMap(),
	}
	if view.Manager1 != "" && view.Manager2 != "" && view.Manager1 != view.Manager2 {
		summary := stats.SummarizeHeadToHead(league.Matches, view.Manager1, view.Manager2)
		view.Summary = &summary
	}
	return view, nil
}

// Managers lists active and inactive managers
func (s *LeagueService) Managers(ctx context.Context) (*ManagersView, error) {
	league, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	active, inactive := league.SortedManagers()
	return &ManagersView{Active: active, Inactive: inactive}, nil
}

// ManagerProfile builds a manager's page, or ErrManagerNotFound
func (s *LeagueService) ManagerProfile(ctx context.Context, name string) (*ManagerProfile, error) {
	league, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	manager := league.FindManager(name)
	if manager == nil {
		s.logger.Debugf("Profile requested for unknown manager %q", name)
		return nil, fmt.Errorf("%q: %w", name, ErrManagerNotFound)
	}

	profile := &ManagerProfile{
		Manager:    *manager,
		Career:     careerRecord(league.Matches, manager.Name),
		Finishes:   stats.RegularSeasonFinishes(league.Matches, manager.Name),
		Placements: stats.PlayoffPlacements(league.Matches, manager.Name, s.rules),
	}

	averages := stats.SeasonAverages(league.Matches)[manager.Name]
	for _, season := range league.Seasons(false) {
		if avg, ok := averages[season]; ok && avg > profile.BestSeason.Average {
			profile.BestSeason = stats.BestAverage{ManagerID: manager.Name, Season: season, Average: avg}
		}
	}
	return profile, nil
}

func careerRecord(matches []models.MatchRecord, managerID string) CareerRecord {
	var record CareerRecord
	var points float64
	games := 0
	for _, match := range matches {
		if !match.IsRegularSeason() || !match.Involves(managerID) {
			continue
		}
		points += match.ScoreFor(managerID)
		games++
		if match.IsBye() {
			continue
		}
		switch match.WinnerID {
		case managerID:
			record.Wins++
		case "":
			record.Ties++
		default:
			record.Losses++
		}
	}
	if games > 0 {
		record.Average = points / float64(games)
	}
	return record
}

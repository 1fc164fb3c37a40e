package stats

import "league-history/models"

// Accolades summarises a single season
type Accolades struct {
	ChampionID      string  `json:"champion_id"` // empty when the season has no championship match
	HighestScorerID string  `json:"highest_scorer_id"`
	HighestPoints   float64 `json:"highest_points"`
	HighestWeek     int     `json:"highest_week"`
}

// RegularSeasonRecord is the best regular season win total in a season
type RegularSeasonRecord struct {
	TopManagerID     string `json:"top_manager_id"`
	MaxWins          int    `json:"max_wins"`
	TopManagerLosses int    `json:"top_manager_losses"`
}

// GameHigh is the highest single game score
type GameHigh struct {
	Points    float64 `json:"points"`
	ManagerID string  `json:"manager_id"`
	Season    string  `json:"season"`
	Week      int     `json:"week"`
}

// AllTime holds league-wide records across every season
type AllTime struct {
	TopWinsManagerID string   `json:"top_wins_manager_id"`
	TopWins          int      `json:"top_wins"`
	GameHigh         GameHigh `json:"game_high"`
}

// gameHighTracker keeps a running strict maximum over single game scores
type gameHighTracker struct {
	high GameHigh
}

func (g *gameHighTracker) observe(match models.MatchRecord) {
	g.consider(match.ManagerAID, match.ScoreA, match)
	g.consider(match.ManagerBID, match.ScoreB, match)
}

func (g *gameHighTracker) consider(managerID string, points float64, match models.MatchRecord) {
	if managerID == "" || models.IsByeID(managerID) {
		return
	}
	if points > g.high.Points {
		g.high = GameHigh{
			Points:    points,
			ManagerID: managerID,
			Season:    match.Season,
			Week:      match.Week,
		}
	}
}

// SeasonAccolades finds the champion and the highest single game score of a
// season. When several championship matches exist the last one wins.
func SeasonAccolades(matchesInSeason []models.MatchRecord) Accolades {
	var accolades Accolades
	var tracker gameHighTracker

	for _, match := range matchesInSeason {
		if match.IsChampionship() {
			accolades.ChampionID = match.WinnerID
		}
		tracker.observe(match)
	}

	accolades.HighestScorerID = tracker.high.ManagerID
	accolades.HighestPoints = tracker.high.Points
	accolades.HighestWeek = tracker.high.Week
	return accolades
}

// MostWinsRegularSeason returns the manager with the most regular season wins
// and that manager's regular season losses. Every regular season game the
// manager played without winning counts as a loss, ties and byes included.
func MostWinsRegularSeason(matchesInSeason []models.MatchRecord) RegularSeasonRecord {
	topManager, maxWins := countRegularSeasonWins(matchesInSeason).max()
	record := RegularSeasonRecord{TopManagerID: topManager, MaxWins: maxWins}
	if topManager == "" {
		return record
	}

	for _, match := range matchesInSeason {
		if !match.IsRegularSeason() || !match.Involves(topManager) {
			continue
		}
		if match.WinnerID != topManager {
			record.TopManagerLosses++
		}
	}
	return record
}

// AllTimeStats returns the all-time regular season wins leader and the
// highest single game ever played
func AllTimeStats(matches []models.MatchRecord) AllTime {
	topManager, topWins := countRegularSeasonWins(matches).max()

	var tracker gameHighTracker
	for _, match := range matches {
		tracker.observe(match)
	}

	return AllTime{
		TopWinsManagerID: topManager,
		TopWins:          topWins,
		GameHigh:         tracker.high,
	}
}

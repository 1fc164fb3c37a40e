package stats

import (
	"slices"

	"league-history/models"
)

// WinStreak is the longest run of consecutive regular season wins
type WinStreak struct {
	ManagerID   string `json:"manager_id"`
	Length      int    `json:"length"`
	StartSeason string `json:"start_season"`
	StartWeek   int    `json:"start_week"`
	EndSeason   string `json:"end_season"`
	EndWeek     int    `json:"end_week"`
}

type streakState struct {
	current      int
	currentStart *models.MatchRecord
	max          int
	maxStart     *models.MatchRecord
	maxEnd       *models.MatchRecord
}

// Chronological returns a copy of matches sorted by (season, week) ascending.
// Matches in the same week keep their input order.
func Chronological(matches []models.MatchRecord) []models.MatchRecord {
	sorted := slices.Clone(matches)
	slices.SortStableFunc(sorted, models.CompareChronological)
	return sorted
}

// LongestWinningStreak walks regular season matches in chronological order and
// returns the longest win streak by any manager, or nil if no regular season
// match has a winner. A loss or tie resets a manager's current streak; a bye
// week without a recorded winner resets it too. Equal streaks keep the manager
// seen first.
func LongestWinningStreak(matches []models.MatchRecord) *WinStreak {
	ordered := Chronological(matches)

	order := make([]string, 0)
	streaks := make(map[string]*streakState)
	state := func(id string) *streakState {
		s, ok := streaks[id]
		if !ok {
			s = &streakState{}
			streaks[id] = s
			order = append(order, id)
		}
		return s
	}

	for i := range ordered {
		match := &ordered[i]
		if !match.IsRegularSeason() {
			continue
		}

		winner := match.WinnerID
		if winner != "" && !models.IsByeID(winner) {
			s := state(winner)
			if s.current == 0 {
				s.currentStart = match
			}
			s.current++
			if s.current > s.max {
				s.max = s.current
				s.maxStart = s.currentStart
				s.maxEnd = match
			}
		} else {
			winner = ""
		}

		for _, id := range []string{match.ManagerAID, match.ManagerBID} {
			if id == "" || id == winner || models.IsByeID(id) {
				continue
			}
			s := state(id)
			s.current = 0
			s.currentStart = nil
		}
	}

	var best *WinStreak
	for _, id := range order {
		s := streaks[id]
		if s.max == 0 || (best != nil && s.max <= best.Length) {
			continue
		}
		best = &WinStreak{
			ManagerID:   id,
			Length:      s.max,
			StartSeason: s.maxStart.Season,
			StartWeek:   s.maxStart.Week,
			EndSeason:   s.maxEnd.Season,
			EndWeek:     s.maxEnd.Week,
		}
	}
	return best
}

// Package stats reduces league match records into derived statistics.
//
// Every function is pure: inputs are never modified and each call allocates
// fresh outputs, so results are safe to share across goroutines. Where a
// tie-break depends on iteration order the first encountered entry in the
// input wins; map iteration order is never relied on.
package stats

import "league-history/models"

// tally accumulates points over games
type tally struct {
	total float64
	games int
}

func (t *tally) add(points float64) {
	t.total += points
	t.games++
}

// average is only called on tallies created by add, so games is never zero
func (t *tally) average() float64 {
	return t.total / float64(t.games)
}

// seasonTallies holds season -> manager -> tally, remembering first-encounter order
type seasonTallies struct {
	seasons  []string
	managers map[string][]string
	tallies  map[string]map[string]*tally
}

func newSeasonTallies() *seasonTallies {
	return &seasonTallies{
		seasons:  make([]string, 0),
		managers: make(map[string][]string),
		tallies:  make(map[string]map[string]*tally),
	}
}

func (s *seasonTallies) credit(season, managerID string, points float64) {
	if managerID == "" || models.IsByeID(managerID) {
		return
	}
	bySeason, ok := s.tallies[season]
	if !ok {
		bySeason = make(map[string]*tally)
		s.tallies[season] = bySeason
		s.seasons = append(s.seasons, season)
	}
	t, ok := bySeason[managerID]
	if !ok {
		t = &tally{}
		bySeason[managerID] = t
		s.managers[season] = append(s.managers[season], managerID)
	}
	t.add(points)
}

// accumulateScores credits each side of every match with its own score.
// The bye side is skipped; the real side of a bye week still counts.
func accumulateScores(matches []models.MatchRecord) *seasonTallies {
	tallies := newSeasonTallies()
	for _, match := range matches {
		tallies.credit(match.Season, match.ManagerAID, match.ScoreA)
		tallies.credit(match.Season, match.ManagerBID, match.ScoreB)
	}
	return tallies
}

// sortedSeasons returns the tallied seasons in ascending order
func (s *seasonTallies) sortedSeasons() []string {
	seasons := make([]string, len(s.seasons))
	copy(seasons, s.seasons)
	models.SortSeasons(seasons, false)
	return seasons
}

// orderedCounter counts per key and keeps keys in first-encounter order
type orderedCounter struct {
	keys   []string
	counts map[string]int
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) inc(key string) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

// max returns the key with the strictly greatest count; ties keep the first key
func (c *orderedCounter) max() (string, int) {
	bestKey, best := "", 0
	for _, key := range c.keys {
		if c.counts[key] > best {
			bestKey, best = key, c.counts[key]
		}
	}
	return bestKey, best
}

// countRegularSeasonWins counts wins in regular season matches with a recorded winner
func countRegularSeasonWins(matches []models.MatchRecord) *orderedCounter {
	wins := newOrderedCounter()
	for _, match := range matches {
		if !match.IsRegularSeason() || !match.HasWinner() || models.IsByeID(match.WinnerID) {
			continue
		}
		wins.inc(match.WinnerID)
	}
	return wins
}

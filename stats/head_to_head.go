package stats

import (
	"slices"

	mstats "github.com/montanaflynn/stats"

	"league-history/models"
)

// HeadToHeadSummary describes every meeting between two managers
type HeadToHeadSummary struct {
	ManagerA string               `json:"manager_a"`
	ManagerB string               `json:"manager_b"`
	Matches  []models.MatchRecord `json:"matches"` // most recent first
	WinsA    int                  `json:"wins_a"`
	WinsB    int                  `json:"wins_b"`
	Ties     int                  `json:"ties"`
	AverageA float64              `json:"average_a"`
	AverageB float64              `json:"average_b"`
}

// HasMatches returns true if the two managers have ever met
func (h HeadToHeadSummary) HasMatches() bool {
	return len(h.Matches) > 0
}

// LastMatch returns the most recent meeting, or nil
func (h HeadToHeadSummary) LastMatch() *models.MatchRecord {
	if len(h.Matches) == 0 {
		return nil
	}
	return &h.Matches[0]
}

// HeadToHead returns the matches played between managerA and managerB, in
// either order, keeping input order. The result is the same set of matches
// regardless of argument order.
func HeadToHead(matches []models.MatchRecord, managerA, managerB string) []models.MatchRecord {
	between := make([]models.MatchRecord, 0)
	for _, match := range matches {
		if match.IsBetween(managerA, managerB) {
			between = append(between, match)
		}
	}
	return between
}

// SortMostRecentFirst returns a copy of matches sorted by (season, week) descending
func SortMostRecentFirst(matches []models.MatchRecord) []models.MatchRecord {
	sorted := slices.Clone(matches)
	slices.SortStableFunc(sorted, func(a, b models.MatchRecord) int {
		return models.CompareChronological(b, a)
	})
	return sorted
}

// SummarizeHeadToHead builds the head-to-head record between two managers
func SummarizeHeadToHead(matches []models.MatchRecord, managerA, managerB string) HeadToHeadSummary {
	summary := HeadToHeadSummary{
		ManagerA: managerA,
		ManagerB: managerB,
		Matches:  SortMostRecentFirst(HeadToHead(matches, managerA, managerB)),
	}
	if !summary.HasMatches() {
		return summary
	}

	scoresA := make(mstats.Float64Data, 0, len(summary.Matches))
	scoresB := make(mstats.Float64Data, 0, len(summary.Matches))
	for _, match := range summary.Matches {
		scoresA = append(scoresA, match.ScoreFor(managerA))
		scoresB = append(scoresB, match.ScoreFor(managerB))

		switch match.WinnerID {
		case managerA:
			summary.WinsA++
		case managerB:
			summary.WinsB++
		case "":
			summary.Ties++
		}
	}

	// Mean only fails on empty input, which was ruled out above
	summary.AverageA, _ = mstats.Mean(scoresA)
	summary.AverageB, _ = mstats.Mean(scoresB)
	return summary
}

package stats

import "league-history/models"

// BestAverage identifies the manager with the highest season scoring average
type BestAverage struct {
	ManagerID string  `json:"manager_id"`
	Season    string  `json:"season"`
	Average   float64 `json:"average"`
}

// Found returns true if a manager with a positive average was found
func (b BestAverage) Found() bool {
	return b.ManagerID != ""
}

// SeasonAverages returns manager -> season -> average points per game.
// Managers only get an entry for seasons in which they played at least once.
func SeasonAverages(matches []models.MatchRecord) map[string]map[string]float64 {
	tallies := accumulateScores(matches)

	averages := make(map[string]map[string]float64)
	for _, season := range tallies.seasons {
		for _, managerID := range tallies.managers[season] {
			if averages[managerID] == nil {
				averages[managerID] = make(map[string]float64)
			}
			averages[managerID][season] = tallies.tallies[season][managerID].average()
		}
	}
	return averages
}

// HighestSeasonAverage returns the single best season average across all seasons.
// Seasons are scanned in ascending order and managers in first-encounter order,
// so ties keep the earliest season.
func HighestSeasonAverage(matches []models.MatchRecord) BestAverage {
	tallies := accumulateScores(matches)

	var best BestAverage
	for _, season := range tallies.sortedSeasons() {
		for _, managerID := range tallies.managers[season] {
			avg := tallies.tallies[season][managerID].average()
			if avg > best.Average {
				best = BestAverage{ManagerID: managerID, Season: season, Average: avg}
			}
		}
	}
	return best
}

// HighestAveragePerSeason returns the best average for each season with games
func HighestAveragePerSeason(matches []models.MatchRecord) map[string]BestAverage {
	tallies := accumulateScores(matches)

	perSeason := make(map[string]BestAverage, len(tallies.seasons))
	for _, season := range tallies.seasons {
		best := BestAverage{Season: season}
		for _, managerID := range tallies.managers[season] {
			avg := tallies.tallies[season][managerID].average()
			if avg > best.Average {
				best.ManagerID = managerID
				best.Average = avg
			}
		}
		perSeason[season] = best
	}
	return perSeason
}

package stats

import (
	"fmt"
	"sort"

	"league-history/models"
)

// SeasonFinish is a manager's regular season rank in one season
type SeasonFinish struct {
	Season string `json:"season"`
	Place  int    `json:"place"`
}

// Ordinal formats n as 1st, 2nd, 3rd, 4th, 11th, 12th, 13th, 21st...
func Ordinal(n int) string {
	j, k := n%10, n%100
	switch {
	case j == 1 && k != 11:
		return fmt.Sprintf("%dst", n)
	case j == 2 && k != 12:
		return fmt.Sprintf("%dnd", n)
	case j == 3 && k != 13:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}

type standing struct {
	managerID string
	wins      int
	points    float64
}

// RegularSeasonStandings ranks the managers of one season's regular season
// games by wins, then total points. Equal records keep first-encounter order.
func RegularSeasonStandings(matchesInSeason []models.MatchRecord) []string {
	order := make([]string, 0)
	byID := make(map[string]*standing)
	get := func(id string) *standing {
		s, ok := byID[id]
		if !ok {
			s = &standing{managerID: id}
			byID[id] = s
			order = append(order, id)
		}
		return s
	}

	for _, match := range matchesInSeason {
		if !match.IsRegularSeason() {
			continue
		}
		for _, id := range []string{match.ManagerAID, match.ManagerBID} {
			if id == "" || models.IsByeID(id) {
				continue
			}
			get(id).points += match.ScoreFor(id)
		}
		if match.HasWinner() && !models.IsByeID(match.WinnerID) {
			get(match.WinnerID).wins++
		}
	}

	standings := make([]*standing, 0, len(order))
	for _, id := range order {
		standings = append(standings, byID[id])
	}
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].wins != standings[j].wins {
			return standings[i].wins > standings[j].wins
		}
		return standings[i].points > standings[j].points
	})

	ranked := make([]string, len(standings))
	for i, s := range standings {
		ranked[i] = s.managerID
	}
	return ranked
}

// RegularSeasonFinishes returns the manager's regular season place for every
// season they played in, most recent season first
func RegularSeasonFinishes(matches []models.MatchRecord, managerID string) []SeasonFinish {
	bySeason := make(map[string][]models.MatchRecord)
	seasons := make([]string, 0)
	for _, match := range matches {
		if _, ok := bySeason[match.Season]; !ok {
			seasons = append(seasons, match.Season)
		}
		bySeason[match.Season] = append(bySeason[match.Season], match)
	}
	models.SortSeasons(seasons, true)

	finishes := make([]SeasonFinish, 0)
	for _, season := range seasons {
		for i, id := range RegularSeasonStandings(bySeason[season]) {
			if id == managerID {
				finishes = append(finishes, SeasonFinish{Season: season, Place: i + 1})
				break
			}
		}
	}
	return finishes
}

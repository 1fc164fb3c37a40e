package stats

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"league-history/models"
)

// PlacementRule maps a playoff round to the places its winner and loser finish in
type PlacementRule struct {
	WeekType    models.WeekType `json:"week_type"`
	WinnerPlace int             `json:"winner_place"`
	LoserPlace  int             `json:"loser_place"`
}

// Placement lists the seasons in which a manager finished in Place
type Placement struct {
	Place   int      `json:"place"`
	Seasons []string `json:"seasons"`
}

// Label returns "Championships" for first place and "2nd Place" style labels otherwise
func (p Placement) Label() string {
	if p.Place == 1 {
		return "Championships"
	}
	return Ordinal(p.Place) + " Place"
}

// DefaultPlacementRules is the twelve team league layout
func DefaultPlacementRules() []PlacementRule {
	return []PlacementRule{
		{WeekType: models.WeekTypeChampionship, WinnerPlace: 1, LoserPlace: 2},
		{WeekType: models.WeekTypeThirdPlace, WinnerPlace: 3, LoserPlace: 4},
		{WeekType: models.WeekTypeFifthPlace, WinnerPlace: 5, LoserPlace: 6},
		{WeekType: models.WeekTypeSeventhPlace, WinnerPlace: 7, LoserPlace: 8},
		{WeekType: models.WeekTypeNinthPlace, WinnerPlace: 9, LoserPlace: 10},
		{WeekType: models.WeekTypeEleventhPlace, WinnerPlace: 11, LoserPlace: 12},
	}
}

// ParsePlacementRules parses "week_type:winner:loser" entries separated by commas,
// e.g. "championship:1:2,third place:3:4"
func ParsePlacementRules(value string) ([]PlacementRule, error) {
	rules := make([]PlacementRule, 0)
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid placement rule %q: expected week_type:winner:loser", entry)
		}
		winner, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid winner place in %q: %w", entry, err)
		}
		loser, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("invalid loser place in %q: %w", entry, err)
		}
		if winner < 1 || loser < 1 {
			return nil, fmt.Errorf("invalid placement rule %q: places start at 1", entry)
		}
		rules = append(rules, PlacementRule{
			WeekType:    models.WeekType(strings.TrimSpace(parts[0])),
			WinnerPlace: winner,
			LoserPlace:  loser,
		})
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("no placement rules in %q", value)
	}
	return rules, nil
}

// PlayoffPlacements returns the places the manager finished in through the
// placement rounds described by rules, ordered by place. Places the manager
// never reached are omitted.
func PlayoffPlacements(matches []models.MatchRecord, managerID string, rules []PlacementRule) []Placement {
	byWeekType := make(map[models.WeekType]PlacementRule, len(rules))
	for _, rule := range rules {
		byWeekType[rule.WeekType] = rule
	}

	seasonsByPlace := make(map[int][]string)
	for _, match := range matches {
		rule, ok := byWeekType[match.WeekType]
		if !ok || !match.Involves(managerID) {
			continue
		}
		place := rule.LoserPlace
		if match.WinnerID == managerID {
			place = rule.WinnerPlace
		}
		seasonsByPlace[place] = append(seasonsByPlace[place], match.Season)
	}

	placements := make([]Placement, 0, len(seasonsByPlace))
	for place, seasons := range seasonsByPlace {
		placements = append(placements, Placement{Place: place, Seasons: seasons})
	}
	sort.Slice(placements, func(i, j int) bool {
		return placements[i].Place < placements[j].Place
	})
	return placements
}

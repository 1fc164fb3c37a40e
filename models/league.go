package models

import (
	"sort"
	"strings"
)

// League holds both input collections as loaded for one request
type League struct {
	Matches  []MatchRecord   `json:"matches"`
	Managers []ManagerRecord `json:"managers"`
}

// Seasons returns the distinct seasons present in the matches
func (l *League) Seasons(descending bool) []string {
	seen := make(map[string]bool)
	seasons := make([]string, 0)
	for _, match := range l.Matches {
		if match.Season == "" || seen[match.Season] {
			continue
		}
		seen[match.Season] = true
		seasons = append(seasons, match.Season)
	}
	SortSeasons(seasons, descending)
	return seasons
}

// MatchesInSeason returns the matches of a single season, in input order
func (l *League) MatchesInSeason(season string) []MatchRecord {
	matches := make([]MatchRecord, 0)
	for _, match := range l.Matches {
		if match.Season == season {
			matches = append(matches, match)
		}
	}
	return matches
}

// LabelMap maps manager identifiers to display names
func (l *League) LabelMap() map[string]string {
	labels := make(map[string]string, len(l.Managers))
	for _, manager := range l.Managers {
		labels[manager.Name] = manager.Name
	}
	return labels
}

// FindManager returns the manager with the given name, or nil
func (l *League) FindManager(name string) *ManagerRecord {
	for i := range l.Managers {
		if l.Managers[i].Name == name {
			return &l.Managers[i]
		}
	}
	return nil
}

// SortedManagers returns the managers split into active and inactive, each
// sorted alphabetically by name
func (l *League) SortedManagers() (active, inactive []ManagerRecord) {
	sorted := make([]ManagerRecord, len(l.Managers))
	copy(sorted, l.Managers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	active = make([]ManagerRecord, 0)
	inactive = make([]ManagerRecord, 0)
	for _, manager := range sorted {
		if manager.Active {
			active = append(active, manager)
		} else {
			inactive = append(inactive, manager)
		}
	}
	return active, inactive
}

// ParticipantIDs returns every non-bye manager id that appears in a match, sorted
func (l *League) ParticipantIDs() []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, match := range l.Matches {
		for _, id := range []string{match.ManagerAID, match.ManagerBID} {
			if id == "" || IsByeID(id) || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

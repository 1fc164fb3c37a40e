package models

import (
	"encoding/json"
	"fmt"
)

// ManagerRecord represents a league manager. Name doubles as the identifier
// used in match records.
type ManagerRecord struct {
	Name              string   `json:"name" bson:"name"`
	Active            bool     `json:"active" bson:"active"`
	TeamName          string   `json:"team_name" bson:"team_name"`
	PreviousTeamNames []string `json:"previous_team_names" bson:"previous_team_names"`
	JoinedSeason      string   `json:"joined_season" bson:"joined_season"`
	NFLTeam           string   `json:"nfl_team" bson:"nfl_team"`
	Bio               string   `json:"bio" bson:"bio"`
	Notes             string   `json:"notes" bson:"notes"`
	AvatarURL         string   `json:"avatar_url" bson:"avatar_url"`
}

// UnmarshalJSON decodes a manager, accepting joined_season as a number or string
func (m *ManagerRecord) UnmarshalJSON(data []byte) error {
	type alias ManagerRecord
	var raw struct {
		alias
		JoinedSeason json.RawMessage `json:"joined_season"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode manager record: %w", err)
	}
	*m = ManagerRecord(raw.alias)
	m.JoinedSeason = label(raw.JoinedSeason)
	return nil
}

// DisplayTeamName returns the team name or N/A
func (m ManagerRecord) DisplayTeamName() string {
	if m.TeamName == "" {
		return "N/A"
	}
	return m.TeamName
}

// HasPreviousNames returns true if the manager's team was renamed before
func (m ManagerRecord) HasPreviousNames() bool {
	return len(m.PreviousTeamNames) > 0
}

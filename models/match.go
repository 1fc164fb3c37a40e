package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ByeID is the sentinel opponent identifier for a scheduled non-game
const ByeID = "bye"

// WeekType classifies a match as regular season or a playoff round
type WeekType string

const (
	WeekTypeRegularSeason WeekType = "regular_season"
	WeekTypeChampionship  WeekType = "championship"
	WeekTypeThirdPlace    WeekType = "third place"
	WeekTypeFifthPlace    WeekType = "fifth place"
	WeekTypeSeventhPlace  WeekType = "seventh place"
	WeekTypeNinthPlace    WeekType = "ninth place"
	WeekTypeEleventhPlace WeekType = "eleventh place"
)

// MatchRecord represents one game between two managers in a season.
// Records are treated as immutable input by every consumer.
type MatchRecord struct {
	Season     string   `json:"season" bson:"season"`
	Week       int      `json:"week" bson:"week"`
	WeekType   WeekType `json:"week_type" bson:"week_type"`
	ManagerAID string   `json:"manager_a_id" bson:"manager_a_id"`
	ManagerBID string   `json:"manager_b_id" bson:"manager_b_id"`
	ScoreA     float64  `json:"score_a" bson:"score_a"`
	ScoreB     float64  `json:"score_b" bson:"score_b"`
	WinnerID   string   `json:"winner_id,omitempty" bson:"winner_id,omitempty"` // empty for ties and byes
}

// matchRecordJSON mirrors MatchRecord with loosely typed fields; the source
// files are hand maintained and mix numbers with numeric strings.
type matchRecordJSON struct {
	Season     json.RawMessage `json:"season"`
	Week       json.RawMessage `json:"week"`
	WeekType   string          `json:"week_type"`
	ManagerAID string          `json:"manager_a_id"`
	ManagerBID string          `json:"manager_b_id"`
	ScoreA     json.RawMessage `json:"score_a"`
	ScoreB     json.RawMessage `json:"score_b"`
	WinnerID   json.RawMessage `json:"winner_id"`
}

// UnmarshalJSON decodes a match, coercing scores and weeks to numbers
// (non-numeric values become 0) and seasons to their string label
func (m *MatchRecord) UnmarshalJSON(data []byte) error {
	var raw matchRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode match record: %w", err)
	}

	*m = MatchRecord{
		Season:     label(raw.Season),
		Week:       int(number(raw.Week)),
		WeekType:   WeekType(strings.TrimSpace(raw.WeekType)),
		ManagerAID: raw.ManagerAID,
		ManagerBID: raw.ManagerBID,
		ScoreA:     number(raw.ScoreA),
		ScoreB:     number(raw.ScoreB),
		WinnerID:   label(raw.WinnerID),
	}
	return nil
}

// IsByeID reports whether id is the bye sentinel
func IsByeID(id string) bool {
	return strings.EqualFold(strings.TrimSpace(id), ByeID)
}

// IsBye returns true if either side of the match is a bye
func (m MatchRecord) IsBye() bool {
	return IsByeID(m.ManagerAID) || IsByeID(m.ManagerBID)
}

// IsRegularSeason returns true for regular season games
func (m MatchRecord) IsRegularSeason() bool {
	return m.WeekType == WeekTypeRegularSeason
}

// IsChampionship returns true for the championship game
func (m MatchRecord) IsChampionship() bool {
	return m.WeekType == WeekTypeChampionship
}

// HasWinner returns true if the match has a recorded winner
func (m MatchRecord) HasWinner() bool {
	return m.WinnerID != ""
}

// Involves returns true if managerID played in this match
func (m MatchRecord) Involves(managerID string) bool {
	return m.ManagerAID == managerID || m.ManagerBID == managerID
}

// IsBetween returns true if the match was played between a and b, in either order
func (m MatchRecord) IsBetween(a, b string) bool {
	return (m.ManagerAID == a && m.ManagerBID == b) ||
		(m.ManagerAID == b && m.ManagerBID == a)
}

// ScoreFor returns the score credited to managerID, or 0 if they did not play
func (m MatchRecord) ScoreFor(managerID string) float64 {
	switch managerID {
	case m.ManagerAID:
		return m.ScoreA
	case m.ManagerBID:
		return m.ScoreB
	}
	return 0
}

// OpponentOf returns the other participant, or empty string if managerID did not play
func (m MatchRecord) OpponentOf(managerID string) string {
	switch managerID {
	case m.ManagerAID:
		return m.ManagerBID
	case m.ManagerBID:
		return m.ManagerAID
	}
	return ""
}

// String returns a short description used in logs
func (m MatchRecord) String() string {
	return fmt.Sprintf("S%s W%d %s %.2f-%.2f %s", m.Season, m.Week, m.ManagerAID, m.ScoreA, m.ScoreB, m.ManagerBID)
}

package models

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// CompareSeasons orders two season labels. Labels that both parse as numbers
// compare numerically, anything else falls back to string order.
func CompareSeasons(a, b string) int {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}

// CompareChronological orders matches by (season, week) ascending
func CompareChronological(a, b MatchRecord) int {
	if c := CompareSeasons(a.Season, b.Season); c != 0 {
		return c
	}
	switch {
	case a.Week < b.Week:
		return -1
	case a.Week > b.Week:
		return 1
	}
	return 0
}

// SortSeasons sorts season labels in place, ascending or descending
func SortSeasons(seasons []string, descending bool) {
	sort.SliceStable(seasons, func(i, j int) bool {
		if descending {
			return CompareSeasons(seasons[i], seasons[j]) > 0
		}
		return CompareSeasons(seasons[i], seasons[j]) < 0
	})
}

// number coerces a raw JSON value to a float, treating anything non-numeric as 0
func number(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return parsed
		}
	}
	return 0
}

// label coerces a raw JSON value to a string label; null becomes empty
func label(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

package templates

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"league-history/models"
	"league-history/stats"
)

// GetTemplateFuncs returns the template function map for HTML templates
func GetTemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Basic math functions
		"add": func(a, b int) int { return a + b },

		// String functions
		"lower": strings.ToLower,
		"join":  strings.Join,

		// JSON and data functions
		"toJSON": func(v interface{}) template.JS {
			data, _ := json.Marshal(v)
			return template.JS(data)
		},
		// dict builds the argument map for sub-templates such as managerLink
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("dict: number of arguments must be even")
			}
			result := make(map[string]interface{})
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict: key must be string, got %T", values[i])
				}
				result[key] = values[i+1]
			}
			return result, nil
		},

		// League functions
		"label":         label,
		"ordinal":       stats.Ordinal,
		"formatPoints":  formatPoints,
		"formatAverage": formatAverage,
		"orNA":          orNA,
		"winnerLabel":   winnerLabel,
		"managerURL":    managerURL,
		"compareURL":    compareURL,
	}
}

// label resolves a manager id through the label map. Unknown ids render as
// themselves and a missing id renders as Unknown.
func label(labels map[string]string, id string) string {
	if id == "" {
		return "Unknown"
	}
	if name, ok := labels[id]; ok && name != "" {
		return name
	}
	return id
}

// formatPoints prints whole scores without decimals and fractional ones as given
func formatPoints(points float64) string {
	return fmt.Sprintf("%g", points)
}

// formatAverage prints an average with two decimals
func formatAverage(avg float64) string {
	return fmt.Sprintf("%.2f", avg)
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}

// winnerLabel names the winner of a match, or Tie
func winnerLabel(labels map[string]string, match models.MatchRecord) string {
	if !match.HasWinner() {
		return "Tie"
	}
	return label(labels, match.WinnerID)
}

func managerURL(name string) string {
	return "/managers/" + url.PathEscape(name)
}

func compareURL(manager1, manager2 string) string {
	q := url.Values{}
	q.Set("manager1", manager1)
	q.Set("manager2", manager2)
	return "/compare?" + q.Encode()
}

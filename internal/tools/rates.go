package tools

import "strings"

// knownLocations is the fixed place list the rate lookup matches against.
// Multi-word names come first so "san antonio" wins over bare "texas".
var knownLocations = []string{
	"san antonio", "new york", "los angeles", "austin", "dallas",
	"houston", "seattle", "denver", "miami", "chicago", "texas",
	"california", "florida",
}

const defaultLocation = "United States"

// Fixed snapshot values; this is not a live lookup.
const currentMortgageRate = 6.85

var rateHistory = []map[string]any{
	{"month": "June", "rate": 7.10},
	{"month": "July", "rate": 6.95},
	{"month": "August", "rate": 6.85},
}

// titleCase capitalizes the first letter of each word of a matched
// lowercase place name.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// extractLocation returns the first known place name contained in the
// message, title-cased, or the country-wide default.
func extractLocation(message string) string {
	lower := strings.ToLower(message)
	for _, loc := range knownLocations {
		if strings.Contains(lower, loc) {
			return titleCase(loc)
		}
	}
	return defaultLocation
}

func interestRates(in Input) Result {
	return Result{
		"location":     extractLocation(in.Message),
		"rate_type":    "30-year fixed",
		"current_rate": currentMortgageRate,
		"history":      rateHistory,
	}
}

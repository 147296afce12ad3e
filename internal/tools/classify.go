package tools

import "strings"

// relevanceVocabulary is the fixed real-estate vocabulary checked by the
// relevance gate. A message matching none of these is redirected without
// running any tool or the model.
var relevanceVocabulary = []string{
	"property", "properties", "house", "home", "apartment", "condo",
	"real estate", "realty", "listing", "mortgage", "loan", "rate",
	"interest", "down payment", "payment", "buy", "sell", "rent",
	"invest", "roi", "cap rate", "pmi", "insurance", "tax", "price",
	"bedroom", "bathroom", "square", "location", "neighborhood", "agent",
	"market", "closing", "escrow",
}

// toolKeywords maps each selectable tool to its keyword list. Lists are
// checked independently; a message may trigger zero, one, or several tools.
var toolKeywords = map[Kind][]string{
	KindPropertySearch: {
		"search", "find", "looking for", "show me", "available",
		"listings", "houses", "homes", "apartments", "properties",
	},
	KindPropertyDetails: {
		"details", "tell me more", "more about", "describe", "property id",
	},
	KindMortgage: {
		"mortgage", "monthly payment", "loan payment", "amortization",
		"afford",
	},
	KindMortgageAdvanced: {
		"pmi", "property tax", "insurance", "total monthly",
		"advanced mortgage", "full payment",
	},
	KindFinance: {
		"roi", "return on investment", "cap rate", "capitalization",
		"investment return", "yield",
	},
	KindInterestRates: {
		"interest rate", "interest rates", "current rate", "rates",
		"apr",
	},
	KindChatHistory: {
		"history", "earlier", "previous conversation", "what did i",
	},
	KindSavedProperties: {
		"saved", "favorites", "favourites", "shortlist", "bookmarked",
	},
	KindServicedAreas: {
		"serviced", "areas you", "locations you", "where do you",
		"coverage",
	},
}

// Classifier maps message text to the set of tools that should run.
type Classifier struct {
	registry *Registry
}

// NewClassifier creates a classifier over the given registry. Match order
// follows the registry's declaration order.
func NewClassifier(registry *Registry) *Classifier {
	return &Classifier{registry: registry}
}

// Relevant reports whether the message mentions the real-estate domain at
// all. It runs unconditionally before classification.
func (c *Classifier) Relevant(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range relevanceVocabulary {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Classify returns the kinds whose keyword list has at least one substring
// match in the message, in registry-declaration order. There is no
// prioritization and no mutual exclusion.
func (c *Classifier) Classify(message string) []Kind {
	lower := strings.ToLower(message)
	var matched []Kind
	for _, kind := range c.registry.Kinds() {
		for _, kw := range toolKeywords[kind] {
			if strings.Contains(lower, kw) {
				matched = append(matched, kind)
				break
			}
		}
	}
	return matched
}

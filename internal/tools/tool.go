// Package tools implements the assistant's data tools: keyword
// classification, numeric extraction, mortgage and investment formulas, and
// the canned sample-data generators.
package tools

import (
	"fmt"
	"log/slog"
)

// Kind identifies a tool. Declaration order is the classification and
// reporting order.
type Kind int

const (
	// KindRelevance is the relevance gate; it runs before every other tool
	// and is always reported first.
	KindRelevance Kind = iota
	KindPropertySearch
	KindPropertyDetails
	KindMortgage
	KindMortgageAdvanced
	KindFinance
	KindInterestRates
	KindChatHistory
	KindSavedProperties
	KindServicedAreas
)

// String returns the tool's wire name.
func (k Kind) String() string {
	switch k {
	case KindRelevance:
		return "check_realestate_relevance"
	case KindPropertySearch:
		return "search_properties"
	case KindPropertyDetails:
		return "get_property_details"
	case KindMortgage:
		return "calculate_mortgage"
	case KindMortgageAdvanced:
		return "calculate_mortgage_advanced"
	case KindFinance:
		return "financial_calculator"
	case KindInterestRates:
		return "get_interest_rates"
	case KindChatHistory:
		return "get_chat_history"
	case KindSavedProperties:
		return "get_saved_properties"
	case KindServicedAreas:
		return "get_serviced_properties"
	default:
		return fmt.Sprintf("unknown_tool_%d", int(k))
	}
}

// Result is one tool's output record. A failed tool carries an "error" key
// instead of raising; callers check the field.
type Result map[string]any

// Err returns the result's error message, or "" for a successful result.
func (r Result) Err() string {
	if r == nil {
		return ""
	}
	if msg, ok := r["error"].(string); ok {
		return msg
	}
	return ""
}

// IsError reports whether the result carries an error field.
func (r Result) IsError() bool {
	return r.Err() != ""
}

// Input carries the message and identifiers handed to each tool.
type Input struct {
	Message   string
	UserID    string
	SessionID string
}

// Registry binds each Kind to its handler. It is constructed once at
// startup and injected into the composer; dispatch is a compile-time
// switch, not a name lookup.
type Registry struct {
	kinds []Kind
}

// NewRegistry creates the fixed tool registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds: []Kind{
			KindPropertySearch,
			KindPropertyDetails,
			KindMortgage,
			KindMortgageAdvanced,
			KindFinance,
			KindInterestRates,
			KindChatHistory,
			KindSavedProperties,
			KindServicedAreas,
		},
	}
}

// Kinds returns the classifiable tool kinds in declaration order. The
// relevance gate is excluded; it is not a selectable tool.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// Names returns every tool name, gate first, in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.kinds)+1)
	names = append(names, KindRelevance.String())
	for _, k := range r.kinds {
		names = append(names, k.String())
	}
	return names
}

// Run executes one tool. A panicking tool is captured and replaced with a
// generic error record so one tool's failure never aborts the others.
func (r *Registry) Run(kind Kind, in Input) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("Tool execution failed", "tool", kind.String(), "panic", p)
			res = Result{"error": "Failed to execute " + kind.String()}
		}
	}()

	switch kind {
	case KindPropertySearch:
		return searchProperties(in)
	case KindPropertyDetails:
		return propertyDetails(in)
	case KindMortgage:
		return calculateMortgage(in)
	case KindMortgageAdvanced:
		return calculateMortgageAdvanced(in)
	case KindFinance:
		return financialCalculator(in)
	case KindInterestRates:
		return interestRates(in)
	case KindChatHistory:
		return chatHistory(in)
	case KindSavedProperties:
		return savedProperties(in)
	case KindServicedAreas:
		return servicedAreas(in)
	default:
		return Result{"error": "Failed to execute " + kind.String()}
	}
}

package composer

import (
	"fmt"
	"strings"

	"github.com/bluepixel/estatechat/internal/tools"
)

const capabilityMessage = "I'm having trouble reaching my assistant right " +
	"now, but I can still help with property searches, mortgage and PMI " +
	"calculations, current interest rates, and ROI or cap rate analysis. " +
	"Please try again in a moment."

// DegradedReply assembles the deterministic fallback text from whichever
// tool results succeeded. It is a pure function of the collected results
// and never fails; with no usable result it returns a generic capability
// description.
func DegradedReply(kinds []tools.Kind, results map[tools.Kind]tools.Result) string {
	var parts []string

	for _, kind := range kinds {
		res := results[kind]
		if res.IsError() {
			continue
		}
		switch kind {
		case tools.KindMortgage:
			if part, ok := mortgageSummary(res); ok {
				parts = append(parts, part)
			}
		case tools.KindMortgageAdvanced:
			if total, ok := asFloat(res["total_monthly_payment"]); ok {
				parts = append(parts, fmt.Sprintf(
					"With PMI, property tax, and insurance included, the total monthly payment comes to $%.2f.", total))
			}
		case tools.KindPropertySearch:
			if count, ok := asInt(res["count"]); ok {
				parts = append(parts, fmt.Sprintf("I found %d properties matching your search.", count))
			}
		case tools.KindInterestRates:
			if rate, ok := asFloat(res["current_rate"]); ok {
				loc, _ := res["location"].(string)
				if loc == "" {
					loc = "the United States"
				}
				parts = append(parts, fmt.Sprintf("The current 30-year fixed rate for %s is %.2f%%.", loc, rate))
			}
		case tools.KindFinance:
			if roi, ok := asFloat(res["roi_percentage"]); ok {
				parts = append(parts, fmt.Sprintf("Your return on investment works out to %.2f%%.", roi))
			} else if cap, ok := asFloat(res["cap_rate_percentage"]); ok {
				parts = append(parts, fmt.Sprintf("The capitalization rate works out to %.2f%%.", cap))
			}
		}
	}

	if len(parts) == 0 {
		return capabilityMessage
	}
	return strings.Join(parts, " ")
}

func mortgageSummary(res tools.Result) (string, bool) {
	monthly, ok := asFloat(res["monthly_payment"])
	if !ok {
		return "", false
	}
	loan, _ := asFloat(res["loan_amount"])
	rate, _ := asFloat(res["interest_rate"])
	interest, _ := asFloat(res["total_interest"])
	return fmt.Sprintf(
		"Your estimated monthly payment is $%.2f on a $%.2f loan at %.2f%% over 30 years, with $%.2f total interest.",
		monthly, loan, rate, interest), true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

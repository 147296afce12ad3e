package tools

import "strings"

const (
	errNoFinanceKeyword = "specify an ROI or cap rate calculation"
	errFinanceNumbers   = "need at least two numbers for this calculation"
)

// ROIPercentage returns annualReturn / initialInvestment as a percentage,
// rounded to two decimals.
func ROIPercentage(initialInvestment, annualReturn float64) float64 {
	return round2(annualReturn / initialInvestment * 100)
}

// CapRatePercentage returns annualIncome / propertyValue as a percentage,
// rounded to two decimals.
func CapRatePercentage(annualIncome, propertyValue float64) float64 {
	return round2(annualIncome / propertyValue * 100)
}

// financialCalculator dispatches on "roi" / "cap rate" substring presence.
// Both calculations require at least two extracted numbers.
func financialCalculator(in Input) Result {
	lower := strings.ToLower(in.Message)
	nums := ExtractNumbers(in.Message)

	switch {
	case strings.Contains(lower, "roi"):
		if len(nums) < 2 {
			return Result{"error": errFinanceNumbers}
		}
		return Result{
			"calculation_type":   "roi",
			"initial_investment": nums[0],
			"annual_return":      nums[1],
			"roi_percentage":     ROIPercentage(nums[0], nums[1]),
		}
	case strings.Contains(lower, "cap rate"):
		if len(nums) < 2 {
			return Result{"error": errFinanceNumbers}
		}
		return Result{
			"calculation_type":    "cap_rate",
			"annual_income":       nums[0],
			"property_value":      nums[1],
			"cap_rate_percentage": CapRatePercentage(nums[0], nums[1]),
		}
	default:
		return Result{"error": errNoFinanceKeyword}
	}
}

package tools

import (
	"math"

	"github.com/bluepixel/estatechat/internal/domain"
)

const (
	// defaultAnnualRate is the annual interest rate (percent) assumed when
	// the message carries no third number.
	defaultAnnualRate = 7.2
	// mortgageTermYears is the fixed loan term.
	mortgageTermYears = 30

	pmiAnnualRate       = 0.005 // 0.5% of the loan per year, waived at >=20% down
	propertyTaxRate     = 0.012 // 1.2% of price per year
	homeInsuranceRate   = 0.004 // 0.4% of price per year
	pmiWaiverDownPct = 20.0

	errTooFewNumbers = "need at least two numbers: property price and down payment"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// QuoteMortgage computes the standard 30-year amortized quote from a
// property price, down payment, and annual rate in percent. All monetary
// outputs are rounded to cents.
func QuoteMortgage(price, down, annualRatePct float64) domain.MortgageQuote {
	loan := price - down
	n := float64(mortgageTermYears * 12)
	r := annualRatePct / 100 / 12

	var monthly float64
	if r == 0 {
		monthly = loan / n
	} else {
		growth := math.Pow(1+r, n)
		monthly = loan * r * growth / (growth - 1)
	}
	monthly = round2(monthly)

	return domain.MortgageQuote{
		PropertyPrice:  round2(price),
		DownPayment:    round2(down),
		LoanAmount:     round2(loan),
		InterestRate:   annualRatePct,
		TermYears:      mortgageTermYears,
		MonthlyPayment: monthly,
		TotalCost:      round2(monthly * n),
		TotalInterest:  round2(monthly*n - loan),
	}
}

// QuoteAdvancedMortgage layers PMI, property tax, and insurance estimates
// on top of the basic quote. PMI is zero at 20% down or more.
func QuoteAdvancedMortgage(price, down, annualRatePct float64) domain.AdvancedMortgageQuote {
	base := QuoteMortgage(price, down, annualRatePct)

	downPct := 0.0
	if price != 0 {
		downPct = down / price * 100
	}

	pmi := 0.0
	if downPct < pmiWaiverDownPct {
		pmi = round2(base.LoanAmount * pmiAnnualRate / 12)
	}
	tax := round2(price * propertyTaxRate / 12)
	ins := round2(price * homeInsuranceRate / 12)

	return domain.AdvancedMortgageQuote{
		MortgageQuote:       base,
		DownPaymentPercent:  round2(downPct),
		MonthlyPMI:          pmi,
		MonthlyPropertyTax:  tax,
		MonthlyInsurance:    ins,
		TotalMonthlyPayment: round2(base.MonthlyPayment + pmi + tax + ins),
	}
}

// mortgageArgs extracts (price, down, rate) from the message, defaulting
// the rate when only two numbers are present.
func mortgageArgs(message string) (price, down, rate float64, ok bool) {
	nums := ExtractNumbers(message)
	if len(nums) < 2 {
		return 0, 0, 0, false
	}
	rate = defaultAnnualRate
	if len(nums) >= 3 {
		rate = nums[2]
	}
	return nums[0], nums[1], rate, true
}

func calculateMortgage(in Input) Result {
	price, down, rate, ok := mortgageArgs(in.Message)
	if !ok {
		return Result{"error": errTooFewNumbers}
	}
	q := QuoteMortgage(price, down, rate)
	return Result{
		"property_price":  q.PropertyPrice,
		"down_payment":    q.DownPayment,
		"loan_amount":     q.LoanAmount,
		"interest_rate":   q.InterestRate,
		"term_years":      q.TermYears,
		"monthly_payment": q.MonthlyPayment,
		"total_cost":      q.TotalCost,
		"total_interest":  q.TotalInterest,
	}
}

func calculateMortgageAdvanced(in Input) Result {
	price, down, rate, ok := mortgageArgs(in.Message)
	if !ok {
		// Propagate the basic tool's error unchanged.
		return Result{"error": errTooFewNumbers}
	}
	q := QuoteAdvancedMortgage(price, down, rate)
	return Result{
		"property_price":        q.PropertyPrice,
		"down_payment":          q.DownPayment,
		"loan_amount":           q.LoanAmount,
		"interest_rate":         q.InterestRate,
		"term_years":            q.TermYears,
		"monthly_payment":       q.MonthlyPayment,
		"total_cost":            q.TotalCost,
		"total_interest":        q.TotalInterest,
		"down_payment_percent":  q.DownPaymentPercent,
		"monthly_pmi":           q.MonthlyPMI,
		"monthly_property_tax":  q.MonthlyPropertyTax,
		"monthly_insurance":     q.MonthlyInsurance,
		"total_monthly_payment": q.TotalMonthlyPayment,
	}
}

package domain

// MortgageQuote holds the output of the basic amortized-loan calculation.
// Monetary fields are non-negative and rounded to cents. Derived fields
// (LoanAmount, MonthlyPayment, TotalCost, TotalInterest) are always
// recomputed from the inputs, never stored independently.
type MortgageQuote struct {
	PropertyPrice  float64 `json:"property_price"`
	DownPayment    float64 `json:"down_payment"`
	LoanAmount     float64 `json:"loan_amount"`
	InterestRate   float64 `json:"interest_rate"`
	TermYears      int     `json:"term_years"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalCost      float64 `json:"total_cost"`
	TotalInterest  float64 `json:"total_interest"`
}

// AdvancedMortgageQuote extends MortgageQuote with PMI, property tax and
// insurance estimates. MonthlyPMI is zero whenever DownPaymentPercent >= 20.
type AdvancedMortgageQuote struct {
	MortgageQuote
	DownPaymentPercent  float64 `json:"down_payment_percent"`
	MonthlyPMI          float64 `json:"monthly_pmi"`
	MonthlyPropertyTax  float64 `json:"monthly_property_tax"`
	MonthlyInsurance    float64 `json:"monthly_insurance"`
	TotalMonthlyPayment float64 `json:"total_monthly_payment"`
}

package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestROIPercentage(t *testing.T) {
	assert.Equal(t, 8.0, ROIPercentage(100000, 8000))
}

func TestCapRatePercentage_Rounds(t *testing.T) {
	assert.Equal(t, 8.33, CapRatePercentage(50000, 600000))
}

func TestFinancialCalculator_ROI(t *testing.T) {
	reg := NewRegistry()
	res := reg.Run(KindFinance, Input{Message: "what's the roi on a $100,000 investment returning $8,000 a year?"})
	require.False(t, res.IsError())
	assert.Equal(t, "roi", res["calculation_type"])
	assert.Equal(t, 100000.0, res["initial_investment"])
	assert.Equal(t, 8000.0, res["annual_return"])
	assert.Equal(t, 8.0, res["roi_percentage"])
}

func TestFinancialCalculator_CapRate(t *testing.T) {
	reg := NewRegistry()
	res := reg.Run(KindFinance, Input{Message: "cap rate for $50,000 income on a $600,000 property"})
	require.False(t, res.IsError())
	assert.Equal(t, "cap_rate", res["calculation_type"])
	assert.Equal(t, 8.33, res["cap_rate_percentage"])
}

func TestFinancialCalculator_NoKeyword(t *testing.T) {
	reg := NewRegistry()
	res := reg.Run(KindFinance, Input{Message: "crunch $100,000 and $8,000 for me"})
	require.True(t, res.IsError())
	assert.Equal(t, errNoFinanceKeyword, res.Err())
}

func TestFinancialCalculator_TooFewNumbers(t *testing.T) {
	reg := NewRegistry()
	res := reg.Run(KindFinance, Input{Message: "what's a good roi on $100,000?"})
	require.True(t, res.IsError())
	assert.Equal(t, errFinanceNumbers, res.Err())
}

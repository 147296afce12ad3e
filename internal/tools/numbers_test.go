package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNumbers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []float64
	}{
		{
			name: "comma grouped dollar amounts",
			text: "$450,000 with $90,000 down",
			want: []float64{450000, 90000},
		},
		{
			name: "embedded decimal",
			text: "a rate of 7.2 percent",
			want: []float64{7.2},
		},
		{
			name: "mixed grouping and decimals in reading order",
			text: "price 1,250,000.50 down 250,000 at 6.5%",
			want: []float64{1250000.50, 250000, 6.5},
		},
		{
			name: "plain integers",
			text: "3 bedrooms and 2 bathrooms",
			want: []float64{3, 2},
		},
		{
			name: "no numbers",
			text: "tell me about the neighborhood",
			want: []float64{},
		},
		{
			name: "empty input",
			text: "",
			want: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractNumbers(tt.text))
		})
	}
}

package tools

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches decimal numbers, including comma-grouped digits
// ("450,000") and embedded decimals ("7.2").
var numberPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`)

// ExtractNumbers pulls decimal numbers out of free-form text in reading
// order. Comma grouping is collapsed before parsing. Returns an empty slice
// when the text contains no number.
func ExtractNumbers(text string) []float64 {
	matches := numberPattern.FindAllString(text, -1)
	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	return nums
}

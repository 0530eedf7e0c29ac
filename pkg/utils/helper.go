package utils

import (
	"math"
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return result
}

// Round2 rounds to 2 decimal places, half away from zero.
// Averages are reported this way throughout: [1,2] -> 1.5, [1,1,2] -> 1.33.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

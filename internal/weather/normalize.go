package weather

import (
	"strconv"
	"strings"
)

// noDataToken is what the upstream feeds publish in place of a missing temperature.
const noDataToken = "--"

// NormalizeTemperature trims a temperature string. Nil, empty and the no-data token all
// normalize to nil.
func NormalizeTemperature(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" || s == noDataToken {
		return nil
	}
	return &s
}

// CelsiusToFahrenheit converts a Celsius string and renders it with one decimal.
// Nil or non-numeric input yields nil.
func CelsiusToFahrenheit(celsius *string) *string {
	if celsius == nil {
		return nil
	}
	c, err := strconv.ParseFloat(strings.TrimSpace(*celsius), 64)
	if err != nil {
		return nil
	}
	f := strconv.FormatFloat(c*9/5+32, 'f', 1, 64)
	return &f
}

// temperatureAt normalizes the i-th element of temps, treating out of range as no data.
func temperatureAt(temps []string, i int) *string {
	if i < 0 || i >= len(temps) {
		return nil
	}
	return NormalizeTemperature(&temps[i])
}

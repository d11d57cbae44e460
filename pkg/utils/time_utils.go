package utils

import "strings"

// DateOnly strips a time component from an ISO timestamp, keeping YYYY-MM-DD.
func DateOnly(value string) string {
	if i := strings.IndexByte(value, 'T'); i >= 0 {
		return value[:i]
	}
	return value
}

// YearMonth builds the zero-padded "YYYY-MM" prefix used to match entry dates.
func YearMonth(year, month string) string {
	if len(month) == 1 {
		month = "0" + month
	}
	return year + "-" + month
}

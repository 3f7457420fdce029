package utils

import (
	"fmt"
	"strconv"
	"time"
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

	if result < 1 {
		return defaultValue
	}

	return result
}

// FormatBookingNo renders a service-prefixed sequential booking number,
// e.g. ODC-000042.
func FormatBookingNo(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%06d", prefix, seq)
}

// ParseDate parses a YYYY-MM-DD date in the given location.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, loc)
}

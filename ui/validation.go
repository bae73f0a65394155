package ui

import (
	"math"
	"strconv"
	"strings"

	"widgetkit/internal/apperr"
)

// parseFloatInRange parses a string as a number and validates it's within the given range.
// Returns an InvalidInput error if parsing fails or the value is out of range.
func parseFloatInRange(s string, min, max float32, fieldName string) (float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apperr.Invalid(fieldName, "cannot be empty")
	}

	val, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, apperr.Invalid(fieldName, "%q is not a number", s)
	}

	f := float32(val)
	if f < min || f > max {
		return 0, apperr.Invalid(fieldName, "must be between %g and %g", min, max)
	}

	return f, nil
}

// validateFilename accepts any non-blank name without path separators.
func validateFilename(s string) error {
	name := strings.TrimSpace(s)
	if name == "" {
		return apperr.Invalid("file name", "cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return apperr.Invalid("file name", "%q must not contain a path separator", name)
	}
	return nil
}

func formatSize(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

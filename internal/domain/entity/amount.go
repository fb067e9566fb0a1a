package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
)

// ParseAmount converts a wire-format amount string to a float64.
// Negative values are accepted. This layer only guards against empty or
// non-numeric input, not against business-level sign rules.
func ParseAmount(amount string) (float64, error) {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return 0, errs.ErrInvalidAmount
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}

	return value, nil
}

package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	RupeeSymbol = "₹"

	// MinorUnitsPerRupee converts between rupees and paise. The gateway and
	// the payments collection always carry amounts in paise.
	MinorUnitsPerRupee = 100
)

// ParseAmountToMinorUnits converts a display amount such as "₹1,234.50" into
// minor currency units (123450 paise). Plain numeric strings are accepted too.
func ParseAmountToMinorUnits(amount string) (int64, error) {
	cleaned := strings.TrimSpace(amount)
	cleaned = strings.ReplaceAll(cleaned, RupeeSymbol, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	return int64(math.Round(value * MinorUnitsPerRupee)), nil
}

// FormatMinorUnits renders paise as a display string, e.g. 123450 → "₹1234.50".
func FormatMinorUnits(amountInPaise int64) string {
	return fmt.Sprintf("%s%.2f", RupeeSymbol, float64(amountInPaise)/MinorUnitsPerRupee)
}

// MinorToMajorUnits converts paise to rupees for booking records.
func MinorToMajorUnits(amountInPaise int64) float64 {
	return float64(amountInPaise) / MinorUnitsPerRupee
}

// FormatRupees renders a major-unit amount with the rupee glyph and no
// decimal places, the way catalog prices are displayed.
func FormatRupees(amount float64) string {
	if amount == math.Trunc(amount) {
		return fmt.Sprintf("%s%.0f", RupeeSymbol, amount)
	}
	return fmt.Sprintf("%s%.2f", RupeeSymbol, amount)
}

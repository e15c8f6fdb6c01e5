package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmountToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "display amount with symbol and separators", input: "₹1,234.50", expected: 123450},
		{name: "plain integer", input: "500", expected: 50000},
		{name: "plain decimal", input: "99.99", expected: 9999},
		{name: "symbol without separators", input: "₹4500", expected: 450000},
		{name: "surrounding whitespace", input: "  ₹2,000  ", expected: 200000},
		{name: "rounding half up", input: "0.005", expected: 1},
		{name: "empty string", input: "", wantErr: true},
		{name: "not a number", input: "₹abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmountToMinorUnits(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "₹1234.50", FormatMinorUnits(123450))
	assert.Equal(t, "₹0.01", FormatMinorUnits(1))
	assert.Equal(t, "₹4500.00", FormatMinorUnits(450000))
}

func TestMinorToMajorUnits(t *testing.T) {
	assert.Equal(t, 1234.5, MinorToMajorUnits(123450))
	assert.Equal(t, 0.0, MinorToMajorUnits(0))
}

func TestFormatRupees(t *testing.T) {
	assert.Equal(t, "₹4500", FormatRupees(4500))
	assert.Equal(t, "₹11", FormatRupees(11))
	assert.Equal(t, "₹10.50", FormatRupees(10.5))
}

func TestAmountRoundTrip(t *testing.T) {
	paise, err := ParseAmountToMinorUnits("₹1,234.50")
	assert.NoError(t, err)
	assert.Equal(t, int64(123450), paise)
	assert.Equal(t, "₹1234.50", FormatMinorUnits(paise))
}

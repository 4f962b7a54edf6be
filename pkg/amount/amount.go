package amount

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a literal does not match <float>[t|m|b]
var ErrInvalidAmount = errors.New("invalid amount")

// Magnitude suffixes: t = thousand, m = million, b = billion
const (
	Thousand = 1e3
	Million  = 1e6
	Billion  = 1e9
)

// Parse converts a string matching <float>[t|m|b] to a float64.
// 123.4m becomes 123400000 and -1.3t becomes -1300. Suffixes are case-insensitive.
func Parse(s string) (float64, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}

	shift := int32(0)
	switch text[len(text)-1] {
	case 't', 'T':
		shift = 3
	case 'm', 'M':
		shift = 6
	case 'b', 'B':
		shift = 9
	}
	if shift > 0 {
		text = text[:len(text)-1]
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}

	return d.Shift(shift).InexactFloat64(), nil
}

// Format renders a value with a magnitude suffix and 3 decimals: 1234567 -> "1.235m".
// Values below one thousand carry no suffix.
func Format(f float64) string {
	abs := math.Abs(f)
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return fmt.Sprintf("%v", f)
	case abs < Thousand:
		return fmt.Sprintf("%.3f", f)
	case abs < Million:
		return fmt.Sprintf("%.3ft", f/Thousand)
	case abs < Billion:
		return fmt.Sprintf("%.3fm", f/Million)
	default:
		return fmt.Sprintf("%.3fb", f/Billion)
	}
}

package checksum

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

const (
	// CheckWidth is the number of trailing characters holding the check digits
	CheckWidth = 2
	// MinCompositeLen is the shortest composite number: one base digit plus the check digits
	MinCompositeLen = CheckWidth + 1
)

// CheckDigits is a check value in [0,99] always rendered with two digits.
// For Verhoeff the tens place is the first check digit and the units place the second.
type CheckDigits int

// String renders the check digits zero-padded to CheckWidth
func (c CheckDigits) String() string {
	return fmt.Sprintf("%02d", int(c))
}

// decimal renders a non-negative number as decimal text
func decimal(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative number %d", ErrInvalidInput, n)
	}
	return strconv.FormatInt(n, 10), nil
}

// isDigits reports whether s is non-empty and ASCII digits only
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseSegment parses a digit-only segment into int64
func parseSegment(s string) (int64, error) {
	if !isDigits(s) {
		return 0, fmt.Errorf("%w: %q is not a digit sequence", ErrInvalidInput, s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return n, nil
}

// splitComposite separates a composite number into its base and the trailing check value
func splitComposite(composite string) (int64, CheckDigits, error) {
	if !isDigits(composite) {
		return 0, 0, fmt.Errorf("%w: %q is not a digit sequence", ErrInvalidInput, composite)
	}
	if len(composite) < MinCompositeLen {
		return 0, 0, fmt.Errorf("%w: %q has %d digits, need at least %d",
			ErrTooShort, composite, len(composite), MinCompositeLen)
	}

	cut := len(composite) - CheckWidth
	base, err := parseSegment(composite[:cut])
	if err != nil {
		return 0, 0, err
	}
	check, err := strconv.Atoi(composite[cut:])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return base, CheckDigits(check), nil
}

// ParseNumber parses decimal text into a non-negative int64
func ParseNumber(s string) (int64, error) {
	return parseSegment(s)
}

// Compose appends the check digits to base and returns the composite as an integer
func Compose(base int64, check CheckDigits) (int64, error) {
	if base < 0 {
		return 0, fmt.Errorf("%w: negative base %d", ErrInvalidInput, base)
	}
	if check < 0 || check > 99 {
		return 0, fmt.Errorf("%w: check value %d out of range", ErrInvalidInput, int(check))
	}
	if base > (math.MaxInt64-int64(check))/100 {
		return 0, fmt.Errorf("%w: %d%s", ErrOverflow, base, check)
	}
	return base*100 + int64(check), nil
}

// ComposeString appends the check digits to the decimal text of base
func ComposeString(base int64, check CheckDigits) (string, error) {
	text, err := decimal(base)
	if err != nil {
		return "", err
	}
	if check < 0 || check > 99 {
		return "", fmt.Errorf("%w: check value %d out of range", ErrInvalidInput, int(check))
	}
	return text + check.String(), nil
}

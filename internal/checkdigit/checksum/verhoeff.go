package checksum

import "fmt"

// d is the multiplication table of the dihedral group D5
var d = [10][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
	{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
	{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
	{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
	{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
	{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
	{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
	{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

// p is the position permutation table, indexed by position mod 8
var p = [8][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
	{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
	{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
	{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
	{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
	{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
	{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
}

var inv = [10]int{0, 4, 3, 2, 1, 5, 6, 7, 8, 9}

// verhoeffDigit returns the Verhoeff check digit of a digit-only string.
// Position i counts from the least significant digit and selects p[(i+1)%8].
func verhoeffDigit(number string) int {
	c := 0
	for i := 0; i < len(number); i++ {
		digit := int(number[len(number)-1-i] - '0')
		c = d[c][p[(i+1)%8][digit]]
	}
	return inv[c]
}

// VerhoeffCheckDigits computes the two Verhoeff check digits of base.
// The second digit is the check digit of base with the first digit appended.
func VerhoeffCheckDigits(base int64) (int, int, error) {
	number, err := decimal(base)
	if err != nil {
		return 0, 0, err
	}
	if !isDigits(number) {
		return 0, 0, fmt.Errorf("%w: %q must contain only digits", ErrInvalidInput, number)
	}

	first := verhoeffDigit(number)
	second := verhoeffDigit(number + string(rune('0'+first)))
	return first, second, nil
}

// ValidateVerhoeff checks a composite number whose last two digits are the Verhoeff check digits
func ValidateVerhoeff(composite int64) (bool, error) {
	text, err := decimal(composite)
	if err != nil {
		return false, err
	}
	return ValidateVerhoeffString(text)
}

// ValidateVerhoeffString is ValidateVerhoeff for decimal text.
// The trailing pair is compared as an integer, so "05" matches digits (0, 5).
func ValidateVerhoeffString(composite string) (bool, error) {
	base, check, err := splitComposite(composite)
	if err != nil {
		return false, err
	}
	first, second, err := VerhoeffCheckDigits(base)
	if err != nil {
		return false, err
	}
	return CheckDigits(first*10+second) == check, nil
}

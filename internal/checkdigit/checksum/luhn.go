package checksum

const luhnModulus = 100

// LuhnCheckValue computes the two-digit Luhn check value of base.
// This is the mod-100 variant: digits are doubled starting with the least
// significant one and the sum is complemented modulo 100.
func LuhnCheckValue(base int64) (int, error) {
	number, err := decimal(base)
	if err != nil {
		return 0, err
	}
	return luhnSum(number), nil
}

func luhnSum(number string) int {
	sum := 0
	for i := 0; i < len(number); i++ {
		digit := int(number[len(number)-1-i] - '0')
		if i%2 != 1 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}
	return (luhnModulus - sum%luhnModulus) % luhnModulus
}

// ValidateLuhn checks a composite number whose last two digits are the Luhn check value
func ValidateLuhn(composite int64) (bool, error) {
	text, err := decimal(composite)
	if err != nil {
		return false, err
	}
	return ValidateLuhnString(text)
}

// ValidateLuhnString is ValidateLuhn for decimal text
func ValidateLuhnString(composite string) (bool, error) {
	base, check, err := splitComposite(composite)
	if err != nil {
		return false, err
	}
	value, err := LuhnCheckValue(base)
	if err != nil {
		return false, err
	}
	return CheckDigits(value) == check, nil
}

package checksum

import (
	"fmt"
	"strings"
)

// Algorithm names accepted by Lookup. NameAll is accepted by Select only.
const (
	NameLuhn     = "luhn"
	NameVerhoeff = "verhoeff"
	NameAll      = "all"
)

// Algorithm computes and validates check digits of one scheme
type Algorithm interface {
	Name() string
	Compute(base int64) (CheckDigits, error)
	Validate(composite string) (bool, error)
}

// Luhn is the mod-100 Luhn scheme
type Luhn struct{}

// Name returns NameLuhn
func (Luhn) Name() string { return NameLuhn }

// Compute returns the Luhn check value of base
func (Luhn) Compute(base int64) (CheckDigits, error) {
	value, err := LuhnCheckValue(base)
	if err != nil {
		return 0, err
	}
	return CheckDigits(value), nil
}

// Validate checks a composite number with ValidateLuhnString
func (Luhn) Validate(composite string) (bool, error) {
	return ValidateLuhnString(composite)
}

// Verhoeff is the two-pass Verhoeff scheme
type Verhoeff struct{}

// Name returns NameVerhoeff
func (Verhoeff) Name() string { return NameVerhoeff }

// Compute returns both Verhoeff check digits of base, first digit in the tens place
func (Verhoeff) Compute(base int64) (CheckDigits, error) {
	first, second, err := VerhoeffCheckDigits(base)
	if err != nil {
		return 0, err
	}
	return CheckDigits(first*10 + second), nil
}

// Validate checks a composite number with ValidateVerhoeffString
func (Verhoeff) Validate(composite string) (bool, error) {
	return ValidateVerhoeffString(composite)
}

// Algorithms returns every supported algorithm in a stable order
func Algorithms() []Algorithm {
	return []Algorithm{Luhn{}, Verhoeff{}}
}

// Lookup returns the algorithm registered under name, case-insensitively
func Lookup(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameLuhn:
		return Luhn{}, nil
	case NameVerhoeff:
		return Verhoeff{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Select expands an algorithm selection into algorithm names.
// NameAll selects every algorithm in the order of Algorithms.
func Select(selection string) ([]string, error) {
	if strings.ToLower(strings.TrimSpace(selection)) == NameAll {
		names := make([]string, 0, 2)
		for _, alg := range Algorithms() {
			names = append(names, alg.Name())
		}
		return names, nil
	}
	alg, err := Lookup(selection)
	if err != nil {
		return nil, err
	}
	return []string{alg.Name()}, nil
}

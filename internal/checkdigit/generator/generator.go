package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	// DefaultDigits is the length of a generated base number unless configured otherwise
	DefaultDigits = 8
	// MaxDigits keeps a base plus two check digits inside int64
	MaxDigits = 16
)

// ErrInvalidDigits is returned for digit counts outside [1, MaxDigits]
var ErrInvalidDigits = errors.New("invalid digit count")

// Generator produces random base numbers with a fixed number of digits
type Generator struct {
	digits int
	random io.Reader
}

// Option configures a Generator
type Option func(*Generator)

// WithRandom replaces the crypto/rand source
func WithRandom(r io.Reader) Option {
	return func(g *Generator) {
		g.random = r
	}
}

// NewGenerator creates a generator of base numbers with the given digit count
func NewGenerator(digits int, opts ...Option) (*Generator, error) {
	if digits < 1 || digits > MaxDigits {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidDigits, digits, MaxDigits)
	}

	g := &Generator{
		digits: digits,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Next returns a number uniformly drawn from [10^(n-1), 10^n - 1].
// For n = 1 the range is [0, 9].
func (g *Generator) Next() (int64, error) {
	low, high := Bounds(g.digits)

	n, err := rand.Int(g.random, big.NewInt(high-low+1))
	if err != nil {
		return 0, fmt.Errorf("failed to generate base number: %w", err)
	}
	return low + n.Int64(), nil
}

// Bounds returns the smallest and largest number with the given digit count
func Bounds(digits int) (int64, int64) {
	high := int64(1)
	for i := 0; i < digits; i++ {
		high *= 10
	}
	if digits == 1 {
		return 0, 9
	}
	return high / 10, high - 1
}

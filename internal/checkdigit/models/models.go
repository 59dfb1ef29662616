package models

import "github.com/25x8/checkdigit/internal/checkdigit/checksum"

// Algorithm selection values accepted from configuration
const (
	AlgorithmLuhn     = checksum.NameLuhn
	AlgorithmVerhoeff = checksum.NameVerhoeff
	AlgorithmAll      = checksum.NameAll
)

// Issued represents a base number with its check digits appended
type Issued struct {
	Algorithm   string
	Base        int64
	CheckDigits string
	Composite   string
	Verified    bool
}

// Verification represents the result of checking a composite number
type Verification struct {
	Algorithm string
	Composite string
	Valid     bool
}

package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/25x8/checkdigit/internal/checkdigit/checksum"
	"github.com/25x8/checkdigit/internal/checkdigit/models"
)

// ErrNoSource is returned by the random issue methods when the issuer has no base source
var ErrNoSource = errors.New("no base number source configured")

// BaseSource supplies base numbers for random issues
type BaseSource interface {
	Next() (int64, error)
}

// Issuer appends check digits to base numbers and verifies composite numbers
type Issuer struct {
	source BaseSource
	logger zerolog.Logger
}

// NewIssuer creates a new issuer
func NewIssuer(source BaseSource, logger zerolog.Logger) *Issuer {
	return &Issuer{
		source: source,
		logger: logger,
	}
}

// Issue computes the check digits of base with the named algorithm
// and checks that the resulting composite validates.
func (s *Issuer) Issue(algorithm string, base int64) (models.Issued, error) {
	alg, err := checksum.Lookup(algorithm)
	if err != nil {
		return models.Issued{}, err
	}
	log := s.logger.With().Str("algorithm", alg.Name()).Logger()
	log.Info().Int64("base", base).Msg("Base number")

	check, err := alg.Compute(base)
	if err != nil {
		log.Error().Err(err).Int64("base", base).Msg("Failed to compute check digits")
		return models.Issued{}, fmt.Errorf("compute %s check digits: %w", alg.Name(), err)
	}

	composite, err := checksum.ComposeString(base, check)
	if err != nil {
		return models.Issued{}, fmt.Errorf("compose %s number: %w", alg.Name(), err)
	}
	log.Info().Str("composite", composite).Str("check_digits", check.String()).Msg("Composite number")

	ok, err := alg.Validate(composite)
	if err != nil {
		log.Error().Err(err).Str("composite", composite).Msg("Failed to verify composite number")
		return models.Issued{}, fmt.Errorf("verify %s number: %w", alg.Name(), err)
	}
	log.Info().Str("composite", composite).Bool("valid", ok).Msg("Verification result")

	return models.Issued{
		Algorithm:   alg.Name(),
		Base:        base,
		CheckDigits: check.String(),
		Composite:   composite,
		Verified:    ok,
	}, nil
}

// IssueRandom issues a composite number for a base drawn from the source
func (s *Issuer) IssueRandom(algorithm string) (models.Issued, error) {
	base, err := s.nextBase()
	if err != nil {
		return models.Issued{}, err
	}
	return s.Issue(algorithm, base)
}

// IssueAll issues base with every algorithm in the selection,
// see checksum.Select for accepted values.
func (s *Issuer) IssueAll(selection string, base int64) ([]models.Issued, error) {
	names, err := checksum.Select(selection)
	if err != nil {
		return nil, err
	}

	issued := make([]models.Issued, 0, len(names))
	for _, name := range names {
		item, err := s.Issue(name, base)
		if err != nil {
			return nil, err
		}
		issued = append(issued, item)
	}
	return issued, nil
}

// IssueAllRandom draws one base from the source and issues it with every selected algorithm
func (s *Issuer) IssueAllRandom(selection string) ([]models.Issued, error) {
	// reject the selection before drawing from the source
	if _, err := checksum.Select(selection); err != nil {
		return nil, err
	}
	base, err := s.nextBase()
	if err != nil {
		return nil, err
	}
	return s.IssueAll(selection, base)
}

func (s *Issuer) nextBase() (int64, error) {
	if s.source == nil {
		return 0, ErrNoSource
	}
	base, err := s.source.Next()
	if err != nil {
		s.logger.Error().Err(err).Msg("Unable to draw base number")
		return 0, err
	}
	return base, nil
}

// Verify checks a composite number with the named algorithm.
// A mismatch is reported through Valid, not as an error.
func (s *Issuer) Verify(algorithm, composite string) (models.Verification, error) {
	alg, err := checksum.Lookup(algorithm)
	if err != nil {
		return models.Verification{}, err
	}

	ok, err := alg.Validate(composite)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("algorithm", alg.Name()).
			Str("composite", composite).
			Msg("Malformed composite number")
		return models.Verification{}, fmt.Errorf("verify %s number: %w", alg.Name(), err)
	}
	s.logger.Info().
		Str("algorithm", alg.Name()).
		Str("composite", composite).
		Bool("valid", ok).
		Msg("Verification result")

	return models.Verification{
		Algorithm: alg.Name(),
		Composite: composite,
		Valid:     ok,
	}, nil
}

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/25x8/checkdigit/internal/checkdigit/config"
	"github.com/25x8/checkdigit/internal/checkdigit/generator"
	"github.com/25x8/checkdigit/internal/checkdigit/models"
	"github.com/25x8/checkdigit/internal/checkdigit/service"
)

// Exit codes
const (
	exitValid     = 0
	exitMismatch  = 1
	exitMalformed = 2
)

func main() {
	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		log.Fatalf("Logging error: %v", err)
	}

	gen, err := generator.NewGenerator(cfg.BaseDigits)
	if err != nil {
		log.Fatalf("Generator error: %v", err)
	}
	issuer := service.NewIssuer(gen, logger)

	if cfg.Verify != "" {
		os.Exit(verify(issuer, cfg, os.Stdout))
	}
	os.Exit(issue(issuer, cfg, os.Stdout))
}

func verify(issuer *service.Issuer, cfg *config.Config, out io.Writer) int {
	result, err := issuer.Verify(cfg.Algorithm, cfg.Verify)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitMalformed
	}

	fmt.Fprintf(out, "%s %s valid=%t\n", result.Algorithm, result.Composite, result.Valid)
	if !result.Valid {
		return exitMismatch
	}
	return exitValid
}

func issue(issuer *service.Issuer, cfg *config.Config, out io.Writer) int {
	var issued []models.Issued
	var err error
	if cfg.HasBase() {
		var base int64
		base, err = cfg.Base()
		if err == nil {
			issued, err = issuer.IssueAll(cfg.Algorithm, base)
		}
	} else {
		issued, err = issuer.IssueAllRandom(cfg.Algorithm)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitMalformed
	}

	code := exitValid
	for _, item := range issued {
		fmt.Fprintf(out, "%s %s valid=%t\n", item.Algorithm, item.Composite, item.Verified)
		if !item.Verified {
			code = exitMismatch
		}
	}
	return code
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/25x8/checkdigit/internal/checkdigit/checksum"
	"github.com/25x8/checkdigit/internal/checkdigit/generator"
)

var envKeys = []string{"ALGORITHM", "BASE_NUMBER", "BASE_DIGITS", "VERIFY", "LOG_LEVEL", "LOG_OUTPUT"}

// clearEnv unsets every variable the config reads and restores them after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, checksum.NameAll, cfg.Algorithm)
	assert.Equal(t, generator.DefaultDigits, cfg.BaseDigits)
	assert.Equal(t, LogOutputConsole, cfg.LogOutput)
	assert.False(t, cfg.HasBase())
	assert.Empty(t, cfg.Verify)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)
}

func TestParseFlags(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse([]string{"-a", "Verhoeff", "-b", "236", "-n", "5", "-l", "debug", "-o", "json"})
	require.NoError(t, err)

	assert.Equal(t, checksum.NameVerhoeff, cfg.Algorithm)
	assert.Equal(t, 5, cfg.BaseDigits)
	assert.Equal(t, LogOutputJSON, cfg.LogOutput)
	require.True(t, cfg.HasBase())

	base, err := cfg.Base()
	require.NoError(t, err)
	assert.Equal(t, int64(236), base)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)
}

func TestParseEnvOverridesFlags(t *testing.T) {
	clearEnv(t)
	setEnv(t, map[string]string{
		"ALGORITHM":   "verhoeff",
		"BASE_DIGITS": "10",
		"VERIFY":      "23634",
		"LOG_LEVEL":   "warn",
	})

	cfg, err := Parse([]string{"-a", "luhn", "-n", "5", "-l", "debug"})
	require.NoError(t, err)

	assert.Equal(t, checksum.NameVerhoeff, cfg.Algorithm)
	assert.Equal(t, 10, cfg.BaseDigits)
	assert.Equal(t, "23634", cfg.Verify)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		wantErr error
	}{
		{name: "unknown algorithm", args: []string{"-a", "damm"}, wantErr: checksum.ErrUnknownAlgorithm},
		{name: "too many digits", args: []string{"-n", "17"}, wantErr: generator.ErrInvalidDigits},
		{name: "no digits", args: []string{"-n", "0"}, wantErr: generator.ErrInvalidDigits},
		{name: "negative base", args: []string{"-b", "-5"}, wantErr: checksum.ErrInvalidInput},
		{name: "base overflow", args: []string{"-b", "99999999999999999999"}, wantErr: checksum.ErrOverflow},
		{name: "verify without algorithm", args: []string{"-v", "23634"}, wantErr: ErrVerifyNeedsAlgorithm},
		{name: "bad log level", args: []string{"-l", "loud"}, wantErr: ErrInvalidLogLevel},
		{name: "empty log level", args: []string{"-l", ""}, wantErr: ErrInvalidLogLevel},
		{name: "bad log output", args: []string{"-o", "xml"}, wantErr: ErrInvalidLogOutput},
		{name: "bad digits env", env: map[string]string{"BASE_DIGITS": "eight"}},
		{name: "unknown flag", args: []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			setEnv(t, tt.env)

			_, err := Parse(tt.args)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := "ALGORITHM=verhoeff\nBASE_NUMBER=236\nLOG_OUTPUT=json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	chdir(t, dir)

	cfg, err := Load([]string{"-a", "luhn"})
	require.NoError(t, err)

	assert.Equal(t, checksum.NameVerhoeff, cfg.Algorithm)
	assert.Equal(t, "236", cfg.BaseNumber)
	assert.Equal(t, LogOutputJSON, cfg.LogOutput)
}

func TestLoadKeepsEnvironmentOverDotEnv(t *testing.T) {
	clearEnv(t)
	setEnv(t, map[string]string{"ALGORITHM": "luhn"})
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ALGORITHM=verhoeff\n"), 0o600))
	chdir(t, dir)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, checksum.NameLuhn, cfg.Algorithm)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load([]string{"-a", "verhoeff"})
	require.NoError(t, err)
	assert.Equal(t, checksum.NameVerhoeff, cfg.Algorithm)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Glqzer/vigenere/pkg/analysis"
	"github.com/Glqzer/vigenere/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vigenere.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts := cfg.AttackOptions()
	assert.Equal(t, analysis.English, opts.Language)
	assert.Equal(t, analysis.DefaultRange, opts.Range)
	assert.Equal(t, analysis.DefaultTop, opts.Top)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
language: portuguese
scorer: chi-squared
key_length:
  max: 16
log:
  level: debug
  json: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "portuguese", cfg.Language)
	assert.Equal(t, "chi-squared", cfg.Scorer)
	assert.Equal(t, 1, cfg.KeyLength.Min, "unset fields keep their default")
	assert.Equal(t, 16, cfg.KeyLength.Max)
	assert.Equal(t, 5, cfg.Top)

	lc, err := cfg.LoggingConfig()
	require.NoError(t, err)
	assert.Equal(t, logging.LevelDebug, lc.Level)
	assert.True(t, lc.JSON)

	_, err = analysis.NewAttacker(cfg.AttackOptions())
	assert.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown language", "language: french\n"},
		{"unknown scorer", "scorer: bigram\n"},
		{"min below one", "key_length:\n  min: 0\n"},
		{"max below min", "key_length:\n  min: 8\n  max: 4\n"},
		{"top zero", "top: 0\n"},
		{"negative workers", "workers: -1\n"},
		{"max above the limit", "key_length:\n  max: 1000\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"malformed", "language: [english\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_LogLevelSpelling(t *testing.T) {
	for _, level := range []string{"DEBUG", "Warning", " error ", `""`} {
		t.Run(level, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, "log:\n  level: "+level+"\n"))
			require.NoError(t, err)

			_, err = cfg.LoggingConfig()
			assert.NoError(t, err)
		})
	}
}

func TestLoad_KeyLengthLimit(t *testing.T) {
	cfg, err := Load(writeConfig(t, "key_length:\n  max: 100\n"))
	require.NoError(t, err)
	assert.Equal(t, analysis.MaxKeyLength, cfg.KeyLength.Max)

	_, err = analysis.NewAttacker(cfg.AttackOptions())
	assert.NoError(t, err)
}

func TestLoggingConfig_Quiet(t *testing.T) {
	cfg, err := Load(writeConfig(t, "log:\n  quiet: true\n"))
	require.NoError(t, err)

	lc, err := cfg.LoggingConfig()
	require.NoError(t, err)
	assert.True(t, lc.Quiet)
	assert.Equal(t, "vigenere", lc.Service)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

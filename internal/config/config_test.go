package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/score"
)

// clearEnv isolates a test from the caller's environment and any .env file.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, k := range []string{"LOG_LEVEL", "WORDS_FILE", "DAILY_SALT", "WORDLE_COLOR", "WORDLE_MAX_GUESSES", "WORDLE_CONFIG"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, zerolog.InfoLevel, c.Level())
	assert.Equal(t, score.ColorAuto, c.ColorMode())
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WORDLE_COLOR", "never")
	t.Setenv("WORDLE_MAX_GUESSES", "6")
	t.Setenv("DAILY_SALT", "pepper")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, c.Level())
	assert.Equal(t, score.ColorNever, c.ColorMode())
	assert.Equal(t, 6, c.MaxGuesses)
	assert.Equal(t, "pepper", c.DailySalt)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a variable that is set, even to "".
	require.NoError(t, os.Unsetenv("WORDS_FILE"))
	require.NoError(t, os.WriteFile(".env", []byte("WORDS_FILE=/tmp/list.txt\n"), 0o644))

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/list.txt", c.WordsFile)
}

func TestLoad_FileOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("WORDLE_MAX_GUESSES", "3")

	p := filepath.Join(t.TempDir(), "wordle.yaml")
	require.NoError(t, os.WriteFile(p, []byte("log_level: error\ncolor: always\n"), 0o644))

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, c.Level())
	assert.Equal(t, score.ColorAlways, c.ColorMode())
	assert.Equal(t, 3, c.MaxGuesses)
}

func TestLoad_ConfigFromEnvPath(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "wordle.yaml")
	require.NoError(t, os.WriteFile(p, []byte("max_guesses: 4\n"), 0o644))
	t.Setenv("WORDLE_CONFIG", p)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, c.MaxGuesses)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDLE_MAX_GUESSES", "lots")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalid)

	clearEnv(t)
	p := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("max_guesses: [1"), 0o644))
	_, err = Load(p)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_LeavesValidationToCaller(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDLE_COLOR", "rainbow")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "rainbow", c.Color)
	assert.ErrorIs(t, c.Validate(), ErrInvalid)

	c.Color = "never"
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	c := Default()
	c.MaxGuesses = -1
	assert.ErrorIs(t, c.Validate(), ErrInvalid)

	c = Default()
	c.LogLevel = "loud"
	assert.ErrorIs(t, c.Validate(), ErrInvalid)
}

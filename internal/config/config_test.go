package config

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "MATCHES_FILE", "PREVIOUS_MATCHES_FILE", "MATCH_SOURCE", "HISTORY_SOURCE", "CACHE_SIZE",
		"DB_NAME", "TENANT_ID", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN",
		"SLACK_BOT_TOKEN", "SLACK_CHANNEL_ID", "SLACK_SIGNING_SECRET", "PLAYTOMIC_API_URL",
		"GITHUB_OWNER", "GITHUB_REPO", "GITHUB_PATH", "GITHUB_TOKEN", "GITHUB_API_URL", "GITHUB_RATE_PER_MINUTE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, MatchSourceFile, cfg.MatchSource)
	assert.Equal(t, HistorySourceCutoff, cfg.HistorySource)
	assert.Equal(t, "data/matches.json", cfg.MatchesFile)
	assert.Equal(t, 16, cfg.CacheSize)
	assert.Empty(t, cfg.GitHub.Owner)
}

func TestLoad_GitHubHistory(t *testing.T) {
	clearEnv(t)
	t.Setenv("HISTORY_SOURCE", "github")
	t.Setenv("GITHUB_OWNER", "club")
	t.Setenv("GITHUB_REPO", "padel")
	t.Setenv("GITHUB_RATE_PER_MINUTE", "10")
	t.Setenv("CACHE_SIZE", "0")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, HistorySourceGitHub, cfg.HistorySource)
	assert.Equal(t, "club", cfg.GitHub.Owner)
	assert.Equal(t, "padel", cfg.GitHub.Repo)
	assert.Equal(t, "data/matches.json", cfg.GitHub.Path)
	assert.Equal(t, 10, cfg.GitHub.RatePerMinute)
	assert.Equal(t, 0, cfg.CacheSize)
}

func TestLoad_FileHistory(t *testing.T) {
	clearEnv(t)
	t.Setenv("HISTORY_SOURCE", "file")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PREVIOUS_MATCHES_FILE")

	t.Setenv("PREVIOUS_MATCHES_FILE", "data/last-week.yaml")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, HistorySourceFile, cfg.HistorySource)
	assert.Equal(t, "data/last-week.yaml", cfg.PreviousFile)
}

func TestLoad_MissingGitHubSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv("MATCH_SOURCE", "github")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_OWNER")
	assert.Contains(t, err.Error(), "GITHUB_REPO")
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("MATCH_SOURCE", "ftp")
	t.Setenv("CACHE_SIZE", "lots")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown MATCH_SOURCE "ftp"`)
	assert.Contains(t, err.Error(), "CACHE_SIZE must be an integer")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, log.InfoLevel, ParseLogLevel("loud"))
}

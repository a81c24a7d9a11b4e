package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	var missing []error

	// getEnv returns a required env var and records it as missing when it is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		missing = append(missing, fmt.Errorf("required environment variable %s is not set", key))
		return ""
	}
	getEnvDefault := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return fallback
	}
	getEnvInt := func(key string, fallback int) int {
		value, ok := os.LookupEnv(key)
		if !ok || value == "" {
			return fallback
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			missing = append(missing, fmt.Errorf("environment variable %s must be an integer: %w", key, err))
			return fallback
		}
		return n
	}

	cfg := Config{
		Port:          getEnvDefault("PORT", "8080"),
		LogLevel:      getEnvDefault("LOG_LEVEL", "info"),
		MatchesFile:   getEnvDefault("MATCHES_FILE", "data/matches.json"),
		MatchSource:   MatchSourceKind(getEnvDefault("MATCH_SOURCE", string(MatchSourceFile))),
		HistorySource: HistorySourceKind(getEnvDefault("HISTORY_SOURCE", string(HistorySourceCutoff))),
		CacheSize:     getEnvInt("CACHE_SIZE", 16),
		DBName:        getEnvDefault("DB_NAME", "padwell.db"),
		TenantID:      getEnvDefault("TENANT_ID", ""),
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		Slack: SlackConfig{
			Token:         getEnvDefault("SLACK_BOT_TOKEN", ""),
			ChannelID:     getEnvDefault("SLACK_CHANNEL_ID", ""),
			SigningSecret: getEnvDefault("SLACK_SIGNING_SECRET", ""),
		},
		Playtomic: PlaytomicConfig{
			APIURL: getEnvDefault("PLAYTOMIC_API_URL", ""),
		},
	}

	switch cfg.MatchSource {
	case MatchSourceFile, MatchSourceDB:
	case MatchSourceGitHub:
		cfg.GitHub = loadGitHub(getEnv, getEnvDefault, getEnvInt)
	default:
		missing = append(missing, fmt.Errorf("unknown MATCH_SOURCE %q", cfg.MatchSource))
	}

	switch cfg.HistorySource {
	case HistorySourceCutoff, HistorySourceNone:
	case HistorySourceFile:
		cfg.PreviousFile = getEnv("PREVIOUS_MATCHES_FILE")
	case HistorySourceGitHub:
		if cfg.GitHub.Owner == "" {
			cfg.GitHub = loadGitHub(getEnv, getEnvDefault, getEnvInt)
		}
	default:
		missing = append(missing, fmt.Errorf("unknown HISTORY_SOURCE %q", cfg.HistorySource))
	}

	if err := errors.Join(missing...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadGitHub(getEnv func(string) string, getEnvDefault func(string, string) string, getEnvInt func(string, int) int) GitHubConfig {
	return GitHubConfig{
		Owner:         getEnv("GITHUB_OWNER"),
		Repo:          getEnv("GITHUB_REPO"),
		Path:          getEnvDefault("GITHUB_PATH", "data/matches.json"),
		Token:         getEnvDefault("GITHUB_TOKEN", ""),
		APIURL:        getEnvDefault("GITHUB_API_URL", ""),
		RatePerMinute: getEnvInt("GITHUB_RATE_PER_MINUTE", 30),
	}
}

// ParseLogLevel maps LOG_LEVEL to a logger level, defaulting to info.
func ParseLogLevel(level string) log.Level {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.Warn("Unknown log level, using info", "level", level)
		return log.InfoLevel
	}
	return parsed
}

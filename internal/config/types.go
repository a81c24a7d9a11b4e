package config

// MatchSourceKind selects where the current match log is read from.
type MatchSourceKind string

const (
	MatchSourceFile   MatchSourceKind = "file"
	MatchSourceDB     MatchSourceKind = "db"
	MatchSourceGitHub MatchSourceKind = "github"
)

// HistorySourceKind selects where the previous snapshot comes from.
type HistorySourceKind string

const (
	HistorySourceGitHub HistorySourceKind = "github"
	HistorySourceFile   HistorySourceKind = "file"
	HistorySourceCutoff HistorySourceKind = "cutoff"
	HistorySourceNone   HistorySourceKind = "none"
)

// Config holds all configuration for the application.
type Config struct {
	Port          string
	LogLevel      string
	MatchesFile   string
	PreviousFile  string
	MatchSource   MatchSourceKind
	HistorySource HistorySourceKind
	CacheSize     int
	DBName        string
	TenantID      string
	Turso         TursoConfig
	GitHub        GitHubConfig
	Slack         SlackConfig
	Playtomic     PlaytomicConfig
}
type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
type GitHubConfig struct {
	Owner         string
	Repo          string
	Path          string
	Token         string
	APIURL        string
	RatePerMinute int
}
type PlaytomicConfig struct {
	APIURL string
}

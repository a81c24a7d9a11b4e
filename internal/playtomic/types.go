package playtomic

import "time"

// DefaultBaseURL is the public Playtomic API.
const DefaultBaseURL = "https://api.playtomic.io"

// startDateLayout is the zone-less timestamp format of match start dates.
const startDateLayout = "2006-01-02T15:04:05"

// SearchMatchesParams narrows a match search to one sport, club and start date.
type SearchMatchesParams struct {
	SportID       string
	HasPlayers    bool
	Sort          string
	TenantIDs     []string
	FromStartDate string
}

// MatchSummary is one hit of a match search.
type MatchSummary struct {
	MatchID string
	OwnerID *string
}

// PadelMatch is the subset of a Playtomic match needed to score it.
type PadelMatch struct {
	MatchID       string
	Start         time.Time
	GameStatus    GameStatus
	ResultsStatus ResultsStatus
	Teams         []Team
	Results       []SetResult
	ResourceName  string
	Tenant        Tenant
}

type GameStatus string

const (
	GameStatusPending    GameStatus = "PENDING"
	GameStatusInProgress GameStatus = "IN_PROGRESS"
	GameStatusPlayed     GameStatus = "PLAYED"
	GameStatusCanceled   GameStatus = "CANCELED"
	GameStatusUnknown    GameStatus = "UNKNOWN"
)

var knownGameStatuses = map[GameStatus]bool{
	GameStatusPending:    true,
	GameStatusInProgress: true,
	GameStatusPlayed:     true,
	GameStatusCanceled:   true,
}

type ResultsStatus string

const (
	ResultsStatusPending    ResultsStatus = "PENDING"
	ResultsStatusValidating ResultsStatus = "VALIDATING"
	ResultsStatusConfirmed  ResultsStatus = "CONFIRMED"
)

type Team struct {
	ID      string
	Players []Player
}

type Player struct {
	UserID string
	Name   string
}

// SetResult holds the games each team won in one set, keyed by team ID.
type SetResult struct {
	Name   string
	Scores map[string]int
}

// Tenant is the club a match was booked at.
type Tenant struct {
	ID   string
	Name string
}

// matchResponse is the JSON body of GET /v1/matches/{id}.
type matchResponse struct {
	StartDate     string         `json:"start_date"`
	GameStatus    string         `json:"game_status"`
	ResultsStatus string         `json:"results_status"`
	ResourceName  string         `json:"resource_name"`
	Tenant        tenantResponse `json:"tenant"`
	Teams         []teamResponse `json:"teams"`
	Results       []setResponse  `json:"results"`
}

type tenantResponse struct {
	ID   string `json:"tenant_id"`
	Name string `json:"tenant_name"`
}

type teamResponse struct {
	TeamID  string `json:"team_id"`
	Players []struct {
		UserID string `json:"user_id"`
		Name   string `json:"name"`
	} `json:"players"`
}

type setResponse struct {
	Name   string `json:"name"`
	Scores []struct {
		TeamID string `json:"team_id"`
		Score  int    `json:"score"`
	} `json:"scores"`
}

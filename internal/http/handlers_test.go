package http

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mauv0809/padwell/internal/club"
	"github.com/mauv0809/padwell/internal/config"
	"github.com/mauv0809/padwell/internal/importer"
	"github.com/mauv0809/padwell/internal/metrics"
	"github.com/mauv0809/padwell/internal/padel"
	"github.com/mauv0809/padwell/internal/playtomic"
	internalslack "github.com/mauv0809/padwell/internal/slack"
	"github.com/mauv0809/padwell/internal/source"
	"github.com/mauv0809/padwell/internal/standings"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSlackSigningSecret = "test-signing-secret"

var (
	day1 = padel.NewDate(2025, time.May, 12)
	day2 = padel.NewDate(2025, time.May, 19)
)

func testMatches() []padel.Match {
	return []padel.Match{
		{ID: "m1", Date: day1, Players: [2][]string{{"J. Kowalski"}, {"Bob"}}, Score: [2]int{2, 0}},
		{ID: "m2", Date: day2, Players: [2][]string{{"Bob", "Cid"}, {"J. Kowalski", "Dan"}}, Score: [2]int{2, 1}},
	}
}

type testServerOptions struct {
	source        *source.Mock
	store         club.MatchStore
	importer      *importer.Importer
	slack         *internalslack.SlackClient
	signingSecret string
}

// setupTestServer initializes a new server with mock collaborators.
func setupTestServer(t *testing.T, opts testServerOptions) *Server {
	t.Helper()

	if opts.source == nil {
		opts.source = source.NewMock(testMatches(), testMatches()[:1])
	}
	cfg := config.Config{Slack: config.SlackConfig{SigningSecret: opts.signingSecret}}

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	svc := standings.NewService(opts.source, metricsSvc, standings.WithHistory(opts.source))

	return NewServer(svc, opts.store, opts.importer, opts.slack, metricsSvc, metricsHandler, cfg)
}

func failingSource() *source.Mock {
	src := source.NewMock(nil, nil)
	src.LoadCurrentMatchesFunc = func(ctx context.Context) ([]padel.Match, error) {
		return nil, errors.New("file vanished")
	}
	return src
}

func serve(t *testing.T, server *Server, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	return rr
}

// createSlackCommandRequest creates an http.Request suitable for testing Slack slash commands,
// including the necessary signature and timestamp headers for verification.
func createSlackCommandRequest(t *testing.T, targetURL string, form url.Values, signingSecret string) *http.Request {
	t.Helper()

	bodyBytes := []byte(form.Encode())
	req, err := http.NewRequest(http.MethodPost, targetURL, bytes.NewReader(bodyBytes))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := time.Now().Unix()
	req.Header.Set("X-Slack-Request-Timestamp", strconv.FormatInt(timestamp, 10))

	baseString := fmt.Sprintf("v0:%d:%s", timestamp, string(bodyBytes))
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	req.Header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(h.Sum(nil)))

	return req
}

func TestHealthCheckHandler(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	rr := serve(t, server, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
}

func TestMetricsEndpoint(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})
	serve(t, server, http.MethodGet, "/api/standings", nil)

	rr := serve(t, server, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "padwell_standings_computed_total 1")
}

func TestStandingsHandler(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	rr := serve(t, server, http.MethodGet, "/api/standings", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Players []struct {
			Name           string  `json:"name"`
			Points         float64 `json:"points"`
			Rank           int     `json:"rank"`
			Trend          string  `json:"trend"`
			PositionChange *int    `json:"positionChange"`
		} `json:"players"`
		Teams []struct {
			Team    string `json:"team"`
			WinRate int    `json:"winRate"`
		} `json:"teams"`
		Matches          []json.RawMessage `json:"matches"`
		HistoryAvailable bool              `json:"historyAvailable"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	require.Len(t, body.Players, 4)
	assert.Equal(t, "J. Kowalski", body.Players[0].Name)
	assert.Equal(t, 35.0, body.Players[0].Points)
	assert.Equal(t, "same", body.Players[0].Trend)
	assert.Equal(t, "Bob", body.Players[1].Name)
	assert.Equal(t, "same", body.Players[1].Trend)
	assert.Empty(t, body.Players[2].Trend, "Cid has no previous position")
	assert.Nil(t, body.Players[2].PositionChange)
	assert.True(t, body.HistoryAvailable)
	assert.Len(t, body.Matches, 2)
	assert.Contains(t, string(body.Matches[0]), `"score":{"1":2,"2":0}`)
	assert.NotEmpty(t, body.Teams)
}

func TestStandingsHandler_SourceUnavailable(t *testing.T) {
	server := setupTestServer(t, testServerOptions{source: failingSource()})

	for _, target := range []string{"/api/standings", "/api/standings/players", "/api/standings/teams", "/api/matches", "/api/results", "/api/players", "/api/players/bob"} {
		t.Run(target, func(t *testing.T) {
			rr := serve(t, server, http.MethodGet, target, nil)

			assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
			assert.JSONEq(t, `{"error":"match data is unavailable"}`, rr.Body.String())
		})
	}
}

func TestTeamStandingsHandler(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	rr := serve(t, server, http.MethodGet, "/api/standings/teams", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Teams []standings.TeamStanding `json:"teams"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Teams, 4)
	assert.Equal(t, "J. Kowalski", body.Teams[0].Team)
	assert.Equal(t, 100, body.Teams[0].WinRatePercent)
	assert.Equal(t, "Bob & Cid", body.Teams[1].Team)
}

func TestListMatchesAndPlayersHandlers(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	rr := serve(t, server, http.MethodGet, "/api/matches", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	matches, skipped, err := padel.Decode(rr.Body.Bytes(), padel.FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, testMatches(), matches)

	rr = serve(t, server, http.MethodGet, "/api/players", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"players":["J. Kowalski","Bob","Cid","Dan"]}`, rr.Body.String())
}

func TestResultsHandler(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	rr := serve(t, server, http.MethodGet, "/api/results", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Days []struct {
			Date    string            `json:"date"`
			Matches []json.RawMessage `json:"matches"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Days, 2)
	assert.Equal(t, "2025-05-19", body.Days[0].Date)
	assert.Equal(t, "2025-05-12", body.Days[1].Date)
}

func TestPlayerProfileHandler(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	rr := serve(t, server, http.MethodGet, "/api/players/jkowalski", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var profile struct {
		Name    string `json:"name"`
		Rank    int    `json:"rank"`
		Matches []struct {
			Won bool `json:"won"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, "J. Kowalski", profile.Name)
	assert.Equal(t, 1, profile.Rank)
	require.Len(t, profile.Matches, 2)
	assert.False(t, profile.Matches[0].Won)
	assert.True(t, profile.Matches[1].Won)
}

func TestPlayerProfileHandler_NotFound(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	rr := serve(t, server, http.MethodGet, "/api/players/nobody", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPlayerSlug(t *testing.T) {
	assert.Equal(t, "jkowalski", playerSlug("J. Kowalski"))
	assert.Equal(t, "bob", playerSlug("Bob"))
}

func TestLeaderboardCommandHandler(t *testing.T) {
	server := setupTestServer(t, testServerOptions{signingSecret: testSlackSigningSecret})

	req := createSlackCommandRequest(t, "/slack/command/leaderboard", url.Values{"text": {""}}, testSlackSigningSecret)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Player Leaderboard")
	assert.Contains(t, rr.Body.String(), "1. 🥇 J. Kowalski")
}

func TestLeaderboardCommandHandler_Teams(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	form := url.Values{"text": {"teams"}}
	req, err := http.NewRequest(http.MethodPost, "/slack/command/leaderboard", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Team Leaderboard")
}

func TestSlackCommand_RejectsBadSignature(t *testing.T) {
	server := setupTestServer(t, testServerOptions{signingSecret: testSlackSigningSecret})

	req := createSlackCommandRequest(t, "/slack/command/leaderboard", url.Values{"text": {""}}, "wrong-secret")
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestPlayerStatsCommandHandler(t *testing.T) {
	server := setupTestServer(t, testServerOptions{signingSecret: testSlackSigningSecret})

	tests := []struct {
		name     string
		text     string
		status   int
		contains string
	}{
		{"known player", "  bob ", http.StatusOK, "Stats for Bob"},
		{"unknown player", "Zed", http.StatusOK, "couldn't find a player matching *Zed*"},
		{"missing name", "", http.StatusBadRequest, "Player name is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createSlackCommandRequest(t, "/slack/command/player-stats", url.Values{"text": {tt.text}}, testSlackSigningSecret)
			rr := httptest.NewRecorder()
			server.ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.contains)
		})
	}
}

func TestPublishLeaderboardHandler(t *testing.T) {
	posted := false
	slackAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posted = true
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "channel": "C123", "ts": "1.2"}`))
	}))
	defer slackAPI.Close()
	api := slack.New("test-token", slack.OptionAPIURL(slackAPI.URL+"/"))
	server := setupTestServer(t, testServerOptions{slack: internalslack.NewClientWithAPI(api, "C123", metrics.NewMock())})

	rr := serve(t, server, http.MethodPost, "/slack/publish", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, posted)
	assert.JSONEq(t, `{"channel":"C123","ts":"1.2"}`, rr.Body.String())
}

func TestPublishLeaderboardHandler_NotConfigured(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	rr := serve(t, server, http.MethodPost, "/slack/publish", nil)

	assert.Equal(t, http.StatusNotImplemented, rr.Code)
}

func TestImportHandler(t *testing.T) {
	client := playtomic.NewMockClient()
	client.GetMatchesFunc = func(ctx context.Context, params *playtomic.SearchMatchesParams) ([]playtomic.MatchSummary, error) {
		return []playtomic.MatchSummary{}, nil
	}
	store := club.NewMock()
	imp := importer.New(client, store, metrics.NewMock(), "tenant-1")
	server := setupTestServer(t, testServerOptions{store: store, importer: imp})

	rr := serve(t, server, http.MethodPost, "/import?days=7", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"found":0,"imported":0,"skipped":0,"failed":0}`, rr.Body.String())
	require.Len(t, client.GetMatchesCalls, 1)
	expected := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	assert.True(t, strings.HasPrefix(client.GetMatchesCalls[0].FromStartDate, expected))

	rr = serve(t, server, http.MethodPost, "/import?days=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestImportHandler_NotConfigured(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	rr := serve(t, server, http.MethodPost, "/import", nil)

	assert.Equal(t, http.StatusNotImplemented, rr.Code)
}

func TestClearStoreHandler(t *testing.T) {
	store := club.NewMock()
	server := setupTestServer(t, testServerOptions{store: store})

	rr := serve(t, server, http.MethodPost, "/clear?matchID=m1", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"m1"}, store.ClearMatchCalls)

	rr = serve(t, server, http.MethodPost, "/clear?dry_run=true", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, store.ClearCalls)

	rr = serve(t, server, http.MethodPost, "/clear", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Store cleared!", rr.Body.String())
	assert.Equal(t, 1, store.ClearCalls)
}

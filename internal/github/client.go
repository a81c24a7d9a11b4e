package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padwell/internal/padel"
	"github.com/mauv0809/padwell/internal/standings"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

var (
	_ standings.MatchSource    = (*Client)(nil)
	_ standings.SkipReporter   = (*Client)(nil)
	_ standings.HistorySource  = (*Client)(nil)
	_ standings.SnapshotSource = (*Client)(nil)
	_ standings.LastModifier   = (*Client)(nil)
)

var errNotFound = errors.New("not found")

// Client reads the match log and its commit history from a GitHub repository.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	owner      string
	repo       string
	path       string
	format     padel.Format
}

// NewClient creates a GitHub client. Requests are authenticated when cfg.Token is set.
func NewClient(cfg Config) *Client {
	httpClient := &http.Client{Timeout: 10 * time.Second}
	if cfg.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}))
		httpClient.Timeout = 10 * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RatePerMinute)), cfg.RatePerMinute)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		limiter:    limiter,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		owner:      cfg.Owner,
		repo:       cfg.Repo,
		path:       strings.TrimPrefix(cfg.Path, "/"),
		format:     padel.FormatFromPath(cfg.Path),
	}
}

// LoadCurrentMatches reads the match log at the head of the default branch.
func (c *Client) LoadCurrentMatches(ctx context.Context) ([]padel.Match, error) {
	matches, _, err := c.LoadCurrentMatchesWithSkips(ctx)
	return matches, err
}

// LoadCurrentMatchesWithSkips reads the match log at the head of the default branch,
// returning the decode error of every record that was left out.
func (c *Client) LoadCurrentMatchesWithSkips(ctx context.Context) ([]padel.Match, []error, error) {
	matches, skipped, err := c.matchesAt(ctx, "")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", standings.ErrSourceUnavailable, err)
	}
	return matches, skipped, nil
}

// LoadPreviousMatches reads the match log as of the parent of the latest commit that
// touched it. It returns nil without error when the log has no earlier version.
func (c *Client) LoadPreviousMatches(ctx context.Context) ([]padel.Match, error) {
	snap, err := c.LoadPreviousSnapshot(ctx)
	return snap.Matches, err
}

// LoadPreviousSnapshot looks up the latest commit touching the match log once, and
// returns both the log as of its parent and the commit date.
func (c *Client) LoadPreviousSnapshot(ctx context.Context) (standings.Snapshot, error) {
	commit, err := c.latestCommit(ctx)
	if err != nil {
		return standings.Snapshot{}, fmt.Errorf("%w: %w", standings.ErrHistoryUnavailable, err)
	}
	snap := standings.Snapshot{UpdatedAt: commit.date()}
	if commit == nil || len(commit.Parents) == 0 {
		log.Debug("Match log has no previous commit", "path", c.path)
		return snap, nil
	}

	parent := commit.Parents[0].SHA
	matches, skipped, err := c.matchesAt(ctx, parent)
	if errors.Is(err, errNotFound) {
		log.Debug("Match log did not exist before the latest commit", "path", c.path, "ref", parent)
		return snap, nil
	}
	if err != nil {
		return snap, fmt.Errorf("%w: %w", standings.ErrHistoryUnavailable, err)
	}
	log.Debug("Loaded previous matches from GitHub", "ref", parent, "count", len(matches), "skipped", len(skipped))
	snap.Matches = matches
	return snap, nil
}

// LastModified returns the author date of the latest commit touching the match log.
func (c *Client) LastModified(ctx context.Context) (time.Time, error) {
	commit, err := c.latestCommit(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return commit.date(), nil
}

func (c *Client) latestCommit(ctx context.Context) (*commitResponse, error) {
	query := url.Values{}
	query.Set("path", c.path)
	query.Set("per_page", "1")
	endpoint := fmt.Sprintf("%s/repos/%s/%s/commits?%s", c.baseURL, c.owner, c.repo, query.Encode())

	var commits []commitResponse
	if err := c.getJSON(ctx, endpoint, &commits); err != nil {
		return nil, fmt.Errorf("failed to list commits for %s: %w", c.path, err)
	}
	if len(commits) == 0 {
		return nil, nil
	}
	return &commits[0], nil
}

func (c *Client) matchesAt(ctx context.Context, ref string) ([]padel.Match, []error, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, c.owner, c.repo, c.path)
	if ref != "" {
		endpoint += "?ref=" + url.QueryEscape(ref)
	}

	var contents contentsResponse
	if err := c.getJSON(ctx, endpoint, &contents); err != nil {
		return nil, nil, fmt.Errorf("failed to fetch %s: %w", c.path, err)
	}

	data, err := c.contentBytes(ctx, contents)
	if err != nil {
		return nil, nil, err
	}

	matches, skipped, err := padel.Decode(data, c.format)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s at %q: %w", c.path, ref, err)
	}
	return matches, skipped, nil
}

// contentBytes decodes an inline base64 payload. Files too large to inline are
// fetched from their download URL.
func (c *Client) contentBytes(ctx context.Context, contents contentsResponse) ([]byte, error) {
	if contents.Content == "" && contents.DownloadURL != "" {
		body, err := c.get(ctx, contents.DownloadURL)
		if err != nil {
			return nil, fmt.Errorf("failed to download %s: %w", c.path, err)
		}
		defer body.Close()
		return io.ReadAll(body)
	}
	if contents.Encoding != "" && contents.Encoding != "base64" {
		return nil, fmt.Errorf("unsupported content encoding %q", contents.Encoding)
	}
	data, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(contents.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s content: %w", c.path, err)
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", "padwell")

	log.Debug("Requesting GitHub API", "url", endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, errNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		log.Error("Received non-OK HTTP status from GitHub API", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

package playtomic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rafa-garcia/go-playtomic-api/client"
	"github.com/rafa-garcia/go-playtomic-api/models"
)

const searchPageSize = 300

var _ PlaytomicClient = (*APIClient)(nil)

// APIClient searches matches through go-playtomic-api and reads match details, which
// that library does not expose, straight from the REST API.
type APIClient struct {
	httpClient *http.Client
	apiClient  *client.Client
	BaseURL    string
}

// NewClient creates a Playtomic client. An empty baseURL selects the public API for
// match details.
func NewClient(baseURL string) PlaytomicClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiClient: client.NewClient(
			client.WithTimeout(10*time.Second),
			client.WithRetries(3),
		),
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// GetMatches pages through the search results until a short page comes back.
func (c *APIClient) GetMatches(ctx context.Context, params *SearchMatchesParams) ([]MatchSummary, error) {
	var summaries []MatchSummary
	for page := 0; ; page++ {
		hits, err := c.apiClient.GetMatches(ctx, &models.SearchMatchesParams{
			SportID:       params.SportID,
			HasPlayers:    params.HasPlayers,
			Sort:          params.Sort,
			TenantIDs:     params.TenantIDs,
			FromStartDate: params.FromStartDate,
			Size:          searchPageSize,
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("error searching playtomic matches (page %d): %w", page, err)
		}
		for _, hit := range hits {
			summaries = append(summaries, MatchSummary{MatchID: hit.MatchID, OwnerID: hit.OwnerID})
		}
		log.Debug("Fetched page of Playtomic matches", "page", page, "count", len(hits))
		if len(hits) < searchPageSize {
			break
		}
	}
	log.Info("Found Playtomic matches", "count", len(summaries), "from", params.FromStartDate)
	return summaries, nil
}

// GetSpecificMatch reads the teams and set results of one match.
func (c *APIClient) GetSpecificMatch(ctx context.Context, matchID string) (PadelMatch, error) {
	var resp matchResponse
	if err := c.getJSON(ctx, "/v1/matches/"+matchID, &resp); err != nil {
		return PadelMatch{}, fmt.Errorf("match %s: %w", matchID, err)
	}
	return resp.toPadelMatch(matchID)
}

func (c *APIClient) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "padwell")

	log.Debug("Requesting Playtomic API", "path", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("Received non-OK HTTP status from Playtomic API", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

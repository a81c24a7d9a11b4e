package github

import "time"

// DefaultBaseURL is the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com"

// Config locates the match log inside a repository.
type Config struct {
	Owner string
	Repo  string
	Path  string
	// Token is optional. Anonymous requests share a low rate limit.
	Token   string
	BaseURL string
	// RatePerMinute caps outgoing requests. Zero disables the limiter.
	RatePerMinute int
}

type commitResponse struct {
	SHA    string `json:"sha"`
	Commit struct {
		Author struct {
			Date time.Time `json:"date"`
		} `json:"author"`
		Committer struct {
			Date time.Time `json:"date"`
		} `json:"committer"`
	} `json:"commit"`
	Parents []struct {
		SHA string `json:"sha"`
	} `json:"parents"`
}

// date prefers the author date and falls back to the committer date. A nil commit
// has the zero time.
func (c *commitResponse) date() time.Time {
	if c == nil {
		return time.Time{}
	}
	if !c.Commit.Author.Date.IsZero() {
		return c.Commit.Author.Date
	}
	return c.Commit.Committer.Date
}

type contentsResponse struct {
	Content     string `json:"content"`
	Encoding    string `json:"encoding"`
	DownloadURL string `json:"download_url"`
}

// Package github reads public profile and repository data for one account.
// Results are best effort: every failure is reported as ErrUnavailable and
// nothing is retried.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is the public GitHub REST endpoint.
	DefaultBaseURL = "https://api.github.com"
	// DefaultPageSize matches the compact home view request.
	DefaultPageSize = 6
	// FullPageSize is used for the complete projects listing.
	FullPageSize = 100
)

// ErrUnavailable is wrapped by every fetch error: transport failures,
// non-success statuses and malformed bodies alike.
var ErrUnavailable = errors.New("github: data unavailable")

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	BaseURL  string
	User     string
	Token    string // optional; raises the provider's anonymous limits
	PageSize int
}

// Client fetches profile and repository summaries for Config.User.
type Client struct {
	baseURL    string
	user       string
	token      string
	pageSize   int
	httpClient HTTPClient
}

// NewClient creates a Client. A nil httpClient uses http.DefaultClient.
func NewClient(cfg Config, httpClient HTTPClient) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		user:       cfg.User,
		token:      cfg.Token,
		pageSize:   pageSize,
		httpClient: httpClient,
	}
}

// User returns the account handle the client reads.
func (c *Client) User() string {
	return c.user
}

// PageSize returns the configured default page size.
func (c *Client) PageSize() int {
	return c.pageSize
}

// FetchProfile reads the account's public repository and follower counts.
func (c *Client) FetchProfile(ctx context.Context) (ProfileSummary, error) {
	u := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(c.user))

	var raw githubUser
	if err := c.doRequest(ctx, u, &raw); err != nil {
		return ProfileSummary{}, fmt.Errorf("fetch profile: %w", err)
	}
	if raw.PublicRepos == nil || raw.Followers == nil {
		return ProfileSummary{}, fmt.Errorf("fetch profile: missing counters: %w", ErrUnavailable)
	}
	if *raw.PublicRepos < 0 || *raw.Followers < 0 {
		return ProfileSummary{}, fmt.Errorf("fetch profile: negative counters: %w", ErrUnavailable)
	}
	return ProfileSummary{PublicRepos: *raw.PublicRepos, Followers: *raw.Followers}, nil
}

// FetchRepositories reads up to perPage repositories sorted by recent update.
// perPage <= 0 uses the client's page size.
func (c *Client) FetchRepositories(ctx context.Context, perPage int) ([]RepositorySummary, error) {
	if perPage <= 0 {
		perPage = c.pageSize
	}
	q := url.Values{}
	q.Set("sort", "updated")
	q.Set("per_page", fmt.Sprintf("%d", perPage))
	u := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(c.user), q.Encode())

	var raw []githubRepository
	if err := c.doRequest(ctx, u, &raw); err != nil {
		return nil, fmt.Errorf("fetch repositories: %w", err)
	}
	return convertRepositories(raw), nil
}

// doRequest performs a GET and decodes a 2xx JSON body into result.
func (c *Client) doRequest(ctx context.Context, u string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %v: %w", err, ErrUnavailable)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %v: %w", err, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API returned status %d: %s: %w", resp.StatusCode, strings.TrimSpace(string(body)), ErrUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %v: %w", err, ErrUnavailable)
	}
	return nil
}

// convertRepositories projects API items onto RepositorySummary, dropping
// every field outside the display model.
func convertRepositories(raw []githubRepository) []RepositorySummary {
	repos := make([]RepositorySummary, 0, len(raw))
	for _, r := range raw {
		topics := r.Topics
		if topics == nil {
			topics = []string{}
		}
		repos = append(repos, RepositorySummary{
			ID:          r.ID,
			Name:        r.Name,
			DisplayName: r.Name,
			Description: nonEmpty(r.Description),
			SourceURL:   r.HTMLURL,
			LiveURL:     nonEmpty(r.Homepage),
			Topics:      topics,
			Language:    nonEmpty(r.Language),
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return repos
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

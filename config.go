package portfolio

import (
	"net/http"
	"time"

	"github.com/Maulik7278/portfolio/github"
	"github.com/Maulik7278/portfolio/live"
)

// SiteConfig holds all configuration for the portfolio site.
type SiteConfig struct {
	Name        string // Site name (default: owner name)
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Meta description (default: owner tagline)

	Addr string // Listen address (default ":3000")

	GitHubUser   string // Account used for enrichment (default "Maulik7278")
	GitHubAPIURL string // REST API base (default github.DefaultBaseURL)
	GitHubToken  string // Optional bearer token

	ContactRecipient string // mailto: recipient (default: owner email)
	PortraitPath     string // Portrait image on disk (default: <static>/<owner.portrait>)

	AnalyticsEnabled      bool   // Record page views (default false)
	AnalyticsDatabasePath string // Analytics SQLite path (default "data/analytics.db")
	AnalyticsRetention    int    // Days of visits kept (default 365)

	AdminPassword string // Enables /admin/ when set
	SessionSecret string // Required when AdminPassword is set
	CookieSecure  bool   // Set true for HTTPS

	ContactLimit  int           // Contact submissions per window per IP (default 10)
	ContactWindow time.Duration // (default 10min)
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.GitHubUser == "" {
		c.GitHubUser = "Maulik7278"
	}
	if c.GitHubAPIURL == "" {
		c.GitHubAPIURL = github.DefaultBaseURL
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
	if c.AnalyticsRetention <= 0 {
		c.AnalyticsRetention = 365
	}
	if c.ContactLimit <= 0 {
		c.ContactLimit = 10
	}
	if c.ContactWindow <= 0 {
		c.ContactWindow = 10 * time.Minute
	}
}

// AdminEnabled reports whether the admin routes are mounted.
func (c SiteConfig) AdminEnabled() bool {
	return c.AdminPassword != ""
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithSource replaces the GitHub client used for enrichment.
func WithSource(src live.Source) Option {
	return func(a *App) {
		a.Source = src
	}
}

// WithHTTPClient sets the HTTP client the GitHub client uses.
func WithHTTPClient(client *http.Client) Option {
	return func(a *App) {
		a.httpClient = client
	}
}

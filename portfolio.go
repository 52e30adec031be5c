// Package portfolio serves a personal portfolio site built with Go, Echo, and templ.
// Pages render immediately from the authored content; GitHub profile and
// repository data is streamed into the open page once it arrives.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Maulik7278/portfolio/analytics"
	"github.com/Maulik7278/portfolio/contact"
	"github.com/Maulik7278/portfolio/content"
	"github.com/Maulik7278/portfolio/github"
	"github.com/Maulik7278/portfolio/live"
	"github.com/Maulik7278/portfolio/views"
)

// App is the portfolio application. It wires together the content, the
// enrichment source, handlers, middleware, and templates.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Site     *content.Site
	Source   live.Source
	Composer *contact.Composer

	portrait       []byte
	loginLimiter   *Limiter
	contactLimiter *Limiter
	analyticsStore *analytics.Store
	stopCleanup    func()
	customRoutes   []func(*App)
	staticDir      string
	httpClient     *http.Client
}

// New creates a new App for site with the given configuration.
func New(cfg SiteConfig, site *content.Site, opts ...Option) *App {
	if cfg.Name == "" {
		cfg.Name = site.Owner.Name
	}
	if cfg.Description == "" {
		cfg.Description = site.Owner.Tagline
	}
	if cfg.ContactRecipient == "" {
		cfg.ContactRecipient = site.Owner.Email
	}
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Site:      site,
		staticDir: "public",
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Source == nil {
		var hc github.HTTPClient
		if a.httpClient != nil {
			hc = a.httpClient
		}
		a.Source = github.NewClient(github.Config{
			BaseURL: cfg.GitHubAPIURL,
			User:    cfg.GitHubUser,
			Token:   cfg.GitHubToken,
		}, hc)
	}
	a.Composer = &contact.Composer{Recipient: cfg.ContactRecipient}
	return a
}

// Setup initializes analytics, middleware, and routes without starting the
// server. Start calls it; tests use it directly.
func (a *App) Setup() error {
	if a.Config.AdminEnabled() && a.Config.SessionSecret == "" {
		return errors.New("portfolio: SessionSecret is required when AdminPassword is set")
	}
	if _, err := contact.Compose(a.Config.ContactRecipient, contact.Draft{}); err != nil {
		return fmt.Errorf("portfolio: contact recipient: %w", err)
	}

	a.loginLimiter = NewLimiter(5, time.Minute)
	a.contactLimiter = NewLimiter(a.Config.ContactLimit, a.Config.ContactWindow)

	if a.Config.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("portfolio: init analytics: %w", err)
		}
		a.analyticsStore = store
		a.stopCleanup = store.StartCleanupScheduler(a.Config.AnalyticsRetention, 24*time.Hour, a.Echo.Logger)
	}

	a.loadPortrait()
	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start sets the app up and serves until ctx is cancelled or the server fails.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}
	defer a.Close()

	errc := make(chan error, 1)
	go func() {
		errc <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	a.mountAssets()
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/portrait.jpg", a.handlePortrait)

	e.GET("/", a.handleHome)
	e.GET("/projects/", a.handleProjects)
	e.GET("/certificates/", a.handleCertificates)
	e.GET("/live/", a.handleLive)
	e.POST("/contact/", a.handleContact)
	e.GET("/resume/", a.handleResume)
	e.GET("/to/:section/", a.handleSection)

	if !a.Config.AdminEnabled() {
		return
	}
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)

	if a.analyticsStore != nil {
		analytics.NewHandler(a.analyticsStore).RegisterRoutes(e, requireAdmin)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.stopCleanup != nil {
		a.stopCleanup()
		a.stopCleanup = nil
	}
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.contactLimiter != nil {
		a.contactLimiter.Stop()
	}
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}

func (a *App) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		HasPortrait: len(a.portrait) > 0,
	}
}

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Maulik7278/portfolio"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveAddr string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Runs the portfolio web server until interrupted.

Environment:
  SITE_NAME, SITE_URL, SITE_DESCRIPTION, ADDR
  GITHUB_USER, GITHUB_API_URL, GITHUB_TOKEN
  CONTACT_RECIPIENT, CONTENT_PATH, STATIC_DIR, PORTRAIT_PATH
  ANALYTICS_ENABLED, ANALYTICS_DB
  ADMIN_PASSWORD, ADMIN_SESSION_SECRET, COOKIE_SECURE`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: $ADDR or :3000)")
}

func configFromEnv() (cfg portfolio.SiteConfig, err error) {
	cfg = portfolio.SiteConfig{
		Name:                  portfolio.EnvOr("SITE_NAME", ""),
		URL:                   portfolio.EnvOr("SITE_URL", ""),
		Description:           portfolio.EnvOr("SITE_DESCRIPTION", ""),
		Addr:                  portfolio.EnvOr("ADDR", ""),
		GitHubUser:            portfolio.EnvOr("GITHUB_USER", ""),
		GitHubAPIURL:          portfolio.EnvOr("GITHUB_API_URL", ""),
		GitHubToken:           portfolio.EnvOr("GITHUB_TOKEN", ""),
		ContactRecipient:      portfolio.EnvOr("CONTACT_RECIPIENT", ""),
		PortraitPath:          portfolio.EnvOr("PORTRAIT_PATH", ""),
		AnalyticsEnabled:      portfolio.EnvBool("ANALYTICS_ENABLED", false),
		AnalyticsDatabasePath: portfolio.EnvOr("ANALYTICS_DB", ""),
		AdminPassword:         portfolio.EnvOr("ADMIN_PASSWORD", ""),
		CookieSecure:          portfolio.EnvBool("COOKIE_SECURE", false),
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if cfg.AdminEnabled() {
		cfg.SessionSecret, err = portfolio.MustEnv("ADMIN_SESSION_SECRET")
		if err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	site, err := loadContent()
	if err != nil {
		return err
	}
	cfg, err := configFromEnv()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	app := portfolio.New(cfg, site, portfolio.WithStaticDir(portfolio.EnvOr("STATIC_DIR", "public")))
	app.Echo.HideBanner = true
	app.Echo.Logger = newLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Echo.Logger.Infof("serving %s on %s (github user %s)", app.Config.URL, app.Config.Addr, app.Config.GitHubUser)
	return errors.Wrap(app.Start(ctx), "server stopped")
}

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Maulik7278/portfolio"
	"github.com/Maulik7278/portfolio/content"
)

// version is set at build time via ldflags.
var version = "dev"

//nolint:gochecknoglobals // Cobra boilerplate
var (
	verbose     bool
	contentPath string
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site with GitHub enrichment",
	Long: `portfolio serves a personal portfolio site built from authored content,
enriched with public GitHub profile and repository data.

Configuration comes from the environment; a .env file in the working
directory is loaded first when present.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; the environment may be set directly.
		_ = godotenv.Load()
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "content YAML file (default: $CONTENT_PATH or the built-in content)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the portfolio version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("portfolio %s\n", version)
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	l := log.New("portfolio")
	l.SetHeader("${time_rfc3339} ${level} ${prefix}")
	if verbose {
		l.SetLevel(log.DEBUG)
	} else {
		l.SetLevel(log.INFO)
	}
	return l
}

func loadContent() (*content.Site, error) {
	path := contentPath
	if path == "" {
		path = portfolio.EnvOr("CONTENT_PATH", "")
	}
	site, err := content.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load content")
	}
	return site, nil
}

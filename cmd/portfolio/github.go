package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Maulik7278/portfolio"
	"github.com/Maulik7278/portfolio/github"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	reposAll  bool
	fetchWait time.Duration
)

//nolint:gochecknoglobals // Cobra boilerplate
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the public GitHub profile counters",
	RunE:  runProfile,
}

//nolint:gochecknoglobals // Cobra boilerplate
var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List the repositories the site would show",
	Long: `Lists the repositories the site would show, most recently updated first.

By default only the featured projects from the home page are listed;
--all lists the full projects page.`,
	RunE: runRepos,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(profileCmd, reposCmd)
	profileCmd.Flags().DurationVar(&fetchWait, "timeout", 15*time.Second, "request timeout")
	reposCmd.Flags().DurationVar(&fetchWait, "timeout", 15*time.Second, "request timeout")
	reposCmd.Flags().BoolVar(&reposAll, "all", false, "list the full projects page")
}

func newGitHubClient() *github.Client {
	return github.NewClient(github.Config{
		BaseURL: portfolio.EnvOr("GITHUB_API_URL", ""),
		User:    portfolio.EnvOr("GITHUB_USER", "Maulik7278"),
		Token:   portfolio.EnvOr("GITHUB_TOKEN", ""),
	}, nil)
}

func runProfile(cmd *cobra.Command, args []string) error {
	ctx, cancel := contextWithTimeout(cmd, fetchWait)
	defer cancel()

	client := newGitHubClient()
	profile, err := client.FetchProfile(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to fetch profile for %s", client.User())
	}
	cmd.Printf("%s\n", client.User())
	cmd.Printf("  public repositories: %d\n", profile.PublicRepos)
	cmd.Printf("  followers:           %d\n", profile.Followers)
	return nil
}

func runRepos(cmd *cobra.Command, args []string) error {
	ctx, cancel := contextWithTimeout(cmd, fetchWait)
	defer cancel()

	client := newGitHubClient()
	perPage, limit := github.DefaultPageSize, github.CompactLimit
	if reposAll {
		perPage, limit = github.FullPageSize, 0
	}
	repos, err := client.FetchRepositories(ctx, perPage)
	if err != nil {
		return errors.Wrapf(err, "failed to fetch repositories for %s", client.User())
	}
	repos = github.Feature(repos, limit)
	if len(repos) == 0 {
		cmd.Println("No projects yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLANGUAGE\tUPDATED\tSOURCE")
	for _, r := range repos {
		lang := "-"
		if r.Language != nil {
			lang = *r.Language
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.DisplayName, lang, r.UpdatedAt.Format("2006-01-02"), r.SourceURL)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "%d repositories\n", len(repos))
	}
	return w.Flush()
}

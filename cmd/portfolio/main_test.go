package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Maulik7278/portfolio/contact"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	mailDraft, mailTo, mailOpen = contact.Draft{}, "", false
	serveAddr = ""
	reposAll = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMailtoPrintsURI(t *testing.T) {
	out, err := execute(t, "mailto",
		"--to", "me@example.com",
		"--name", "Ada",
		"--email", "ada@example.com",
		"--message", "Hello there")
	if err != nil {
		t.Fatalf("mailto: %v", err)
	}
	want := "mailto:me@example.com?subject=Contact%20from%20Portfolio&body=Name%3A%20Ada"
	if !strings.HasPrefix(strings.TrimSpace(out), want) {
		t.Errorf("output = %q, want prefix %q", out, want)
	}
}

func TestMailtoMissingFields(t *testing.T) {
	_, err := execute(t, "mailto", "--to", "me@example.com", "--name", "Ada")
	if err == nil {
		t.Fatal("expected error for missing email and message")
	}
	if !strings.Contains(err.Error(), "required") {
		t.Errorf("error = %v", err)
	}
}

func TestMailtoBadRecipient(t *testing.T) {
	_, err := execute(t, "mailto",
		"--to", "not-an-address",
		"--name", "Ada",
		"--email", "ada@example.com",
		"--message", "Hi")
	if err == nil {
		t.Fatal("expected error for invalid recipient")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "portfolio dev" {
		t.Errorf("output = %q", out)
	}
}

func TestConfigFromEnv(t *testing.T) {
	serveAddr = ""
	t.Setenv("SITE_NAME", "Example")
	t.Setenv("ADDR", ":8080")
	t.Setenv("ANALYTICS_ENABLED", "true")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv: %v", err)
	}
	if cfg.Name != "Example" || cfg.Addr != ":8080" || !cfg.AnalyticsEnabled {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfigFromEnvRequiresSessionSecret(t *testing.T) {
	serveAddr = ""
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("ADMIN_SESSION_SECRET", "")

	if _, err := configFromEnv(); err == nil {
		t.Fatal("expected error when ADMIN_SESSION_SECRET is unset")
	}
}

func TestConfigFromEnvAddrFlag(t *testing.T) {
	t.Setenv("ADDR", ":8080")
	t.Setenv("ADMIN_PASSWORD", "")
	serveAddr = ":9090"
	defer func() { serveAddr = "" }()

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
}

func TestReposAllFiltersAndSorts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octo/repos" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("per_page"); got != "100" {
			t.Errorf("per_page = %q, want 100", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"old","html_url":"https://github.com/octo/old","updated_at":"2024-01-10T00:00:00Z"},
			{"id":2,"name":"my-fork","html_url":"https://github.com/octo/my-fork","updated_at":"2024-03-10T00:00:00Z"},
			{"id":3,"name":"new","html_url":"https://github.com/octo/new","updated_at":"2024-02-10T00:00:00Z"}
		]`))
	}))
	defer srv.Close()
	t.Setenv("GITHUB_API_URL", srv.URL)
	t.Setenv("GITHUB_USER", "octo")
	t.Setenv("GITHUB_TOKEN", "")

	out, err := execute(t, "repos", "--all")
	if err != nil {
		t.Fatalf("repos --all: %v", err)
	}
	if strings.Contains(out, "my-fork") {
		t.Errorf("fork-marked repository listed:\n%s", out)
	}
	newAt, oldAt := strings.Index(out, "octo/new"), strings.Index(out, "octo/old")
	if newAt < 0 || oldAt < 0 || newAt > oldAt {
		t.Errorf("want new before old:\n%s", out)
	}
}

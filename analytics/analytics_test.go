package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "analytics.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		ua                   string
		browser, os, device string
	}{
		{chromeUA, "Chrome", "Windows", "Desktop"},
		{"Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) Mobile Safari", "Safari", "iOS", "Tablet"},
		{"Mozilla/5.0 (Linux; Android 14) Chrome/120.0 Mobile Safari", "Chrome", "Android", "Mobile"},
		{"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko Firefox/121.0", "Firefox", "Linux", "Desktop"},
		{"Mozilla/5.0 (Macintosh) Chrome/120.0 Safari Edg/120.0", "Edge", "macOS", "Desktop"},
	}
	for _, tt := range tests {
		b, o, d := ParseUserAgent(tt.ua)
		if b != tt.browser || o != tt.os || d != tt.device {
			t.Errorf("ParseUserAgent(%q) = %s/%s/%s, want %s/%s/%s", tt.ua, b, o, d, tt.browser, tt.os, tt.device)
		}
	}
}

func TestIsBot(t *testing.T) {
	bots := []string{"", "Googlebot/2.1", "Mozilla/5.0 (compatible; bingbot/2.0)", "python-scraper", "HeadlessChrome"}
	for _, ua := range bots {
		if !IsBot(ua) {
			t.Errorf("IsBot(%q) = false", ua)
		}
	}
	if IsBot(chromeUA) {
		t.Error("browser detected as bot")
	}
	if got := ExtractBotName("Mozilla/5.0 (compatible; Googlebot/2.1)"); got != "Googlebot" {
		t.Errorf("ExtractBotName = %q", got)
	}
}

func TestCleanReferrer(t *testing.T) {
	tests := map[string]string{
		"":                             "Direct",
		"https://www.google.com/search": "Google",
		"https://github.com/Maulik7278": "GitHub",
		"https://www.example.org/a/b":   "example.org",
		"not a url":                     "Other",
	}
	for in, want := range tests {
		if got := CleanReferrer(in); got != want {
			t.Errorf("CleanReferrer(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSaltIsStableAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analytics.db")
	a, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	first := a.HashIP("203.0.113.1")
	a.Close()

	b, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()
	if got := b.HashIP("203.0.113.1"); got != first {
		t.Fatalf("hash changed after reopen: %s != %s", got, first)
	}
	if b.HashIP("203.0.113.2") == first {
		t.Fatal("different IPs hash equal")
	}
}

func TestStatsAndCleanup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	visits := []Visit{
		{VisitorID: "a", Path: "/", Browser: "Chrome", Referrer: "Direct", Timestamp: now.Add(-time.Hour)},
		{VisitorID: "a", Path: "/projects/", Browser: "Chrome", Referrer: "Direct", Timestamp: now.Add(-2 * time.Hour)},
		{VisitorID: "b", Path: "/", Browser: "Firefox", Referrer: "GitHub", Timestamp: now.AddDate(0, 0, -2)},
		{VisitorID: "c", Path: "/", Browser: "Firefox", Referrer: "Direct", Timestamp: now.AddDate(0, 0, -400)},
	}
	for i := range visits {
		if err := s.SaveVisit(ctx, &visits[i]); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.SaveBotVisit(ctx, &BotVisit{BotName: "Googlebot", Path: "/", Timestamp: now}); err != nil {
		t.Fatal(err)
	}

	stats, err := s.GetStats(ctx, 30)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalViews != 3 || stats.UniqueVisitors != 2 || stats.BotVisits != 1 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if len(stats.TopPages) == 0 || stats.TopPages[0].Path != "/" || stats.TopPages[0].Views != 2 {
		t.Fatalf("unexpected top pages: %+v", stats.TopPages)
	}
	if len(stats.DailyViews) != 2 {
		t.Fatalf("expected two days, got %+v", stats.DailyViews)
	}

	if err := s.CleanupOldVisits(ctx, 365); err != nil {
		t.Fatal(err)
	}
	stats, err = s.GetStats(ctx, 365)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalViews != 3 {
		t.Fatalf("cleanup kept %d views, want 3", stats.TotalViews)
	}
}

func TestRecordMiddleware(t *testing.T) {
	s := newTestStore(t)
	h := NewHandler(s)
	e := echo.New()
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	skip := func(c echo.Context) bool { return c.Request().URL.Path == "/live/" }
	e.GET("/*", ok, h.Record(skip))

	send := func(path, ua string, dnt bool) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("User-Agent", ua)
		if dnt {
			req.Header.Set("DNT", "1")
		}
		e.ServeHTTP(httptest.NewRecorder(), req)
	}
	send("/", chromeUA, false)
	send("/projects/", chromeUA, false)
	send("/", chromeUA, true)
	send("/live/", chromeUA, false)
	send("/", "Googlebot/2.1", false)

	stats, err := s.GetStats(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalViews != 2 {
		t.Fatalf("recorded %d views, want 2", stats.TotalViews)
	}
	if stats.BotVisits != 1 {
		t.Fatalf("recorded %d bot visits, want 1", stats.BotVisits)
	}
}

func TestGetStatsHandler(t *testing.T) {
	s := newTestStore(t)
	h := NewHandler(s)
	e := echo.New()
	pass := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	h.RegisterRoutes(e, pass)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/analytics/api/stats?days=7", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var stats Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.Days != 7 {
		t.Fatalf("days = %d", stats.Days)
	}
}

func TestParseDays(t *testing.T) {
	tests := map[string]int{"": 30, "abc": 30, "-1": 30, "7": 7, "1000": 365}
	for in, want := range tests {
		if got := ParseDays(in); got != want {
			t.Errorf("ParseDays(%q) = %d, want %d", in, got, want)
		}
	}
}

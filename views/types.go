package views

import "github.com/Maulik7278/portfolio/contact"

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME  (default: owner name)
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION (default: owner tagline)
	HasPortrait bool   // a processed portrait is served at /portrait.jpg
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "profile"
}

// ContactForm is the state of the contact form as rendered.
type ContactForm struct {
	Draft  contact.Draft
	Notice string
	Failed bool
	CSRF   string
}

// StatsView is the admin dashboard's page-view summary.
type StatsView struct {
	Days      int
	Views     int
	Visitors  int
	BotVisits int
	Pages     []PathCount
	Daily     []DayCount
}

// PathCount is the number of views of one path.
type PathCount struct {
	Path  string
	Views int
}

// DayCount is the number of views on one day.
type DayCount struct {
	Date  string
	Views int
}

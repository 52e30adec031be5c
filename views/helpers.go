package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/Maulik7278/portfolio/content"
	"github.com/Maulik7278/portfolio/github"
)

// Placeholder stands in for a counter that has not been fetched.
const Placeholder = "--"

// EmptyProjects is shown when no repository data is available.
const EmptyProjects = "No projects yet."

// NoDescription is shown for repositories without a description.
const NoDescription = "No description available"

// maxTopics caps the topic badges per project card.
const maxTopics = 4

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// Counter formats a remote counter, or Placeholder when unknown.
func Counter(p *github.ProfileSummary, pick func(github.ProfileSummary) int) string {
	if p == nil {
		return Placeholder
	}
	return strconv.Itoa(pick(*p))
}

// Topics returns at most four topics for a project card.
func Topics(topics []string) []string {
	if len(topics) > maxTopics {
		return topics[:maxTopics]
	}
	return topics
}

// FormatUpdated formats a repository timestamp as "Jan 2, 2006".
func FormatUpdated(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("Jan 2, 2006")
}

// Initials returns up to two initials for the portrait fallback.
func Initials(name string) string {
	var out []rune
	for _, f := range strings.Fields(name) {
		out = append(out, []rune(f)[0])
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}

// PersonJsonLD produces a Schema.org Person JSON-LD block for the owner.
func PersonJsonLD(cfg SiteConfig, site *content.Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     site.Owner.Name,
		"url":      buildURL(cfg.URL),
	}
	if site.Owner.Role != "" {
		data["jobTitle"] = site.Owner.Role
	}
	var sameAs []string
	for _, l := range site.Social {
		if strings.HasPrefix(l.URL, "http") {
			sameAs = append(sameAs, l.URL)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

package views

import (
	"github.com/a-h/templ"

	"github.com/Maulik7278/portfolio/content"
	"github.com/Maulik7278/portfolio/github"
	"github.com/Maulik7278/portfolio/live"
)

// Projects renders the full repository listing page.
func Projects(cfg SiteConfig, site *content.Site, snap live.Snapshot) templ.Component {
	meta := PageMeta{
		Title:       "Projects | " + cfg.Name,
		Description: "Open-source work by " + site.Owner.Name,
		URL:         buildURL(cfg.URL, "projects"),
		OGType:      "website",
	}
	body := component(func(h *html) {
		h.raw(`<section class="section page">`)
		h.raw(`<div class="section-header">`)
		h.el("h1", "section-title", "All Projects")
		h.el("p", "muted", "A collection of my work and contributions")
		h.raw(`</div>`)
		h.render(ProjectGrid(snap.Repositories))
		h.raw(`</section>`)
	})
	return layout(cfg, site, meta, PageProjects, PageProjects, body)
}

// ProjectGrid renders every repository with its last update date.
func ProjectGrid(repos []github.RepositorySummary) templ.Component {
	return projectList(ProjectGridID, repos, true)
}

func projectList(id string, repos []github.RepositorySummary, detailed bool) templ.Component {
	return component(func(h *html) {
		h.raw(`<div id="` + id + `" class="project-grid">`)
		if len(repos) == 0 {
			h.el("p", "empty", EmptyProjects)
		}
		for _, r := range repos {
			projectCard(h, r, detailed)
		}
		h.raw(`</div>`)
	})
}

func projectCard(h *html, r github.RepositorySummary, detailed bool) {
	h.raw(`<article class="card project">`)
	h.raw(`<div class="card-head">`)
	h.el("h3", "card-title", r.DisplayName)
	if r.Language != nil {
		h.el("span", "badge secondary", *r.Language)
	}
	h.raw(`</div>`)
	desc := NoDescription
	if r.Description != nil {
		desc = *r.Description
	}
	h.el("p", "muted", desc)
	if topics := Topics(r.Topics); len(topics) > 0 {
		h.badges("badge outline", topics)
	}
	if detailed {
		if updated := FormatUpdated(r.UpdatedAt); updated != "" {
			h.el("p", "updated", "Updated "+updated)
		}
	}
	h.raw(`<div class="card-actions">`)
	h.link(r.SourceURL, "button outline small", "Code", true)
	if r.LiveURL != nil {
		h.link(*r.LiveURL, "button small", "Live Demo", true)
	}
	h.raw(`</div></article>`)
}

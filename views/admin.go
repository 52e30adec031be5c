package views

import (
	"github.com/a-h/templ"

	"github.com/Maulik7278/portfolio/content"
)

// AdminLogin renders the password form.
func AdminLogin(cfg SiteConfig, site *content.Site, showError bool, csrf string) templ.Component {
	meta := PageMeta{Title: "Admin | " + cfg.Name, URL: buildURL(cfg.URL, "admin"), OGType: "website"}
	body := component(func(h *html) {
		h.raw(`<section class="section page"><form class="card admin-login" method="post" action="/admin/login/">`)
		h.el("h1", "section-title", "Admin")
		h.raw(`<input type="hidden" name="_csrf" value="`)
		h.text(csrf)
		h.raw(`"><label for="password">Password</label><input id="password" name="password" type="password" required autofocus>`)
		if showError {
			h.el("p", "notice error", "Invalid password.")
		}
		h.raw(`<button type="submit" class="button">Sign in</button></form></section>`)
	})
	return layout(cfg, site, meta, "", "", body)
}

// AdminDashboard renders the page-view summary. A nil stats means analytics
// is disabled.
func AdminDashboard(cfg SiteConfig, site *content.Site, stats *StatsView, csrf string) templ.Component {
	meta := PageMeta{Title: "Dashboard | " + cfg.Name, URL: buildURL(cfg.URL, "admin"), OGType: "website"}
	body := component(func(h *html) {
		h.raw(`<section class="section page admin">`)
		h.raw(`<div class="section-header">`)
		h.el("h1", "section-title", "Dashboard")
		h.raw(`<form method="post" action="/admin/logout/"><input type="hidden" name="_csrf" value="`)
		h.text(csrf)
		h.raw(`"><button type="submit" class="button outline small">Log out</button></form></div>`)
		if stats == nil {
			h.el("p", "muted", "Analytics is disabled.")
			h.raw(`</section>`)
			return
		}
		h.raw(`<div class="stats">`)
		statNum(h, stats.Views, "Page Views")
		statNum(h, stats.Visitors, "Visitors")
		statNum(h, stats.BotVisits, "Bot Visits")
		h.raw(`</div><p class="muted">Last `)
		h.num(stats.Days)
		h.raw(` days</p>`)

		h.raw(`<table class="table"><thead><tr><th>Page</th><th>Views</th></tr></thead><tbody>`)
		for _, p := range stats.Pages {
			h.raw(`<tr><td>`)
			h.text(p.Path)
			h.raw(`</td><td>`)
			h.num(p.Views)
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)

		h.raw(`<table class="table"><thead><tr><th>Day</th><th>Views</th></tr></thead><tbody>`)
		for _, d := range stats.Daily {
			h.raw(`<tr><td>`)
			h.text(d.Date)
			h.raw(`</td><td>`)
			h.num(d.Views)
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></section>`)
	})
	return layout(cfg, site, meta, "", "", body)
}

func statNum(h *html, n int, label string) {
	h.raw(`<div class="stat"><span class="stat-value">`)
	h.num(n)
	h.raw(`</span>`)
	h.el("span", "stat-label", label)
	h.raw(`</div>`)
}

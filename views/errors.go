package views

import (
	"github.com/a-h/templ"

	"github.com/Maulik7278/portfolio/content"
)

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig, site *content.Site) templ.Component {
	return errorPage(cfg, site, "Page not found", "The page you are looking for does not exist.")
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig, site *content.Site) templ.Component {
	return errorPage(cfg, site, "Something went wrong", "Please try again in a moment.")
}

func errorPage(cfg SiteConfig, site *content.Site, title, message string) templ.Component {
	meta := PageMeta{
		Title:       title + " | " + cfg.Name,
		Description: message,
		URL:         buildURL(cfg.URL),
		OGType:      "website",
	}
	body := component(func(h *html) {
		h.raw(`<section class="section page center">`)
		h.el("h1", "section-title", title)
		h.el("p", "muted", message)
		h.link("/", "button", "Back to Home", false)
		h.raw(`</section>`)
	})
	return layout(cfg, site, meta, "", "", body)
}

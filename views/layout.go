package views

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/Maulik7278/portfolio/content"
	"github.com/Maulik7278/portfolio/nav"
)

// Page names used for the active navigation link and the live stream.
const (
	PageHome         = "home"
	PageProjects     = "projects"
	PageCertificates = "certificates"
)

var navItems = []struct{ page, label, href string }{
	{PageHome, "Home", "/"},
	{PageProjects, "Projects", "/projects/"},
	{PageCertificates, "Certificates", "/certificates/"},
}

// layout wraps body in the document shell. livePage, when set, makes the
// page script open the enrichment stream for that page.
func layout(cfg SiteConfig, site *content.Site, meta PageMeta, active, livePage string, body templ.Component) templ.Component {
	return component(func(h *html) {
		h.raw(`<!DOCTYPE html><html lang="en" data-header-offset="` + nav.OffsetAttr() + `"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(meta.Title)
		h.raw("</title>")
		h.raw(`<meta name="description" content="`)
		h.text(meta.Description)
		h.raw(`"><link rel="canonical" href="`)
		h.url(meta.URL)
		h.raw(`"><meta property="og:title" content="`)
		h.text(meta.Title)
		h.raw(`"><meta property="og:type" content="`)
		h.text(meta.OGType)
		h.raw(`"><meta property="og:url" content="`)
		h.url(meta.URL)
		h.raw(`"><link rel="stylesheet" href="/public/site.css">`)
		h.raw(`<script type="application/ld+json">`)
		h.raw(PersonJsonLD(cfg, site))
		h.raw(`</script></head>`)

		if livePage != "" {
			h.raw(`<body data-live="` + livePage + `">`)
		} else {
			h.raw(`<body>`)
		}
		header(h, site, active)
		h.raw(`<main>`)
		h.render(body)
		h.raw(`</main>`)
		footer(h, site)
		h.raw(`<script src="/public/live.js" defer></script></body></html>`)
	})
}

func header(h *html, site *content.Site, active string) {
	h.raw(`<header class="navbar"><a class="logo" href="/">`)
	h.text(site.Owner.Name)
	h.raw(`</a><nav>`)
	for _, it := range navItems {
		class := "nav-link"
		if it.page == active {
			class += " active"
		}
		h.link(it.href, class, it.label, false)
	}
	if site.Resume != "" {
		h.link("/resume/", "button outline small", "Resume", true)
	}
	h.raw(`</nav></header>`)
}

func footer(h *html, site *content.Site) {
	sections := nav.Sections(site.SectionIDs())
	h.raw(`<footer class="footer"><div class="footer-grid"><div>`)
	h.el("h2", "footer-name", site.Owner.Name)
	h.el("p", "muted", site.Footer)
	h.raw(`</div><div><h3>Navigation</h3><ul>`)
	for _, l := range []struct{ label, href string }{
		{"Home", "/"},
		{"About", sections.Anchor(content.SectionAbout)},
		{"Projects", "/projects/"},
		{"Certificates", "/certificates/"},
		{"Contact", sections.Anchor(content.SectionContact)},
	} {
		h.raw("<li>")
		h.link(l.href, "", l.label, false)
		h.raw("</li>")
	}
	h.raw(`</ul></div><div><h3>Connect</h3>`)
	socialLinks(h, site.Social)
	h.raw(`</div></div></footer>`)
}

func socialLinks(h *html, links []content.SocialLink) {
	h.raw(`<div class="social">`)
	for _, l := range links {
		h.link(l.URL, "social-link", l.Name, strings.HasPrefix(l.URL, "http"))
	}
	h.raw(`</div>`)
}

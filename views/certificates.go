package views

import (
	"github.com/a-h/templ"

	"github.com/Maulik7278/portfolio/content"
)

// Certificates renders every authored certificate.
func Certificates(cfg SiteConfig, site *content.Site) templ.Component {
	meta := PageMeta{
		Title:       "Certificates | " + cfg.Name,
		Description: "Certifications earned by " + site.Owner.Name,
		URL:         buildURL(cfg.URL, "certificates"),
		OGType:      "website",
	}
	body := component(func(h *html) {
		h.raw(`<section class="section page"><div class="section-header">`)
		h.el("h1", "section-title", "Certificates")
		h.el("p", "muted", "Professional certifications and achievements")
		h.raw(`</div>`)
		certificateGrid(h, site.Certificates.Items)
		h.raw(`</section>`)
	})
	return layout(cfg, site, meta, PageCertificates, "", body)
}

func certificateGrid(h *html, certs []content.Certificate) {
	h.raw(`<div class="certificate-grid">`)
	for _, c := range certs {
		h.raw(`<article class="card certificate"><div class="card-head">`)
		h.el("span", "badge outline", c.Issuer)
		h.raw(`</div>`)
		h.el("h3", "card-title", c.Title)
		h.el("p", "issued", c.Issued.String())
		h.el("p", "muted", c.Description)
		h.badges("badge secondary", c.Skills)
		if c.HasCredential() {
			h.link(c.CredentialURL, "button outline small", "View Certificate", true)
		}
		h.raw(`</article>`)
	}
	h.raw(`</div>`)
}

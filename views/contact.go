package views

import (
	"github.com/a-h/templ"

	"github.com/Maulik7278/portfolio/content"
)

// ContactFormID is the element replaced after an in-page submission.
const ContactFormID = "contact-form"

func contactSection(h *html, site *content.Site, form ContactForm) {
	h.raw(`<div class="contact"><div class="contact-info">`)
	h.el("h3", "", "Contact Information")
	h.raw(`<p class="muted">Email</p>`)
	h.link("mailto:"+site.Owner.Email, "contact-email", site.Owner.Email, false)
	if site.Owner.Location != "" {
		h.raw(`<p class="muted">Location</p>`)
		h.el("p", "", site.Owner.Location)
	}
	socialLinks(h, site.Social)
	h.raw(`</div>`)
	h.render(ContactFormFragment(form))
	h.raw(`</div>`)
}

// ContactFormFragment renders the form alone so it can be swapped after a
// submission without reloading the page.
func ContactFormFragment(form ContactForm) templ.Component {
	return component(func(h *html) {
		h.raw(`<form id="` + ContactFormID + `" class="card contact-form" method="post" action="/contact/">`)
		h.raw(`<input type="hidden" name="_csrf" value="`)
		h.text(form.CSRF)
		h.raw(`">`)
		field(h, "name", "Name", "text", form.Draft.Name)
		field(h, "email", "Email", "email", form.Draft.Email)
		field(h, "subject", "Subject", "text", form.Draft.Subject)
		h.raw(`<label for="message">Message</label><textarea id="message" name="message" rows="5" required>`)
		h.text(form.Draft.Message)
		h.raw(`</textarea>`)
		if form.Notice != "" {
			class := "notice"
			if form.Failed {
				class += " error"
			}
			h.raw(`<p class="` + class + `" role="status">`)
			h.text(form.Notice)
			h.raw(`</p>`)
		}
		h.raw(`<button type="submit" class="button">Send Message</button></form>`)
	})
}

func field(h *html, name, label, typ, value string) {
	h.raw(`<label for="` + name + `">` + label + `</label>`)
	h.raw(`<input id="` + name + `" name="` + name + `" type="` + typ + `" value="`)
	h.text(value)
	h.raw(`"`)
	if name != "subject" {
		h.raw(` required`)
	}
	h.raw(`>`)
}

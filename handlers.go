package portfolio

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Maulik7278/portfolio/contact"
	"github.com/Maulik7278/portfolio/content"
	"github.com/Maulik7278/portfolio/live"
	"github.com/Maulik7278/portfolio/nav"
	"github.com/Maulik7278/portfolio/views"
)

// Contact notices that are specific to the HTTP surface.
const (
	missingFieldsNotice = "Please fill in your name, email and message."
	tooManyNotice       = "Too many messages. Please try again later or email directly."
)

// The initial render never waits on GitHub: pages start from an empty
// snapshot and the page script fills them in from /live/.

func (a *App) handleHome(c echo.Context) error {
	form := views.ContactForm{CSRF: CsrfToken(c)}
	return Render(c, views.Home(a.viewConfig(), a.Site, live.Snapshot{}, form))
}

func (a *App) handleProjects(c echo.Context) error {
	return Render(c, views.Projects(a.viewConfig(), a.Site, live.Snapshot{}))
}

func (a *App) handleCertificates(c echo.Context) error {
	return Render(c, views.Certificates(a.viewConfig(), a.Site))
}

// handleContact composes the mailto: URI for a submitted draft. Requests sent
// by the page script (X-Live: true) get the cleared form fragment and the URI
// in X-Mailto; plain form posts are redirected to the URI.
func (a *App) handleContact(c echo.Context) error {
	inPage := c.Request().Header.Get("X-Live") == "true"
	form := views.ContactForm{CSRF: CsrfToken(c)}

	if !a.contactLimiter.Allow(c.RealIP()) {
		form.Notice, form.Failed = tooManyNotice, true
		return a.renderContact(c, http.StatusTooManyRequests, form, inPage)
	}

	draft := contact.Draft{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Subject: c.FormValue("subject"),
		Message: c.FormValue("message"),
	}
	submitted := draft
	uri, err := a.Composer.Submit(c.Request().Context(), &draft)
	switch {
	case errors.Is(err, contact.ErrMissingField):
		form.Draft = submitted
		form.Notice, form.Failed = missingFieldsNotice, true
		return a.renderContact(c, http.StatusUnprocessableEntity, form, inPage)
	case err != nil:
		c.Logger().Warnf("contact: %v", err)
		form.Notice, form.Failed = contact.FailureNotice, true
		return a.renderContact(c, http.StatusOK, form, inPage)
	}

	if !inPage {
		return c.Redirect(http.StatusSeeOther, uri)
	}
	form.Notice = contact.SuccessNotice
	c.Response().Header().Set("X-Mailto", uri)
	return Render(c, views.ContactFormFragment(form))
}

func (a *App) renderContact(c echo.Context, code int, form views.ContactForm, inPage bool) error {
	if inPage {
		return RenderStatus(c, code, views.ContactFormFragment(form))
	}
	return RenderStatus(c, code, views.Home(a.viewConfig(), a.Site, live.Snapshot{}, form))
}

func (a *App) handleResume(c echo.Context) error {
	u := content.ResumeDownloadURL(a.Site.Resume)
	if u == "" {
		return echo.ErrNotFound
	}
	return c.Redirect(http.StatusFound, u)
}

// handleSection redirects to a home page section anchor; unknown sections
// land on the top of the home page.
func (a *App) handleSection(c echo.Context) error {
	sections := nav.Sections(a.Site.SectionIDs())
	return c.Redirect(http.StatusSeeOther, sections.Anchor(c.Param("section")))
}

func (a *App) handleRobots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	if a.Config.AdminEnabled() {
		b.WriteString("Disallow: /admin/\n")
	}
	b.WriteString("Sitemap: " + strings.TrimSuffix(a.Config.URL, "/") + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}

func (a *App) handlePortrait(c echo.Context) error {
	if len(a.portrait) == 0 {
		return echo.ErrNotFound
	}
	return c.Blob(http.StatusOK, "image/jpeg", a.portrait)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewConfig(), a.Site))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.viewConfig(), a.Site))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

package portfolio

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maulik7278/portfolio/analytics"
	"github.com/Maulik7278/portfolio/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.viewConfig(), a.Site, false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c)
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	return RenderStatus(c, http.StatusUnauthorized, views.AdminLogin(a.viewConfig(), a.Site, true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) renderAdminDashboard(c echo.Context) error {
	if a.analyticsStore == nil {
		return Render(c, views.AdminDashboard(a.viewConfig(), a.Site, nil, CsrfToken(c)))
	}
	stats, err := a.analyticsStore.GetStats(c.Request().Context(), analytics.ParseDays(c.QueryParam("days")))
	if err != nil {
		return err
	}
	return Render(c, views.AdminDashboard(a.viewConfig(), a.Site, statsView(stats), CsrfToken(c)))
}

func statsView(s *analytics.Stats) *views.StatsView {
	v := &views.StatsView{
		Days:      s.Days,
		Views:     s.TotalViews,
		Visitors:  s.UniqueVisitors,
		BotVisits: s.BotVisits,
	}
	for _, p := range s.TopPages {
		v.Pages = append(v.Pages, views.PathCount{Path: p.Path, Views: p.Views})
	}
	for _, d := range s.DailyViews {
		v.Daily = append(v.Daily, views.DayCount{Date: d.Date, Views: d.Views})
	}
	return v
}

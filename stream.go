package portfolio

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/Maulik7278/portfolio/github"
	"github.com/Maulik7278/portfolio/live"
	"github.com/Maulik7278/portfolio/views"
)

// Events written on the /live/ stream.
const (
	eventSwap = "swap"
	eventDone = "done"
)

// handleLive streams enrichment fragments for one open page. The stream
// carries at most one swap per slot, then done. A closed connection cancels
// the request context, which unmounts the view and drops late results.
func (a *App) handleLive(c echo.Context) error {
	var (
		opts  live.Options
		repos func([]github.RepositorySummary) templ.Component
	)
	switch c.QueryParam("page") {
	case views.PageHome:
		opts = live.Options{PerPage: github.DefaultPageSize, Limit: github.CompactLimit}
		repos = views.FeaturedProjects
	case views.PageProjects:
		opts = live.Options{PerPage: github.FullPageSize}
		repos = views.ProjectGrid
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown page")
	}
	opts.Logger = c.Logger()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ctx := c.Request().Context()
	view := live.Mount(ctx, a.Source, opts, func(slot live.Slot, snap live.Snapshot) {
		var cmp templ.Component
		switch slot {
		case live.SlotProfile:
			cmp = views.AboutStats(snap.Profile)
		case live.SlotRepositories:
			cmp = repos(snap.Repositories)
		default:
			return
		}
		if err := writeEvent(ctx, res, eventSwap, cmp); err != nil {
			c.Logger().Debugf("live %s: write %s: %v", c.Response().Header().Get(echo.HeaderXRequestID), slot, err)
			return
		}
		res.Flush()
	})
	defer view.Unmount()

	view.Wait()
	if ctx.Err() != nil {
		return nil
	}
	if err := writeEvent(ctx, res, eventDone, nil); err == nil {
		res.Flush()
	}
	return nil
}

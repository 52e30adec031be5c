package analytics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler records page views and serves aggregated stats.
type Handler struct {
	store *Store
	now   func() time.Time
}

// NewHandler creates a new analytics handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store, now: time.Now}
}

// Input limits for recorded values.
const (
	maxPathLen      = 2048
	maxReferrerLen  = 2048
	maxUserAgentLen = 512
)

// Record returns middleware that counts successful GET page views. Requests
// for which skip returns true, and requests sent with DNT: 1, are not
// recorded. Storage errors are logged and never fail the request.
func (h *Handler) Record(skip func(c echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			req := c.Request()
			if req.Method != http.MethodGet || (skip != nil && skip(c)) {
				return err
			}
			if err != nil || c.Response().Status != http.StatusOK || req.Header.Get("DNT") == "1" {
				return err
			}
			h.record(c)
			return err
		}
	}
}

func (h *Handler) record(c echo.Context) {
	req := c.Request()
	path := truncate(req.URL.Path, maxPathLen)
	ua := truncate(req.UserAgent(), maxUserAgentLen)
	ip := c.RealIP()
	now := h.now().UTC()

	if IsBot(ua) {
		bv := &BotVisit{
			BotName:   ExtractBotName(ua),
			IPHash:    h.store.HashIP(ip),
			UserAgent: ua,
			Path:      path,
			Timestamp: now,
		}
		if err := h.store.SaveBotVisit(req.Context(), bv); err != nil {
			c.Logger().Errorf("save bot visit: %v", err)
		}
		return
	}

	browser, os, device := ParseUserAgent(ua)
	v := &Visit{
		VisitorID: h.store.VisitorID(ip, ua),
		IPHash:    h.store.HashIP(ip),
		Browser:   browser,
		OS:        os,
		Device:    device,
		Path:      path,
		Referrer:  CleanReferrer(truncate(req.Referer(), maxReferrerLen)),
		Timestamp: now,
	}
	if err := h.store.SaveVisit(req.Context(), v); err != nil {
		c.Logger().Errorf("save visit: %v", err)
	}
}

// GetStats returns analytics statistics as JSON. The days query parameter
// selects the window (default 30, max 365).
func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.store.GetStats(c.Request().Context(), ParseDays(c.QueryParam("days")))
	if err != nil {
		c.Logger().Errorf("get stats: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, stats)
}

// RegisterRoutes mounts the JSON stats endpoint under /admin/analytics/api/.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	admin := e.Group("/admin/analytics/api")
	admin.Use(authMiddleware)
	admin.GET("/stats", h.GetStats)
}

// ParseDays parses a stats window in days.
func ParseDays(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	switch {
	case err != nil || n <= 0:
		return 30
	case n > 365:
		return 365
	default:
		return n
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

package portfolio

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

// EmbeddedAssets contains the assets shipped with the binary:
// site.css and live.js (section scrolling, enrichment stream, contact form).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// mountAssets serves the embedded assets under /public/; everything else
// under /public/ falls through to the static directory.
func (a *App) mountAssets() {
	e := a.Echo
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS))))
	e.GET("/public/site.css", embeddedHandler)
	e.GET("/public/live.js", embeddedHandler)
	e.Static("/public", a.staticDir)
}

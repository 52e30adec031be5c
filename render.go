package portfolio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// eventLines folds every line ending an event-stream parser recognizes into
// "\n", so a bare CR in rendered text cannot split a data: field.
var eventLines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// writeEvent renders cmp and writes it as one server-sent event. Each line of
// the fragment becomes its own data: field.
func writeEvent(ctx context.Context, w io.Writer, event string, cmp templ.Component) error {
	var buf bytes.Buffer
	if cmp != nil {
		if err := cmp.Render(ctx, &buf); err != nil {
			return fmt.Errorf("render %s event: %w", event, err)
		}
	}
	var b strings.Builder
	b.WriteString("event: " + event + "\n")
	for _, line := range strings.Split(eventLines.Replace(buf.String()), "\n") {
		b.WriteString("data: " + line + "\n")
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

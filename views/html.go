package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// html accumulates the first write error so components read top to bottom.
type html struct {
	ctx context.Context
	w   io.Writer
	err error
}

func component(fn func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) num(n int) {
	h.raw(strconv.Itoa(n))
}

// url writes a sanitized, escaped URL for an href/src attribute.
func (h *html) url(u string) {
	h.text(string(templ.URL(u)))
}

// el writes <tag class="...">text</tag>.
func (h *html) el(tag, class, text string) {
	h.raw("<" + tag)
	if class != "" {
		h.raw(` class="` + class + `"`)
	}
	h.raw(">")
	h.text(text)
	h.raw("</" + tag + ">")
}

func (h *html) render(c templ.Component) {
	if h.err == nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

// link writes an anchor; external links open in a new browsing context.
func (h *html) link(href, class, label string, external bool) {
	h.raw(`<a href="`)
	h.url(href)
	h.raw(`"`)
	if class != "" {
		h.raw(` class="` + class + `"`)
	}
	if external {
		h.raw(` target="_blank" rel="noopener noreferrer"`)
	}
	h.raw(">")
	h.text(label)
	h.raw("</a>")
}

func (h *html) badges(class string, items []string) {
	h.raw(`<div class="badges">`)
	for _, it := range items {
		h.el("span", class, it)
	}
	h.raw(`</div>`)
}

// Package nav computes in-page scroll targets for section links.
package nav

import "strconv"

// HeaderOffset is the height of the fixed navigation bar in pixels.
const HeaderOffset = 80

// Section is a located page section.
type Section struct {
	ID  string
	Top int // offset from the top of the document in pixels
}

// Scroll is one request to move the viewport.
type Scroll struct {
	ID     string
	Top    int
	Smooth bool
}

// Document finds sections by id.
type Document interface {
	Section(id string) (Section, bool)
}

// Scroller moves the viewport.
type Scroller interface {
	ScrollTo(s Scroll)
}

// Target returns the scroll position that brings a section to just below
// the header.
func Target(s Section) int {
	return s.Top - HeaderOffset
}

// ScrollTo smoothly scrolls to the section with the given id. Unknown ids
// are ignored.
func ScrollTo(doc Document, scroller Scroller, id string) bool {
	s, ok := doc.Section(id)
	if !ok {
		return false
	}
	scroller.ScrollTo(Scroll{ID: s.ID, Top: Target(s), Smooth: true})
	return true
}

// Sections is an ordered list of section ids rendered on one page.
type Sections []string

// Section implements Document. Positions are only known to the browser, so
// Top is always zero.
func (ss Sections) Section(id string) (Section, bool) {
	for _, s := range ss {
		if s == id {
			return Section{ID: id}, true
		}
	}
	return Section{}, false
}

// Anchor returns the link to a home page section, or "/" when the section
// does not exist.
func (ss Sections) Anchor(id string) string {
	link := anchorLink("/")
	ScrollTo(ss, &link, id)
	return string(link)
}

// anchorLink scrolls by pointing the browser at a fragment; the page script
// applies HeaderOffset when it lands.
type anchorLink string

func (l *anchorLink) ScrollTo(s Scroll) {
	*l = anchorLink("/#" + s.ID)
}

// OffsetAttr is the data attribute value the page script reads.
func OffsetAttr() string {
	return strconv.Itoa(HeaderOffset)
}

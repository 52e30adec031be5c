package content

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Section identifiers recognised by the renderer.
const (
	SectionHero         = "hero"
	SectionAbout        = "about"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
	SectionCertificates = "certificates"
	SectionContact      = "contact"
)

var knownSections = map[string]struct{}{
	SectionHero:         {},
	SectionAbout:        {},
	SectionSkills:       {},
	SectionProjects:     {},
	SectionCertificates: {},
	SectionContact:      {},
}

// Site is the complete authored content of the portfolio.
type Site struct {
	Owner        Owner           `yaml:"owner"`
	Resume       string          `yaml:"resume"`
	Social       []SocialLink    `yaml:"social"`
	Sections     []Section       `yaml:"sections"`
	Skills       []SkillCategory `yaml:"skills"`
	Certificates Certificates    `yaml:"certificates"`
	Footer       string          `yaml:"footer"`
}

// Owner describes the person the site is about.
type Owner struct {
	Name       string `yaml:"name"`
	Role       string `yaml:"role"`
	Tagline    string `yaml:"tagline"`
	Bio        string `yaml:"bio"`
	Location   string `yaml:"location"`
	Email      string `yaml:"email"`
	Portrait   string `yaml:"portrait"`   // file under the static dir, optional
	Experience string `yaml:"experience"` // e.g. "1+"
}

// SocialLink is an outbound profile link.
type SocialLink struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Section is one block of the home page, rendered in authored order.
type Section struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

// Certificates holds every certificate plus how many the home page previews.
type Certificates struct {
	Preview int           `yaml:"preview"`
	Items   []Certificate `yaml:"items"`
}

// Certificate is a static credential record.
type Certificate struct {
	ID            int       `yaml:"id"`
	Title         string    `yaml:"title"`
	Issuer        string    `yaml:"issuer"`
	Issued        YearMonth `yaml:"issued"`
	Description   string    `yaml:"description"`
	Skills        []string  `yaml:"skills"`
	CredentialURL string    `yaml:"credential"`
}

// HasCredential reports whether the certificate links to a real credential.
// "#" and "" are authoring placeholders.
func (c Certificate) HasCredential() bool {
	u := strings.TrimSpace(c.CredentialURL)
	return u != "" && u != "#"
}

// YearMonth is a date with month precision.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth parses "YYYY-MM".
func ParseYearMonth(s string) (YearMonth, error) {
	y, m, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok || len(y) != 4 || len(m) != 2 {
		return YearMonth{}, fmt.Errorf("invalid year-month %q", s)
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid year in %q", s)
	}
	month, err := strconv.Atoi(m)
	if err != nil || month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("invalid month in %q", s)
	}
	return YearMonth{Year: year, Month: time.Month(month)}, nil
}

// String formats as "May 2024".
func (ym YearMonth) String() string {
	if ym.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d", ym.Month, ym.Year)
}

// IsZero reports whether ym was never set.
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (ym *YearMonth) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseYearMonth(node.Value)
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}

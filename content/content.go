// Package content holds the authored, immutable data behind every page:
// owner profile, skills, certificates, social links and section order.
package content

import (
	_ "embed"
	"fmt"
	"net/mail"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Default returns the content compiled into the binary.
func Default() (*Site, error) {
	return Parse(defaultContent)
}

// Load reads content from path, or the embedded default when path is empty.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(b)
}

// Parse decodes and validates a YAML content document.
func Parse(b []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the content for authoring mistakes.
func (s *Site) Validate() error {
	if strings.TrimSpace(s.Owner.Name) == "" {
		return fmt.Errorf("content: owner name is required")
	}
	if _, err := mail.ParseAddress(s.Owner.Email); err != nil {
		return fmt.Errorf("content: owner email %q: %w", s.Owner.Email, err)
	}
	seen := make(map[string]struct{}, len(s.Sections))
	for _, sec := range s.Sections {
		if _, ok := knownSections[sec.ID]; !ok {
			return fmt.Errorf("content: unknown section %q", sec.ID)
		}
		if _, dup := seen[sec.ID]; dup {
			return fmt.Errorf("content: duplicate section %q", sec.ID)
		}
		seen[sec.ID] = struct{}{}
	}
	for _, cat := range s.Skills {
		if strings.TrimSpace(cat.Category) == "" {
			return fmt.Errorf("content: skill category without a name")
		}
	}
	ids := make(map[int]struct{}, len(s.Certificates.Items))
	for _, c := range s.Certificates.Items {
		if _, dup := ids[c.ID]; dup {
			return fmt.Errorf("content: duplicate certificate id %d", c.ID)
		}
		ids[c.ID] = struct{}{}
		if c.Issued.IsZero() {
			return fmt.Errorf("content: certificate %d has no issue date", c.ID)
		}
	}
	if s.Certificates.Preview < 0 {
		return fmt.Errorf("content: negative certificate preview count")
	}
	return nil
}

// Section returns the authored section with the given id.
func (s *Site) Section(id string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

// SectionIDs returns section ids in render order.
func (s *Site) SectionIDs() []string {
	ids := make([]string, len(s.Sections))
	for i, sec := range s.Sections {
		ids[i] = sec.ID
	}
	return ids
}

// PreviewCertificates returns the certificates shown on the home page.
func (s *Site) PreviewCertificates() []Certificate {
	n := s.Certificates.Preview
	if n == 0 || n > len(s.Certificates.Items) {
		n = len(s.Certificates.Items)
	}
	return s.Certificates.Items[:n]
}

var driveFileID = regexp.MustCompile(`/d/(.*?)/`)

// ResumeDownloadURL turns a Google Drive "view" link into a direct download
// link. Other URLs are returned unchanged.
func ResumeDownloadURL(viewURL string) string {
	if !strings.Contains(viewURL, "drive.google.com") {
		return viewURL
	}
	m := driveFileID.FindStringSubmatch(viewURL)
	if len(m) < 2 || m[1] == "" {
		return viewURL
	}
	return "https://drive.google.com/uc?export=download&id=" + m[1]
}

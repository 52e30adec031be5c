package views

import (
	"github.com/a-h/templ"

	"github.com/Maulik7278/portfolio/content"
	"github.com/Maulik7278/portfolio/github"
	"github.com/Maulik7278/portfolio/live"
)

// Element ids replaced when enrichment data arrives.
const (
	AboutStatsID       = "about-stats"
	FeaturedProjectsID = "featured-projects"
	ProjectGridID      = "project-grid"
)

// Home renders the landing page. Sections follow site.Sections; remote data
// comes only from snap, so an empty snapshot renders every placeholder.
func Home(cfg SiteConfig, site *content.Site, snap live.Snapshot, form ContactForm) templ.Component {
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         buildURL(cfg.URL),
		OGType:      "profile",
	}
	return layout(cfg, site, meta, PageHome, PageHome, HomeSections(cfg, site, snap, form))
}

// HomeSections renders the home page body without the document shell.
func HomeSections(cfg SiteConfig, site *content.Site, snap live.Snapshot, form ContactForm) templ.Component {
	return component(func(h *html) {
		for _, sec := range site.Sections {
			h.raw(`<section id="` + sec.ID + `" class="section section-` + sec.ID + `">`)
			switch sec.ID {
			case content.SectionHero:
				hero(h, cfg, site, sec)
			case content.SectionAbout:
				about(h, site, sec, snap.Profile)
			case content.SectionSkills:
				sectionHeader(h, sec)
				skills(h, site.Skills)
			case content.SectionProjects:
				sectionHeader(h, sec)
				h.render(FeaturedProjects(snap.Repositories))
				h.raw(`<div class="center">`)
				h.link("/projects/", "button outline", "View All Projects", false)
				h.raw(`</div>`)
			case content.SectionCertificates:
				sectionHeader(h, sec)
				certificateGrid(h, site.PreviewCertificates())
				h.raw(`<div class="center">`)
				h.link("/certificates/", "button outline", "View All Certificates", false)
				h.raw(`</div>`)
			case content.SectionContact:
				sectionHeader(h, sec)
				contactSection(h, site, form)
			}
			h.raw(`</section>`)
		}
	})
}

func sectionHeader(h *html, sec content.Section) {
	h.raw(`<div class="section-header">`)
	h.el("h2", "section-title", sec.Title)
	if sec.Subtitle != "" {
		h.el("p", "muted", sec.Subtitle)
	}
	h.raw(`</div>`)
}

func hero(h *html, cfg SiteConfig, site *content.Site, sec content.Section) {
	h.raw(`<div class="hero"><div class="hero-text">`)
	h.el("h1", "hero-title", sec.Title)
	h.el("p", "hero-role", site.Owner.Role)
	h.el("p", "muted", site.Owner.Tagline)
	h.raw(`<div class="hero-actions">`)
	if site.Resume != "" {
		h.link("/resume/", "button", "Download Resume", true)
	}
	h.raw(`<a class="button outline" href="/#contact" data-scroll="contact">Get In Touch</a></div>`)
	socialLinks(h, site.Social)
	h.raw(`</div><div class="hero-portrait">`)
	if cfg.HasPortrait {
		h.raw(`<img src="/portrait.jpg" alt="`)
		h.text(site.Owner.Name)
		h.raw(`">`)
	} else {
		h.el("span", "initials", Initials(site.Owner.Name))
	}
	h.raw(`</div></div>`)
}

func about(h *html, site *content.Site, sec content.Section, profile *github.ProfileSummary) {
	h.raw(`<div class="about"><div class="about-stats-col">`)
	h.el("h3", "about-name", site.Owner.Name)
	h.render(AboutStats(profile))
	if site.Owner.Experience != "" {
		stat(h, site.Owner.Experience, "Years Experience")
	}
	h.raw(`</div><div class="about-bio">`)
	h.el("h2", "section-title", sec.Title)
	h.el("p", "bio", site.Owner.Bio)
	h.raw(`<div class="about-meta">`)
	if site.Owner.Location != "" {
		h.el("span", "location", site.Owner.Location)
	}
	h.el("span", "email", site.Owner.Email)
	h.raw(`</div></div></div>`)
}

// AboutStats renders the two remote counters, "--" while unknown.
func AboutStats(profile *github.ProfileSummary) templ.Component {
	return component(func(h *html) {
		h.raw(`<div id="` + AboutStatsID + `" class="stats">`)
		stat(h, Counter(profile, func(p github.ProfileSummary) int { return p.PublicRepos }), "Public Repos")
		stat(h, Counter(profile, func(p github.ProfileSummary) int { return p.Followers }), "GitHub Followers")
		h.raw(`</div>`)
	})
}

func stat(h *html, value, label string) {
	h.raw(`<div class="stat">`)
	h.el("span", "stat-value", value)
	h.el("span", "stat-label", label)
	h.raw(`</div>`)
}

func skills(h *html, cats []content.SkillCategory) {
	h.raw(`<div class="skill-grid">`)
	for _, cat := range cats {
		h.raw(`<div class="card">`)
		h.el("h3", "card-title", cat.Category)
		h.badges("badge", cat.Items)
		h.raw(`</div>`)
	}
	h.raw(`</div>`)
}

// FeaturedProjects renders the compact project list for the home page.
func FeaturedProjects(repos []github.RepositorySummary) templ.Component {
	return projectList(FeaturedProjectsID, repos, false)
}

package github

import "time"

// ProfileSummary holds the aggregate counters of one account.
type ProfileSummary struct {
	PublicRepos int
	Followers   int
}

// RepositorySummary is the display projection of one repository.
// Description, LiveURL and Language are nil when GitHub has no value.
type RepositorySummary struct {
	ID          int64
	Name        string
	DisplayName string
	Description *string
	SourceURL   string
	LiveURL     *string
	Topics      []string
	Language    *string
	UpdatedAt   time.Time
}

// githubUser is the subset of GET /users/{user} we read.
type githubUser struct {
	PublicRepos *int `json:"public_repos"`
	Followers   *int `json:"followers"`
}

// githubRepository is the subset of GET /users/{user}/repos items we read.
type githubRepository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Homepage    *string   `json:"homepage"`
	Topics      []string  `json:"topics"`
	Language    *string   `json:"language"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package github

import (
	"sort"
	"strings"
)

// ForkMarker excludes repositories whose name contains it.
const ForkMarker = "fork"

// CompactLimit is the number of projects featured on the home page.
const CompactLimit = 2

// Feature filters out fork-marked repositories, orders the rest by most
// recent update and keeps at most limit of them. limit <= 0 keeps all.
// repos is not modified.
func Feature(repos []RepositorySummary, limit int) []RepositorySummary {
	out := make([]RepositorySummary, 0, len(repos))
	for _, r := range repos {
		if strings.Contains(r.Name, ForkMarker) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

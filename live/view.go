// Package live runs the two remote enrichment fetches for one page view and
// reports each successful result exactly once, as long as the view is still
// mounted.
package live

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Maulik7278/portfolio/github"
)

// Source provides the remote data. *github.Client satisfies it.
type Source interface {
	FetchProfile(ctx context.Context) (github.ProfileSummary, error)
	FetchRepositories(ctx context.Context, perPage int) ([]github.RepositorySummary, error)
}

// Logger receives diagnostics about failed fetches. echo.Logger satisfies it.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// Slot names one independently written piece of display state.
type Slot string

const (
	SlotProfile      Slot = "profile"
	SlotRepositories Slot = "repositories"
)

// Options tunes a View.
type Options struct {
	// PerPage is passed to FetchRepositories; <= 0 means the source default.
	PerPage int
	// Limit truncates the featured list; <= 0 keeps every repository.
	Limit  int
	Logger Logger
}

// Snapshot is an immutable copy of the view's display state.
type Snapshot struct {
	Profile           *github.ProfileSummary
	Repositories      []github.RepositorySummary
	RepositoriesKnown bool
}

// View is the enrichment state of one page view.
type View struct {
	ID string

	mu      sync.Mutex
	mounted bool
	ctx     context.Context
	state   Snapshot

	renderMu sync.Mutex
	onChange func(Slot, Snapshot)

	wg sync.WaitGroup
}

// Mount starts the profile and repository fetches. onChange runs after each
// successful write, never concurrently with itself, and never after Unmount.
func Mount(ctx context.Context, src Source, opts Options, onChange func(Slot, Snapshot)) *View {
	v := &View{
		ID:       uuid.NewString(),
		mounted:  true,
		ctx:      ctx,
		onChange: onChange,
	}
	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}

	v.wg.Add(2)
	go func() {
		defer v.wg.Done()
		p, err := src.FetchProfile(ctx)
		if err != nil {
			log.Warnf("live %s: profile unavailable: %v", v.ID, err)
			return
		}
		v.commit(SlotProfile, func(s *Snapshot) { s.Profile = &p })
	}()
	go func() {
		defer v.wg.Done()
		repos, err := src.FetchRepositories(ctx, opts.PerPage)
		if err != nil {
			log.Warnf("live %s: repositories unavailable: %v", v.ID, err)
			return
		}
		featured := github.Feature(repos, opts.Limit)
		v.commit(SlotRepositories, func(s *Snapshot) {
			s.Repositories = featured
			s.RepositoriesKnown = true
		})
	}()
	return v
}

// commit writes one slot if the view is still alive and notifies onChange.
func (v *View) commit(slot Slot, write func(*Snapshot)) {
	v.renderMu.Lock()
	defer v.renderMu.Unlock()

	v.mu.Lock()
	if !v.alive() {
		v.mu.Unlock()
		return
	}
	write(&v.state)
	snap := v.state.clone()
	v.mu.Unlock()

	if v.onChange != nil {
		v.onChange(slot, snap)
	}
}

// alive must be called with mu held.
func (v *View) alive() bool {
	return v.mounted && v.ctx.Err() == nil
}

// Snapshot returns the current display state.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.clone()
}

// Wait blocks until both fetches have finished.
func (v *View) Wait() {
	v.wg.Wait()
}

// Unmount detaches the view; later completions are dropped silently.
// It waits for an in-flight onChange to return.
func (v *View) Unmount() {
	v.renderMu.Lock()
	v.mu.Lock()
	v.mounted = false
	v.mu.Unlock()
	v.renderMu.Unlock()
}

func (s Snapshot) clone() Snapshot {
	out := Snapshot{RepositoriesKnown: s.RepositoriesKnown}
	if s.Profile != nil {
		p := *s.Profile
		out.Profile = &p
	}
	if s.Repositories != nil {
		out.Repositories = append([]github.RepositorySummary(nil), s.Repositories...)
	}
	return out
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...interface{}) {}

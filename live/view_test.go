package live

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/Maulik7278/portfolio/github"
)

// fakeSource blocks each fetch until its release channel is closed.
type fakeSource struct {
	profile      github.ProfileSummary
	profileErr   error
	repos        []github.RepositorySummary
	reposErr     error
	releaseProf  chan struct{}
	releaseRepos chan struct{}
	perPage      int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		profile:      github.ProfileSummary{PublicRepos: 42, Followers: 7},
		releaseProf:  make(chan struct{}),
		releaseRepos: make(chan struct{}),
		repos: []github.RepositorySummary{
			{Name: "a", UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{Name: "b-fork", UpdatedAt: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)},
			{Name: "c", UpdatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
			{Name: "d", UpdatedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func (f *fakeSource) FetchProfile(ctx context.Context) (github.ProfileSummary, error) {
	<-f.releaseProf
	return f.profile, f.profileErr
}

func (f *fakeSource) FetchRepositories(ctx context.Context, perPage int) ([]github.RepositorySummary, error) {
	f.perPage = perPage
	<-f.releaseRepos
	if f.reposErr != nil {
		return nil, f.reposErr
	}
	return f.repos, nil
}

type recorder struct {
	mu    sync.Mutex
	slots []Slot
	last  Snapshot
}

func (r *recorder) record(slot Slot, s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots = append(r.slots, slot)
	r.last = s
}

type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *captureLogger) Warnf(format string, args ...interface{}) {
	l.mu.Lock()
	l.lines = append(l.lines, format)
	l.mu.Unlock()
}

func TestMountStartsWithUnknownState(t *testing.T) {
	src := newFakeSource()
	v := Mount(context.Background(), src, Options{}, nil)
	s := v.Snapshot()
	if s.Profile != nil || s.RepositoriesKnown || len(s.Repositories) != 0 {
		t.Errorf("initial snapshot = %+v, want unknown", s)
	}
	if v.ID == "" {
		t.Error("view should have an id")
	}
	close(src.releaseProf)
	close(src.releaseRepos)
	v.Wait()
}

func TestBothSlotsArriveOnce(t *testing.T) {
	src := newFakeSource()
	rec := &recorder{}
	v := Mount(context.Background(), src, Options{PerPage: 6, Limit: github.CompactLimit}, rec.record)
	close(src.releaseProf)
	close(src.releaseRepos)
	v.Wait()

	if len(rec.slots) != 2 {
		t.Fatalf("onChange calls = %v, want 2", rec.slots)
	}
	if src.perPage != 6 {
		t.Errorf("perPage = %d, want 6", src.perPage)
	}
	s := v.Snapshot()
	if s.Profile == nil || s.Profile.PublicRepos != 42 || s.Profile.Followers != 7 {
		t.Errorf("Profile = %+v", s.Profile)
	}
	if !s.RepositoriesKnown || len(s.Repositories) != 2 {
		t.Fatalf("Repositories = %+v", s.Repositories)
	}
	if s.Repositories[0].Name != "c" || s.Repositories[1].Name != "d" {
		t.Errorf("featured = %s,%s; want c,d", s.Repositories[0].Name, s.Repositories[1].Name)
	}
	if !reflect.DeepEqual(rec.last, s) {
		t.Errorf("last onChange snapshot differs from final state")
	}
}

func TestCompletionOrderDoesNotMatter(t *testing.T) {
	run := func(profileFirst bool) Snapshot {
		src := newFakeSource()
		done := make(chan Slot, 2)
		v := Mount(context.Background(), src, Options{Limit: github.CompactLimit}, func(slot Slot, _ Snapshot) {
			done <- slot
		})
		if profileFirst {
			close(src.releaseProf)
			<-done
			close(src.releaseRepos)
		} else {
			close(src.releaseRepos)
			<-done
			close(src.releaseProf)
		}
		v.Wait()
		return v.Snapshot()
	}
	a, b := run(true), run(false)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("snapshots differ by completion order:\n%+v\n%+v", a, b)
	}
}

func TestFailureLeavesSlotUnknown(t *testing.T) {
	src := newFakeSource()
	src.profileErr = github.ErrUnavailable
	log := &captureLogger{}
	rec := &recorder{}
	v := Mount(context.Background(), src, Options{Logger: log}, rec.record)
	close(src.releaseProf)
	close(src.releaseRepos)
	v.Wait()

	s := v.Snapshot()
	if s.Profile != nil {
		t.Errorf("Profile = %+v, want nil", s.Profile)
	}
	if !s.RepositoriesKnown {
		t.Error("repository fetch should succeed independently")
	}
	if len(rec.slots) != 1 || rec.slots[0] != SlotRepositories {
		t.Errorf("onChange slots = %v", rec.slots)
	}
	if len(log.lines) != 1 {
		t.Errorf("warnings = %d, want 1", len(log.lines))
	}
}

func TestBothFail(t *testing.T) {
	src := newFakeSource()
	src.profileErr = errors.New("boom")
	src.reposErr = errors.New("boom")
	called := false
	v := Mount(context.Background(), src, Options{}, func(Slot, Snapshot) { called = true })
	close(src.releaseProf)
	close(src.releaseRepos)
	v.Wait()
	if called {
		t.Error("onChange must not run when every fetch fails")
	}
	if s := v.Snapshot(); s.Profile != nil || s.RepositoriesKnown {
		t.Errorf("snapshot = %+v", s)
	}
}

func TestUnmountDropsLateResults(t *testing.T) {
	src := newFakeSource()
	called := false
	v := Mount(context.Background(), src, Options{}, func(Slot, Snapshot) { called = true })
	v.Unmount()
	v.Unmount()
	close(src.releaseProf)
	close(src.releaseRepos)
	v.Wait()
	if called {
		t.Error("onChange ran after Unmount")
	}
	if s := v.Snapshot(); s.Profile != nil || s.RepositoriesKnown {
		t.Errorf("state written after Unmount: %+v", s)
	}
}

func TestCancelledContextDropsResults(t *testing.T) {
	src := newFakeSource()
	ctx, cancel := context.WithCancel(context.Background())
	called := false
	v := Mount(ctx, src, Options{}, func(Slot, Snapshot) { called = true })
	cancel()
	close(src.releaseProf)
	close(src.releaseRepos)
	v.Wait()
	if called {
		t.Error("onChange ran after the page context ended")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	src := newFakeSource()
	v := Mount(context.Background(), src, Options{}, nil)
	close(src.releaseProf)
	close(src.releaseRepos)
	v.Wait()

	s := v.Snapshot()
	s.Profile.Followers = 1000
	s.Repositories[0].Name = "mutated"
	again := v.Snapshot()
	if again.Profile.Followers != 7 || again.Repositories[0].Name == "mutated" {
		t.Error("Snapshot exposes internal state")
	}
}

package loader

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/api"
	"github.com/Zachkp/folio/internal/portfolio"
)

type fakeFetcher struct {
	calls atomic.Int32

	info        portfolio.BasicInfo
	projects    []portfolio.Project
	experiences []portfolio.Experience
	skills      []portfolio.Skill

	infoErr, projectsErr, experiencesErr, skillsErr error
	gotIdentity                                     atomic.Value
}

func (f *fakeFetcher) BasicInfo(_ context.Context, id portfolio.Identity) (portfolio.BasicInfo, error) {
	f.calls.Add(1)
	f.gotIdentity.Store(id)
	return f.info, f.infoErr
}

func (f *fakeFetcher) Projects(_ context.Context, id portfolio.Identity) ([]portfolio.Project, error) {
	f.calls.Add(1)
	return f.projects, f.projectsErr
}

func (f *fakeFetcher) Experiences(_ context.Context, id portfolio.Identity) ([]portfolio.Experience, error) {
	f.calls.Add(1)
	return f.experiences, f.experiencesErr
}

func (f *fakeFetcher) Skills(_ context.Context, id portfolio.Identity) ([]portfolio.Skill, error) {
	f.calls.Add(1)
	return f.skills, f.skillsErr
}

type collected struct {
	mu          sync.Mutex
	info        *portfolio.BasicInfo
	projects    []portfolio.Project
	experiences []portfolio.Experience
	skills      []portfolio.Skill
	called      map[string]bool
}

func collect(c *collected) Targets {
	c.called = make(map[string]bool)
	mark := func(section string) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.called[section] = true
	}
	return Targets{
		BasicInfo:   func(i portfolio.BasicInfo) { c.info = &i; mark("basic-info") },
		Projects:    func(p []portfolio.Project) { c.projects = p; mark("projects") },
		Experiences: func(e []portfolio.Experience) { c.experiences = e; mark("experiences") },
		Skills:      func(s []portfolio.Skill) { c.skills = s; mark("skills") },
	}
}

func TestLoadAll(t *testing.T) {
	f := &fakeFetcher{
		info:        portfolio.BasicInfo{Name: "Jane"},
		projects:    []portfolio.Project{{Name: "A"}},
		experiences: []portfolio.Experience{{Role: "Dev"}},
		skills:      []portfolio.Skill{{Technologies: "Go"}},
	}
	var c collected
	id := portfolio.Identity{Email: "jane@example.com"}

	New(f).Load(context.Background(), id, collect(&c))

	assert.Equal(t, int32(4), f.calls.Load())
	assert.Equal(t, id, f.gotIdentity.Load())
	require.NotNil(t, c.info)
	assert.Equal(t, "Jane", c.info.Name)
	assert.Len(t, c.projects, 1)
	assert.Len(t, c.experiences, 1)
	assert.Len(t, c.skills, 1)
}

func TestLoadFailuresAreIndependent(t *testing.T) {
	f := &fakeFetcher{
		infoErr:        &api.StatusError{Path: api.BasicInfoPath, Status: http.StatusNotFound},
		projects:       []portfolio.Project{{Name: "A"}},
		experiencesErr: errors.New("connection refused"),
		skills:         []portfolio.Skill{},
	}
	var c collected

	New(f).Load(context.Background(), portfolio.Identity{Mobile: "555"}, collect(&c))

	assert.Equal(t, int32(4), f.calls.Load())
	assert.False(t, c.called["basic-info"])
	assert.True(t, c.called["projects"])
	assert.False(t, c.called["experiences"])
	assert.True(t, c.called["skills"])
}

func TestLoadRecoversTargetPanic(t *testing.T) {
	f := &fakeFetcher{skills: []portfolio.Skill{{Technologies: "Go"}}}
	var got []portfolio.Skill

	New(f).Load(context.Background(), portfolio.Identity{Email: "a@b.c"}, Targets{
		Projects: func([]portfolio.Project) { panic("boom") },
		Skills:   func(s []portfolio.Skill) { got = s },
	})

	assert.Equal(t, int32(2), f.calls.Load(), "nil targets are not fetched")
	assert.Len(t, got, 1)
}

func TestLoadWithoutIdentity(t *testing.T) {
	f := &fakeFetcher{}
	var c collected

	New(f).Load(context.Background(), portfolio.Identity{}, collect(&c))

	assert.Equal(t, int32(0), f.calls.Load())
	assert.Empty(t, c.called)
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&api.StatusError{Status: http.StatusNotFound}))
	assert.False(t, IsNotFound(&api.StatusError{Status: http.StatusInternalServerError}))
	assert.False(t, IsNotFound(errors.New("x")))
}

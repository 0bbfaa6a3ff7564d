// Package loader fetches the four portfolio resources for one identity and
// hands each successful response to its renderer.
package loader

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/Zachkp/folio/internal/api"
	"github.com/Zachkp/folio/internal/portfolio"
)

// Fetcher is the portfolio API as seen by the loader.
type Fetcher interface {
	BasicInfo(ctx context.Context, id portfolio.Identity) (portfolio.BasicInfo, error)
	Projects(ctx context.Context, id portfolio.Identity) ([]portfolio.Project, error)
	Experiences(ctx context.Context, id portfolio.Identity) ([]portfolio.Experience, error)
	Skills(ctx context.Context, id portfolio.Identity) ([]portfolio.Skill, error)
}

// Targets receives each resource once it has loaded. A nil target skips the
// fetch for that resource. Targets run on the fetching goroutine and must
// only write state of their own section.
type Targets struct {
	BasicInfo   func(portfolio.BasicInfo)
	Projects    func([]portfolio.Project)
	Experiences func([]portfolio.Experience)
	Skills      func([]portfolio.Skill)
}

// Loader issues the section fetches.
type Loader struct {
	Fetcher Fetcher
}

// New creates a Loader over f.
func New(f Fetcher) *Loader {
	return &Loader{Fetcher: f}
}

type requestIDKey struct{}

// WithRequestID tags ctx so loader log lines can be correlated with the
// request that caused them.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Load fetches every resource that has a target, concurrently. Each fetch is
// handled on its own: a failure is logged and that target is not called,
// while the others proceed. Load returns when all fetches are done.
func (l *Loader) Load(ctx context.Context, id portfolio.Identity, t Targets) {
	if id.IsZero() {
		log.Printf("loader: no identity, nothing to load")
		return
	}

	var wg sync.WaitGroup
	run := func(section string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("loader: [%s] %s: panic: %v", RequestID(ctx), section, r)
				}
			}()
			if err := fn(); err != nil {
				logFailure(ctx, section, id, err)
			}
		}()
	}

	if t.BasicInfo != nil {
		run("basic-info", func() error {
			info, err := l.Fetcher.BasicInfo(ctx, id)
			if err != nil {
				return err
			}
			t.BasicInfo(info)
			return nil
		})
	}
	if t.Projects != nil {
		run("projects", func() error {
			projects, err := l.Fetcher.Projects(ctx, id)
			if err != nil {
				return err
			}
			t.Projects(projects)
			return nil
		})
	}
	if t.Experiences != nil {
		run("experiences", func() error {
			experiences, err := l.Fetcher.Experiences(ctx, id)
			if err != nil {
				return err
			}
			t.Experiences(experiences)
			return nil
		})
	}
	if t.Skills != nil {
		run("skills", func() error {
			skills, err := l.Fetcher.Skills(ctx, id)
			if err != nil {
				return err
			}
			t.Skills(skills)
			return nil
		})
	}

	wg.Wait()
}

// IsNotFound reports whether err is the API saying the portfolio does not
// exist.
func IsNotFound(err error) bool {
	var statusErr *api.StatusError
	return errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound
}

func logFailure(ctx context.Context, section string, id portfolio.Identity, err error) {
	if errors.Is(err, context.Canceled) {
		log.Printf("loader: [%s] %s: canceled", RequestID(ctx), section)
		return
	}
	if IsNotFound(err) {
		log.Printf("loader: [%s] %s: no portfolio for %q", RequestID(ctx), section, id.Key())
		return
	}
	log.Printf("loader: [%s] error loading %s: %v", RequestID(ctx), section, err)
}

// Package views assembles read models for the terminal screens. Each
// view fetches its independent data concurrently; a failed fetch is
// recorded as a problem and never aborts its siblings, so screens can
// render with partial data.
package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/learnhub-io/learnhub-cli/internal/api"
)

// Loader builds views from the remote gateway.
type Loader struct {
	client *api.Client
}

// NewLoader returns a view loader over the given gateway client.
func NewLoader(client *api.Client) *Loader {
	return &Loader{client: client}
}

// group runs independent fetches and collects their failures. Each
// fetch writes its result into captured variables; the group owns the
// problems slice until Wait returns.
type group struct {
	wg sync.WaitGroup

	mu       sync.Mutex
	problems []error
}

// Go runs fn in its own goroutine, recording a returned error as a
// problem instead of propagating it.
func (g *group) Go(fn func() error) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := fn(); err != nil {
			g.mu.Lock()
			g.problems = append(g.problems, err)
			g.mu.Unlock()
		}
	}()
}

// Wait blocks until every fetch settles and returns the problems in
// completion order.
func (g *group) Wait() []error {
	g.wg.Wait()
	return g.problems
}

// EnrolledCourseIDs fetches every enrollment of the caller and returns
// the enrolled course ids.
func (l *Loader) EnrolledCourseIDs(ctx context.Context) ([]int64, error) {
	enrollments, err := allPages(ctx, l.client.MyEnrollments)
	if err != nil {
		return nil, fmt.Errorf("enrollments: %w", err)
	}
	ids := make([]int64, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.CourseID)
	}
	return ids, nil
}

// allPages drains a paged endpoint into a single slice.
func allPages[T any](ctx context.Context, fetch func(context.Context, api.PageParams) (api.Page[T], error)) ([]T, error) {
	var out []T
	params := api.PageParams{Page: 0, Size: 50}
	for {
		page, err := fetch(ctx, params)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Content...)
		params.Page++
		if params.Page >= page.TotalPages || len(page.Content) == 0 {
			return out, nil
		}
	}
}

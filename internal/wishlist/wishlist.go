// Package wishlist keeps a per-user set of saved courses, unique by
// course id, with insertion order preserved for display.
package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/learnhub-io/learnhub-cli/internal/api"
	"github.com/learnhub-io/learnhub-cli/internal/platform/storage"
)

// Store persists wishlist entries.
type Store interface {
	// Courses returns all saved courses in insertion order.
	Courses(ctx context.Context) ([]api.Course, error)
	// Add saves a course. Returns false if it was already present.
	Add(ctx context.Context, course api.Course) (bool, error)
	// Remove deletes a course by id. Returns false if it was not present.
	Remove(ctx context.Context, courseID int64) (bool, error)
	// Contains reports whether a course is saved.
	Contains(ctx context.Context, courseID int64) (bool, error)
}

// LocalStore keeps the wishlist in memory and mirrors every mutation
// to the state store under a fixed key. Absent or corrupt persisted
// state is treated as an empty wishlist, never an error.
type LocalStore struct {
	state storage.Store

	mu      sync.Mutex
	courses []api.Course
}

// NewLocalStore loads the persisted wishlist and returns a store
// backed by it.
func NewLocalStore(ctx context.Context, state storage.Store) (*LocalStore, error) {
	s := &LocalStore{state: state}

	raw, ok, err := state.Get(ctx, storage.KeyWishlist)
	if err != nil {
		return nil, fmt.Errorf("load wishlist: %w", err)
	}
	if ok {
		var courses []api.Course
		if err := json.Unmarshal(raw, &courses); err != nil {
			slog.Warn("wishlist state is corrupt, starting empty", "error", err)
		} else {
			s.courses = courses
		}
	}
	return s, nil
}

func (s *LocalStore) Courses(ctx context.Context) ([]api.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]api.Course, len(s.courses))
	copy(out, s.courses)
	return out, nil
}

func (s *LocalStore) Add(ctx context.Context, course api.Course) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.courses {
		if c.ID == course.ID {
			return false, nil
		}
	}
	s.courses = append(s.courses, course)
	if err := s.persist(ctx); err != nil {
		// keep memory and durable state in step so a retry can succeed
		s.courses = s.courses[:len(s.courses)-1]
		return false, err
	}
	return true, nil
}

func (s *LocalStore) Remove(ctx context.Context, courseID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.courses {
		if c.ID == courseID {
			prev := s.courses
			next := make([]api.Course, 0, len(prev)-1)
			next = append(next, prev[:i]...)
			next = append(next, prev[i+1:]...)
			s.courses = next
			if err := s.persist(ctx); err != nil {
				s.courses = prev
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *LocalStore) Contains(ctx context.Context, courseID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.courses {
		if c.ID == courseID {
			return true, nil
		}
	}
	return false, nil
}

// persist writes the current list through to the state store.
// Callers must hold s.mu.
func (s *LocalStore) persist(ctx context.Context) error {
	courses := s.courses
	if courses == nil {
		courses = []api.Course{}
	}
	raw, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("encode wishlist: %w", err)
	}
	if err := s.state.Set(ctx, storage.KeyWishlist, raw); err != nil {
		return fmt.Errorf("persist wishlist: %w", err)
	}
	return nil
}

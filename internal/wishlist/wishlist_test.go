package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/learnhub-io/learnhub-cli/internal/api"
	"github.com/learnhub-io/learnhub-cli/internal/platform/storage"
)

func TestLocalStore_AddRemoveContains(t *testing.T) {
	ctx := context.Background()
	state := storage.NewMemory()

	s, err := NewLocalStore(ctx, state)
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}

	course := api.Course{ID: 7, Title: "Go Fundamentals"}
	added, err := s.Add(ctx, course)
	if err != nil || !added {
		t.Fatalf("Add() = %v, %v, want true, nil", added, err)
	}

	found, err := s.Contains(ctx, 7)
	if err != nil || !found {
		t.Errorf("Contains(7) = %v, %v, want true, nil", found, err)
	}

	// adding the same course again is a no-op
	added, err = s.Add(ctx, course)
	if err != nil || added {
		t.Errorf("Add() second time = %v, %v, want false, nil", added, err)
	}

	removed, err := s.Remove(ctx, 7)
	if err != nil || !removed {
		t.Fatalf("Remove(7) = %v, %v, want true, nil", removed, err)
	}
	found, _ = s.Contains(ctx, 7)
	if found {
		t.Error("Contains(7) after remove = true, want false")
	}

	removed, err = s.Remove(ctx, 7)
	if err != nil || removed {
		t.Errorf("Remove(7) second time = %v, %v, want false, nil", removed, err)
	}
}

func TestLocalStore_WritesThrough(t *testing.T) {
	ctx := context.Background()
	state := storage.NewMemory()

	s, err := NewLocalStore(ctx, state)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(ctx, api.Course{ID: 1, Title: "First"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(ctx, api.Course{ID: 2, Title: "Second"}); err != nil {
		t.Fatal(err)
	}

	// a new store over the same state sees the same list
	reopened, err := NewLocalStore(ctx, state)
	if err != nil {
		t.Fatal(err)
	}
	courses, err := reopened.Courses(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(courses) != 2 || courses[0].ID != 1 || courses[1].ID != 2 {
		t.Errorf("courses = %+v, want ids [1 2]", courses)
	}
}

func TestLocalStore_CorruptStateStartsEmpty(t *testing.T) {
	ctx := context.Background()
	state := storage.NewMemory()
	if err := state.Set(ctx, storage.KeyWishlist, []byte(`{"not":"a list"}`)); err != nil {
		t.Fatal(err)
	}

	s, err := NewLocalStore(ctx, state)
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v, want fail-open", err)
	}
	courses, err := s.Courses(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(courses) != 0 {
		t.Errorf("courses = %+v, want empty", courses)
	}
}

// failingStore wraps a Memory store and fails writes on demand.
type failingStore struct {
	*storage.Memory
	failSet bool
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errFullDisk
	}
	return f.Memory.Set(ctx, key, value)
}

var errFullDisk = errors.New("disk full")

func TestLocalStore_AddRollsBackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	state := &failingStore{Memory: storage.NewMemory()}

	s, err := NewLocalStore(ctx, state)
	if err != nil {
		t.Fatal(err)
	}

	state.failSet = true
	added, err := s.Add(ctx, api.Course{ID: 7, Title: "Go Fundamentals"})
	if added || !errors.Is(err, errFullDisk) {
		t.Fatalf("Add() = %v, %v, want false with the persist error", added, err)
	}
	if found, _ := s.Contains(ctx, 7); found {
		t.Fatal("Contains(7) = true after a failed Add")
	}

	// the retry succeeds once the store recovers
	state.failSet = false
	added, err = s.Add(ctx, api.Course{ID: 7, Title: "Go Fundamentals"})
	if err != nil || !added {
		t.Fatalf("Add() retry = %v, %v, want true, nil", added, err)
	}
}

func TestLocalStore_RemoveRollsBackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	state := &failingStore{Memory: storage.NewMemory()}

	s, err := NewLocalStore(ctx, state)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(ctx, api.Course{ID: 7}); err != nil {
		t.Fatal(err)
	}

	state.failSet = true
	removed, err := s.Remove(ctx, 7)
	if removed || !errors.Is(err, errFullDisk) {
		t.Fatalf("Remove() = %v, %v, want false with the persist error", removed, err)
	}
	if found, _ := s.Contains(ctx, 7); !found {
		t.Fatal("Contains(7) = false after a failed Remove")
	}

	state.failSet = false
	removed, err = s.Remove(ctx, 7)
	if err != nil || !removed {
		t.Fatalf("Remove() retry = %v, %v, want true, nil", removed, err)
	}
}

func TestLocalStore_PersistsEmptyListAfterLastRemove(t *testing.T) {
	ctx := context.Background()
	state := storage.NewMemory()

	s, err := NewLocalStore(ctx, state)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(ctx, api.Course{ID: 3}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Remove(ctx, 3); err != nil {
		t.Fatal(err)
	}

	raw, ok, err := state.Get(ctx, storage.KeyWishlist)
	if err != nil || !ok {
		t.Fatalf("Get(wishlist) = ok=%v, err=%v", ok, err)
	}
	var courses []api.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		t.Fatalf("persisted wishlist is not a JSON list: %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("persisted courses = %+v, want empty list", courses)
	}
}

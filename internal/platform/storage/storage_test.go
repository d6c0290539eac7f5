package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// stores returns every Store implementation that needs no external service.
func stores(t *testing.T) map[string]Store {
	t.Helper()

	file, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}

	return map[string]Store{
		"memory": NewMemory(),
		"file":   file,
	}
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, _ := s.Get(ctx, KeyToken); ok {
				t.Fatal("Get() on empty store reported presence")
			}

			if err := s.Set(ctx, KeyToken, []byte(`"abc123"`)); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			v, ok, err := s.Get(ctx, KeyToken)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if !ok || string(v) != `"abc123"` {
				t.Errorf("Get() = %q, %v; want %q, true", v, ok, `"abc123"`)
			}

			if err := s.Delete(ctx, KeyToken); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, ok, _ := s.Get(ctx, KeyToken); ok {
				t.Error("Get() after Delete() reported presence")
			}

			// deleting an absent key is fine
			if err := s.Delete(ctx, "nope"); err != nil {
				t.Errorf("Delete(absent) error = %v", err)
			}
		})
	}
}

func TestFile_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}
	if err := s.Set(ctx, KeyIdentity, []byte(`{"id":1,"username":"ann"}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	reopened, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile() reopen error = %v", err)
	}
	v, ok, err := reopened.Get(ctx, KeyIdentity)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || string(v) != `{"id":1,"username":"ann"}` {
		t.Errorf("Get() after reopen = %q, %v", v, ok)
	}
}

func TestFile_CorruptStateStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, stateFileName), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile() with corrupt state error = %v", err)
	}
	if _, ok, _ := s.Get(context.Background(), KeyWishlist); ok {
		t.Error("corrupt state yielded a value")
	}
}

func TestFile_RejectsInvalidJSON(t *testing.T) {
	s, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}
	if err := s.Set(context.Background(), KeyToken, []byte("raw-token")); err == nil {
		t.Error("Set() accepted a non-JSON value")
	}
}

func TestParseRedisURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid", "redis://localhost:6379", false},
		{"empty", "", true},
		{"invalid", "not-a-url", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRedisURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRedisURL() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package path

import (
	"os"
	"path/filepath"
	"testing"
)

const webPathYAML = `category: web-development
title: Web Development Path
description: From zero to full stack.
estimated_duration: 6 months
difficulty: Beginner
stages:
  - title: Foundations
    description: HTML, CSS and friends.
    courses:
      - id: 1
        title: HTML Basics
        skills: [html, semantics]
      - id: 2
        title: CSS Basics
        skills: [css]
  - title: Programming
    courses:
      - id: 3
        title: JavaScript
`

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoader_LoadsCatalog(t *testing.T) {
	dir := writeCatalog(t, "web.yaml", webPathYAML)

	loader, err := NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	p, ok := loader.Get("web-development")
	if !ok {
		t.Fatal("Get(web-development) not found")
	}
	if p.Title != "Web Development Path" || p.Difficulty != "Beginner" {
		t.Errorf("path = %+v", p)
	}
	if len(p.Stages) != 2 {
		t.Fatalf("len(stages) = %d, want 2", len(p.Stages))
	}
	if len(p.Stages[0].Courses) != 2 || p.Stages[0].Courses[0].ID != 1 {
		t.Errorf("stage 0 courses = %+v", p.Stages[0].Courses)
	}
	if got := p.Stages[0].Courses[0].Skills; len(got) != 2 || got[0] != "html" {
		t.Errorf("skills = %v", got)
	}
	if len(loader.Categories()) != 1 {
		t.Errorf("Categories() = %v", loader.Categories())
	}
}

func TestLoader_UnknownCategory(t *testing.T) {
	dir := writeCatalog(t, "web.yaml", webPathYAML)

	loader, err := NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	if _, ok := loader.Get("data-science"); ok {
		t.Error("Get(data-science) unexpectedly found")
	}
}

func TestLoader_RejectsInvalidCatalog(t *testing.T) {
	// stages missing entirely
	dir := writeCatalog(t, "broken.yaml", "category: broken\ntitle: Broken\n")

	if _, err := NewLoader(dir); err == nil {
		t.Fatal("NewLoader() accepted a catalog without stages")
	}
}

func TestLoader_RejectsCourseWithoutID(t *testing.T) {
	dir := writeCatalog(t, "broken.yaml", `category: broken
title: Broken
stages:
  - title: S1
    courses:
      - title: No ID Here
`)

	if _, err := NewLoader(dir); err == nil {
		t.Fatal("NewLoader() accepted a course without an id")
	}
}

func TestLoader_IgnoresNonYAML(t *testing.T) {
	dir := writeCatalog(t, "web.yaml", webPathYAML)
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# notes"), 0o600); err != nil {
		t.Fatal(err)
	}

	loader, err := NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	if len(loader.Categories()) != 1 {
		t.Errorf("Categories() = %v", loader.Categories())
	}
}

func TestLoader_PathCourses(t *testing.T) {
	dir := writeCatalog(t, "web.yaml", webPathYAML)

	loader, err := NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	p, _ := loader.Get("web-development")
	courses := p.Courses()
	if len(courses) != 3 || courses[2].ID != 3 {
		t.Errorf("Courses() = %+v", courses)
	}
}

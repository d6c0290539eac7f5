package path

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// catalogSchema validates a learning-path document before decoding. Stage
// and course order in the document is authoritative.
const catalogSchema = `{
	"type": "object",
	"required": ["category", "title", "stages"],
	"properties": {
		"category": {"type": "string", "minLength": 1},
		"title": {"type": "string", "minLength": 1},
		"description": {"type": "string"},
		"estimated_duration": {"type": "string"},
		"difficulty": {"type": "string"},
		"stages": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["title", "courses"],
				"properties": {
					"title": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"courses": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["id", "title"],
							"properties": {
								"id": {"type": "integer"},
								"title": {"type": "string", "minLength": 1},
								"description": {"type": "string"},
								"skills": {"type": "array", "items": {"type": "string"}}
							}
						}
					}
				}
			}
		}
	}
}`

// Loader loads and caches learning-path catalogs from the filesystem.
type Loader struct {
	rootDir string
	mu      sync.RWMutex
	paths   map[string]LearningPath
}

// NewLoader creates a loader and reads every catalog under rootDir.
func NewLoader(rootDir string) (*Loader, error) {
	l := &Loader{
		rootDir: rootDir,
		paths:   make(map[string]LearningPath),
	}

	if err := l.loadAll(); err != nil {
		return nil, fmt.Errorf("loading learning paths: %w", err)
	}

	slog.Info("learning paths loaded", "paths", len(l.paths))
	return l, nil
}

// Get returns the path for a category.
func (l *Loader) Get(category string) (LearningPath, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.paths[category]
	return p, ok
}

// Categories returns every loaded category.
func (l *Loader) Categories() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.paths))
	for c := range l.paths {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (l *Loader) loadAll() error {
	return filepath.Walk(l.rootDir, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(p, ".yaml") && !strings.HasSuffix(p, ".yml") {
			return nil
		}
		return l.loadPath(p)
	})
}

func (l *Loader) loadPath(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", file, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validating %s: %w", file, err)
	}
	if !result.Valid() {
		var problems []string
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return fmt.Errorf("invalid learning path %s: %s", file, strings.Join(problems, "; "))
	}

	var path LearningPath
	if err := yaml.Unmarshal(data, &path); err != nil {
		return fmt.Errorf("decoding %s: %w", file, err)
	}

	l.mu.Lock()
	l.paths[path.Category] = path
	l.mu.Unlock()
	return nil
}

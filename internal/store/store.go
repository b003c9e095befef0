// Package store persists dashboard layouts as JSON files, one file per
// dashboard, under a layout directory. The store moves bytes only; all
// geometry decisions belong to the grid package.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wcatz/widget-grid/internal/grid"
)

// Layout is one dashboard's stored arrangement: its column count and the
// widget rectangles. A widget absent from the list is not on the dashboard.
type Layout struct {
	Cols    int           `json:"cols"`
	Widgets []grid.Widget `json:"widgets"`
}

// Store reads and writes layout files under a single directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating layout dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads a named layout. Duplicate widget IDs in the file are rejected.
func (s *Store) Load(name string) (Layout, error) {
	path, err := s.path(name)
	if err != nil {
		return Layout{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout '%s': %w", name, err)
	}
	return Decode(data)
}

// Save writes a named layout, pretty-printed with a trailing newline.
func (s *Store) Save(name string, l Layout) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	data, err := Encode(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing layout '%s': %w", name, err)
	}
	return nil
}

// List returns the names of all stored layouts, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing layouts: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// path validates a layout name and maps it to a file path. Names are plain
// identifiers; path separators and dot-prefixed names are rejected so a
// request cannot escape the layout directory.
func (s *Store) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid layout name '%s'", name)
	}
	return filepath.Join(s.dir, name+".json"), nil
}

// Decode parses layout JSON and checks widget identity.
func Decode(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parsing layout: %w", err)
	}
	seen := make(map[string]bool, len(l.Widgets))
	for _, w := range l.Widgets {
		if w.ID == "" {
			return Layout{}, fmt.Errorf("layout has a widget without an id")
		}
		if seen[w.ID] {
			return Layout{}, fmt.Errorf("duplicate widget id '%s'", w.ID)
		}
		seen[w.ID] = true
	}
	if l.Cols == 0 {
		l.Cols = grid.DefaultCols
	}
	return l, nil
}

// Encode renders layout JSON the way it is stored on disk.
func Encode(l Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling layout: %w", err)
	}
	return append(data, '\n'), nil
}

// Rects extracts the bare rectangles of a layout, the shape the engine's
// free-position search takes.
func (l Layout) Rects() []grid.Rect {
	rects := make([]grid.Rect, len(l.Widgets))
	for i, w := range l.Widgets {
		rects[i] = w.Rect
	}
	return rects
}

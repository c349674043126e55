package pkg

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Cell is one occupied grid position of a shape.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is the declared extent of a shape. It is informational only:
// rendering always derives the real extent from the cell list, since
// cells are allowed to fall outside [0, w) x [0, h).
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Shape is a named, immutable list of cells plus its declared size.
type Shape struct {
	Name  string
	Size  Size
	Cells []Cell
}

// PatternStore maps shape names to shapes. It is built once at startup
// and read-only afterwards.
type PatternStore struct {
	shapes map[string]Shape
}

type shapeDoc struct {
	Size  Size   `json:"size"`
	Cells []Cell `json:"cells"`
}

// LoadPatterns reads a JSON pattern document. The top-level collection
// may live under either "shapes" or "patterns".
func LoadPatterns(path string) (*PatternStore, error) {
	fData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Shapes   map[string]shapeDoc `json:"shapes"`
		Patterns map[string]shapeDoc `json:"patterns"`
	}

	if err := json.Unmarshal(fData, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	entries := doc.Shapes
	if entries == nil {
		entries = doc.Patterns
	}

	if entries == nil {
		return nil, fmt.Errorf("%s: missing 'shapes' or 'patterns' key", path)
	}

	shapes := make(map[string]Shape, len(entries))
	for name, entry := range entries {
		shapes[name] = Shape{
			Name:  name,
			Size:  entry.Size,
			Cells: entry.Cells,
		}
	}

	return &PatternStore{shapes: shapes}, nil
}

// Names returns all shape names in sorted order.
func (s *PatternStore) Names() []string {
	names := make([]string, 0, len(s.shapes))
	for name := range s.shapes {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Lookup returns the shape for the given name.
func (s *PatternStore) Lookup(name string) (Shape, bool) {
	shape, ok := s.shapes[name]

	return shape, ok
}

func (s *PatternStore) Len() int {
	return len(s.shapes)
}

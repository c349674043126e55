package pkg

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// LoadPatternScript builds a PatternStore from a tengo script. The script
// must export a 'patterns' global: a map of shape name to
// {size: {w, h}, cells: [{x, y}, ...]}.
func LoadPatternScript(path string) (*PatternStore, error) {
	fData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(fData)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...)) // Add tengo stdlib

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}

	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("run %s: %w", path, err)
	}

	patterns := compiled.Get("patterns")
	if patterns.IsUndefined() {
		return nil, fmt.Errorf("%s: script does not export 'patterns'", path)
	}

	entries := patterns.Map()
	shapes := make(map[string]Shape, len(entries))

	for name, raw := range entries {
		shape, err := scriptShape(name, raw)
		if err != nil {
			return nil, fmt.Errorf("%s: pattern %q: %w", path, name, err)
		}

		shapes[name] = shape
	}

	return &PatternStore{shapes: shapes}, nil
}

func scriptShape(name string, raw interface{}) (Shape, error) {
	entry, ok := raw.(map[string]interface{})
	if !ok {
		return Shape{}, fmt.Errorf("entry is not a map")
	}

	shape := Shape{Name: name}

	if rawSize, ok := entry["size"].(map[string]interface{}); ok {
		w, okW := scriptInt(rawSize["w"])
		h, okH := scriptInt(rawSize["h"])

		if !okW || !okH {
			return Shape{}, fmt.Errorf("size must hold integer 'w' and 'h'")
		}

		shape.Size = Size{W: w, H: h}
	}

	rawCells, ok := entry["cells"].([]interface{})
	if !ok {
		return Shape{}, fmt.Errorf("missing 'cells' list")
	}

	shape.Cells = make([]Cell, 0, len(rawCells))

	for _, rawCell := range rawCells {
		cell, ok := rawCell.(map[string]interface{})
		if !ok {
			return Shape{}, fmt.Errorf("cell is not a map")
		}

		x, okX := scriptInt(cell["x"])
		y, okY := scriptInt(cell["y"])

		if !okX || !okY {
			return Shape{}, fmt.Errorf("cell must hold integer 'x' and 'y'")
		}

		shape.Cells = append(shape.Cells, Cell{X: x, Y: y})
	}

	return shape, nil
}

// scriptInt widens the numeric types tengo hands back to plain int.
func scriptInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	}

	return 0, false
}

package defs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// LoadLayout returns the default layout for a w×h world with any fields
// present in the JSON file at path laid over it. An empty path returns the
// defaults unchanged.
func LoadLayout(path string, w, h float64) (Layout, error) {
	layout := DefaultLayout(w, h)
	if path == "" {
		return layout, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	if err := ParseLayout(file, &layout); err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// ParseLayout decodes data on top of layout. Unknown fields are rejected so
// a typo does not silently fall back to a default.
func ParseLayout(data []byte, layout *Layout) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(layout); err != nil {
		return fmt.Errorf("failed to unmarshal layout: %w", err)
	}
	return nil
}

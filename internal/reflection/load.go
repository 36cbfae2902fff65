// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reflection

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Decode reads a reflection project tree from r.
func Decode(r io.Reader) (*Node, error) {
	var root Node
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("parsing reflection JSON: %w", err)
	}
	return &root, nil
}

// Load reads a reflection project tree from a JSON file.
func Load(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading reflection file: %w", err)
	}
	defer f.Close()

	root, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package custom loads hand-authored documentation pages listed in a
// JSON or YAML definition file.
package custom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/docgen/pkg/types"
)

// ErrUnknownDefinitionType is returned for definition files that are
// neither JSON nor YAML.
var ErrUnknownDefinitionType = errors.New("unknown custom docs definition file type")

// Format is the encoding of a definition file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Category is one entry of the definition file.
type Category struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path,omitempty" yaml:"path,omitempty"`
	Files []File `json:"files" yaml:"files"`
}

// File is one page of a category.
type File struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// DetectFormat picks the definition format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownDefinitionType)
	}
}

// ReadDefinitions parses the definition file at path.
func ReadDefinitions(path string) ([]Category, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading custom docs definitions: %w", err)
	}

	var defs []Category
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &defs); err != nil {
			return nil, fmt.Errorf("parsing JSON definitions %s: %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &defs); err != nil {
			return nil, fmt.Errorf("parsing YAML definitions %s: %w", path, err)
		}
	}
	return defs, nil
}

// Load reads the definition file at defPath and every page it lists. Page
// directories resolve against the definition file's directory; recorded
// paths are relative to root. Pages are read concurrently and the first
// failure aborts the load.
func Load(ctx context.Context, defPath, root string, logger *slog.Logger) (types.CustomDocs, error) {
	defs, err := ReadDefinitions(defPath)
	if err != nil {
		return nil, err
	}
	baseDir := filepath.Dir(defPath)
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	defs = dedupeBy(defs, categoryID)
	docs := make(types.CustomDocs, len(defs))
	g, ctx := errgroup.WithContext(ctx)

	for i, cat := range defs {
		catID := categoryID(cat)
		cat.Files = dedupeBy(cat.Files, fileID)
		name := cat.Name
		if name == "" {
			name = cat.ID
		}
		dirName := cat.Path
		if dirName == "" {
			dirName = catID
		}
		dir := filepath.Join(baseDir, dirName)

		docs[i] = types.CustomCategory{
			ID:    catID,
			Name:  name,
			Files: make([]types.CustomFile, len(cat.Files)),
		}
		files := docs[i].Files

		for j, f := range cat.Files {
			j, f := j, f
			ext := filepath.Ext(f.Path)
			fid := fileID(f)
			fullPath := filepath.Join(dir, f.Path)

			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				content, err := os.ReadFile(fullPath)
				if err != nil {
					return fmt.Errorf("reading custom docs file %s/%s: %w", catID, fid, err)
				}
				abs, err := filepath.Abs(fullPath)
				if err != nil {
					return fmt.Errorf("resolving %s: %w", fullPath, err)
				}
				rel, err := filepath.Rel(absRoot, abs)
				if err != nil {
					return fmt.Errorf("resolving %s against root %s: %w", fullPath, root, err)
				}
				files[j] = types.CustomFile{
					ID:      fid,
					Name:    f.Name,
					Type:    strings.TrimPrefix(strings.ToLower(ext), "."),
					Content: string(content),
					Path:    filepath.ToSlash(rel),
				}
				logger.Debug("Loaded custom docs file", "category", catID, "file", fid)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fileCount, catCount := docs.FileCount(), len(docs)
	logger.Info(fmt.Sprintf("%d custom docs file%s in %d categor%s loaded.",
		fileCount, plural(fileCount, "", "s"), catCount, plural(catCount, "y", "ies")))
	return docs, nil
}

func categoryID(c Category) string {
	if c.ID != "" {
		return c.ID
	}
	return strings.ToLower(c.Name)
}

func fileID(f File) string {
	if f.ID != "" {
		return f.ID
	}
	return strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
}

// dedupeBy keeps one item per key. A repeated key replaces the earlier
// item in the earlier item's position.
func dedupeBy[T any](items []T, key func(T) string) []T {
	index := make(map[string]int, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		k := key(it)
		if i, ok := index[k]; ok {
			out[i] = it
			continue
		}
		index[k] = len(out)
		out = append(out, it)
	}
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output assembles the documentation envelope and writes it as JSON.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/docgen/pkg/types"
)

// Assemble wraps the generated docs and custom pages in the output
// envelope stamped with the tool version and generation time.
func Assemble(docs types.CodeDocs, custom types.CustomDocs, version string, now time.Time) types.Output {
	if custom == nil {
		custom = types.CustomDocs{}
	}
	return types.Output{
		Meta: types.OutputMeta{
			Version: version,
			Format:  types.FormatVersion,
			Date:    now.UnixMilli(),
		},
		Custom:   custom,
		CodeDocs: docs,
	}
}

// Encode writes out to w as JSON indented by spaces (0 = compact). Angle
// brackets and ampersands are written verbatim.
func Encode(w io.Writer, out types.Output, spaces int) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if spaces > 0 {
		enc.SetIndent("", strings.Repeat(" ", spaces))
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding documentation: %w", err)
	}
	_, err := w.Write(bytes.TrimRight(buf.Bytes(), "\n"))
	return err
}

// WriteFile encodes out to path. The file is written to a temporary
// sibling first and renamed into place, so a failed write leaves any
// previous file untouched.
func WriteFile(path string, out types.Output, spaces int) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := Encode(tmp, out, spaces); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

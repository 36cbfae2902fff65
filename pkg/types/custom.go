// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
)

// CustomFile is one hand-authored documentation page.
type CustomFile struct {
	// ID keys the file within its category.
	ID string `json:"-"`

	// Name is the display name from the definition file.
	Name string `json:"name"`

	// Type is the lowercased file extension without the dot (e.g. "md").
	Type string `json:"type"`

	// Content is the raw file text.
	Content string `json:"content"`

	// Path is the file location relative to the project root, with
	// forward slashes.
	Path string `json:"path"`
}

// CustomCategory groups custom pages under one heading.
type CustomCategory struct {
	ID    string       `json:"-"`
	Name  string       `json:"name"`
	Files []CustomFile `json:"-"`
}

// CustomDocs is the ordered collection of custom documentation categories.
// It marshals as an object keyed by category id, in definition order.
type CustomDocs []CustomCategory

// FileCount returns the number of files across all categories.
func (c CustomDocs) FileCount() int {
	n := 0
	for _, cat := range c {
		n += len(cat.Files)
	}
	return n
}

// MarshalJSON encodes the collection as {"<id>": {"name": ..., "files": {...}}}.
func (c CustomDocs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, cat.ID); err != nil {
			return nil, err
		}
		body, err := cat.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the category with its files keyed by file id.
func (c CustomCategory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"name":`)
	name, err := MarshalNoEscape(c.Name)
	if err != nil {
		return nil, err
	}
	buf.Write(name)
	buf.WriteString(`,"files":{`)
	for i, f := range c.Files {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, f.ID); err != nil {
			return nil, err
		}
		body, err := MarshalNoEscape(f)
		if err != nil {
			return nil, err
		}
		buf.Write(body)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	return nil
}

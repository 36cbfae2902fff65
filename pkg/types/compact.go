// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Token is one rendered name in a compact type, followed by the punctuation
// that separates it from the next name (for example "Map" followed by "<").
// It marshals as ["name"] or ["name", "suffix"].
type Token struct {
	Name   string
	Suffix string
}

// MarshalJSON encodes the token as a one- or two-element array.
func (t Token) MarshalJSON() ([]byte, error) {
	if t.Suffix == "" {
		return MarshalNoEscape([]string{t.Name})
	}
	return MarshalNoEscape([]string{t.Name, t.Suffix})
}

// UnmarshalJSON decodes the array form produced by MarshalJSON.
func (t *Token) UnmarshalJSON(data []byte) error {
	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("decoding type token: %w", err)
	}
	switch len(parts) {
	case 1:
		*t = Token{Name: parts[0]}
	case 2:
		*t = Token{Name: parts[0], Suffix: parts[1]}
	default:
		return fmt.Errorf("decoding type token: want 1 or 2 elements, got %d", len(parts))
	}
	return nil
}

// Branch is the ordered token run of one top-level union member.
type Branch []Token

// String joins the branch back into source-like text.
func (b Branch) String() string {
	var buf bytes.Buffer
	for _, tok := range b {
		buf.WriteString(tok.Name)
		buf.WriteString(tok.Suffix)
	}
	return buf.String()
}

// CompactType is the nested-array rendering of a type expression. Each
// element is one branch of the top-level union, in declaration order; a
// type that is not a union has exactly one branch.
type CompactType []Branch

// String renders the compact type as text, joining branches with " | ".
func (c CompactType) String() string {
	var buf bytes.Buffer
	for i, b := range c {
		if i > 0 {
			buf.WriteString(" | ")
		}
		buf.WriteString(b.String())
	}
	return buf.String()
}

// MarshalNoEscape encodes v as JSON without escaping <, > and &. Type
// tokens routinely carry angle brackets.
func MarshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

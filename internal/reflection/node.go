// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reflection models the JSON declaration tree emitted by the
// reflection tool and loads it from disk.
package reflection

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Flags are the boolean modifiers recorded on a node.
type Flags struct {
	IsStatic   bool `json:"isStatic,omitempty"`
	IsPrivate  bool `json:"isPrivate,omitempty"`
	IsOptional bool `json:"isOptional,omitempty"`
	IsReadonly bool `json:"isReadonly,omitempty"`
	IsExternal bool `json:"isExternal,omitempty"`
	IsAbstract bool `json:"isAbstract,omitempty"`
	IsRest     bool `json:"isRest,omitempty"`
}

// Source is a declaration site.
type Source struct {
	FileName  string `json:"fileName"`
	Line      int    `json:"line"`
	Character int    `json:"character,omitempty"`
}

// Node is a declaration or signature in the reflection tree. The tree is
// read-only once decoded.
type Node struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	KindFlag   int      `json:"kind"`
	KindString string   `json:"kindString,omitempty"`
	Flags      Flags    `json:"flags"`
	Comment    *Comment `json:"comment,omitempty"`

	Children       []*Node       `json:"children,omitempty"`
	Signatures     []*Node       `json:"signatures,omitempty"`
	GetSignature   SignatureList `json:"getSignature,omitempty"`
	SetSignature   SignatureList `json:"setSignature,omitempty"`
	IndexSignature SignatureList `json:"indexSignature,omitempty"`
	Parameters     []*Node       `json:"parameters,omitempty"`

	Type             *Type   `json:"type,omitempty"`
	ExtendedTypes    []*Type `json:"extendedTypes,omitempty"`
	ImplementedTypes []*Type `json:"implementedTypes,omitempty"`

	// DefaultValue is the recorded initializer. The reflection tool stores
	// source text; hand-built trees may carry typed JSON values.
	DefaultValue any `json:"defaultValue,omitempty"`

	Sources []Source `json:"sources,omitempty"`
}

// Kind returns the node kind, falling back to the numeric flag when the
// kind string is absent.
func (n *Node) Kind() Kind {
	if n.KindString != "" {
		return Kind(n.KindString)
	}
	return KindFromFlag(n.KindFlag)
}

// Is reports whether n is of kind k.
func (n *Node) Is(k Kind) bool {
	return n.Kind() == k
}

// ChildrenOf returns the children of kind k, in source order.
func (n *Node) ChildrenOf(k Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Is(k) {
			out = append(out, c)
		}
	}
	return out
}

// Getter returns the first get signature, or nil.
func (n *Node) Getter() *Node {
	if len(n.GetSignature) == 0 {
		return nil
	}
	return n.GetSignature[0]
}

// HasSetter reports whether the node declares a set signature.
func (n *Node) HasSetter() bool {
	return len(n.SetSignature) > 0
}

// SignatureList decodes a signature field that is an array in older
// reflection output and a single object in newer output.
type SignatureList []*Node

// UnmarshalJSON accepts null, a single object or an array.
func (s *SignatureList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = nil
		return nil
	case len(data) > 0 && data[0] == '[':
		var list []*Node
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("decoding signature list: %w", err)
		}
		*s = list
		return nil
	default:
		var one Node
		if err := json.Unmarshal(data, &one); err != nil {
			return fmt.Errorf("decoding signature: %w", err)
		}
		*s = SignatureList{&one}
		return nil
	}
}

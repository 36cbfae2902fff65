// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns reflection nodes into documentation records. Every
// parser is a pure function of its input node.
package parse

import (
	"path"

	"github.com/pdiddy/docgen/internal/reflection"
	"github.com/pdiddy/docgen/pkg/types"
)

// noDefault is what the reflection tool records for initializers too long
// to print.
const noDefault = "..."

// Meta returns the first declaration site of n, or nil. Recorded file
// names always use forward slashes.
func Meta(n *reflection.Node) *types.DocMeta {
	if len(n.Sources) == 0 {
		return nil
	}
	src := n.Sources[0]
	return &types.DocMeta{
		Line: src.Line,
		File: path.Base(src.FileName),
		Path: path.Dir(src.FileName),
	}
}

// access is private when the flag is set or the comment carries @private
// or @internal.
func access(private bool, c *reflection.Comment) types.Access {
	if private || c.HasTag("private") || c.HasTag("internal") {
		return types.AccessPrivate
	}
	return ""
}

func scope(n *reflection.Node) types.Scope {
	if n.Flags.IsStatic {
		return types.ScopeStatic
	}
	return ""
}

// literalDefault returns the recorded initializer of n, treating the
// elided placeholder as absent.
func literalDefault(n *reflection.Node) any {
	if n == nil || n.DefaultValue == nil {
		return nil
	}
	if s, ok := n.DefaultValue.(string); ok && s == noDefault {
		return nil
	}
	return n.DefaultValue
}

// defaultTag returns the @default tag text of c, or nil.
func defaultTag(c *reflection.Comment) any {
	if text, ok := c.TagText("default"); ok {
		return text
	}
	return nil
}

// firstDefault returns the first non-nil candidate.
func firstDefault(candidates ...any) any {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

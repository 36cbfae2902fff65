// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"fmt"
	"path"
	"strings"

	"github.com/pdiddy/docgen/internal/reflection"
	"github.com/pdiddy/docgen/internal/typeexpr"
	"github.com/pdiddy/docgen/pkg/types"
)

// defaultExportName is the name the reflection tool gives a default export.
const defaultExportName = "default"

// Class documents a class node. Only the first extended and the first
// implemented type are recorded.
func Class(n *reflection.Node) (types.ClassDoc, error) {
	c := n.Comment
	meta := Meta(n)

	doc := types.ClassDoc{
		Name:                className(n, meta),
		Description:         c.Short(),
		ExtendedDescription: c.Long(),
		See:                 c.TagTexts("see"),
		Examples:            c.TagTexts("example"),
		Access:              access(n.Flags.IsPrivate, c),
		Abstract:            c.HasTag("abstract"),
		Deprecated:          c.HasTag("deprecated"),
		Meta:                meta,
	}
	if len(n.ExtendedTypes) > 0 {
		doc.Extends = []string{typeexpr.Simple(n.ExtendedTypes[0])}
	}
	if len(n.ImplementedTypes) > 0 {
		doc.Implements = []string{typeexpr.Simple(n.ImplementedTypes[0])}
	}

	for _, child := range n.Children {
		switch child.Kind() {
		case reflection.KindConstructor:
			if doc.Construct == nil {
				m := Method(child)
				doc.Construct = &m
			}
		case reflection.KindProperty:
			p, err := Property(child)
			if err != nil {
				return types.ClassDoc{}, fmt.Errorf("class %s: %w", doc.Name, err)
			}
			doc.Props = append(doc.Props, p)
		case reflection.KindAccessor:
			// Setter-only accessors have no readable value to document.
			if child.Getter() == nil {
				continue
			}
			p, err := Property(child)
			if err != nil {
				return types.ClassDoc{}, fmt.Errorf("class %s: %w", doc.Name, err)
			}
			doc.Props = append(doc.Props, p)
		case reflection.KindMethod:
			doc.Methods = append(doc.Methods, Method(child))
		case reflection.KindEvent:
			doc.Events = append(doc.Events, Event(child))
		}
	}

	return doc, nil
}

// className resolves the placeholder name of a default export to the base
// name of its source file.
func className(n *reflection.Node, meta *types.DocMeta) string {
	if n.Name != defaultExportName {
		return n.Name
	}
	if meta == nil {
		return defaultExportName
	}
	return strings.TrimSuffix(meta.File, path.Ext(meta.File))
}

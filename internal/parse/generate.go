// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"github.com/pdiddy/docgen/internal/reflection"
	"github.com/pdiddy/docgen/pkg/types"
)

// Generate documents the top-level children of a reflection project.
// Classes, typedefs and namespaces keep their source order; nodes of any
// other kind are skipped.
func Generate(root *reflection.Node) (types.CodeDocs, error) {
	docs := types.CodeDocs{
		Classes:    []types.ClassDoc{},
		Typedefs:   []types.TypedefDoc{},
		Namespaces: []types.NamespaceDoc{},
	}
	if root == nil {
		return docs, nil
	}

	for _, child := range root.Children {
		switch reflection.RouteOf(child.Kind()) {
		case reflection.RouteClass:
			c, err := Class(child)
			if err != nil {
				return types.CodeDocs{}, err
			}
			docs.Classes = append(docs.Classes, c)
		case reflection.RouteTypedef:
			docs.Typedefs = append(docs.Typedefs, Typedef(child))
		case reflection.RouteNamespace:
			docs.Namespaces = append(docs.Namespaces, Namespace(child))
		case reflection.RouteSkip:
		}
	}
	return docs, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"github.com/pdiddy/docgen/internal/reflection"
	"github.com/pdiddy/docgen/pkg/types"
)

// Namespace documents a namespace with its type aliases, interfaces and
// enumerations. Empty groups are left out.
func Namespace(n *reflection.Node) types.NamespaceDoc {
	c := n.Comment
	return types.NamespaceDoc{
		Name:                n.Name,
		Description:         c.Short(),
		ExtendedDescription: c.Long(),
		See:                 c.TagTexts("see"),
		Deprecated:          c.HasTag("deprecated"),
		TypeAliases:         typedefs(n.ChildrenOf(reflection.KindTypeAlias)),
		Interfaces:          typedefs(n.ChildrenOf(reflection.KindInterface)),
		Enumerations:        typedefs(n.ChildrenOf(reflection.KindEnum)),
		IsExternal:          n.Flags.IsExternal,
		Meta:                Meta(n),
	}
}

func typedefs(nodes []*reflection.Node) []types.TypedefDoc {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]types.TypedefDoc, len(nodes))
	for i, n := range nodes {
		out[i] = Typedef(n)
	}
	return out
}

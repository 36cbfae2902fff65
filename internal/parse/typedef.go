// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"github.com/pdiddy/docgen/internal/reflection"
	"github.com/pdiddy/docgen/internal/typeexpr"
	"github.com/pdiddy/docgen/pkg/types"
)

func variantOf(k reflection.Kind) types.TypedefVariant {
	switch k {
	case reflection.KindInterface:
		return types.VariantInterface
	case reflection.KindEnum:
		return types.VariantEnum
	default:
		return types.VariantType
	}
}

// Typedef documents a type alias, interface or enumeration.
//
// Object-shaped declarations (inline type literals and interfaces) list
// their members as props. Enumerations list their members with the member
// value as type. A declaration with call signatures instead of members
// documents like a function. Anything else keeps only its serialized type.
func Typedef(n *reflection.Node) types.TypedefDoc {
	c := n.Comment
	doc := types.TypedefDoc{
		Name:                n.Name,
		Description:         c.Short(),
		ExtendedDescription: c.Long(),
		Variant:             variantOf(n.Kind()),
		See:                 c.TagTexts("see"),
		Access:              access(n.Flags.IsPrivate, c),
		Deprecated:          c.HasTag("deprecated"),
		Type:                typeexpr.Serialize(n.Type),
		Meta:                Meta(n),
	}

	var decl *reflection.Node
	switch {
	case n.Type != nil && n.Type.Kind == reflection.TypeReflection && n.Type.Declaration != nil:
		decl = n.Type.Declaration
	case n.Is(reflection.KindInterface):
		decl = n
	case n.Is(reflection.KindEnum):
		doc.Props = enumMembers(n.Children)
		return doc
	default:
		return doc
	}

	if len(decl.Children) > 0 {
		doc.Props = make([]types.ParamDoc, len(decl.Children))
		for i, child := range decl.Children {
			doc.Props[i] = member(child)
		}
		return doc
	}

	if len(decl.Signatures) > 0 {
		sig := decl.Signatures[0]
		sc := sig.Comment
		doc.Description = sc.Short()
		doc.See = sc.TagTexts("see")
		doc.Access = access(sig.Flags.IsPrivate, sc)
		doc.Deprecated = sc.HasTag("deprecated")
		doc.Params = Parameters(sig.Parameters)
		doc.Returns = typeexpr.Serialize(sig.Type)
		doc.ReturnsDescription = sc.ReturnsText()
	}
	return doc
}

// member documents one member of an object-shaped typedef. A method member
// without a declared type is rendered as the function type of its own
// signature.
func member(n *reflection.Node) types.ParamDoc {
	c := n.Comment
	desc := c.Short()
	if desc == "" && len(n.Signatures) > 0 {
		desc = n.Signatures[0].Comment.Short()
	}

	typ := typeexpr.Serialize(n.Type)
	if n.Type == nil && n.Is(reflection.KindMethod) {
		typ = typeexpr.Serialize(&reflection.Type{Kind: reflection.TypeReflection, Declaration: n})
	}

	return types.ParamDoc{
		Name:        n.Name,
		Description: desc,
		Optional:    n.Flags.IsOptional || n.DefaultValue != nil,
		Default:     firstDefault(defaultTag(c), literalDefault(n)),
		Type:        typ,
	}
}

// enumMembers documents enumeration members. The member value comes from
// the recorded initializer or, in newer reflection output, a literal type.
func enumMembers(children []*reflection.Node) []types.ParamDoc {
	if len(children) == 0 {
		return nil
	}
	out := make([]types.ParamDoc, len(children))
	for i, child := range children {
		p := types.ParamDoc{
			Name:        child.Name,
			Description: child.Comment.Short(),
		}
		switch {
		case child.DefaultValue != nil:
			p.Type = typeexpr.Literal(child.DefaultValue)
		case child.Type != nil && child.Type.Kind == reflection.TypeLiteral:
			p.Type = typeexpr.Literal(child.Type.Value)
		}
		out[i] = p
	}
	return out
}

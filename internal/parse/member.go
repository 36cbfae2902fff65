// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"errors"
	"fmt"

	"github.com/pdiddy/docgen/internal/reflection"
	"github.com/pdiddy/docgen/internal/typeexpr"
	"github.com/pdiddy/docgen/pkg/types"
)

// ErrAccessorWithoutGetter is returned when Property is given an accessor
// that has no get signature. Callers filter those out first.
var ErrAccessorWithoutGetter = errors.New("cannot document accessor without getter")

// Property documents a property, or an accessor through its getter.
func Property(n *reflection.Node) (types.ClassPropDoc, error) {
	if n.Is(reflection.KindAccessor) {
		return accessor(n)
	}

	c := n.Comment
	return types.ClassPropDoc{
		Name:                n.Name,
		Description:         c.Short(),
		ExtendedDescription: c.Long(),
		See:                 c.TagTexts("see"),
		Scope:               scope(n),
		Access:              access(n.Flags.IsPrivate, c),
		Readonly:            n.Flags.IsReadonly,
		Abstract:            c.HasTag("abstract"),
		Deprecated:          c.HasTag("deprecated"),
		Default:             firstDefault(defaultTag(c), literalDefault(n)),
		Type:                typeexpr.Serialize(n.Type),
		Meta:                Meta(n),
	}, nil
}

// accessor documents a get/set pair. The getter carries the authoritative
// comment and type; the accessor node contributes name, scope and source.
func accessor(n *reflection.Node) (types.ClassPropDoc, error) {
	getter := n.Getter()
	if getter == nil {
		return types.ClassPropDoc{}, fmt.Errorf("%s: %w", n.Name, ErrAccessorWithoutGetter)
	}

	gc := getter.Comment
	readonly := true
	if n.HasSetter() {
		readonly = n.Flags.IsReadonly
	}

	return types.ClassPropDoc{
		Name:                n.Name,
		Description:         gc.Short(),
		ExtendedDescription: gc.Long(),
		See:                 gc.TagTexts("see"),
		Scope:               scope(n),
		Access:              access(getter.Flags.IsPrivate, gc),
		Readonly:            readonly,
		Abstract:            gc.HasTag("abstract"),
		Deprecated:          gc.HasTag("deprecated"),
		Default: firstDefault(
			defaultTag(n.Comment),
			defaultTag(gc),
			literalDefault(getter),
			literalDefault(n),
		),
		Type: typeexpr.Serialize(getter.Type),
		Meta: Meta(n),
	}, nil
}

// Method documents a method or constructor. The first call signature
// supplies comment, parameters and return type; a node without signatures
// is its own signature.
func Method(n *reflection.Node) types.ClassMethodDoc {
	sig := n
	if len(n.Signatures) > 0 {
		sig = n.Signatures[0]
	}
	c := sig.Comment

	return types.ClassMethodDoc{
		Name:               n.Name,
		Description:        c.Short(),
		ExtendDescription:  c.Long(),
		See:                c.TagTexts("see"),
		Scope:              scope(n),
		Access:             access(n.Flags.IsPrivate, c),
		Examples:           c.TagTexts("example"),
		Abstract:           c.HasTag("abstract"),
		Deprecated:         c.HasTag("deprecated"),
		Emits:              c.TagTexts("emits"),
		Params:             Parameters(sig.Parameters),
		Returns:            typeexpr.Serialize(sig.Type),
		ReturnsDescription: c.ReturnsText(),
		Meta:               Meta(n),
	}
}

// Event documents an event; its parameters model the emitted payload.
func Event(n *reflection.Node) types.ClassEventDoc {
	return Method(n)
}

// Parameters documents each parameter in order. Nil input yields nil.
func Parameters(params []*reflection.Node) []types.ParamDoc {
	if len(params) == 0 {
		return nil
	}
	out := make([]types.ParamDoc, len(params))
	for i, p := range params {
		out[i] = Parameter(p)
	}
	return out
}

// Parameter documents one parameter. A parameter with a recorded default
// is optional.
func Parameter(n *reflection.Node) types.ParamDoc {
	c := n.Comment
	desc := c.Short()
	if desc == "" {
		desc = c.Long()
	}
	return types.ParamDoc{
		Name:        n.Name,
		Description: desc,
		Optional:    n.Flags.IsOptional || n.DefaultValue != nil,
		Default:     firstDefault(defaultTag(c), literalDefault(n)),
		Type:        typeexpr.Serialize(n.Type),
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package typeexpr renders reflection type expressions into the compact
// nested-array form used by the documentation site.
//
// A rendered type is a list of top-level union branches. Each branch is a
// run of tokens; a token is a name plus the punctuation that follows it,
// so "Map<string, number>" becomes
//
//	[[["Map", "<"], ["string", ", "], ["number", ">"]]]
//
// Names stay separate from punctuation so the site can link every name.
package typeexpr

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/docgen/internal/reflection"
	"github.com/pdiddy/docgen/pkg/types"
)

// Serialize renders t. A nil type renders as nil.
func Serialize(t *reflection.Type) types.CompactType {
	if t == nil {
		return nil
	}
	if t.Kind == reflection.TypeUnion && len(t.Types) > 0 {
		out := make(types.CompactType, 0, len(t.Types))
		for _, branch := range t.Types {
			var w writer
			w.render(branch)
			out = append(out, w.branch())
		}
		return out
	}
	var w writer
	w.render(t)
	return types.CompactType{w.branch()}
}

// Simple renders t as a flat string. References keep their qualified name
// and list their type arguments by name only; other types are flattened
// from their full rendering.
func Simple(t *reflection.Type) string {
	if t == nil {
		return ""
	}
	if t.Kind != reflection.TypeReference {
		return Serialize(t).String()
	}
	name := t.QualifiedName
	if name == "" {
		name = t.Name
	}
	if len(t.TypeArguments) == 0 {
		return name
	}
	args := make([]string, len(t.TypeArguments))
	for i, a := range t.TypeArguments {
		args[i] = argName(a)
	}
	return name + "<" + strings.Join(args, ", ") + ">"
}

func argName(t *reflection.Type) string {
	if t == nil {
		return "unknown"
	}
	switch t.Kind {
	case reflection.TypeReference, reflection.TypeIntrinsic, reflection.TypeInferred, reflection.TypeUnknown:
		if t.Name != "" {
			return t.Name
		}
	case reflection.TypeLiteral:
		return literalText(t.Value)
	}
	return Serialize(t).String()
}

// Literal wraps a recorded constant as a single-token compact type, the
// shape enum members use to show their value.
func Literal(v any) types.CompactType {
	var text string
	switch val := v.(type) {
	case string:
		text = val
	default:
		b, err := json.Marshal(val)
		if err != nil {
			text = fmt.Sprint(val)
		} else {
			text = string(b)
		}
	}
	return types.CompactType{{{Name: text}}}
}

// writer accumulates the tokens of one branch.
type writer struct {
	tokens []types.Token
}

func (w *writer) branch() types.Branch {
	return types.Branch(w.tokens)
}

func (w *writer) name(s string) {
	w.tokens = append(w.tokens, types.Token{Name: s})
}

// punct attaches s to the previous token, or opens an unnamed token when
// the branch starts with punctuation.
func (w *writer) punct(s string) {
	if n := len(w.tokens); n > 0 {
		w.tokens[n-1].Suffix += s
		return
	}
	w.tokens = append(w.tokens, types.Token{Suffix: s})
}

// list renders ts separated by sep.
func (w *writer) list(ts []*reflection.Type, sep string) {
	for i, t := range ts {
		if i > 0 {
			w.punct(sep)
		}
		w.render(t)
	}
}

func (w *writer) render(t *reflection.Type) {
	if t == nil {
		w.name("unknown")
		return
	}

	switch t.Kind {
	case reflection.TypeIntrinsic, reflection.TypeUnknown:
		w.name(fallbackName(t))

	case reflection.TypeInferred:
		w.punct("infer ")
		w.name(t.Name)

	case reflection.TypeReference:
		w.name(t.Name)
		if len(t.TypeArguments) > 0 {
			w.punct("<")
			w.list(t.TypeArguments, ", ")
			w.punct(">")
		}

	case reflection.TypeArray:
		w.name("Array")
		w.punct("<")
		w.render(t.ElementType)
		w.punct(">")

	case reflection.TypeUnion:
		w.list(t.Types, " | ")

	case reflection.TypeIntersection:
		w.list(t.Types, " & ")

	case reflection.TypeTuple:
		w.punct("[")
		w.list(t.Elements, ", ")
		w.punct("]")

	case reflection.TypeNamedTupleMember:
		w.name(t.Name)
		if t.IsOptional {
			w.punct("?: ")
		} else {
			w.punct(": ")
		}
		w.render(t.Element)

	case reflection.TypeOptional:
		w.render(t.ElementType)
		w.punct("?")

	case reflection.TypeRest:
		w.punct("...")
		w.render(t.ElementType)

	case reflection.TypeLiteral:
		w.name(literalText(t.Value))

	case reflection.TypeTypeOperator:
		w.punct(t.Operator + " ")
		w.render(t.Target)

	case reflection.TypeQuery:
		w.punct("typeof ")
		w.render(t.QueryType)

	case reflection.TypePredicate:
		if t.Asserts {
			w.punct("asserts ")
		}
		w.name(t.Name)
		if t.TargetType != nil {
			w.punct(" is ")
			w.render(t.TargetType)
		}

	case reflection.TypeIndexedAccess:
		w.render(t.ObjectType)
		w.punct("[")
		w.render(t.IndexType)
		w.punct("]")

	case reflection.TypeConditional:
		w.render(t.CheckType)
		w.punct(" extends ")
		w.render(t.ExtendsType)
		w.punct(" ? ")
		w.render(t.TrueType)
		w.punct(" : ")
		w.render(t.FalseType)

	case reflection.TypeMapped:
		w.renderMapped(t)

	case reflection.TypeTemplateLiteral:
		w.punct("`" + t.Head)
		for _, span := range t.Tail {
			w.punct("${")
			w.render(span.Type)
			w.punct("}" + span.Text)
		}
		w.punct("`")

	case reflection.TypeReflection:
		w.renderDeclaration(t.Declaration)

	default:
		w.name(fallbackName(t))
	}
}

func (w *writer) renderMapped(t *reflection.Type) {
	w.punct("{ ")
	switch t.ReadonlyModifier {
	case "+":
		w.punct("readonly ")
	case "-":
		w.punct("-readonly ")
	}
	w.punct("[")
	w.name(t.Parameter)
	w.punct(" in ")
	w.render(t.ParameterType)
	if t.NameType != nil {
		w.punct(" as ")
		w.render(t.NameType)
	}
	w.punct("]")
	switch t.OptionalModifier {
	case "+":
		w.punct("?")
	case "-":
		w.punct("-?")
	}
	w.punct(": ")
	w.render(t.TemplateType)
	w.punct(" }")
}

// renderDeclaration renders an inline declaration: its first call
// signature as a function type, else its members as an object literal,
// else its index signature.
func (w *writer) renderDeclaration(d *reflection.Node) {
	switch {
	case d == nil:
		w.name("object")
	case len(d.Signatures) > 0:
		w.renderSignature(d.Signatures[0])
	case len(d.Children) > 0:
		w.punct("{ ")
		for i, c := range d.Children {
			if i > 0 {
				w.punct("; ")
			}
			w.name(c.Name)
			if c.Flags.IsOptional {
				w.punct("?: ")
			} else {
				w.punct(": ")
			}
			switch {
			case c.Type != nil:
				w.render(c.Type)
			case len(c.Signatures) > 0:
				w.renderSignature(c.Signatures[0])
			default:
				w.name("unknown")
			}
		}
		w.punct(" }")
	case len(d.IndexSignature) > 0:
		sig := d.IndexSignature[0]
		w.punct("{ [")
		if len(sig.Parameters) > 0 {
			p := sig.Parameters[0]
			w.name(p.Name)
			w.punct(": ")
			w.render(p.Type)
		} else {
			w.name("key")
			w.punct(": ")
			w.name("string")
		}
		w.punct("]: ")
		w.render(sig.Type)
		w.punct(" }")
	default:
		w.name("object")
	}
}

func (w *writer) renderSignature(sig *reflection.Node) {
	if sig.Is(reflection.KindConstructorSignature) {
		w.punct("new ")
	}
	w.punct("(")
	for i, p := range sig.Parameters {
		if i > 0 {
			w.punct(", ")
		}
		if p.Flags.IsRest {
			w.punct("...")
		}
		w.name(p.Name)
		if p.Flags.IsOptional {
			w.punct("?: ")
		} else {
			w.punct(": ")
		}
		w.render(p.Type)
	}
	w.punct(") => ")
	if sig.Type == nil {
		w.name("void")
		return
	}
	w.render(sig.Type)
}

// fallbackName is the best-effort rendering for variants without
// structure of their own.
func fallbackName(t *reflection.Type) string {
	switch {
	case t.Name != "":
		return t.Name
	case t.Kind != "":
		return string(t.Kind)
	default:
		return "unknown"
	}
}

func literalText(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return "'" + val + "'"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case map[string]any:
		// bigint
		digits, _ := val["value"].(string)
		if neg, _ := val["negative"].(bool); neg {
			return "-" + digits + "n"
		}
		return digits + "n"
	default:
		return fmt.Sprint(val)
	}
}

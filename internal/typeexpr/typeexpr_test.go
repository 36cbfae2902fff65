// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package typeexpr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docgen/internal/reflection"
	"github.com/pdiddy/docgen/pkg/types"
)

func intrinsic(name string) *reflection.Type {
	return &reflection.Type{Kind: reflection.TypeIntrinsic, Name: name}
}

func ref(name string, args ...*reflection.Type) *reflection.Type {
	return &reflection.Type{Kind: reflection.TypeReference, Name: name, TypeArguments: args}
}

func literal(v any) *reflection.Type {
	return &reflection.Type{Kind: reflection.TypeLiteral, Value: v}
}

func union(ts ...*reflection.Type) *reflection.Type {
	return &reflection.Type{Kind: reflection.TypeUnion, Types: ts}
}

func TestSerializeNil(t *testing.T) {
	assert.Nil(t, Serialize(nil))
	assert.Empty(t, Simple(nil))
}

func TestSerializeUnionBranchCount(t *testing.T) {
	names := []string{"string", "number", "boolean", "bigint", "symbol", "undefined"}
	for n := 1; n <= len(names); n++ {
		t.Run(fmt.Sprintf("%d branches", n), func(t *testing.T) {
			members := make([]*reflection.Type, n)
			for i := 0; i < n; i++ {
				members[i] = intrinsic(names[i])
			}

			got := Serialize(union(members...))

			require.Len(t, got, n)
			for i := 0; i < n; i++ {
				assert.Equal(t, names[i], got[i].String(), "branch %d keeps source order", i)
			}
		})
	}
}

func TestSerializeGenericReference(t *testing.T) {
	got := Serialize(ref("Map", intrinsic("string"), intrinsic("number")))

	want := types.CompactType{{
		{Name: "Map", Suffix: "<"},
		{Name: "string", Suffix: ", "},
		{Name: "number", Suffix: ">"},
	}}
	assert.Equal(t, want, got)
}

func TestSerializeRendering(t *testing.T) {
	tests := []struct {
		name string
		typ  *reflection.Type
		want string
	}{
		{"intrinsic", intrinsic("string"), "string"},
		{"nested generic", ref("Promise", ref("Collection", intrinsic("string"), ref("Guild"))), "Promise<Collection<string, Guild>>"},
		{"array", &reflection.Type{Kind: reflection.TypeArray, ElementType: ref("User")}, "Array<User>"},
		{"union inside generic", ref("Array", union(intrinsic("string"), intrinsic("number"))), "Array<string | number>"},
		{"intersection", &reflection.Type{Kind: reflection.TypeIntersection, Types: []*reflection.Type{ref("A"), ref("B")}}, "A & B"},
		{"tuple", &reflection.Type{Kind: reflection.TypeTuple, Elements: []*reflection.Type{intrinsic("string"), intrinsic("number")}}, "[string, number]"},
		{
			"named tuple member",
			&reflection.Type{Kind: reflection.TypeTuple, Elements: []*reflection.Type{
				{Kind: reflection.TypeNamedTupleMember, Name: "id", Element: intrinsic("string")},
				{Kind: reflection.TypeNamedTupleMember, Name: "count", IsOptional: true, Element: intrinsic("number")},
			}},
			"[id: string, count?: number]",
		},
		{"optional", &reflection.Type{Kind: reflection.TypeOptional, ElementType: intrinsic("string")}, "string?"},
		{"rest", &reflection.Type{Kind: reflection.TypeRest, ElementType: ref("Array", intrinsic("any"))}, "...Array<any>"},
		{"string literal", literal("GUILD_TEXT"), "'GUILD_TEXT'"},
		{"number literal", literal(float64(42)), "42"},
		{"boolean literal", literal(true), "true"},
		{"null literal", literal(nil), "null"},
		{"bigint literal", literal(map[string]any{"value": "10", "negative": true}), "-10n"},
		{"type operator", &reflection.Type{Kind: reflection.TypeTypeOperator, Operator: "keyof", Target: ref("Events")}, "keyof Events"},
		{"query", &reflection.Type{Kind: reflection.TypeQuery, QueryType: ref("Client")}, "typeof Client"},
		{"predicate", &reflection.Type{Kind: reflection.TypePredicate, Name: "value", TargetType: ref("TextChannel")}, "value is TextChannel"},
		{"asserts predicate", &reflection.Type{Kind: reflection.TypePredicate, Name: "value", Asserts: true}, "asserts value"},
		{"indexed access", &reflection.Type{Kind: reflection.TypeIndexedAccess, ObjectType: ref("Events"), IndexType: literal("ready")}, "Events['ready']"},
		{
			"conditional",
			&reflection.Type{
				Kind:        reflection.TypeConditional,
				CheckType:   ref("T"),
				ExtendsType: intrinsic("string"),
				TrueType:    literal(true),
				FalseType:   literal(false),
			},
			"T extends string ? true : false",
		},
		{"inferred", &reflection.Type{Kind: reflection.TypeInferred, Name: "U"}, "infer U"},
		{
			"mapped",
			&reflection.Type{
				Kind:             reflection.TypeMapped,
				Parameter:        "K",
				ParameterType:    &reflection.Type{Kind: reflection.TypeTypeOperator, Operator: "keyof", Target: ref("T")},
				TemplateType:     intrinsic("string"),
				ReadonlyModifier: "+",
				OptionalModifier: "-",
			},
			"{ readonly [K in keyof T]-?: string }",
		},
		{
			"template literal",
			&reflection.Type{Kind: reflection.TypeTemplateLiteral, Head: "<@", Tail: []reflection.TemplateSpan{{Type: ref("Snowflake"), Text: ">"}}},
			"`<@${Snowflake}>`",
		},
		{"unknown variant with name", &reflection.Type{Kind: "brand-new", Name: "Thing"}, "Thing"},
		{"unknown variant without name", &reflection.Type{Kind: "brand-new"}, "brand-new"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(tt.typ).String())
		})
	}
}

func TestSerializeReflection(t *testing.T) {
	fn := &reflection.Type{
		Kind: reflection.TypeReflection,
		Declaration: &reflection.Node{
			Name:       "__type",
			KindString: "Type literal",
			Signatures: []*reflection.Node{{
				KindString: "Call signature",
				Parameters: []*reflection.Node{
					{Name: "message", Type: ref("Message")},
					{Name: "reason", Flags: reflection.Flags{IsOptional: true}, Type: intrinsic("string")},
					{Name: "args", Flags: reflection.Flags{IsRest: true}, Type: &reflection.Type{Kind: reflection.TypeArray, ElementType: intrinsic("any")}},
				},
				Type: ref("Promise", intrinsic("void")),
			}},
		},
	}

	tests := []struct {
		name string
		typ  *reflection.Type
		want string
	}{
		{"function", fn, "(message: Message, reason?: string, ...args: Array<any>) => Promise<void>"},
		{
			"constructor",
			&reflection.Type{Kind: reflection.TypeReflection, Declaration: &reflection.Node{
				Signatures: []*reflection.Node{{KindString: "Constructor signature", Type: ref("Client")}},
			}},
			"new () => Client",
		},
		{
			"no return type",
			&reflection.Type{Kind: reflection.TypeReflection, Declaration: &reflection.Node{
				Signatures: []*reflection.Node{{KindString: "Call signature"}},
			}},
			"() => void",
		},
		{
			"object literal",
			&reflection.Type{Kind: reflection.TypeReflection, Declaration: &reflection.Node{
				Children: []*reflection.Node{
					{Name: "id", Type: intrinsic("string")},
					{Name: "name", Flags: reflection.Flags{IsOptional: true}, Type: intrinsic("string")},
				},
			}},
			"{ id: string; name?: string }",
		},
		{
			"index signature",
			&reflection.Type{Kind: reflection.TypeReflection, Declaration: &reflection.Node{
				IndexSignature: reflection.SignatureList{{
					Parameters: []*reflection.Node{{Name: "key", Type: intrinsic("string")}},
					Type:       intrinsic("number"),
				}},
			}},
			"{ [key: string]: number }",
		},
		{"empty declaration", &reflection.Type{Kind: reflection.TypeReflection, Declaration: &reflection.Node{}}, "object"},
		{"missing declaration", &reflection.Type{Kind: reflection.TypeReflection}, "object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(tt.typ).String())
		})
	}
}

func TestSerializeFunctionBranchStartsUnnamed(t *testing.T) {
	fn := &reflection.Type{Kind: reflection.TypeReflection, Declaration: &reflection.Node{
		Signatures: []*reflection.Node{{KindString: "Call signature", Type: intrinsic("void")}},
	}}

	got := Serialize(fn)

	require.Len(t, got, 1)
	assert.Equal(t, types.Token{Suffix: "() => "}, got[0][0])
	assert.Equal(t, types.Token{Name: "void"}, got[0][1])
}

func TestSerializeDeterministic(t *testing.T) {
	typ := union(ref("Map", intrinsic("string"), ref("User")), literal("x"), intrinsic("null"))
	assert.Equal(t, Serialize(typ), Serialize(typ))
}

func TestSimple(t *testing.T) {
	tests := []struct {
		name string
		typ  *reflection.Type
		want string
	}{
		{"plain reference", ref("EventEmitter"), "EventEmitter"},
		{"generic", ref("Map", intrinsic("string"), intrinsic("number")), "Map<string, number>"},
		{"nested argument uses its name", ref("Base", ref("Collection", intrinsic("string"), ref("User"))), "Base<Collection>"},
		{
			"qualified name",
			&reflection.Type{Kind: reflection.TypeReference, Name: "Emitter", QualifiedName: "events.EventEmitter"},
			"events.EventEmitter",
		},
		{"literal argument", ref("Partial", literal("a")), "Partial<'a'>"},
		{"non reference", union(intrinsic("string"), intrinsic("number")), "string | number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Simple(tt.typ))
		})
	}
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, types.CompactType{{{Name: "RED"}}}, Literal("RED"))
	assert.Equal(t, types.CompactType{{{Name: "5"}}}, Literal(float64(5)))
	assert.Equal(t, types.CompactType{{{Name: "true"}}}, Literal(true))
}

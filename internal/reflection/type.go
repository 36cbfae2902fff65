// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reflection

import (
	"encoding/json"
	"fmt"
)

// TypeKind tags a type expression variant.
type TypeKind string

const (
	TypeArray            TypeKind = "array"
	TypeConditional      TypeKind = "conditional"
	TypeIndexedAccess    TypeKind = "indexedAccess"
	TypeInferred         TypeKind = "inferred"
	TypeIntersection     TypeKind = "intersection"
	TypeIntrinsic        TypeKind = "intrinsic"
	TypeLiteral          TypeKind = "literal"
	TypeMapped           TypeKind = "mapped"
	TypeNamedTupleMember TypeKind = "named-tuple-member"
	TypeOptional         TypeKind = "optional"
	TypePredicate        TypeKind = "predicate"
	TypeQuery            TypeKind = "query"
	TypeReference        TypeKind = "reference"
	TypeReflection       TypeKind = "reflection"
	TypeRest             TypeKind = "rest"
	TypeTemplateLiteral  TypeKind = "template-literal"
	TypeTuple            TypeKind = "tuple"
	TypeTypeOperator     TypeKind = "typeOperator"
	TypeUnion            TypeKind = "union"
	TypeUnknown          TypeKind = "unknown"
)

// Type is a type expression. Only the fields belonging to Kind are set.
type Type struct {
	Kind TypeKind `json:"type"`

	// reference, intrinsic, inferred, unknown, predicate, named-tuple-member
	Name          string  `json:"name,omitempty"`
	QualifiedName string  `json:"qualifiedName,omitempty"`
	Package       string  `json:"package,omitempty"`
	TypeArguments []*Type `json:"typeArguments,omitempty"`

	// union, intersection
	Types []*Type `json:"types,omitempty"`

	// tuple
	Elements []*Type `json:"elements,omitempty"`

	// array, optional, rest
	ElementType *Type `json:"elementType,omitempty"`

	// named-tuple-member
	Element    *Type `json:"element,omitempty"`
	IsOptional bool  `json:"isOptional,omitempty"`

	// literal; a bigint literal is {"value": "123", "negative": false}
	Value any `json:"value,omitempty"`

	// reflection
	Declaration *Node `json:"declaration,omitempty"`

	// conditional
	CheckType   *Type `json:"checkType,omitempty"`
	ExtendsType *Type `json:"extendsType,omitempty"`
	TrueType    *Type `json:"trueType,omitempty"`
	FalseType   *Type `json:"falseType,omitempty"`

	// indexedAccess
	ObjectType *Type `json:"objectType,omitempty"`
	IndexType  *Type `json:"indexType,omitempty"`

	// typeOperator
	Operator string `json:"operator,omitempty"`
	Target   *Type  `json:"target,omitempty"`

	// query
	QueryType *Type `json:"queryType,omitempty"`

	// predicate
	Asserts    bool  `json:"asserts,omitempty"`
	TargetType *Type `json:"targetType,omitempty"`

	// mapped
	Parameter        string `json:"parameter,omitempty"`
	ParameterType    *Type  `json:"parameterType,omitempty"`
	TemplateType     *Type  `json:"templateType,omitempty"`
	NameType         *Type  `json:"nameType,omitempty"`
	ReadonlyModifier string `json:"readonlyModifier,omitempty"`
	OptionalModifier string `json:"optionalModifier,omitempty"`

	// template-literal
	Head string         `json:"head,omitempty"`
	Tail []TemplateSpan `json:"tail,omitempty"`
}

// TemplateSpan is one "${type}text" span of a template literal type. It
// is encoded as a two-element array.
type TemplateSpan struct {
	Type *Type
	Text string
}

// UnmarshalJSON decodes [type, text].
func (s *TemplateSpan) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding template span: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("decoding template span: want 2 elements, got %d", len(raw))
	}
	var t Type
	if err := json.Unmarshal(raw[0], &t); err != nil {
		return fmt.Errorf("decoding template span type: %w", err)
	}
	var text string
	if err := json.Unmarshal(raw[1], &text); err != nil {
		return fmt.Errorf("decoding template span text: %w", err)
	}
	*s = TemplateSpan{Type: &t, Text: text}
	return nil
}

// MarshalJSON encodes the span as [type, text].
func (s TemplateSpan) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{s.Type, s.Text})
}

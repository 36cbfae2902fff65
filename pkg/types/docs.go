// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FormatVersion identifies the documentation schema. It is incremented on
// breaking changes to the records below.
const FormatVersion = 20

// Access marks a documented member as hidden from the public API.
type Access string

const AccessPrivate Access = "private"

// Scope marks a member as belonging to the class rather than an instance.
type Scope string

const ScopeStatic Scope = "static"

// TypedefVariant distinguishes the three kinds of typedef.
type TypedefVariant string

const (
	VariantType      TypedefVariant = "type"
	VariantInterface TypedefVariant = "interface"
	VariantEnum      TypedefVariant = "enum"
)

// DocMeta locates a documented declaration in the source tree.
type DocMeta struct {
	Line int    `json:"line"`
	File string `json:"file"`
	Path string `json:"path"`
}

// ClassDoc documents a class.
type ClassDoc struct {
	Name                string           `json:"name"`
	Description         string           `json:"description,omitempty"`
	ExtendedDescription string           `json:"extendedDescription,omitempty"`
	See                 []string         `json:"see,omitempty"`
	Extends             []string         `json:"extends,omitempty"`
	Implements          []string         `json:"implements,omitempty"`
	Examples            []string         `json:"examples,omitempty"`
	Access              Access           `json:"access,omitempty"`
	Abstract            bool             `json:"abstract,omitempty"`
	Deprecated          bool             `json:"deprecated,omitempty"`
	Construct           *ClassMethodDoc  `json:"construct,omitempty"`
	Props               []ClassPropDoc   `json:"props,omitempty"`
	Methods             []ClassMethodDoc `json:"methods,omitempty"`
	Events              []ClassEventDoc  `json:"events,omitempty"`
	Meta                *DocMeta         `json:"meta,omitempty"`
}

// ClassPropDoc documents a property or a readable accessor.
type ClassPropDoc struct {
	Name                string      `json:"name"`
	Description         string      `json:"description,omitempty"`
	ExtendedDescription string      `json:"extendedDescription,omitempty"`
	See                 []string    `json:"see,omitempty"`
	Scope               Scope       `json:"scope,omitempty"`
	Access              Access      `json:"access,omitempty"`
	Readonly            bool        `json:"readonly,omitempty"`
	Abstract            bool        `json:"abstract,omitempty"`
	Deprecated          bool        `json:"deprecated,omitempty"`
	Default             any         `json:"default,omitempty"`
	Type                CompactType `json:"type,omitempty"`
	Meta                *DocMeta    `json:"meta,omitempty"`
}

// ParamDoc documents a parameter, an interface member or an enum member.
type ParamDoc struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Optional    bool        `json:"optional,omitempty"`
	Default     any         `json:"default,omitempty"`
	Type        CompactType `json:"type,omitempty"`
}

// ClassMethodDoc documents a method, a constructor or an event.
type ClassMethodDoc struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// The documentation site reads the long description of callables
	// from "extendDescription".
	ExtendDescription  string      `json:"extendDescription,omitempty"`
	See                []string    `json:"see,omitempty"`
	Scope              Scope       `json:"scope,omitempty"`
	Access             Access      `json:"access,omitempty"`
	Examples           []string    `json:"examples,omitempty"`
	Abstract           bool        `json:"abstract,omitempty"`
	Deprecated         bool        `json:"deprecated,omitempty"`
	Emits              []string    `json:"emits,omitempty"`
	Params             []ParamDoc  `json:"params,omitempty"`
	Returns            CompactType `json:"returns,omitempty"`
	ReturnsDescription string      `json:"returnsDescription,omitempty"`
	Meta               *DocMeta    `json:"meta,omitempty"`
}

// ClassEventDoc documents an event. Its params model the emitted payload.
type ClassEventDoc = ClassMethodDoc

// TypedefDoc documents a type alias, an interface or an enumeration.
type TypedefDoc struct {
	Name                string         `json:"name"`
	Description         string         `json:"description,omitempty"`
	ExtendedDescription string         `json:"extendedDescription,omitempty"`
	Variant             TypedefVariant `json:"variant"`
	See                 []string       `json:"see,omitempty"`
	Access              Access         `json:"access,omitempty"`
	Deprecated          bool           `json:"deprecated,omitempty"`
	Type                CompactType    `json:"type,omitempty"`
	Props               []ParamDoc     `json:"props,omitempty"`
	Params              []ParamDoc     `json:"params,omitempty"`
	Returns             CompactType    `json:"returns,omitempty"`
	ReturnsDescription  string         `json:"returnsDescription,omitempty"`
	Meta                *DocMeta       `json:"meta,omitempty"`
}

// NamespaceDoc documents a namespace and the typedefs it declares.
type NamespaceDoc struct {
	Name                string       `json:"name"`
	Description         string       `json:"description,omitempty"`
	ExtendedDescription string       `json:"extendedDescription,omitempty"`
	See                 []string     `json:"see,omitempty"`
	Deprecated          bool         `json:"deprecated,omitempty"`
	TypeAliases         []TypedefDoc `json:"typeAliases,omitempty"`
	Interfaces          []TypedefDoc `json:"interfaces,omitempty"`
	Enumerations        []TypedefDoc `json:"enumerations,omitempty"`
	IsExternal          bool         `json:"isExternal,omitempty"`
	Meta                *DocMeta     `json:"meta,omitempty"`
}

// CodeDocs holds the three generated top-level collections.
type CodeDocs struct {
	Classes    []ClassDoc     `json:"classes"`
	Typedefs   []TypedefDoc   `json:"typedefs"`
	Namespaces []NamespaceDoc `json:"namespaces"`
}

// OutputMeta describes the tool run that produced an Output.
type OutputMeta struct {
	Version string `json:"version"`
	Format  int    `json:"format"`
	// Date is the generation time in Unix milliseconds.
	Date int64 `json:"date"`
}

// Output is the documentation file written for the documentation site.
type Output struct {
	Meta   OutputMeta `json:"meta"`
	Custom CustomDocs `json:"custom"`
	CodeDocs
}

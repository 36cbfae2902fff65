// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reflection

// Kind names a reflection node kind, using the reflection tool's own
// spelling (the "kindString" field).
type Kind string

const (
	KindProject              Kind = "Project"
	KindModule               Kind = "Module"
	KindNamespace            Kind = "Namespace"
	KindEnum                 Kind = "Enumeration"
	KindEnumMember           Kind = "Enumeration member"
	KindVariable             Kind = "Variable"
	KindFunction             Kind = "Function"
	KindClass                Kind = "Class"
	KindInterface            Kind = "Interface"
	KindConstructor          Kind = "Constructor"
	KindProperty             Kind = "Property"
	KindMethod               Kind = "Method"
	KindCallSignature        Kind = "Call signature"
	KindIndexSignature       Kind = "Index signature"
	KindConstructorSignature Kind = "Constructor signature"
	KindParameter            Kind = "Parameter"
	KindTypeLiteral          Kind = "Type literal"
	KindTypeParameter        Kind = "Type parameter"
	KindAccessor             Kind = "Accessor"
	KindGetSignature         Kind = "Get signature"
	KindSetSignature         Kind = "Set signature"
	KindObjectLiteral        Kind = "Object literal"
	KindTypeAlias            Kind = "Type alias"
	KindEvent                Kind = "Event"
	KindReference            Kind = "Reference"
	KindUnknown              Kind = ""
)

// kindFlags maps the numeric ReflectionKind bit flags to kind names, using
// the numbering of the releases that emit only the number (0.23 and
// later). Object literal and Event have no flag there; older releases
// always carry kindString for them.
var kindFlags = map[int]Kind{
	0x1:      KindProject,
	0x2:      KindModule,
	0x4:      KindNamespace,
	0x8:      KindEnum,
	0x10:     KindEnumMember,
	0x20:     KindVariable,
	0x40:     KindFunction,
	0x80:     KindClass,
	0x100:    KindInterface,
	0x200:    KindConstructor,
	0x400:    KindProperty,
	0x800:    KindMethod,
	0x1000:   KindCallSignature,
	0x2000:   KindIndexSignature,
	0x4000:   KindConstructorSignature,
	0x8000:   KindParameter,
	0x10000:  KindTypeLiteral,
	0x20000:  KindTypeParameter,
	0x40000:  KindAccessor,
	0x80000:  KindGetSignature,
	0x100000: KindSetSignature,
	0x200000: KindTypeAlias,
	0x400000: KindReference,
}

// KindFromFlag resolves a numeric kind. Unknown values yield KindUnknown.
func KindFromFlag(flag int) Kind {
	if k, ok := kindFlags[flag]; ok {
		return k
	}
	return KindUnknown
}

// Route is the top-level collection a root node is documented in.
type Route int

const (
	RouteSkip Route = iota
	RouteClass
	RouteTypedef
	RouteNamespace
)

func (r Route) String() string {
	switch r {
	case RouteClass:
		return "class"
	case RouteTypedef:
		return "typedef"
	case RouteNamespace:
		return "namespace"
	default:
		return "skip"
	}
}

// RouteOf decides where a top-level node of kind k is documented. Every
// known kind is listed; anything newer than this table is skipped.
func RouteOf(k Kind) Route {
	switch k {
	case KindClass:
		return RouteClass
	case KindInterface, KindTypeAlias, KindEnum:
		return RouteTypedef
	case KindNamespace:
		return RouteNamespace
	case KindProject, KindModule, KindEnumMember, KindVariable, KindFunction,
		KindConstructor, KindProperty, KindMethod, KindCallSignature,
		KindIndexSignature, KindConstructorSignature, KindParameter,
		KindTypeLiteral, KindTypeParameter, KindAccessor, KindGetSignature,
		KindSetSignature, KindObjectLiteral, KindEvent, KindReference:
		return RouteSkip
	default:
		return RouteSkip
	}
}

// Package ir defines the intermediate representation produced by the model
// builder and consumed by the code emitter. The IR is a pure value tree:
// it is constructed once per generation run and never mutated afterwards.
package ir

// Model is the closed set of generated model kinds. The emitter matches on
// the concrete type; adding a kind is an explicit change in both places.
type Model interface {
	// ModelName returns the unique display name used for deduplication.
	ModelName() string
}

// Field describes one struct or composition member.
type Field struct {
	// Name is the wire name as it appears in the document.
	Name string
	// Type is the declared Rust type name.
	Type string
	// Format records the source format tag ("date-time", "enum", "reference", ...).
	Format string
	// Required reports membership in the owning schema's required list.
	Required bool
	// Nullable is the field's own nullable flag, or the target schema's flag
	// when the field is a reference.
	Nullable    bool
	Description string
}

// Flatten reports whether the field should be merged into its parent at
// serialization time instead of nesting under its own key.
func (f Field) Flatten() bool {
	return f.Name == "additional_properties"
}

// StructModel is a plain object schema.
type StructModel struct {
	Name        string
	Fields      []Field
	Description string
	CustomAttrs []string
}

func (m StructModel) ModelName() string { return m.Name }

// UnionKind distinguishes the two disjunction operators.
type UnionKind string

const (
	UnionOneOf UnionKind = "oneOf"
	UnionAnyOf UnionKind = "anyOf"
)

// UnionVariant is one alternative of a union. Fields are carried for
// variants synthesized from inline members; reference variants resolve to
// an already generated type of the same name.
type UnionVariant struct {
	Name   string
	Fields []Field
}

// UnionModel is a oneOf/anyOf schema that did not collapse to an enum.
type UnionModel struct {
	Name        string
	Variants    []UnionVariant
	Kind        UnionKind
	CustomAttrs []string
}

func (m UnionModel) ModelName() string { return m.Name }

// CompositionModel is an allOf schema with the member fields merged.
type CompositionModel struct {
	Name        string
	Fields      []Field
	CustomAttrs []string
}

func (m CompositionModel) ModelName() string { return m.Name }

// EnumModel is a string enumeration, either declared directly or collapsed
// from a oneOf/anyOf whose members are all simple enums.
type EnumModel struct {
	Name string
	// Variants holds the literal values; the emitter derives identifiers.
	Variants    []string
	Description string
	CustomAttrs []string
}

func (m EnumModel) ModelName() string { return m.Name }

// TypeAliasModel aliases a name to a custom type override or a map type.
// The target is emitted verbatim, without validation.
type TypeAliasModel struct {
	Name        string
	Target      string
	Description string
	CustomAttrs []string
}

func (m TypeAliasModel) ModelName() string { return m.Name }

// Request is the envelope descriptor for an operation's request body.
type Request struct {
	Name        string
	ContentType string
	// Schema is the name of the body type.
	Schema   string
	Required bool
}

// Response is the envelope descriptor for one operation response. The
// status code is part of the generated type's identity, so multiple
// statuses on one operation never collide.
type Response struct {
	Name        string
	StatusCode  string
	ContentType string
	Schema      string
	Description string
}

// IR is the complete output of one builder run, in emission order:
// models in discovery order, then requests, then responses.
type IR struct {
	Models    []Model
	Requests  []Request
	Responses []Response
}

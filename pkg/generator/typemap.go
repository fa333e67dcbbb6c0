package generator

import (
	"fmt"
	"math"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/typefold/oas2rust/pkg/ir"
	"github.com/typefold/oas2rust/pkg/utils"
)

// Rust target types. Anything the mapper cannot place degrades to the
// opaque JSON value rather than failing the run.
const (
	typeString   = "String"
	typeInt      = "i64"
	typeFloat    = "f64"
	typeBool     = "bool"
	typeDateTime = "DateTime<Utc>"
	typeDate     = "NaiveDate"
	typeUUID     = "Uuid"
	typeAny      = "serde_json::Value"
)

// mapType maps one schema node to a declared Rust type name plus a source
// format tag. Nested nodes are mapped recursively; references map to the
// target's registered name without inlining its body, which is also what
// makes self-referencing schemas work.
func (b *Builder) mapType(sr *openapi3.SchemaRef) (string, string) {
	if sr == nil {
		return typeAny, "unknown"
	}
	if sr.Ref != "" {
		name := refName(sr.Ref)
		if name == "" {
			return typeAny, "unknown"
		}
		if target := b.resolveSchema(sr.Ref); target != nil && target.Value != nil && len(target.Value.OneOf) > 0 {
			return utils.ToPascalCase(name), "oneOf"
		}
		return utils.ToPascalCase(name), "reference"
	}
	s := sr.Value
	if s == nil {
		return typeAny, "unknown"
	}

	name, format := b.mapInlineType(s)

	// The override replaces the mapped name unconditionally.
	if override, ok := customType(s); ok {
		name = override
	}
	return name, format
}

func (b *Builder) mapInlineType(s *openapi3.Schema) (string, string) {
	if s.Type == nil {
		return typeAny, "unknown"
	}
	switch {
	case s.Type.Is(openapi3.TypeString):
		switch strings.ToLower(s.Format) {
		case "date-time":
			return typeDateTime, "date-time"
		case "date":
			return typeDate, "date"
		case "uuid":
			return typeUUID, "uuid"
		case "":
			return typeString, "string"
		default:
			return typeString, s.Format
		}
	case s.Type.Is(openapi3.TypeInteger):
		return typeInt, "integer"
	case s.Type.Is(openapi3.TypeNumber):
		return typeFloat, "number"
	case s.Type.Is(openapi3.TypeBoolean):
		return typeBool, "boolean"
	case s.Type.Is(openapi3.TypeArray):
		if s.Items == nil {
			return "Vec<" + typeAny + ">", "array"
		}
		inner, format := b.mapType(s.Items)
		return "Vec<" + inner + ">", format
	case s.Type.Is(openapi3.TypeObject):
		if len(s.Properties) == 0 && hasAdditionalProperties(s) {
			return mapValueType(b, s), "map"
		}
		return typeAny, "object"
	default:
		return typeAny, "unknown"
	}
}

// hasAdditionalProperties reports whether the schema declares
// additionalProperties at all, as a schema or as a boolean.
func hasAdditionalProperties(s *openapi3.Schema) bool {
	return s.AdditionalProperties.Schema != nil || s.AdditionalProperties.Has != nil
}

// mapValueType renders the HashMap alias target for an
// additionalProperties-only object. A boolean or absent additionalProperties
// schema maps the values to the opaque JSON type.
func mapValueType(b *Builder, s *openapi3.Schema) string {
	inner := typeAny
	if s.AdditionalProperties.Schema != nil {
		inner, _ = b.mapType(s.AdditionalProperties.Schema)
	}
	return "std::collections::HashMap<String, " + inner + ">"
}

// mapField computes the field descriptor for one property, plus an inline
// enum model when the property declares its own enumeration. Nullability of
// a reference field is read from the target schema, never from the
// referencing node.
func (b *Builder) mapField(name string, sr *openapi3.SchemaRef) (ir.Field, ir.Model) {
	fieldType, format := b.mapType(sr)
	field := ir.Field{Name: name, Type: fieldType, Format: format}

	if sr == nil {
		return field, nil
	}
	if sr.Ref != "" {
		if target := b.resolveSchema(sr.Ref); target != nil && target.Value != nil {
			field.Nullable = target.Value.Nullable
		}
		return field, nil
	}

	s := sr.Value
	if s == nil {
		return field, nil
	}
	field.Nullable = s.Nullable
	field.Description = s.Description

	// An inline string enumeration becomes a generated enum named after
	// the field.
	if s.Type != nil && s.Type.Is(openapi3.TypeString) {
		if values := stringEnumValues(s); len(values) > 0 {
			enumName := utils.ToPascalCase(name)
			field.Type = enumName
			field.Format = "enum"
			return field, ir.EnumModel{
				Name:        enumName,
				Variants:    values,
				Description: s.Description,
				CustomAttrs: customAttrs(s),
			}
		}
	}
	return field, nil
}

// stringEnumValues collects the string literals of an enumeration,
// skipping values of any other type.
func stringEnumValues(s *openapi3.Schema) []string {
	if len(s.Enum) == 0 {
		return nil
	}
	values := make([]string, 0, len(s.Enum))
	for _, v := range s.Enum {
		if str, ok := v.(string); ok {
			values = append(values, str)
		}
	}
	return values
}

// integerEnumValues collects integer enumeration literals stringified as
// Value<N>. JSON decoding yields float64 for numbers; only whole values
// qualify.
func integerEnumValues(s *openapi3.Schema) []string {
	if len(s.Enum) == 0 {
		return nil
	}
	values := make([]string, 0, len(s.Enum))
	for _, v := range s.Enum {
		switch n := v.(type) {
		case int:
			values = append(values, fmt.Sprintf("Value%d", n))
		case int64:
			values = append(values, fmt.Sprintf("Value%d", n))
		case float64:
			if n == math.Trunc(n) {
				values = append(values, fmt.Sprintf("Value%d", int64(n)))
			}
		}
	}
	return values
}

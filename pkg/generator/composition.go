package generator

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/typefold/oas2rust/pkg/ir"
	"github.com/typefold/oas2rust/pkg/utils"
)

// resolveAllOf merges allOf members into one field list.
//
// The required set is the union of every resolved member's required names,
// and it overrides each extracted field's local requiredness. Fields are
// concatenated in member order without deduplicating name collisions, so a
// name declared by two members appears twice and both entries receive the
// override. A dangling member reference contributes nothing.
func (b *Builder) resolveAllOf(members openapi3.SchemaRefs) ([]ir.Field, []ir.Model) {
	required := map[string]struct{}{}
	for _, member := range members {
		resolved := b.resolveMember(member)
		if resolved == nil || resolved.Value == nil {
			continue
		}
		s := resolved.Value
		if s.Type != nil && s.Type.Is(openapi3.TypeObject) {
			for _, name := range s.Required {
				required[name] = struct{}{}
			}
		}
	}

	var fields []ir.Field
	var models []ir.Model
	for _, member := range members {
		resolved := b.resolveMember(member)
		if resolved == nil {
			continue
		}
		memberFields, inline := b.extractFields(resolved)
		fields = append(fields, memberFields...)
		models = append(models, inline...)
	}

	for i := range fields {
		if _, ok := required[fields[i].Name]; ok {
			fields[i].Required = true
		}
	}
	return fields, models
}

// resolveUnion turns oneOf/anyOf members into union variants, or collapses
// the whole union into a single enum when every resolved member is a
// string-or-integer schema whose only constraint is an enumeration. The
// collapsed enum carries the deduplicated, sorted union of the values;
// per-member descriptions and attributes are discarded.
func (b *Builder) resolveUnion(name string, members openapi3.SchemaRefs) ([]ir.UnionVariant, []ir.Model) {
	if enum, ok := b.collapseToEnum(name, members); ok {
		return nil, []ir.Model{enum}
	}

	var variants []ir.UnionVariant
	var models []ir.Model
	for i, member := range members {
		if member == nil {
			continue
		}
		if member.Ref != "" {
			target := b.resolveSchema(member.Ref)
			if target == nil || target.Value == nil {
				continue
			}
			variantName := utils.ToPascalCase(refName(member.Ref))
			if len(target.Value.OneOf) > 0 {
				// A union member referencing another union carries no
				// payload fields of its own.
				variants = append(variants, ir.UnionVariant{Name: variantName})
				continue
			}
			fields, inline := b.extractFields(target)
			variants = append(variants, ir.UnionVariant{Name: variantName, Fields: fields})
			models = append(models, inline...)
			if len(fields) > 0 {
				models = append(models, ir.StructModel{Name: variantName, Fields: fields})
			}
			continue
		}
		fields, inline := b.extractFields(member)
		variantName := fmt.Sprintf("Variant%d", i)
		variants = append(variants, ir.UnionVariant{Name: variantName, Fields: fields})
		models = append(models, inline...)
		if len(fields) > 0 {
			models = append(models, ir.StructModel{Name: variantName, Fields: fields})
		}
	}
	return variants, models
}

// collapseToEnum implements the enum-collapse rule for unions.
func (b *Builder) collapseToEnum(name string, members openapi3.SchemaRefs) (ir.EnumModel, bool) {
	seen := map[string]struct{}{}
	for _, member := range members {
		resolved := b.resolveMember(member)
		if resolved == nil || resolved.Value == nil {
			return ir.EnumModel{}, false
		}
		s := resolved.Value
		switch {
		case s.Type != nil && s.Type.Is(openapi3.TypeString) && len(s.Enum) > 0:
			for _, v := range stringEnumValues(s) {
				seen[v] = struct{}{}
			}
		case s.Type != nil && s.Type.Is(openapi3.TypeInteger) && len(s.Enum) > 0:
			for _, v := range integerEnumValues(s) {
				seen[v] = struct{}{}
			}
		default:
			return ir.EnumModel{}, false
		}
	}
	if len(seen) == 0 {
		return ir.EnumModel{}, false
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	for i := range values {
		values[i] = utils.ToPascalCase(values[i])
	}
	// Values merged from several members have no single source schema, so
	// the collapsed enum carries no description or custom attributes.
	return ir.EnumModel{Name: utils.ToPascalCase(name), Variants: values}, true
}

// extractFields pulls the field list out of an object-like composition
// member, together with any inline enum models it declares. References
// contribute nothing; the caller resolves them first when it wants the
// target's fields.
func (b *Builder) extractFields(sr *openapi3.SchemaRef) ([]ir.Field, []ir.Model) {
	if sr == nil || sr.Ref != "" || sr.Value == nil {
		return nil, nil
	}
	s := sr.Value
	if s.Type == nil {
		return nil, nil
	}

	switch {
	case s.Type.Is(openapi3.TypeObject):
		var fields []ir.Field
		var models []ir.Model
		for _, propName := range sortedKeys(s.Properties) {
			field, inline := b.mapField(propName, s.Properties[propName])
			field.Required = contains(s.Required, propName)
			fields = append(fields, field)
			if inline != nil {
				models = append(models, inline)
			}
		}
		return fields, models
	case s.Type.Is(openapi3.TypeString):
		if values := stringEnumValues(s); len(values) > 0 {
			name := s.Title
			if name == "" {
				name = "AnonymousStringEnum"
			}
			return nil, []ir.Model{ir.EnumModel{
				Name:        name,
				Variants:    values,
				Description: s.Description,
				CustomAttrs: customAttrs(s),
			}}
		}
	case s.Type.Is(openapi3.TypeInteger):
		if values := integerEnumValues(s); len(values) > 0 {
			name := s.Title
			if name == "" {
				name = "AnonymousIntEnum"
			}
			return nil, []ir.Model{ir.EnumModel{
				Name:        name,
				Variants:    values,
				Description: s.Description,
				CustomAttrs: customAttrs(s),
			}}
		}
	}
	return nil, nil
}

// sortedKeys gives the deterministic walk order for map-shaped collections
// in the document model.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

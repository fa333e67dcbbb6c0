package generator

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/typefold/oas2rust/pkg/ir"
	"github.com/typefold/oas2rust/pkg/utils"
)

// Builder walks one parsed document into the IR. It owns the process-wide
// name set guarding every model insertion: the first writer of a name wins
// and later duplicates are dropped silently. A Builder is used for exactly
// one document and is not safe for concurrent use.
type Builder struct {
	doc  *openapi3.T
	seen map[string]struct{}

	models    []ir.Model
	requests  []ir.Request
	responses []ir.Response
}

// Build produces the deduplicated, ordered IR for a parsed document:
// component schemas first, then named request bodies, then the per-operation
// envelopes and any inline models they synthesize. Given a document that
// parsed, Build never fails; unsupported constructs simply contribute
// nothing.
func Build(doc *openapi3.T) ir.IR {
	b := &Builder{doc: doc, seen: map[string]struct{}{}}
	b.walkComponents()
	b.walkPaths()
	return ir.IR{Models: b.models, Requests: b.requests, Responses: b.responses}
}

// add inserts models, skipping any whose display name was already taken.
func (b *Builder) add(models ...ir.Model) {
	for _, m := range models {
		name := m.ModelName()
		if _, dup := b.seen[name]; dup {
			continue
		}
		b.seen[name] = struct{}{}
		b.models = append(b.models, m)
	}
}

func (b *Builder) walkComponents() {
	if b.doc.Components == nil {
		return
	}
	for _, name := range sortedKeys(b.doc.Components.Schemas) {
		b.add(b.buildSchemaModels(name, b.doc.Components.Schemas[name], false)...)
	}
	// Named request bodies register their media-type schemas as models
	// under the request body's name.
	for _, name := range sortedKeys(b.doc.Components.RequestBodies) {
		rb := b.doc.Components.RequestBodies[name]
		if rb == nil || rb.Value == nil {
			continue
		}
		for _, contentType := range sortedKeys(rb.Value.Content) {
			media := rb.Value.Content[contentType]
			if media != nil && media.Schema != nil {
				b.add(b.buildSchemaModels(name, media.Schema, false)...)
			}
		}
	}
}

// buildSchemaModels applies the model rule table to one named schema.
// First match wins. synthetic marks names invented by the builder (inline
// request bodies, variant extractions); a zero-field object is kept as an
// empty struct only for declared components, never for synthetic ones.
func (b *Builder) buildSchemaModels(name string, sr *openapi3.SchemaRef, synthetic bool) []ir.Model {
	if sr == nil || sr.Ref != "" || sr.Value == nil {
		return nil
	}
	s := sr.Value
	displayName := utils.ToPascalCase(name)

	// Rule 1: a custom type override wins over any structural content.
	if override, ok := customType(s); ok {
		return []ir.Model{ir.TypeAliasModel{
			Name:        displayName,
			Target:      override,
			Description: s.Description,
			CustomAttrs: customAttrs(s),
		}}
	}

	switch {
	case s.Type != nil && s.Type.Is(openapi3.TypeObject):
		// Rule 2: an additionalProperties-only object collapses to a map
		// alias.
		if len(s.Properties) == 0 && hasAdditionalProperties(s) {
			return []ir.Model{ir.TypeAliasModel{
				Name:        displayName,
				Target:      mapValueType(b, s),
				Description: s.Description,
				CustomAttrs: customAttrs(s),
			}}
		}
		return b.buildObjectModels(displayName, s, synthetic)

	case len(s.AllOf) > 0:
		fields, models := b.resolveAllOf(s.AllOf)
		if len(fields) > 0 {
			models = append(models, ir.CompositionModel{
				Name:        displayName,
				Fields:      fields,
				CustomAttrs: customAttrs(s),
			})
		}
		return models

	case len(s.OneOf) > 0:
		return b.buildUnionModels(displayName, s, s.OneOf, ir.UnionOneOf)

	case len(s.AnyOf) > 0:
		return b.buildUnionModels(displayName, s, s.AnyOf, ir.UnionAnyOf)

	case s.Type != nil && s.Type.Is(openapi3.TypeString):
		if values := stringEnumValues(s); len(values) > 0 {
			return []ir.Model{ir.EnumModel{
				Name:        displayName,
				Variants:    values,
				Description: s.Description,
				CustomAttrs: customAttrs(s),
			}}
		}
	}
	return nil
}

func (b *Builder) buildObjectModels(displayName string, s *openapi3.Schema, synthetic bool) []ir.Model {
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

	switch {
	case len(fields) > 0:
		models = append(models, ir.StructModel{
			Name:        displayName,
			Fields:      fields,
			Description: s.Description,
			CustomAttrs: customAttrs(s),
		})
	case !synthetic && !hasAdditionalProperties(s):
		// A declared component with no properties is still a type on the
		// wire contract: keep it as an empty struct.
		models = append(models, ir.StructModel{
			Name:        displayName,
			Description: s.Description,
			CustomAttrs: customAttrs(s),
		})
	}
	return models
}

func (b *Builder) buildUnionModels(displayName string, s *openapi3.Schema, members openapi3.SchemaRefs, kind ir.UnionKind) []ir.Model {
	variants, models := b.resolveUnion(displayName, members)
	if len(variants) == 0 {
		// Collapsed to a plain enum: no union wrapper is emitted.
		return models
	}
	return append(models, ir.UnionModel{
		Name:        displayName,
		Variants:    variants,
		Kind:        kind,
		CustomAttrs: customAttrs(s),
	})
}

func (b *Builder) walkPaths() {
	if b.doc.Paths == nil {
		return
	}
	pathMap := b.doc.Paths.Map()
	for _, path := range sortedKeys(pathMap) {
		item := pathMap[path]
		if item == nil {
			continue
		}
		for _, op := range []*openapi3.Operation{item.Get, item.Post, item.Put, item.Delete, item.Patch} {
			if op != nil {
				b.processOperation(op)
			}
		}
	}
}

func (b *Builder) processOperation(op *openapi3.Operation) {
	opID := op.OperationID
	if opID == "" {
		opID = "Unknown"
	}
	opName := utils.ToPascalCase(opID)

	b.buildRequests(opName, op)
	b.buildResponses(opName, op)
}

func (b *Builder) buildRequests(opName string, op *openapi3.Operation) {
	if op.RequestBody == nil {
		return
	}

	var body *openapi3.RequestBody
	inline := false
	if op.RequestBody.Ref != "" {
		// An unresolvable request body reference produces no envelope.
		body = b.resolveRequestBody(op.RequestBody.Ref)
	} else {
		body = op.RequestBody.Value
		inline = true
	}
	if body == nil {
		return
	}

	for _, contentType := range sortedKeys(body.Content) {
		media := body.Content[contentType]
		if media == nil || media.Schema == nil {
			continue
		}
		schemaType := b.requestBodyType(opName, media.Schema, inline)
		b.requests = append(b.requests, ir.Request{
			Name:        opName + "Request",
			ContentType: contentType,
			Schema:      schemaType,
			Required:    body.Required,
		})
	}
}

// requestBodyType names the body type an envelope references. An inline
// plain-object body gets its own synthesized <Operation>RequestBody model;
// everything else maps to the schema's type directly.
func (b *Builder) requestBodyType(opName string, schema *openapi3.SchemaRef, inline bool) string {
	if inline && schema.Ref == "" && schema.Value != nil &&
		schema.Value.Type != nil && schema.Value.Type.Is(openapi3.TypeObject) {
		bodyName := opName + "RequestBody"
		b.add(b.buildSchemaModels(bodyName, schema, true)...)
		return bodyName
	}
	name, _ := b.mapType(schema)
	return name
}

func (b *Builder) buildResponses(opName string, op *openapi3.Operation) {
	if op.Responses == nil {
		return
	}
	responseMap := op.Responses.Map()
	for _, status := range sortedKeys(responseMap) {
		rr := responseMap[status]
		if rr == nil || rr.Ref != "" || rr.Value == nil {
			continue
		}
		description := ""
		if rr.Value.Description != nil {
			description = *rr.Value.Description
		}
		for _, contentType := range sortedKeys(rr.Value.Content) {
			media := rr.Value.Content[contentType]
			if media == nil || media.Schema == nil {
				continue
			}
			schemaType, _ := b.mapType(media.Schema)
			b.responses = append(b.responses, ir.Response{
				Name:        opName + "Response",
				StatusCode:  status,
				ContentType: contentType,
				Schema:      schemaType,
				Description: description,
			})
		}
	}
}

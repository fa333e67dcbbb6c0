package generator

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	schemaRefPrefix      = "#/components/schemas/"
	requestBodyRefPrefix = "#/components/requestBodies/"
)

// refName returns the last segment of a reference pointer, the component's
// registered name.
func refName(ref string) string {
	parts := strings.Split(ref, "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// resolveSchema looks up a component schema by reference pointer. Dangling
// references resolve to nil; callers treat that as "produce nothing for
// this node", never as a fatal error.
func (b *Builder) resolveSchema(ref string) *openapi3.SchemaRef {
	if !strings.HasPrefix(ref, schemaRefPrefix) {
		return nil
	}
	if b.doc.Components == nil || b.doc.Components.Schemas == nil {
		return nil
	}
	return b.doc.Components.Schemas[strings.TrimPrefix(ref, schemaRefPrefix)]
}

// resolveRequestBody looks up a named request body, soft-failing like
// resolveSchema.
func (b *Builder) resolveRequestBody(ref string) *openapi3.RequestBody {
	if !strings.HasPrefix(ref, requestBodyRefPrefix) {
		return nil
	}
	if b.doc.Components == nil || b.doc.Components.RequestBodies == nil {
		return nil
	}
	rb := b.doc.Components.RequestBodies[strings.TrimPrefix(ref, requestBodyRefPrefix)]
	if rb == nil {
		return nil
	}
	return rb.Value
}

// resolveMember returns the schema a composition member ultimately points
// at: the member itself when inline, the referenced component when it is a
// reference, or nil when the reference dangles.
func (b *Builder) resolveMember(sr *openapi3.SchemaRef) *openapi3.SchemaRef {
	if sr == nil {
		return nil
	}
	if sr.Ref != "" {
		return b.resolveSchema(sr.Ref)
	}
	return sr
}

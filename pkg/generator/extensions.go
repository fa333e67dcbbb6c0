package generator

import (
	"log/slog"

	"github.com/getkin/kin-openapi/openapi3"
)

// Vendor extensions read by the generator. Any other extension is ignored.
const (
	extRustType  = "x-rust-type"
	extRustAttrs = "x-rust-attrs"
)

// customType returns the x-rust-type override for a schema, if present and
// well-formed. A non-string value is ignored with a diagnostic.
func customType(s *openapi3.Schema) (string, bool) {
	if s == nil || s.Extensions == nil {
		return "", false
	}
	v, ok := s.Extensions[extRustType]
	if !ok {
		return "", false
	}
	t, ok := v.(string)
	if !ok || t == "" {
		slog.Warn("x-rust-type should be a string", "value", v)
		return "", false
	}
	return t, true
}

// customAttrs returns the x-rust-attrs override: verbatim attribute lines
// for the generated declaration. Unrecognized shapes are ignored with a
// diagnostic; an empty array counts as absent.
func customAttrs(s *openapi3.Schema) []string {
	if s == nil || s.Extensions == nil {
		return nil
	}
	v, ok := s.Extensions[extRustAttrs]
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		slog.Warn("x-rust-attrs should be an array of strings", "value", v)
		return nil
	}
	attrs := make([]string, 0, len(arr))
	for _, item := range arr {
		if str, ok := item.(string); ok {
			attrs = append(attrs, str)
		}
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

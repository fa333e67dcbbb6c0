package rust

import (
	"regexp"
	"strings"

	"github.com/typefold/oas2rust/pkg/utils"
)

// rustReservedWords is the keyword set checked when escaping generated
// identifiers. Matching is case-insensitive, so an enum variant "Type"
// collides with the keyword "type".
var rustReservedWords = map[string]struct{}{
	"as": {}, "break": {}, "const": {}, "continue": {}, "crate": {},
	"else": {}, "enum": {}, "extern": {}, "false": {}, "fn": {},
	"for": {}, "if": {}, "impl": {}, "in": {}, "let": {},
	"loop": {}, "match": {}, "mod": {}, "move": {}, "mut": {},
	"pub": {}, "ref": {}, "return": {}, "self": {}, "static": {},
	"struct": {}, "super": {}, "trait": {}, "true": {}, "type": {},
	"unsafe": {}, "use": {}, "where": {}, "while": {},
	"abstract": {}, "become": {}, "box": {}, "do": {}, "final": {},
	"macro": {}, "override": {}, "priv": {}, "try": {}, "typeof": {},
	"unsized": {}, "virtual": {}, "yield": {},
}

func isReservedWord(s string) bool {
	_, ok := rustReservedWords[strings.ToLower(s)]
	return ok
}

var nonIdentRuns = regexp.MustCompile(`[^a-z0-9]+`)

// fieldIdent normalizes a wire name into a Rust field identifier:
// lowercased, non-alphanumeric runs collapsed to one underscore, and a
// leading digit prefixed with an underscore. Reserved words are escaped as
// raw identifiers, except "self", which cannot be raw and gets a trailing
// underscore instead.
func fieldIdent(name string) string {
	ident := nonIdentRuns.ReplaceAllString(strings.ToLower(name), "_")
	if ident == "" {
		ident = "_"
	}
	if ident[0] >= '0' && ident[0] <= '9' {
		ident = "_" + ident
	}
	if ident == "self" {
		return "self_"
	}
	if isReservedWord(ident) {
		return "r#" + ident
	}
	return ident
}

// enumVariantIdent derives the exposed identifier for an enum literal and
// the rename the serializer needs to preserve the literal on the wire. An
// empty rename means the identifier already matches the literal.
func enumVariantIdent(literal string) (ident, rename string) {
	ident = utils.ToPascalCase(literal)
	if isReservedWord(ident) {
		ident += "Value"
		return ident, literal
	}
	if ident != literal {
		return ident, literal
	}
	return ident, ""
}

// hasDeriveAttr reports whether the custom attributes already declare a
// derive; the auto-derived annotations are then omitted entirely, never
// merged.
func hasDeriveAttr(attrs []string) bool {
	for _, a := range attrs {
		if strings.Contains(a, "derive(") {
			return true
		}
	}
	return false
}

// hasSerdeAttr reports whether the custom attributes carry any serde
// annotation, which overrides the default untagged representation.
func hasSerdeAttr(attrs []string) bool {
	for _, a := range attrs {
		if strings.Contains(a, "#[serde") {
			return true
		}
	}
	return false
}

// Package rust renders the IR into Rust declaration source. The renderer
// itself is pure: it maps an IR value to text, deterministically, with no
// I/O; writing files is the generator's job.
package rust

import (
	"fmt"
	"strings"

	"github.com/typefold/oas2rust/pkg/ir"
)

// Names derived from a missing operationId; envelopes carrying them are
// skipped at emission.
const (
	emptyRequestName  = "UnknownRequest"
	emptyResponseName = "UnknownResponse"
)

// Renderer emits Rust source for one IR. The import header depends on
// which standard types the body ended up using, so it is computed once from
// the rendered body and cached for the invocation.
type Renderer struct {
	header string
}

// Render produces the complete models source: import header, then models in
// discovery order, then request envelopes, then response envelopes.
func (r *Renderer) Render(doc ir.IR) string {
	var body strings.Builder

	for _, m := range doc.Models {
		switch m := m.(type) {
		case ir.StructModel:
			r.writeStruct(&body, m)
		case ir.UnionModel:
			r.writeUnion(&body, m)
		case ir.CompositionModel:
			r.writeComposition(&body, m)
		case ir.EnumModel:
			r.writeEnum(&body, m)
		case ir.TypeAliasModel:
			r.writeAlias(&body, m)
		}
	}
	for _, req := range doc.Requests {
		r.writeRequest(&body, req)
	}
	for _, resp := range doc.Responses {
		r.writeResponse(&body, resp)
	}

	return r.headerFor(body.String()) + body.String()
}

// RenderModule produces the trivial companion module re-exporting the
// generated models.
func (r *Renderer) RenderModule() string {
	return "pub mod models;\n"
}

func (r *Renderer) headerFor(body string) string {
	if r.header == "" {
		var h strings.Builder
		h.WriteString("use serde::{Serialize, Deserialize};\n")
		if strings.Contains(body, typeUUID) {
			h.WriteString("use uuid::Uuid;\n")
		}
		if strings.Contains(body, typeDateTime) || strings.Contains(body, typeDate) {
			h.WriteString("use chrono::{DateTime, NaiveDate, Utc};\n")
		}
		h.WriteString("\n")
		r.header = h.String()
	}
	return r.header
}

// Standard types the header scan looks for.
const (
	typeUUID     = "Uuid"
	typeDateTime = "DateTime<Utc>"
	typeDate     = "NaiveDate"
)

func (r *Renderer) writeStruct(b *strings.Builder, m ir.StructModel) {
	writeDocComment(b, m.Description, m.Name, "")
	writeAttrs(b, "#[derive(Debug, Serialize, Deserialize)]", m.CustomAttrs)
	fmt.Fprintf(b, "pub struct %s {\n", m.Name)
	writeFields(b, m.Fields)
	b.WriteString("}\n\n")
}

func (r *Renderer) writeComposition(b *strings.Builder, m ir.CompositionModel) {
	fmt.Fprintf(b, "/// %s (allOf composition)\n", m.Name)
	writeAttrs(b, "#[derive(Debug, Serialize, Deserialize)]", m.CustomAttrs)
	fmt.Fprintf(b, "pub struct %s {\n", m.Name)
	writeFields(b, m.Fields)
	b.WriteString("}\n\n")
}

func (r *Renderer) writeUnion(b *strings.Builder, m ir.UnionModel) {
	fmt.Fprintf(b, "/// %s (%s)\n", m.Name, m.Kind)
	writeAttrs(b, "#[derive(Debug, Serialize, Deserialize)]", m.CustomAttrs)
	if !hasSerdeAttr(m.CustomAttrs) {
		b.WriteString("#[serde(untagged)]\n")
	}
	fmt.Fprintf(b, "pub enum %s {\n", m.Name)
	for _, v := range m.Variants {
		fmt.Fprintf(b, "    %s(%s),\n", v.Name, v.Name)
	}
	b.WriteString("}\n\n")
}

func (r *Renderer) writeEnum(b *strings.Builder, m ir.EnumModel) {
	writeDocComment(b, m.Description, m.Name, "")
	writeAttrs(b, "#[derive(Debug, Clone, Serialize, Deserialize)]", m.CustomAttrs)
	fmt.Fprintf(b, "pub enum %s {\n", m.Name)
	for _, literal := range m.Variants {
		ident, rename := enumVariantIdent(literal)
		if rename != "" {
			fmt.Fprintf(b, "    #[serde(rename = %q)]\n", rename)
		}
		fmt.Fprintf(b, "    %s,\n", ident)
	}
	b.WriteString("}\n\n")
}

func (r *Renderer) writeAlias(b *strings.Builder, m ir.TypeAliasModel) {
	writeDocComment(b, m.Description, m.Name, "")
	for _, a := range m.CustomAttrs {
		b.WriteString(a)
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "pub type %s = %s;\n\n", m.Name, m.Target)
}

func (r *Renderer) writeRequest(b *strings.Builder, req ir.Request) {
	if req.Name == "" || req.Name == emptyRequestName {
		return
	}
	fmt.Fprintf(b, "/// %s\n", req.Name)
	b.WriteString("#[derive(Debug, Serialize)]\n")
	fmt.Fprintf(b, "pub struct %s {\n", req.Name)
	b.WriteString("    pub content_type: String,\n")
	fmt.Fprintf(b, "    pub body: %s,\n", req.Schema)
	b.WriteString("}\n\n")
}

func (r *Renderer) writeResponse(b *strings.Builder, resp ir.Response) {
	if resp.Name == "" || resp.Name == emptyResponseName {
		return
	}
	typeName := resp.Name + resp.StatusCode
	writeDocComment(b, resp.Description, typeName, "")
	b.WriteString("#[derive(Debug, Deserialize)]\n")
	fmt.Fprintf(b, "pub struct %s {\n", typeName)
	fmt.Fprintf(b, "    pub body: %s,\n", resp.Schema)
	b.WriteString("}\n\n")
}

// writeDocComment emits one comment line per description line, trimmed,
// falling back to the type name when there is no description.
func writeDocComment(b *strings.Builder, description, fallback, indent string) {
	if description == "" {
		fmt.Fprintf(b, "%s/// %s\n", indent, fallback)
		return
	}
	for _, line := range strings.Split(description, "\n") {
		fmt.Fprintf(b, "%s/// %s\n", indent, strings.TrimSpace(line))
	}
}

// writeAttrs emits the auto-derived annotations unless the custom
// attributes already declare a derive, in which case only the custom
// attributes appear, verbatim.
func writeAttrs(b *strings.Builder, defaultDerive string, custom []string) {
	if !hasDeriveAttr(custom) {
		b.WriteString(defaultDerive)
		b.WriteString("\n")
	}
	for _, a := range custom {
		b.WriteString(a)
		b.WriteString("\n")
	}
}

func writeFields(b *strings.Builder, fields []ir.Field) {
	for _, f := range fields {
		if f.Description != "" {
			writeDocComment(b, f.Description, "", "    ")
		}
		if f.Flatten() {
			b.WriteString("    #[serde(flatten)]\n")
		}
		ident := fieldIdent(f.Name)
		if ident != f.Name {
			fmt.Fprintf(b, "    #[serde(rename = %q)]\n", f.Name)
		}
		if f.Required && !f.Nullable {
			fmt.Fprintf(b, "    pub %s: %s,\n", ident, f.Type)
		} else {
			fmt.Fprintf(b, "    pub %s: Option<%s>,\n", ident, f.Type)
		}
	}
}

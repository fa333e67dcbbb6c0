package rust

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/typefold/oas2rust/pkg/ir"
)

func render(doc ir.IR) string {
	return (&Renderer{}).Render(doc)
}

func TestRenderStruct(t *testing.T) {
	out := render(ir.IR{Models: []ir.Model{
		ir.StructModel{
			Name:        "User",
			Description: "A registered user.",
			Fields: []ir.Field{
				{Name: "id", Type: "String", Required: true},
				{Name: "userName", Type: "String", Required: true},
				{Name: "type", Type: "String"},
				{Name: "self", Type: "String", Required: true},
				{Name: "tag", Type: "String", Required: true, Nullable: true},
			},
		},
	}})

	assert.Contains(t, out, "/// A registered user.\n")
	assert.Contains(t, out, "#[derive(Debug, Serialize, Deserialize)]\npub struct User {\n")
	assert.Contains(t, out, "    pub id: String,\n")
	assert.Contains(t, out, "    #[serde(rename = \"userName\")]\n    pub username: String,\n")
	assert.Contains(t, out, "    #[serde(rename = \"type\")]\n    pub r#type: Option<String>,\n")
	assert.Contains(t, out, "    #[serde(rename = \"self\")]\n    pub self_: String,\n")
	assert.Contains(t, out, "    pub tag: Option<String>,\n", "nullable wins over required")
}

func TestRenderAdditionalPropertiesFieldFlattens(t *testing.T) {
	out := render(ir.IR{Models: []ir.Model{
		ir.StructModel{
			Name: "Bag",
			Fields: []ir.Field{
				{Name: "additional_properties", Type: "std::collections::HashMap<String, serde_json::Value>"},
			},
		},
	}})

	assert.Contains(t, out, "    #[serde(flatten)]\n    pub additional_properties: Option<std::collections::HashMap<String, serde_json::Value>>,\n")
}

func TestRenderConditionalImports(t *testing.T) {
	plain := render(ir.IR{Models: []ir.Model{
		ir.StructModel{Name: "A", Fields: []ir.Field{{Name: "x", Type: "String"}}},
	}})
	assert.True(t, strings.HasPrefix(plain, "use serde::{Serialize, Deserialize};\n\n"))
	assert.NotContains(t, plain, "use uuid::Uuid;")
	assert.NotContains(t, plain, "use chrono::")

	stamped := render(ir.IR{Models: []ir.Model{
		ir.StructModel{Name: "B", Fields: []ir.Field{
			{Name: "id", Type: "Uuid"},
			{Name: "at", Type: "DateTime<Utc>"},
		}},
	}})
	assert.Contains(t, stamped, "use uuid::Uuid;\n")
	assert.Contains(t, stamped, "use chrono::{DateTime, NaiveDate, Utc};\n")
}

func TestRenderEnum(t *testing.T) {
	out := render(ir.IR{Models: []ir.Model{
		ir.EnumModel{Name: "State", Variants: []string{"active", "in-progress", "type"}},
	}})

	assert.Contains(t, out, "#[derive(Debug, Clone, Serialize, Deserialize)]\npub enum State {\n")
	assert.Contains(t, out, "    #[serde(rename = \"active\")]\n    Active,\n")
	assert.Contains(t, out, "    #[serde(rename = \"in-progress\")]\n    InProgress,\n")
	assert.Contains(t, out, "    #[serde(rename = \"type\")]\n    TypeValue,\n")
}

func TestRenderUnionUntaggedByDefault(t *testing.T) {
	out := render(ir.IR{Models: []ir.Model{
		ir.UnionModel{
			Name: "Pet",
			Kind: ir.UnionOneOf,
			Variants: []ir.UnionVariant{
				{Name: "Cat"},
				{Name: "Dog"},
			},
		},
	}})

	assert.Contains(t, out, "/// Pet (oneOf)\n")
	assert.Contains(t, out, "#[serde(untagged)]\npub enum Pet {\n")
	assert.Contains(t, out, "    Cat(Cat),\n")
	assert.Contains(t, out, "    Dog(Dog),\n")
}

func TestRenderUnionCustomSerdeSuppressesUntagged(t *testing.T) {
	out := render(ir.IR{Models: []ir.Model{
		ir.UnionModel{
			Name:        "Event",
			Kind:        ir.UnionAnyOf,
			Variants:    []ir.UnionVariant{{Name: "Created"}},
			CustomAttrs: []string{`#[serde(tag = "kind")]`},
		},
	}})

	assert.NotContains(t, out, "#[serde(untagged)]")
	assert.Contains(t, out, "#[serde(tag = \"kind\")]\npub enum Event {\n")
	assert.Contains(t, out, "/// Event (anyOf)\n")
}

func TestRenderCustomDeriveReplacesDefault(t *testing.T) {
	out := render(ir.IR{Models: []ir.Model{
		ir.StructModel{
			Name:        "Point",
			CustomAttrs: []string{"#[derive(Debug, Clone, Copy)]"},
			Fields:      []ir.Field{{Name: "x", Type: "f64", Required: true}},
		},
	}})

	assert.Contains(t, out, "#[derive(Debug, Clone, Copy)]\npub struct Point {\n")
	assert.NotContains(t, out, "#[derive(Debug, Serialize, Deserialize)]\npub struct Point", "custom derives are never merged with the default")
}

func TestRenderTypeAlias(t *testing.T) {
	out := render(ir.IR{Models: []ir.Model{
		ir.TypeAliasModel{Name: "UserId", Target: "crate::ids::UserId"},
	}})

	assert.Contains(t, out, "/// UserId\npub type UserId = crate::ids::UserId;\n")
}

func TestRenderRequestAndResponseEnvelopes(t *testing.T) {
	out := render(ir.IR{
		Requests: []ir.Request{
			{Name: "CreatePetRequest", ContentType: "application/json", Schema: "CreatePetRequestBody", Required: true},
		},
		Responses: []ir.Response{
			{Name: "GetPetResponse", StatusCode: "200", ContentType: "application/json", Schema: "Pet", Description: "the pet"},
		},
	})

	assert.Contains(t, out, "/// CreatePetRequest\n#[derive(Debug, Serialize)]\npub struct CreatePetRequest {\n    pub content_type: String,\n    pub body: CreatePetRequestBody,\n}\n")
	assert.Contains(t, out, "/// the pet\n#[derive(Debug, Deserialize)]\npub struct GetPetResponse200 {\n    pub body: Pet,\n}\n")
}

func TestRenderSkipsUnknownEnvelopes(t *testing.T) {
	out := render(ir.IR{
		Requests:  []ir.Request{{Name: "UnknownRequest", Schema: "Foo"}},
		Responses: []ir.Response{{Name: "UnknownResponse", StatusCode: "200", Schema: "Bar"}},
	})

	assert.NotContains(t, out, "UnknownRequest")
	assert.NotContains(t, out, "UnknownResponse")
}

func TestRenderModule(t *testing.T) {
	assert.Equal(t, "pub mod models;\n", (&Renderer{}).RenderModule())
}

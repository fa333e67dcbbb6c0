package rust

import "testing"

func TestFieldIdent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "name", "name"},
		{"camel case is lowercased", "userName", "username"},
		{"dash becomes underscore", "user-name", "user_name"},
		{"run collapses to one underscore", "user--name", "user_name"},
		{"dollar prefix", "$ref", "_ref"},
		{"leading digit", "9lives", "_9lives"},
		{"reserved word", "type", "r#type"},
		{"reserved word uppercase", "Type", "r#type"},
		{"self cannot be raw", "self", "self_"},
		{"empty", "", "_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fieldIdent(tt.input); got != tt.expected {
				t.Errorf("fieldIdent(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEnumVariantIdent(t *testing.T) {
	tests := []struct {
		name       string
		literal    string
		wantIdent  string
		wantRename string
	}{
		{"lowercase literal", "active", "Active", "active"},
		{"dashed literal", "in-progress", "InProgress", "in-progress"},
		{"already pascal", "Active", "Active", ""},
		{"reserved word gets suffix", "type", "TypeValue", "type"},
		{"self is reserved too", "self", "SelfValue", "self"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ident, rename := enumVariantIdent(tt.literal)
			if ident != tt.wantIdent || rename != tt.wantRename {
				t.Errorf("enumVariantIdent(%q) = (%q, %q), want (%q, %q)",
					tt.literal, ident, rename, tt.wantIdent, tt.wantRename)
			}
		})
	}
}

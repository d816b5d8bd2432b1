package match

import (
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"orderId", "orderid"},
		{"ORDER ID", "orderid"},

		// Quoted column names
		{`"Name"`, "name"},
		{"`Camel`", "camel"},
		{"[UPPER_CASE]", "uppercase"},
		{`"unterminated`, `"unterminated`},

		// Edge cases
		{"", ""},
		{"a", "a"},
		{`""`, ""},
		{"Größe", "größe"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

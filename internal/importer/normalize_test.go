package importer

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"lowercases", "NAME", "name"},
		{"strips spaces", "Full Name", "fullname"},
		{"strips punctuation", "S/O D/O W/O", "sodwo"},
		{"strips parentheses", "Mobile (WhatsApp)", "mobilewhatsapp"},
		{"keeps digits", "Contact No 2", "contactno2"},
		{"empty input", "", ""},
		{"only punctuation", "---", ""},
		{"mixed unicode stripped", "Náme", "nme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.header))
		})
	}
}

func TestProperty_NormalizeOutputAlphabet(t *testing.T) {
	properties := gopter.NewProperties(&gopter.TestParameters{MinSuccessfulTests: 100})

	properties.Property("output contains only lowercase alphanumerics", prop.ForAll(
		func(header string) bool {
			for _, r := range Normalize(header) {
				if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("normalization is idempotent", prop.ForAll(
		func(header string) bool {
			once := Normalize(header)
			return Normalize(once) == once
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

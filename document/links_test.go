package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateContactLink(t *testing.T) {
	cases := []struct {
		name string
		link ContactLink
		ok   bool
	}{
		{"valid email", ContactLink{Type: "email", URL: "ada@example.com"}, true},
		{"bad email", ContactLink{Type: "email", URL: "not-an-email"}, false},
		{"valid phone with separators", ContactLink{Type: "phone", URL: "+1 (555) 123-4567"}, true},
		{"valid github", ContactLink{Type: "github", URL: "ada-lovelace"}, true},
		{"github too long", ContactLink{Type: "github", URL: "a234567890123456789012345678901234567890"}, false},
		{"valid twitter", ContactLink{Type: "twitter", URL: "ada_l"}, true},
		{"twitter with dash", ContactLink{Type: "twitter", URL: "ada-l"}, false},
		{"valid zoom id", ContactLink{Type: "zoom", URL: "123 4567 8901"}, true},
		{"zoom too short", ContactLink{Type: "zoom", URL: "12345"}, false},
		{"valid website", ContactLink{Type: "website", URL: "example.com/portfolio"}, true},
		{"custom accepts anything", ContactLink{Type: "custom", URL: "whatever"}, true},
		{"empty value", ContactLink{Type: "github", URL: "  "}, false},
		{"unknown type", ContactLink{Type: "carrier-pigeon", URL: "coo"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateContactLink(tc.link)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestResolveContactURL(t *testing.T) {
	assert.Equal(t, "mailto:ada@example.com", ResolveContactURL(ContactLink{Type: "email", URL: "ada@example.com"}))
	assert.Equal(t, "https://github.com/ada", ResolveContactURL(ContactLink{Type: "github", URL: "ada"}))
	assert.Equal(t, "https://example.com", ResolveContactURL(ContactLink{Type: "website", URL: "example.com"}))
	assert.Equal(t, "https://example.com", ResolveContactURL(ContactLink{Type: "website", URL: "https://example.com"}))
}

func TestEnsureHTTPS(t *testing.T) {
	assert.Equal(t, "https://example.com", EnsureHTTPS("example.com"))
	assert.Equal(t, "http://example.com", EnsureHTTPS("http://example.com"))
	assert.Equal(t, "mailto:a@b.c", EnsureHTTPS("mailto:a@b.c"))
	assert.Equal(t, "tel:+15551234567", EnsureHTTPS("tel:+15551234567"))
	assert.Equal(t, "", EnsureHTTPS("  "))
}

func TestValidPortfolioID(t *testing.T) {
	assert.True(t, ValidPortfolioID("ada-lovelace"))
	assert.True(t, ValidPortfolioID("user-1234"))
	assert.False(t, ValidPortfolioID(""))
	assert.False(t, ValidPortfolioID("Ada"))
	assert.False(t, ValidPortfolioID("ada lovelace"))
	assert.False(t, ValidPortfolioID("ada.lovelace"))
}

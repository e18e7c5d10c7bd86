package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  The   Fool  ", "The Fool"},
		{"a  b", "a b"},
		{"Line one.   \nLine two.", "Line one.\nLine two."},
		{"tabs\t\tcollapse", "tabs collapse"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CleanText(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com/page#anchor", "https://example.com/page"},
		{"  https://example.com  ", "https://example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeURL(tt.input))
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"The Fool", "the-fool"},
		{"Two of Cups", "two-of-cups"},
		{"Wheel of Fortune!", "wheel-of-fortune"},
		{"  The   Hanged  Man ", "the-hanged-man"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slug(tt.input), "input %q", tt.input)
	}
}

func TestFileExt(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://cdn.example.com/img/fool.jpg", ".jpg"},
		{"/img/fool.PNG", ".png"},
		{"https://cdn.example.com/img/fool.jpg?format=2500w", ".jpg"},
		{"https://cdn.example.com/images/fool", ".jpg"},
		{"https://cdn.example.com/fool.toolong1", ".jpg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FileExt(tt.input), "input %q", tt.input)
	}
}

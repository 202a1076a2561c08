package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripPrivateTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no private tags", input: "hello world", expected: "hello world"},
		{name: "single private tag", input: "public <private>secret</private> visible", expected: "public [private] visible"},
		{name: "multiline private content", input: "before <private>\nline 1\nline 2\n</private> after", expected: "before [private] after"},
		{name: "multiple tags", input: "a <private>x</private> b <private>y</private>", expected: "a [private] b [private]"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripPrivateTags(tt.input))
		})
	}
}

func TestRedact(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "email", input: "reach me at jane.doe+jobs@example.co.uk please", expected: "reach me at [email] please"},
		{name: "grouped phone", input: "call (555) 123-4567 today", expected: "call [phone] today"},
		{name: "international phone", input: "or +44 20 7946 0958.", expected: "or [phone]."},
		{name: "short numbers kept", input: "we grew 30% in 2023 and cut p99 to 120 ms", expected: "we grew 30% in 2023 and cut p99 to 120 ms"},
		{name: "decimal kept", input: "score 7.5 of 10", expected: "score 7.5 of 10"},
		{name: "private and email", input: "<private>my salary</private> mail a@b.io", expected: "[private] mail [email]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Redact(tt.input))
		})
	}
}

func TestHasOnlyPrivateContent(t *testing.T) {
	assert.True(t, HasOnlyPrivateContent(" <private>a</private>\n<private>b</private> "))
	assert.True(t, HasOnlyPrivateContent(""))
	assert.False(t, HasOnlyPrivateContent("<private>a</private> visible"))
}

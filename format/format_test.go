package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  link ", "Link"},
		{"link", "Link"},
		{"HUDSON", "Hudson"},
		{"mimi   mama", "Mimi Mama"},
		{"mary-anne smith", "Mary-anne Smith"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.in), "Name(%q)", tt.in)
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1112223333", "(111) 222-3333"},
		{"111-222-3333", "(111) 222-3333"},
		{"(999) 999-9999", "(999) 999-9999"},
		{"1a1b1c2223333", "(111) 222-3333"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Phone(tt.in), "Phone(%q)", tt.in)
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "1234567890", Digits("(123) 456-7890"))
	assert.Equal(t, "", Digits("no digits here"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Family", Capitalize("family"))
	assert.Equal(t, "Work", Capitalize("WORK"))
	assert.Equal(t, "", Capitalize(""))
}

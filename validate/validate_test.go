package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VSTodd/contact-list/models"
)

func validFields() Fields {
	return Fields{Name: "link", Phone: "1112223333", Email: "link@hyrule.com", Category: "work"}
}

var existing = []models.Contact{
	{Name: "Hudson", Phone: "(123) 456-7890", Email: "mrman@gmail.com", Category: models.CategoryFriend},
}

func TestForCreate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Fields)
		want   string
	}{
		{"valid", func(f *Fields) {}, ""},
		{"blank name", func(f *Fields) { f.Name = "" }, MsgNameBlank},
		{"duplicate name", func(f *Fields) { f.Name = "hudson" }, MsgNameDuplicate},
		{"short phone", func(f *Fields) { f.Phone = "111" }, MsgPhoneDigits},
		{"long phone", func(f *Fields) { f.Phone = "11122233334444" }, MsgPhoneDigits},
		{"empty phone", func(f *Fields) { f.Phone = "" }, MsgPhoneDigits},
		{"blank email", func(f *Fields) { f.Email = "" }, MsgEmailBlank},
		{"missing category", func(f *Fields) { f.Category = "" }, MsgCategory},
		{"unknown category", func(f *Fields) { f.Category = "enemy" }, MsgCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)
			assert.Equal(t, tt.want, ForCreate(f, existing))
		})
	}
}

// The rule order is a contract: with several fields invalid at once, the
// earliest rule's message is reported.
func TestOrderIsDeterministic(t *testing.T) {
	f := Fields{Name: "", Phone: "1", Email: "", Category: ""}
	assert.Equal(t, MsgNameBlank, ForCreate(f, existing))
	assert.Equal(t, MsgNameBlank, ForEdit(f))

	f.Name = "hudson"
	assert.Equal(t, MsgNameDuplicate, ForCreate(f, existing))

	f.Name = "zelda"
	assert.Equal(t, MsgPhoneDigits, ForCreate(f, existing))

	f.Phone = "1112223333"
	assert.Equal(t, MsgEmailBlank, ForCreate(f, existing))

	f.Email = "zelda@hyrule.com"
	assert.Equal(t, MsgCategory, ForCreate(f, existing))
}

func TestForEditAllowsDuplicateName(t *testing.T) {
	f := validFields()
	f.Name = "Hudson"
	assert.Equal(t, "", ForEdit(f))
}

func TestPhoneWithPunctuationCounts(t *testing.T) {
	f := validFields()
	f.Phone = "(111) 222-3333"
	assert.Equal(t, "", ForCreate(f, existing))
}

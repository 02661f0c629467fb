// Package validate checks submitted contact fields. Rules run in a fixed
// order and the first violated rule's message wins; the empty string means
// the fields are acceptable.
package validate

import (
	"strings"

	"github.com/VSTodd/contact-list/format"
	"github.com/VSTodd/contact-list/models"
)

const (
	MsgNameBlank     = "Name entry cannot be left blank."
	MsgNameDuplicate = "Name entry must be unique."
	MsgPhoneDigits   = "Phone number must contain 10 digits."
	MsgEmailBlank    = "Email entry cannot be left blank."
	MsgCategory      = "You must select a category."
)

// Fields holds a submitted contact form, raw and unformatted.
type Fields struct {
	Name     string
	Phone    string
	Email    string
	Category string
}

// ForCreate validates fields for a new contact. It rejects, beyond the rules
// shared with ForEdit, a name already present in existing (case-insensitive).
func ForCreate(f Fields, existing []models.Contact) string {
	if f.Name == "" {
		return MsgNameBlank
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, f.Name) {
			return MsgNameDuplicate
		}
	}
	return sharedRules(f)
}

// ForEdit validates fields for an edited contact. Renaming onto an existing
// name is deliberately not rejected here.
func ForEdit(f Fields) string {
	if f.Name == "" {
		return MsgNameBlank
	}
	return sharedRules(f)
}

func sharedRules(f Fields) string {
	if len(format.Digits(f.Phone)) != 10 {
		return MsgPhoneDigits
	}
	if f.Email == "" {
		return MsgEmailBlank
	}
	if !models.Category(f.Category).Valid() {
		return MsgCategory
	}
	return ""
}

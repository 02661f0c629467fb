package models

// Category classifies a contact. The zero value is not a valid category.
type Category string

const (
	CategoryFamily Category = "family"
	CategoryFriend Category = "friend"
	CategoryWork   Category = "work"
	CategoryOther  Category = "other"
)

// Categories lists the valid categories in form display order.
func Categories() []Category {
	return []Category{CategoryFamily, CategoryFriend, CategoryWork, CategoryOther}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryFamily, CategoryFriend, CategoryWork, CategoryOther:
		return true
	}
	return false
}

// Contact is one entry in the contact book. Name doubles as the record's
// identity; phone is stored in canonical "(AAA) BBB-CCCC" form.
type Contact struct {
	Name     string   `yaml:"name"`
	Phone    string   `yaml:"phone"`
	Email    string   `yaml:"email"`
	Category Category `yaml:"type"`
}

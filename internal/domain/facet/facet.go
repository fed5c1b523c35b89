package facet

// Category identifies a string-valued facet of a catalog document.
// The publication year is filtered numerically and is not a Category.
type Category string

const (
	Department Category = "department"
	Ministry   Category = "ministry"
	DocType    Category = "doc_type"
	Status     Category = "status"
)

// Categories returns the string facet categories in canonical order.
func Categories() []Category {
	return []Category{Department, Ministry, DocType, Status}
}

// IsValid checks if the category is one of the supported values.
func (c Category) IsValid() bool {
	return c == Department || c == Ministry || c == DocType || c == Status
}

package models

// Category classifies a Post.
// The zero value means "no category" and is never accepted by validation.
type Category string

const (
	// Fiction marks invented stories.
	Fiction Category = "Fiction"

	// NonFiction marks factual writing.
	NonFiction Category = "Non-Fiction"
)

// Categories is the exhaustive, ordered set of accepted Category values.
var Categories = []Category{
	Fiction,
	NonFiction,
}

// String returns the stored representation of the category.
func (c Category) String() string {
	return string(c)
}

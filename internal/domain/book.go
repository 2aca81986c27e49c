package domain

// Rating bounds, exclusive on both ends.
const (
	RatingFloor   = 0
	RatingCeiling = 6
)

// EarliestPublishedYear is the exclusive lower bound on Book.PublishedDate.
const EarliestPublishedYear = 1990

// Book is a catalog entry held by the book store.
type Book struct {
	ID            int    `json:"id"`
	Title         string `json:"title" validate:"min=3"`
	Author        string `json:"author" validate:"min=1"`
	Description   string `json:"description" validate:"min=5,max=100"`
	Rating        int    `json:"rating" validate:"gt=0,lt=6"`
	PublishedDate int    `json:"published_date" validate:"gt=1990"`
}

// Validate checks every field constraint. The ID is not validated; stores
// assign it on create and use it only for matching on update.
func (b *Book) Validate() error {
	return validateStruct(b)
}

// ValidRating reports whether rating is within the accepted range.
func ValidRating(rating int) bool {
	return rating > RatingFloor && rating < RatingCeiling
}

// ValidPublishedYear reports whether year is accepted as a published date.
func ValidPublishedYear(year int) bool {
	return year > EarliestPublishedYear
}

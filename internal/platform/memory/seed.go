package memory

import "github.com/phrazzld/bookshelf-api/internal/domain"

// SeedBooks returns the fixed catalog a new process starts with. Each call
// returns a fresh slice.
func SeedBooks() []domain.Book {
	return []domain.Book{
		{ID: 1, Title: "Computer Science Pro", Author: "Apocoder", Description: "A very nice book!", Rating: 5, PublishedDate: 2011},
		{ID: 2, Title: "FastAPI course", Author: "Apocoder", Description: "A great book!", Rating: 5, PublishedDate: 2012},
		{ID: 3, Title: "Master Endpoints", Author: "Apocoder", Description: "An awesome book!", Rating: 5, PublishedDate: 2013},
		{ID: 4, Title: "Harry Potter 1", Author: "J.K. Rowling", Description: "Could be better", Rating: 2, PublishedDate: 2011},
		{ID: 5, Title: "Harry Potter 2", Author: "Dan Brown", Description: "Average", Rating: 3, PublishedDate: 2012},
		{ID: 6, Title: "Harry Potter 3", Author: "Sam Bourne", Description: "Very bad book", Rating: 1, PublishedDate: 2011},
	}
}

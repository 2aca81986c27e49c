package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookValidate(t *testing.T) {
	t.Parallel()

	valid := func() Book {
		return Book{
			Title:         "A new book",
			Author:        "Coding with Apo",
			Description:   "A good book",
			Rating:        4,
			PublishedDate: 2000,
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Book)
		wantField string
	}{
		{name: "valid", mutate: func(*Book) {}},
		{name: "id is not validated", mutate: func(b *Book) { b.ID = -7 }},
		{name: "title too short", mutate: func(b *Book) { b.Title = "Go" }, wantField: "title"},
		{name: "author empty", mutate: func(b *Book) { b.Author = "" }, wantField: "author"},
		{name: "author single char", mutate: func(b *Book) { b.Author = "A" }},
		{name: "description too short", mutate: func(b *Book) { b.Description = "Okay" }, wantField: "description"},
		{name: "description at minimum", mutate: func(b *Book) { b.Description = "Desc!" }},
		{name: "description at maximum", mutate: func(b *Book) { b.Description = strings.Repeat("d", 100) }},
		{name: "description too long", mutate: func(b *Book) { b.Description = strings.Repeat("d", 101) }, wantField: "description"},
		{name: "rating zero", mutate: func(b *Book) { b.Rating = 0 }, wantField: "rating"},
		{name: "rating six", mutate: func(b *Book) { b.Rating = 6 }, wantField: "rating"},
		{name: "published 1990", mutate: func(b *Book) { b.PublishedDate = 1990 }, wantField: "published_date"},
		{name: "published 1991", mutate: func(b *Book) { b.PublishedDate = 1991 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			book := valid()
			tt.mutate(&book)

			err := book.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestValidRating(t *testing.T) {
	t.Parallel()

	assert.False(t, ValidRating(0))
	for r := 1; r <= 5; r++ {
		assert.True(t, ValidRating(r), "rating %d", r)
	}
	assert.False(t, ValidRating(6))
}

func TestValidPublishedYear(t *testing.T) {
	t.Parallel()

	assert.False(t, ValidPublishedYear(1990))
	assert.True(t, ValidPublishedYear(1991))
}

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithParam(name, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		want    int64
		wantErr bool
	}{
		{value: "1", want: 1},
		{value: "9000000000", want: 9000000000},
		{value: "0", wantErr: true},
		{value: "-1", wantErr: true},
		{value: "1.5", wantErr: true},
		{value: "abc", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			id, err := getPathID(requestWithParam("todo_id", tt.value), "todo_id")
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidID)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestGetQueryInt(t *testing.T) {
	t.Parallel()

	v, err := getQueryInt(httptest.NewRequest(http.MethodGet, "/books/?book_rating=3", nil), "book_rating")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = getQueryInt(httptest.NewRequest(http.MethodGet, "/books/", nil), "book_rating")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.EqualError(t, err, "book_rating is required")

	_, err = getQueryInt(httptest.NewRequest(http.MethodGet, "/books/?book_rating=x", nil), "book_rating")
	assert.EqualError(t, err, "book_rating must be an integer")
}

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooksController_GetAllBooks(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(t, router, "GET", "/books", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var books []Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	require.Len(t, books, 3)

	titles := make([]string, 0, len(books))
	for _, book := range books {
		titles = append(titles, book.Title)
	}
	assert.Contains(t, titles, "The Sixth Child")
	assert.Contains(t, titles, "The Book of God")
	assert.Contains(t, titles, "The Hobbit")

	// Seeded descriptions survive the NULL-to-"" substitution untouched
	for _, book := range books {
		assert.NotEmpty(t, book.Description)
		assert.NotZero(t, book.ImageID)
	}
}

func TestBooksController_GetAllBooks_FieldNames(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(t, router, "GET", "/books", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.NotEmpty(t, raw)

	// Wire format is camelCase and always emits every field
	for _, key := range []string{"title", "author", "description", "price", "imageId"} {
		assert.Contains(t, raw[0], key)
	}
}

func TestBooksController_GetBookByTitle(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(t, router, "GET", "/api/book/The%20Hobbit", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var book Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, "The Hobbit", book.Title)
	assert.Equal(t, "J.R.R. Tolkien", book.Author)
	assert.Equal(t, "$12.99", book.Price)
}

func TestBooksController_GetBookByTitle_PlusEncoding(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	// '+' decodes to a space, as the original URL decoder did
	w := doJSON(t, router, "GET", "/api/book/The+Hobbit", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBooksController_GetBookByTitle_NotFound(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(t, router, "GET", "/api/book/No%20Such%20Title", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

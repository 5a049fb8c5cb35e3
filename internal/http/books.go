package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"bookstore/internal/database/books"
	"bookstore/internal/entities"
)

// Book is the catalog row as exposed over the API. Fields are always
// emitted; a NULL description is rendered as "".
type Book struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageID     int    `json:"imageId"`
}

func toBook(card entities.BookCard) Book {
	description := ""
	if card.Description != nil {
		description = *card.Description
	}
	return Book{
		Title:       card.Title,
		Author:      card.Author,
		Description: description,
		Price:       card.Price,
		ImageID:     card.ImageID,
	}
}

func toBooks(cards []entities.BookCard) []Book {
	out := make([]Book, 0, len(cards))
	for _, card := range cards {
		out = append(out, toBook(card))
	}
	return out
}

type BooksController struct {
	books *books.Repository
}

func NewBooksController(repo *books.Repository) *BooksController {
	return &BooksController{books: repo}
}

// GetAllBooks returns the whole catalog unordered (database default order).
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	cards, err := controller.books.All()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, toBooks(cards))
}

// GetBookByTitle looks a catalog row up by its URL-encoded title.
func (controller *BooksController) GetBookByTitle(c *gin.Context) {
	title, err := url.QueryUnescape(c.Param("title"))
	if err != nil {
		respondBadRequest(c, "Title parameter is missing")
		return
	}
	title = strings.TrimSpace(title)
	if title == "" {
		respondBadRequest(c, "Title parameter is missing")
		return
	}

	card, err := controller.books.GetByTitle(title)
	if err != nil {
		respondNotFound(c, "Book not found")
		return
	}
	c.JSON(http.StatusOK, toBook(*card))
}

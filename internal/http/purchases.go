package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/database/books"
	"bookstore/internal/database/purchases"
)

type PurchaseRequest struct {
	BookTitle string `json:"bookTitle" binding:"required"`
}

type PurchasesController struct {
	books     *books.Repository
	purchases *purchases.Repository
}

func NewPurchasesController(booksRepo *books.Repository, purchasesRepo *purchases.Repository) *PurchasesController {
	return &PurchasesController{books: booksRepo, purchases: purchasesRepo}
}

// Purchase records a purchase of a catalog title by the caller. The
// duplicate check and the insert are sequential, not atomic.
func (controller *PurchasesController) Purchase(c *gin.Context) {
	userID, ok := userIDFromHeader(c)
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	exists, err := controller.books.TitleExists(req.BookTitle)
	if err != nil {
		respondInternalError(c, err, "purchase: book lookup")
		return
	}
	if !exists {
		respondNotFound(c, "Book not found")
		return
	}

	purchased, err := controller.purchases.Exists(userID, req.BookTitle)
	if err != nil {
		respondInternalError(c, err, "purchase: duplicate check")
		return
	}
	if purchased {
		respondConflict(c, "Book already purchased")
		return
	}

	if _, err := controller.purchases.Create(userID, req.BookTitle); err != nil {
		respondInternalError(c, err, "purchase: insert")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Book purchased successfully"})
}

// PurchasedBooks lists the caller's purchases resolved to catalog rows.
func (controller *PurchasesController) PurchasedBooks(c *gin.Context) {
	userID, ok := userIDFromHeader(c)
	if !ok {
		return
	}

	cards, err := controller.purchases.ListBooks(userID)
	if err != nil {
		respondInternalError(c, err, "purchased books")
		return
	}
	c.JSON(http.StatusOK, toBooks(cards))
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/database/books"
	"bookstore/internal/database/reviews"
	"bookstore/internal/database/users"
	"bookstore/internal/entities"
)

type ReviewRequest struct {
	BookID  uint    `json:"bookId" binding:"required"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// Review is a review as exposed over the API, with the reviewer's username
// resolved. A NULL comment is rendered as "". The username is "" when the
// user row is missing, which can happen for the seeded review.
type Review struct {
	ID       uint   `json:"id"`
	BookID   uint   `json:"bookId"`
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type ReviewsController struct {
	books   *books.Repository
	reviews *reviews.Repository
	users   *users.Repository
}

func NewReviewsController(booksRepo *books.Repository, reviewsRepo *reviews.Repository, usersRepo *users.Repository) *ReviewsController {
	return &ReviewsController{books: booksRepo, reviews: reviewsRepo, users: usersRepo}
}

// AddReview records the caller's rating for a book. The rating range is
// validated before the book lookup; the duplicate check and the insert are
// sequential, not atomic.
func (controller *ReviewsController) AddReview(c *gin.Context) {
	userID, ok := userIDFromHeader(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		respondBadRequest(c, "Rating must be between 1 and 5")
		return
	}

	exists, err := controller.books.IDExists(req.BookID)
	if err != nil {
		respondInternalError(c, err, "review: book lookup")
		return
	}
	if !exists {
		respondNotFound(c, "Book not found")
		return
	}

	reviewed, err := controller.reviews.ExistsForUser(req.BookID, userID)
	if err != nil {
		respondInternalError(c, err, "review: duplicate check")
		return
	}
	if reviewed {
		respondConflict(c, "User already reviewed this book")
		return
	}

	if _, err := controller.reviews.Create(req.BookID, userID, req.Rating, req.Comment); err != nil {
		respondInternalError(c, err, "review: insert")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Review added successfully"})
}

// GetReviews lists all reviews for a book.
func (controller *ReviewsController) GetReviews(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId", "Invalid book ID")
	if !ok {
		return
	}

	rows, err := controller.reviews.ListForBook(bookID)
	if err != nil {
		respondInternalError(c, err, "list reviews")
		return
	}

	out := make([]Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, controller.toReview(row))
	}
	c.JSON(http.StatusOK, out)
}

func (controller *ReviewsController) toReview(row entities.BookReview) Review {
	username := ""
	if user, err := controller.users.GetByID(row.UserID); err == nil {
		username = user.Username
	}
	comment := ""
	if row.Comment != nil {
		comment = *row.Comment
	}
	return Review{
		ID:       row.ID,
		BookID:   row.BookID,
		UserID:   row.UserID,
		Username: username,
		Rating:   row.Rating,
		Comment:  comment,
	}
}

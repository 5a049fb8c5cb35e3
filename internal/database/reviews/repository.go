// Package reviews provides database operations for book reviews.
package reviews

import (
	"gorm.io/gorm"

	"bookstore/internal/entities"
)

// Repository handles review database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ExistsForUser reports whether the user already reviewed the given book.
func (r *Repository) ExistsForUser(bookID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.BookReview{}).
		Where("book_id = ? AND user_id = ?", bookID, userID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a review. Callers check ExistsForUser first; the
// (book, user) uniqueness is not a database constraint.
func (r *Repository) Create(bookID, userID uint, rating int, comment *string) (*entities.BookReview, error) {
	review := &entities.BookReview{
		BookID:  bookID,
		UserID:  userID,
		Rating:  rating,
		Comment: comment,
	}
	if err := r.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// ListForBook returns all reviews for a book in database default order.
func (r *Repository) ListForBook(bookID uint) ([]entities.BookReview, error) {
	var reviews []entities.BookReview
	err := r.db.Where("book_id = ?", bookID).Find(&reviews).Error
	return reviews, err
}

// Package purchases provides database operations for purchase tracking.
package purchases

import (
	"gorm.io/gorm"

	"bookstore/internal/entities"
)

// Repository handles purchase database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new purchases repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Exists reports whether the user has already purchased the given title.
func (r *Repository) Exists(userID uint, bookTitle string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.PurchasedBook{}).
		Where("user_id = ? AND book_title = ?", userID, bookTitle).
		Count(&count).Error
	return count > 0, err
}

// Create records a purchase of bookTitle by userID. Callers check Exists
// first; the (user, title) uniqueness is not a database constraint, so
// concurrent duplicate requests can slip through the check.
func (r *Repository) Create(userID uint, bookTitle string) (*entities.PurchasedBook, error) {
	purchase := &entities.PurchasedBook{
		UserID:    userID,
		BookTitle: bookTitle,
	}
	if err := r.db.Create(purchase).Error; err != nil {
		return nil, err
	}
	return purchase, nil
}

// ListBooks resolves the user's purchases back to catalog rows by title.
// Purchases whose title no longer matches a catalog entry are skipped, as
// the link is free text rather than a foreign key.
func (r *Repository) ListBooks(userID uint) ([]entities.BookCard, error) {
	var purchased []entities.PurchasedBook
	err := r.db.Where("user_id = ?", userID).Find(&purchased).Error
	if err != nil {
		return nil, err
	}

	books := make([]entities.BookCard, 0, len(purchased))
	for _, p := range purchased {
		var book entities.BookCard
		err := r.db.Where("title = ?", p.BookTitle).First(&book).Error
		if err == gorm.ErrRecordNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

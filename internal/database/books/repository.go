// Package books provides read access to the book catalog.
package books

import (
	"gorm.io/gorm"

	"bookstore/internal/entities"
)

// Repository handles catalog database operations. The catalog is seeded at
// startup and has no write endpoints, so the repository is read-only.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// All returns every catalog row in database default order.
func (r *Repository) All() ([]entities.BookCard, error) {
	var books []entities.BookCard
	err := r.db.Find(&books).Error
	return books, err
}

// GetByTitle retrieves a catalog row by exact title.
func (r *Repository) GetByTitle(title string) (*entities.BookCard, error) {
	var book entities.BookCard
	err := r.db.Where("title = ?", title).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// TitleExists reports whether a catalog row with the given title exists.
func (r *Repository) TitleExists(title string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.BookCard{}).Where("title = ?", title).Count(&count).Error
	return count > 0, err
}

// IDExists reports whether a catalog row with the given ID exists.
func (r *Repository) IDExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.BookCard{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

package entities

// User is a registered account. The password hash never leaves the API.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Username     string `gorm:"size:255" json:"username"`
}

// BookCard is a catalog row describing one book's display metadata.
// Rows are seeded at startup and read-only through the API.
type BookCard struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"index;size:255" json:"title"`
	Author      string  `gorm:"size:255" json:"author"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Price       string  `gorm:"size:50" json:"price"`
	ImageID     int     `gorm:"column:image_id" json:"imageId"`
}

// PurchasedBook links a user to a book title they bought. The title is a
// free-text copy rather than a foreign key into book_cards, so catalog
// renames orphan the purchase.
type PurchasedBook struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index" json:"userId"`
	BookTitle string `gorm:"size:255" json:"bookTitle"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BookReview is a user's rating and optional comment for a specific book.
// At most one review per (book, user) pair, enforced by a check before
// insert rather than a database constraint.
type BookReview struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	BookID  uint    `gorm:"index" json:"bookId"`
	UserID  uint    `gorm:"index" json:"userId"`
	Rating  int     `json:"rating"`
	Comment *string `gorm:"type:text" json:"comment,omitempty"`

	Book BookCard `gorm:"foreignKey:BookID" json:"-"`
	User User     `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (BookCard) TableName() string {
	return "book_cards"
}

func (PurchasedBook) TableName() string {
	return "purchased_books"
}

func (BookReview) TableName() string {
	return "book_reviews"
}

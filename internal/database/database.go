package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookstore/internal/entities"
)

func strptr(s string) *string { return &s }

var seedBooks = []entities.BookCard{
	{
		Title:       "The Sixth Child",
		Author:      "Manith J.",
		Price:       "$15.00",
		ImageID:     1,
		Description: strptr("Begin with eight Sisters..."),
	},
	{
		Title:       "The Book of God",
		Author:      "Walter Wangerin",
		Price:       "$16.88",
		ImageID:     2,
		Description: strptr("... a feat of imagination and faith."),
	},
	{
		Title:       "The Hobbit",
		Author:      "J.R.R. Tolkien",
		Price:       "$12.99",
		ImageID:     3,
		Description: strptr("A classic fantasy novel..."),
	},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.User{},
		&entities.BookCard{},
		&entities.PurchasedBook{},
		&entities.BookReview{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedBookCards(); err != nil {
		return nil, fmt.Errorf("failed to seed book cards: %w", err)
	}
	if err := database.seedReview(); err != nil {
		return nil, fmt.Errorf("failed to seed review: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedBookCards inserts the starter catalog when the table is empty.
func (d *Database) seedBookCards() error {
	var count int64
	if err := d.DB.Model(&entities.BookCard{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, book := range seedBooks {
		book := book
		if err := d.DB.Create(&book).Error; err != nil {
			return fmt.Errorf("failed to create book card %q: %w", book.Title, err)
		}
		log.Printf("Created book card: %s", book.Title)
	}
	return nil
}

// seedReview inserts one starter review for "The Hobbit" when the reviews
// table is empty. The review is attributed to the first registered user, or
// to user id 1 when nobody has registered yet; in that case the user
// reference dangles until a user with that id appears.
func (d *Database) seedReview() error {
	var count int64
	if err := d.DB.Model(&entities.BookReview{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var book entities.BookCard
	if err := d.DB.Where("title = ?", "The Hobbit").First(&book).Error; err != nil {
		return err
	}

	userID := uint(1)
	var user entities.User
	if err := d.DB.First(&user).Error; err == nil {
		userID = user.ID
	}

	review := entities.BookReview{
		BookID:  book.ID,
		UserID:  userID,
		Rating:  5,
		Comment: strptr("Amazing book, a must-read!"),
	}
	return d.DB.Create(&review).Error
}

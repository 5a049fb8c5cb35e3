package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/database"
	"bookstore/internal/database/books"
	"bookstore/internal/database/purchases"
	"bookstore/internal/database/reviews"
	"bookstore/internal/database/users"
)

// RouterConfig carries all handler dependencies. Repositories are
// constructed once at startup and injected here rather than reached through
// package-level state.
type RouterConfig struct {
	Database  *database.Database
	Users     *users.Repository
	Books     *books.Repository
	Purchases *purchases.Repository
	Reviews   *reviews.Repository

	UploadDir  string
	BcryptCost int
	Version    string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.Books)
	usersController := NewUsersController(cfg.Users, cfg.BcryptCost)
	purchasesController := NewPurchasesController(cfg.Books, cfg.Purchases)
	reviewsController := NewReviewsController(cfg.Books, cfg.Reviews, cfg.Users)
	uploadsController := NewUploadsController(cfg.UploadDir)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World!")
	})
	router.GET("/health", health.Status)

	// Catalog endpoints
	router.GET("/books", booksController.GetAllBooks)
	router.GET("/api/book/:title", booksController.GetBookByTitle)

	// Image uploads; the directory is also served back so returned URLs work
	router.POST("/upload", uploadsController.Upload)
	router.Static("/uploads", cfg.UploadDir)

	// Purchase endpoints
	router.POST("/purchase", purchasesController.Purchase)
	router.GET("/purchased-books", purchasesController.PurchasedBooks)

	// Account endpoints
	router.POST("/register", usersController.Register)
	router.POST("/login", usersController.Login)
	router.GET("/user", usersController.GetUser)
	router.PUT("/user", usersController.UpdateUser)

	// Review endpoints
	router.POST("/reviews", reviewsController.AddReview)
	router.GET("/reviews/:bookId", reviewsController.GetReviews)

	return router
}

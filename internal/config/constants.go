package config

// Default filesystem locations, created on first run if absent
const (
	// DefaultDatabasePath is the default path for the sqlite database file
	DefaultDatabasePath = "./app.db"

	// DefaultUploadDir is the default directory for uploaded images
	DefaultUploadDir = "./uploads"
)

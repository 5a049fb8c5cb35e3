package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"bookstore/internal/database"
	"bookstore/internal/database/books"
	"bookstore/internal/database/purchases"
	"bookstore/internal/database/reviews"
	"bookstore/internal/database/users"
)

// setupTestRouter builds a full router over a fresh seeded database.
// The bcrypt cost is lowered to keep the tests fast.
func setupTestRouter(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cfg := RouterConfig{
		Database:   db,
		Users:      users.NewRepository(db.DB),
		Books:      books.NewRepository(db.DB),
		Purchases:  purchases.NewRepository(db.DB),
		Reviews:    reviews.NewRepository(db.DB),
		UploadDir:  t.TempDir(),
		BcryptCost: 4,
		Version:    "test",
	}
	router := NewRouter(cfg)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, cleanup
}

// doJSON performs a request with an optional JSON body and User-Id header.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, userID string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(HeaderUserID, userID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Root(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(t, router, "GET", "/", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Hello World!", w.Body.String())
}

func TestRouter_Health(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(t, router, "GET", "/health", nil, "")

	require.Equal(t, http.StatusOK, w.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "healthy", response.Status)
	require.Equal(t, "ok", response.Checks["database"])
}

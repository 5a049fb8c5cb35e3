package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadsController_Upload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	controller := NewUploadsController(dir)
	router := gin.New()
	router.POST("/upload", controller.Upload)

	body, contentType := multipartUpload(t, "file", "cover.png", []byte("not-really-a-png"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "/uploads/cover.png", response.ImageURL)

	saved, err := os.ReadFile(filepath.Join(dir, "cover.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("not-really-a-png"), saved)
}

func TestUploadsController_Upload_StripsDirectories(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	controller := NewUploadsController(dir)
	router := gin.New()
	router.POST("/upload", controller.Upload)

	body, contentType := multipartUpload(t, "file", "../../escape.png", []byte("x"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "/uploads/escape.png", response.ImageURL)

	_, err := os.Stat(filepath.Join(dir, "escape.png"))
	assert.NoError(t, err)
}

func TestUploadsController_Upload_GeneratesNameForDegenerateFilename(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	controller := NewUploadsController(dir)
	router := gin.New()
	router.POST("/upload", controller.Upload)

	// A filename that reduces to "." after Base gets a generated name
	body, contentType := multipartUpload(t, "file", "uploads/.", []byte("x"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, strings.HasPrefix(response.ImageURL, "/uploads/image-"))
	assert.True(t, strings.HasSuffix(response.ImageURL, ".jpg"))
}

func TestUploadsController_Upload_NoFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	controller := NewUploadsController(t.TempDir())
	router := gin.New()
	router.POST("/upload", controller.Upload)

	// Multipart body with no file parts at all
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("note", "no file here"))
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadsController_Upload_NotMultipart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	controller := NewUploadsController(t.TempDir())
	router := gin.New()
	router.POST("/upload", controller.Upload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/upload", strings.NewReader("plain body"))
	req.Header.Set("Content-Type", "text/plain")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

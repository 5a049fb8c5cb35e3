package http

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

type UploadsController struct {
	dir string
}

func NewUploadsController(dir string) *UploadsController {
	return &UploadsController{dir: dir}
}

// Upload stores the first file part of a multipart request in the uploads
// directory and returns its URL. There is no size or content-type limit.
func (controller *UploadsController) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondBadRequest(c, "Failed to upload image")
		return
	}

	var file *multipart.FileHeader
	for _, headers := range form.File {
		if len(headers) > 0 {
			file = headers[0]
			break
		}
	}
	if file == nil {
		respondBadRequest(c, "Failed to upload image")
		return
	}

	// Base strips any client-supplied directory components
	filename := filepath.Base(file.Filename)
	if filename == "" || filename == "." || filename == ".." || filename == string(filepath.Separator) {
		filename = fmt.Sprintf("image-%s.jpg", uuid.NewString())
	}

	if err := c.SaveUploadedFile(file, filepath.Join(controller.dir, filename)); err != nil {
		respondBadRequest(c, "Failed to upload image")
		return
	}

	c.JSON(http.StatusOK, UploadResponse{ImageURL: "/uploads/" + filename})
}

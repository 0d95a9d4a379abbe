package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
)

// UploadHandler stores multipart image uploads on local disk and returns a
// stored-file reference served from /uploads
type UploadHandler struct {
	uploadDir string
}

// NewUploadHandler creates an UploadHandler, ensuring the upload dir exists
func NewUploadHandler(uploadDir string) (*UploadHandler, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &UploadHandler{uploadDir: uploadDir}, nil
}

// Upload accepts a multipart `image` field and writes it under the upload dir
func (h *UploadHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No image uploaded")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Image upload failed")
	}
	defer src.Close()

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Image upload failed")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Image upload failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"url": "/uploads/" + name})
}

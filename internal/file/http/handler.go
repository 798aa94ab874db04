package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharanipt/bike-rental-backend/internal/auth"
	"github.com/bharanipt/bike-rental-backend/internal/file"
	"github.com/bharanipt/bike-rental-backend/internal/pkg/response"
)

type Handler struct {
	fileService file.Service
}

func NewHandler(fileService file.Service) *Handler {
	return &Handler{
		fileService: fileService,
	}
}

// Upload accepts a multipart image upload under the "file" form field.
func (h *Handler) Upload(c *gin.Context) {
	userID := auth.GetUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, file.ErrFileRequired)
		return
	}

	f, err := h.fileService.Upload(c.Request.Context(), fileHeader, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	var thumbURL *string
	if f.ThumbnailPath != nil {
		t := file.ThumbnailURL(f.ID)
		thumbURL = &t
	}

	c.JSON(http.StatusCreated, UploadResponse{
		Message:      "File uploaded successfully",
		FileID:       f.ID,
		URL:          file.URL(f.ID),
		ThumbnailURL: thumbURL,
	})
}

// ServeFile streams the file content by ID.
func (h *Handler) ServeFile(c *gin.Context) {
	id := c.Param("id")

	stream, fileInfo, err := h.fileService.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", fileInfo.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+fileInfo.Filename+"\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started, nothing to report to the client.
		return
	}
}

// ServeThumbnail streams the thumbnail image by file ID.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	id := c.Param("id")

	stream, fileInfo, err := h.fileService.DownloadThumbnail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	// Thumbnails are always JPEG.
	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+fileInfo.Filename+"_thumb.jpg\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		return
	}
}

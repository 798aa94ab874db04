package file

import (
	"net/http"
	"time"

	"github.com/bharanipt/bike-rental-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "file not found")
	ErrNotImage     = apperror.New(http.StatusBadRequest, "only image uploads are allowed")
	ErrNoThumbnail  = apperror.New(http.StatusNotFound, "thumbnail not available")
	ErrFileRequired = apperror.New(http.StatusBadRequest, "file is required")
)

// File is an uploaded bike image.
type File struct {
	ID            string // UUID
	UploadedBy    string // user id of the uploading admin
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public URL for accessing a file by its ID.
func URL(id string) string {
	return "/api/files/" + id
}

// ThumbnailURL returns the public URL for a file's thumbnail.
func ThumbnailURL(id string) string {
	return "/api/files/" + id + "/thumbnail"
}

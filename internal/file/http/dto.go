package http

// UploadResponse is returned after a successful file upload.
type UploadResponse struct {
	Message      string  `json:"message"`
	FileID       string  `json:"fileId"`
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
}

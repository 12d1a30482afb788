package upload_attachment

import (
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/tjsdetailing/booking-service/internal/api/handlers"
	"github.com/tjsdetailing/booking-service/internal/domain"
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/heic": {},
}

var allowedVideoTypes = map[string]struct{}{
	"video/mp4":       {},
	"video/quicktime": {},
	"video/webm":      {},
}

const (
	msgNoFile       = "No file provided"
	msgInvalidType  = "Invalid file type. Only images and videos are allowed."
	msgUploadFailed = "Failed to upload file"
)

// UploadResponse is the stored attachment reference the booking form keeps.
type UploadResponse struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Name string `json:"name"`
}

type Handler struct {
	client        BlobClient
	maxFileSizeMB int
	logger        Logger
}

func NewHandler(client BlobClient, maxFileSizeMB int, logger Logger) *Handler {
	return &Handler{
		client:        client,
		maxFileSizeMB: maxFileSizeMB,
		logger:        logger,
	}
}

// Handle POST /api/v1/upload
// Accepts one multipart file under "file", validates type and size, stores it
// and returns the public reference.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	maxFileSize := int64(h.maxFileSizeMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxFileSize+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("POST /upload - No file in request: %v", err)
		handlers.RespondBadRequest(w, msgNoFile)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	_, isImage := allowedImageTypes[contentType]
	_, isVideo := allowedVideoTypes[contentType]
	if !isImage && !isVideo {
		h.logger.Warn("POST /upload - Rejected content type %q", contentType)
		handlers.RespondBadRequest(w, msgInvalidType)
		return
	}

	if header.Size > maxFileSize {
		h.logger.Warn("POST /upload - File too large: %d bytes", header.Size)
		handlers.RespondBadRequest(w, fmt.Sprintf("File too large. Maximum size is %dMB.", h.maxFileSizeMB))
		return
	}

	result, err := h.client.Upload(r.Context(), storagePath(header.Filename), contentType, file)
	if err != nil {
		h.logger.Error("POST /upload - Upload failed: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgUploadFailed)
		return
	}

	attachmentType := domain.AttachmentImage
	if isVideo {
		attachmentType = domain.AttachmentVideo
	}

	h.logger.Info("POST /upload - Stored %s attachment %q", attachmentType, header.Filename)
	handlers.RespondJSON(w, http.StatusOK, UploadResponse{
		URL:  result.URL,
		Type: string(attachmentType),
		Name: header.Filename,
	})
}

// storagePath builds a unique object key, keeping the original extension.
func storagePath(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("bookings/%d-%06d.%s", time.Now().UnixMilli(), rand.Intn(1000000), ext)
}

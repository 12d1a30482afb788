package upload_attachment

import (
	"context"
	"io"

	"github.com/tjsdetailing/booking-service/internal/integrations/blobstore"
)

type BlobClient interface {
	Upload(ctx context.Context, path, contentType string, body io.Reader) (*blobstore.UploadResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

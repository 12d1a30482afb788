package blobstore

// UploadResult is the public location of a stored object.
type UploadResult struct {
	URL string `json:"url"`
}

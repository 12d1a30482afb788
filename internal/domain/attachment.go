package domain

// AttachmentType is the media kind of an uploaded attachment.
type AttachmentType string

const (
	AttachmentImage AttachmentType = "image"
	AttachmentVideo AttachmentType = "video"
)

// IsValidAttachmentType reports whether t is a recognized attachment type.
func IsValidAttachmentType(t AttachmentType) bool {
	return t == AttachmentImage || t == AttachmentVideo
}

// Attachment is a customer-supplied photo or video reference stored alongside
// the booking. The bytes themselves live in blob storage.
type Attachment struct {
	URL  string         `json:"url"`
	Type AttachmentType `json:"type"`
	Name string         `json:"name"`
}

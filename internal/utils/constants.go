package utils

// Application constants
const (
	AppName    = "Yatra"
	AppVersion = "1.0.0"

	// Response status
	StatusSuccess = "success"
	StatusError   = "error"

	// Generic error messages
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Unauthorized"
	ErrForbidden        = "Forbidden"

	// Authentication
	TempPasswordLength = 10

	// File upload
	MaxImageSize    = 5 * 1024 * 1024  // 5MB
	MaxDocumentSize = 10 * 1024 * 1024 // 10MB
)

var (
	AllowedImageTypes    = []string{"jpg", "jpeg", "png", "gif", "webp"}
	AllowedDocumentTypes = []string{"pdf", "jpg", "jpeg", "png"}
)

package entity

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// MaxProfileImageSize is the upload size limit in bytes (5 MiB)
const MaxProfileImageSize = 5 << 20

// allowedImageExtensions is the authoritative allow-set for uploads
var allowedImageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
}

// mimeToExtension maps detected MIME types to extensions in the allow-set
var mimeToExtension = map[string]string{
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
}

// ImageExtension extracts the lowercased extension of a filename, without the dot
func ImageExtension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// IsAllowedImageExtension checks the extension against the allow-set
func IsAllowedImageExtension(ext string) bool {
	return allowedImageExtensions[ext]
}

// ExtensionForMIME resolves a detected MIME type to an allowed extension.
// The second return value is false when the MIME type maps to nothing allowed.
func ExtensionForMIME(mimeType string) (string, bool) {
	// Detectors may append parameters like "; charset=utf-8"
	base := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	ext, ok := mimeToExtension[strings.ToLower(base)]
	return ext, ok
}

// ProfileImageFilename builds the stored filename for a user's profile image.
// The name encodes owner and creation time: profile_<user_id>_<unix_time>.<ext>
func ProfileImageFilename(userID uint64, now time.Time, ext string) string {
	return fmt.Sprintf("profile_%d_%d.%s", userID, now.Unix(), ext)
}

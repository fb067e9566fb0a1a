package mime

import (
	"github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	"github.com/gabriel-vasile/mimetype"
)

// Detector implements the MIMEDetector port using content-based sniffing
type Detector struct{}

// NewDetector creates a new MIME detector
func NewDetector() core.MIMEDetector {
	return &Detector{}
}

// Detect returns the MIME type sniffed from the leading bytes of a file
func (d *Detector) Detect(head []byte) string {
	return mimetype.Detect(head).String()
}

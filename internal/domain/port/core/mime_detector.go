package core

// MIMEDetector sniffs a content type from the leading bytes of a file.
// Implementations inspect the actual bytes, never the client-reported type.
type MIMEDetector interface {
	Detect(head []byte) string
}

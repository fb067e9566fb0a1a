package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	storageport "github.com/fintrack-app/fintrack-backend/internal/domain/port/storage"
	"github.com/gin-gonic/gin"
)

// serveSniffLen is how many leading bytes the MIME detector gets to look at
const serveSniffLen = 3072

// Fallback content types by extension, used only without a detector
var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// ImageHandler serves stored profile images
type ImageHandler struct {
	store    storageport.ImageStore
	detector coreport.MIMEDetector
	logger   coreport.Logger
}

// NewImageHandler creates a new image handler instance
func NewImageHandler(store storageport.ImageStore, detector coreport.MIMEDetector, logger coreport.Logger) *ImageHandler {
	return &ImageHandler{
		store:    store,
		detector: detector,
		logger:   logger,
	}
}

// Serve handles the GET /api/images endpoint. The file query parameter names
// the stored image; the Content-Type comes from sniffing the stored bytes,
// not from the requested extension. Errors are plain text because the
// clients render the response directly into an image view.
func (h *ImageHandler) Serve(c *gin.Context) {
	name := c.Query("file")
	if name == "" {
		c.String(http.StatusBadRequest, msgFileParamMissing)
		return
	}

	reader, size, err := h.store.Open(name)
	if err != nil {
		c.String(http.StatusNotFound, "Image not found: %s", filepath.Base(name))
		return
	}
	defer reader.Close()

	head := make([]byte, serveSniffLen)
	n, err := io.ReadFull(reader, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		h.logger.Error("Failed to read stored image", map[string]any{
			"filename": filepath.Base(name),
			"error":    err.Error(),
		})
		c.String(http.StatusInternalServerError, "Failed to read image")
		return
	}
	head = head[:n]

	contentType := h.contentType(name, head)
	body := io.MultiReader(bytes.NewReader(head), reader)
	c.DataFromReader(http.StatusOK, size, contentType, body, nil)
}

// contentType sniffs the stored bytes; without a detector the extension map
// decides, mirroring the upload side's permissive fallback.
func (h *ImageHandler) contentType(name string, head []byte) string {
	if h.detector != nil {
		return h.detector.Detect(head)
	}
	if ct, ok := imageContentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

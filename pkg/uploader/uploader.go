package uploader

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned for anything that is not a JPEG or PNG.
var ErrUnsupportedType = errors.New("invalid file type, only JPEG and PNG allowed")

// Uploader stores an uploaded image and returns the reference to persist:
// a relative path for local storage, an absolute URL for cloud backends.
type Uploader interface {
	Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error)
}

// AbsoluteURL renders a stored reference for clients: cloud backends store
// absolute URLs already, local paths get the base prefix. Empty stays empty.
func AbsoluteURL(baseURL, path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(baseURL, "/") + path
}

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
}

// objectName builds a collision-free object name, preferring the original
// extension and falling back to one derived from the content type.
func objectName(filename, contentType string) (string, error) {
	extByType, ok := allowedTypes[strings.ToLower(contentType)]
	if !ok {
		return "", ErrUnsupportedType
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = extByType
	}
	return uuid.NewString() + ext, nil
}

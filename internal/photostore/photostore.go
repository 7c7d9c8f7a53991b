package photostore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// ErrURLUnresolved reports that an object was stored but no client-usable
// URL could be produced for it (no public base configured and presigning
// failed). The post pipeline treats this the same as a failed upload: the
// object is orphaned rather than persisting a value that merely looks like
// a URL.
var ErrURLUnresolved = errors.New("photo stored but no URL could be resolved")

// PhotoStore stores uploaded photos and hands back URLs clients can fetch.
type PhotoStore interface {
	// Upload stores data under a fresh key derived from filename's extension
	// and returns a URL for the stored object.
	Upload(ctx context.Context, data []byte, filename string) (string, error)
	// Open returns the stored object's bytes and content type for a key
	// previously produced by Upload.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// NewKey derives a storage key of the form posts/<uuid>.<ext> from the
// uploaded file's original name. The extension is lowercased; collisions are
// ruled out by the 128-bit random identifier.
func NewKey(filename string) string {
	return fmt.Sprintf("posts/%s.%s", uuid.New(), Ext(filename))
}

// Ext returns the lowercased extension of filename without the dot, or ""
// when the name has none.
func Ext(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// ContentType maps a lowercased extension to the MIME type stored with the
// object. Unknown extensions fall back to a generic binary type.
func ContentType(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

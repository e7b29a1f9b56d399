// Package storage holds the raw content objects behind file entries. Keys
// are opaque: the filesystem backend uses absolute paths, the S3 backend
// uses date-partitioned object keys. Thumbnails live next to the original
// under a deterministic sibling key.
package storage

import (
	"context"
	"fmt"
	"strings"
)

// Store reads and writes content objects.
type Store interface {
	// Save writes data to a fresh uniquely-named object and returns its key.
	Save(ctx context.Context, data []byte) (string, error)

	// Write writes data under a fixed key, overwriting any previous object.
	// The thumbnail worker uses it for deterministic sibling keys.
	Write(ctx context.Context, key string, data []byte) error

	// Read returns the object's bytes, or common.ErrorNotFound when the
	// backing object is missing.
	Read(ctx context.Context, key string) ([]byte, error)
}

// ThumbKey derives the thumbnail key for a given width by inserting the
// width before the key's extension: "<base>_<width><ext>". Keys without an
// extension get a plain "_<width>" suffix.
func ThumbKey(key string, width int) string {
	ext := ""
	base := key
	if i := strings.LastIndex(key, "."); i > strings.LastIndex(key, "/") {
		base, ext = key[:i], key[i:]
	}
	return fmt.Sprintf("%s_%d%s", base, width, ext)
}

// Package thumbs produces resized variants of uploaded images. A worker
// pool consumes jobs from the queue and writes thumbnails next to the
// original under deterministic sibling keys.
package thumbs

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// Widths are the thumbnail target widths, produced largest first.
var Widths = []int{500, 250, 100}

var formats = map[string]imaging.Format{
	"png":  imaging.PNG,
	"jpeg": imaging.JPEG,
	"gif":  imaging.GIF,
}

// Thumbnail decodes src, resizes it to the given width preserving the
// aspect ratio, and re-encodes it in the source encoding. Formats outside
// png/jpeg/gif are rejected.
func Thumbnail(src []byte, width int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %v", err)
	}

	f, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("unsupported image format %q", format)
	}

	resized := imaging.Resize(img, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, f); err != nil {
		return nil, fmt.Errorf("error encoding thumbnail: %v", err)
	}
	return buf.Bytes(), nil
}

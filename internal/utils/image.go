package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"
)

const (
	MaxImageWidth  = 1600
	MaxImageHeight = 1200

	jpegQuality = 85
)

// NormalizeImage decodes an uploaded image, scales it down to fit within
// the given bounds preserving aspect ratio, and re-encodes it as JPEG so
// stored route images share one format. Images already within bounds keep
// their dimensions. Undecodable input is a validation error.
func NormalizeImage(r io.Reader, maxWidth, maxHeight uint) (*bytes.Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: unsupported image: %v", ErrValidation, err)
	}

	bounds := img.Bounds()
	if uint(bounds.Dx()) > maxWidth || uint(bounds.Dy()) > maxHeight {
		img = resize.Thumbnail(maxWidth, maxHeight, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return &buf, nil
}

package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngImage(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y += 10 {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestNormalizeImageDownscalesLargeImages(t *testing.T) {
	src := pngImage(t, 3200, 1200)

	out, err := NormalizeImage(src, MaxImageWidth, MaxImageHeight)
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 1600, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestNormalizeImageKeepsSmallImages(t *testing.T) {
	src := pngImage(t, 400, 300)

	out, err := NormalizeImage(src, MaxImageWidth, MaxImageHeight)
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestNormalizeImageRejectsGarbage(t *testing.T) {
	_, err := NormalizeImage(strings.NewReader("not an image"), MaxImageWidth, MaxImageHeight)
	assert.ErrorIs(t, err, ErrValidation)
}

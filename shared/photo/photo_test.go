package photo_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"ehotels/shared/photo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.NRGBA{R: 255, A: 128})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)), nil))

	return buf.Bytes()
}

func TestFit_ShrinksLargePictures(t *testing.T) {
	out, contentType, extension, err := photo.Fit(encodeJPEG(t, 400, 200), 100)
	require.NoError(t, err)

	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, ".jpg", extension)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestFit_KeepsSmallPNG(t *testing.T) {
	out, contentType, extension, err := photo.Fit(encodePNG(t, 10, 20), photo.MaxSide)
	require.NoError(t, err)

	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, ".png", extension)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
}

func TestFit_RejectsGarbage(t *testing.T) {
	_, _, _, err := photo.Fit([]byte("not an image"), photo.MaxSide)

	assert.ErrorIs(t, err, photo.ErrUnsupportedImage)
}

// Package photo normalizes uploaded pictures before they are stored.
package photo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // decoder
	_ "image/png"  // decoder

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // decoder
)

// MaxSide bounds the width and height of a stored picture.
const MaxSide = 1600

const jpegQuality = 85

var ErrUnsupportedImage = errors.New("image could not be decoded")

// Fit decodes data and shrinks it to fit in a maxSide square, keeping the
// aspect ratio. PNG input stays PNG so transparency survives; anything else is
// stored as JPEG.
func Fit(data []byte, maxSide int) (out []byte, contentType, extension string, err error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxSide || bounds.Dy() > maxSide {
		img = imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)
	}

	target, contentType, extension := imaging.JPEG, "image/jpeg", ".jpg"
	if format == "png" {
		target, contentType, extension = imaging.PNG, "image/png", ".png"
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, target, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, "", "", fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), contentType, extension, nil
}

package storage

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// ProfileImageSize is the square edge of stored profile pictures.
const ProfileImageSize = 300

// SquareJPEG decodes an uploaded image, centre-crops it to size x size and
// re-encodes it as JPEG.
func SquareJPEG(raw []byte, size int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

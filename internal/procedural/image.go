package procedural

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/bmp"
)

// Dimensions of the profile picture. An uncompressed 24-bit bitmap of this size
// is about 225 KiB, and its data URI about 300 KiB.
const (
	pictureWidth  = 320
	pictureHeight = 240
)

// ProfilePicture returns the bloat payload attached at difficulty 6: a bitmap as
// a base64 data URI. It is rendered once and shared read-only.
var ProfilePicture = sync.OnceValues(renderProfilePicture)

func renderProfilePicture() (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, pictureWidth, pictureHeight))
	for y := 0; y < pictureHeight; y++ {
		for x := 0; x < pictureWidth; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / pictureWidth),
				G: uint8(y * 255 / pictureHeight),
				B: uint8((x ^ y) & 0xff),
				A: 0xff,
			})
		}
	}

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode bitmap: %w", err)
	}
	return "data:image/bmp;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

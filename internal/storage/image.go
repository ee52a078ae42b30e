package storage

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/sharpfade/barbershop-api/internal/httperr"
)

const (
	maxImageDim = 1024
	webpQuality = 85
)

// NormalizeImage decodes an uploaded avatar or service image, downscales it
// so the longest edge fits maxImageDim, and re-encodes to WebP. Everything
// stored ends up the same format regardless of what clients send.
func NormalizeImage(r io.Reader) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.ErrValidation(
			"invalid_image",
			"image",
			"the uploaded file is not a supported image",
		)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxImageDim || h > maxImageDim {
		nw, nh := w, h
		if w >= h {
			nw = maxImageDim
			nh = h * maxImageDim / w
		} else {
			nh = maxImageDim
			nw = w * maxImageDim / h
		}
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Package texture decodes scene images and tracks the textures uploaded for
// them under string tags.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	// Standard raster formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a tightly packed 8-bit pixel buffer. Rows run bottom to top so
// the buffer can be handed to glTexImage2D as is.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// DecodeFile reads and decodes an image file.
func DecodeFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		return DecodeTGA(data)
	}
	return Decode(data)
}

// Decode decodes any registered image format and flips it vertically.
func Decode(data []byte) (*Image, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decoding %s image: empty bounds", format)
	}
	return pack(src, channelsOf(src)), nil
}

// channelsOf reports how many channels the source image carries.
func channelsOf(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// pack copies src into a bottom-up buffer with the given channel count.
func pack(src image.Image, channels int) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := &Image{
		Width:    w,
		Height:   h,
		Channels: channels,
		Pix:      make([]byte, w*h*channels),
	}

	i := 0
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := b.Min.X; x < b.Max.X; x++ {
			if channels == 1 {
				out.Pix[i] = color.GrayModel.Convert(src.At(x, y)).(color.Gray).Y
				i++
				continue
			}
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			out.Pix[i] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			if channels == 4 {
				out.Pix[i+3] = c.A
			}
			i += channels
		}
	}
	return out
}

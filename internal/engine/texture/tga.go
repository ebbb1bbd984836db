package texture

import (
	"fmt"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

// DecodeTGA decodes an uncompressed or RLE true-color TGA file.
// TGA stores rows bottom-up by default, which already matches GL order, so
// only top-down files are flipped.
func DecodeTGA(data []byte) (*Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("TGA has empty dimensions %dx%d", width, height)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}
	pixelData := data[offset:]

	channels := bpp / 8
	img := &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]byte, width*height*channels),
	}
	topToBottom := descriptor&0x20 != 0

	put := func(pixelIdx int, px []byte) {
		x := pixelIdx % width
		y := pixelIdx / width
		if topToBottom {
			y = height - 1 - y
		}
		i := (y*width + x) * channels
		// TGA is BGR(A)
		img.Pix[i] = px[2]
		img.Pix[i+1] = px[1]
		img.Pix[i+2] = px[0]
		if channels == 4 {
			img.Pix[i+3] = px[3]
		}
	}

	pixelCount := width * height
	if imageType == TGATypeUncompressed {
		if len(pixelData) < pixelCount*channels {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}
		for p := 0; p < pixelCount; p++ {
			put(p, pixelData[p*channels:])
		}
		return img, nil
	}

	pixelIdx, dataIdx := 0, 0
	for pixelIdx < pixelCount && dataIdx < len(pixelData) {
		packet := pixelData[dataIdx]
		dataIdx++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run packet: one pixel repeated
			if dataIdx+channels > len(pixelData) {
				break
			}
			px := pixelData[dataIdx : dataIdx+channels]
			dataIdx += channels
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				put(pixelIdx, px)
				pixelIdx++
			}
			continue
		}

		// Raw packet: count literal pixels
		for i := 0; i < count && pixelIdx < pixelCount; i++ {
			if dataIdx+channels > len(pixelData) {
				break
			}
			put(pixelIdx, pixelData[dataIdx:dataIdx+channels])
			dataIdx += channels
			pixelIdx++
		}
	}
	if pixelIdx < pixelCount {
		return nil, fmt.Errorf("TGA RLE data truncated at pixel %d of %d", pixelIdx, pixelCount)
	}

	return img, nil
}

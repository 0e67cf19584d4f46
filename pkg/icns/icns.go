// Package icns converts source images into Apple icon containers. The
// container holds the standard size ladder as PNG-bearing entries, which
// every supported OS floor accepts.
package icns

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

// iconType pairs an icns entry OSType with its pixel size.
type iconType struct {
	osType string
	size   uint
}

// PNG-capable entry types, 32px through 1024px.
var iconTypes = []iconType{
	{"ic11", 32},
	{"ic12", 64},
	{"ic07", 128},
	{"ic08", 256},
	{"ic09", 512},
	{"ic10", 1024},
}

// Converter rasterizes PNG sources into icns containers. It implements
// bundle.IconConverter.
type Converter struct{}

// NewConverter creates a Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ConvertPNG reads the source PNG and writes an icns container at the
// destination path containing the full size ladder.
func (c *Converter) ConvertPNG(source, destination string) error {
	f, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("opening icon source %s: %w", source, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", source, err)
	}

	data, err := Encode(img)
	if err != nil {
		return fmt.Errorf("converting %s: %w", source, err)
	}
	if err := os.WriteFile(destination, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", destination, err)
	}
	return nil
}

// Encode renders img at every ladder size and packs the results into an
// icns container.
func Encode(img image.Image) ([]byte, error) {
	var body bytes.Buffer

	for _, it := range iconTypes {
		scaled := scaleTo(img, it.size)

		var pngData bytes.Buffer
		if err := png.Encode(&pngData, scaled); err != nil {
			return nil, fmt.Errorf("encoding %dpx entry: %w", it.size, err)
		}

		// Entry header: OSType + big-endian length including the
		// 8 header bytes.
		body.WriteString(it.osType)
		if err := binary.Write(&body, binary.BigEndian, uint32(pngData.Len()+8)); err != nil {
			return nil, err
		}
		body.Write(pngData.Bytes())
	}

	var out bytes.Buffer
	out.WriteString("icns")
	if err := binary.Write(&out, binary.BigEndian, uint32(body.Len()+8)); err != nil {
		return nil, err
	}
	out.Write(body.Bytes())
	return out.Bytes(), nil
}

// scaleTo resizes img to size×size, unless it already has those exact
// dimensions.
func scaleTo(img image.Image, size uint) image.Image {
	bounds := img.Bounds()
	if uint(bounds.Dx()) == size && uint(bounds.Dy()) == size {
		return img
	}
	return resize.Resize(size, size, img, resize.Lanczos3)
}
